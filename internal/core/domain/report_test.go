package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReport_Row_Order(t *testing.T) {
	r := Report{
		Organization:       "Acme Corp",
		Timestamp:          "2026-09-01 10:00:00 +0300",
		ChassisNumber:      "773",
		Model:              "BelAZ",
		FailureDescription: "failure: hydraulic fault",
		Description:        "rest of the message",
		MileageHours:       "23310 km, 2245 h",
	}

	row := r.Row()

	require.Len(t, row, 7)
	assert.Equal(t, []string{
		"Acme Corp",
		"2026-09-01 10:00:00 +0300",
		"773",
		"BelAZ",
		"failure: hydraulic fault",
		"rest of the message",
		"23310 km, 2245 h",
	}, row)
}

func TestReport_Row_EmptyFieldsKeepPositions(t *testing.T) {
	r := Report{Timestamp: "2026-09-01 10:00:00 +0300"}

	row := r.Row()

	require.Len(t, row, 7)
	assert.Equal(t, "2026-09-01 10:00:00 +0300", row[1])
	for i, cell := range row {
		if i == 1 {
			continue
		}
		assert.Empty(t, cell, "column %d", i)
	}
}

func TestColumns_MatchRowOrder(t *testing.T) {
	cols := Columns()

	require.Len(t, cols, 7)
	assert.Equal(t, []string{
		"Organization",
		"Date",
		"ChassisNumber",
		"Model",
		"FailureDescription",
		"Description",
		"MileageHours",
	}, cols)
}
