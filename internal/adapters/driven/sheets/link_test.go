package sheets

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpreadsheetID(t *testing.T) {
	tests := []struct {
		name string
		ref  string
		want string
	}{
		{
			name: "full URL",
			ref:  "https://docs.google.com/spreadsheets/d/1AbC_d-EfG/edit#gid=0",
			want: "1AbC_d-EfG",
		},
		{
			name: "URL without edit suffix",
			ref:  "https://docs.google.com/spreadsheets/d/1AbC_d-EfG",
			want: "1AbC_d-EfG",
		},
		{
			name: "bare ID unchanged",
			ref:  "1AbC_d-EfG",
			want: "1AbC_d-EfG",
		},
		{
			name: "empty reference",
			ref:  "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SpreadsheetID(tt.ref))
		})
	}
}
