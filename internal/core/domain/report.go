package domain

// Report is the structured result of parsing one inbound breakdown message.
// All fields are strings; an empty string means the field was not found in
// the message text. Timestamp is always populated at capture time.
//
// A Report is built once per message, projected to a row, delivered, and
// discarded. It is never stored or mutated after construction.
type Report struct {
	// Organization is the best-effort span preceding a recognised
	// delimiter keyword, or the span before the first comma/semicolon.
	Organization string

	// Timestamp is the capture time in the local zone, formatted as
	// "2006-01-02 15:04:05 -0700". Generated, never extracted from text.
	Timestamp string

	// ChassisNumber is the digit run following the chassis keyword.
	ChassisNumber string

	// Model is the first vehicle-model keyword found in the text.
	Model string

	// FailureDescription is the "; "-joined, deduplicated list of
	// fault/error/failure phrase matches, in order of first appearance.
	FailureDescription string

	// Description is the original text with the extracted organisation,
	// chassis phrase, distance phrase and hours phrase removed.
	Description string

	// MileageHours combines the distance and engine-hours readings,
	// e.g. "23310 km, 2245 h". Either part is omitted when absent.
	MileageHours string
}

// Row projects the report to the fixed column order of the sheet.
// The order matches Columns exactly; reordering is a breaking change.
func (r Report) Row() []string {
	return []string{
		r.Organization,
		r.Timestamp,
		r.ChassisNumber,
		r.Model,
		r.FailureDescription,
		r.Description,
		r.MileageHours,
	}
}

// Columns is the header row written to the sheet at initialisation.
func Columns() []string {
	return []string{
		"Organization",
		"Date",
		"ChassisNumber",
		"Model",
		"FailureDescription",
		"Description",
		"MileageHours",
	}
}

// Outcome is the result of submitting one message through the pipeline.
type Outcome struct {
	// Report holds the fields extracted from the message.
	Report Report

	// Delivered is true when the row reached the sheet before the
	// attempt ceiling was exhausted.
	Delivered bool

	// Note is an optional model-generated acknowledgement appended to
	// the confirmation. Empty when no language model is configured or
	// the call failed.
	Note string
}
