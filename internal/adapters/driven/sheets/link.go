package sheets

import "regexp"

// linkPattern matches the document ID inside a full spreadsheet URL,
// e.g. https://docs.google.com/spreadsheets/d/<id>/edit#gid=0.
var linkPattern = regexp.MustCompile(`/d/([a-zA-Z0-9_-]+)`)

// SpreadsheetID extracts the document ID from a spreadsheet reference.
// The reference may be a full URL or a bare ID; a bare ID is returned
// unchanged.
func SpreadsheetID(ref string) string {
	if m := linkPattern.FindStringSubmatch(ref); m != nil {
		return m[1]
	}
	return ref
}
