// Package sheets implements the row store on the Google Sheets API
// using service account credentials. A Store handle is bound to one
// spreadsheet; configuration changes produce a new handle via Connect.
package sheets
