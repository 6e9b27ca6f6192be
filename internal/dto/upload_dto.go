package dto

// ImportResponse is the success body of both CSV upload endpoints. Imports are
// all-or-nothing: the count is either the full batch size or the request
// failed with an error envelope instead.
type ImportResponse struct {
	Imported int `json:"imported"`
}
