package dto

// ErrorResponse distinguishes page-fatal failures (the client replaces the
// whole content area and follows the hint) from form-local ones (shown
// inline beside the triggering control). The two never share a slot.
type ErrorResponse struct {
	Error string `json:"error"`
	Fatal bool   `json:"fatal"`
	Hint  string `json:"hint,omitempty"`
}
