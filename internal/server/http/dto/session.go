package dto

// StartSessionRequest carries the email entered on the search view.
type StartSessionRequest struct {
	Email string `json:"email"`
}

// SessionResponse confirms which identity the session is now bound to.
type SessionResponse struct {
	Email string `json:"email"`
}
