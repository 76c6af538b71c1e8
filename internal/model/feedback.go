package model

// FeedbackRequest is the API request body for POST /submit-feedback.
// All fields are free text; persistence is unconditional.
type FeedbackRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Category string `json:"category"`
	Message  string `json:"message"`
}
