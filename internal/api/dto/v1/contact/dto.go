package contact

// ContactRequest represents a contact form submission
type ContactRequest struct {
	Name    string `json:"name" binding:"required,min=2,max=100"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required,min=10,max=5000"`
	// Website is the hidden honeypot field of the contact form. Humans never fill it.
	Website string `json:"website,omitempty"`
}

// IsBot reports whether the honeypot field was filled in
func (r *ContactRequest) IsBot() bool {
	return r.Website != ""
}

// ContactResponse represents the response after submitting a contact form
type ContactResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
