package request

// ContactRequest is the body for contact-form submissions.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// ProfileRequest is the body for profile updates.
type ProfileRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Bio     string `json:"bio,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
	Avatar  string `json:"avatar,omitempty"`
}
