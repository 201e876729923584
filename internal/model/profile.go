package model

// UserProfile holds the display profile for the single dashboard user.
type UserProfile struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Bio     string `json:"bio,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
	Avatar  string `json:"avatar,omitempty"`
}

// DefaultProfile returns the profile used when no persisted profile exists.
func DefaultProfile() UserProfile {
	return UserProfile{
		Name:    "User",
		Email:   "user@example.com",
		Bio:     "I'm an investor interested in tech and renewable energy in India.",
		Address: "123, MG Road, Bangalore, India",
		Avatar:  "https://picsum.photos/seed/ua1/100/100",
	}
}
