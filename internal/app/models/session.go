package models

// UserProfile is the minimal identity persisted next to the bearer token.
type UserProfile struct {
	Email    string `json:"email"`
	UserType string `json:"userType"`
}

// Session is the authenticated state held for the lifetime of one client
// process. User is meaningful only while Token is present.
type Session struct {
	Token string
	User  *UserProfile
}

func (s *Session) IsAuthenticated() bool {
	return s != nil && s.Token != ""
}

// LoginResult is what Login hands back so the caller can route the user to
// the right landing page.
type LoginResult struct {
	Token    string
	UserType string
}
