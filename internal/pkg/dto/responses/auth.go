package responses

// JwtResponse is the login response contract. AccessToken must be present
// on success; the client treats its absence as a fatal login error.
type JwtResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType,omitempty"`
	ExpiresIn   int64  `json:"expiresIn,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
