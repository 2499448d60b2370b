package models

// TokenPair is the credential pair issued by the token endpoints.
// The pair is persisted and cleared as a unit: after any successful save or
// clear, both values are present or both are absent.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}
