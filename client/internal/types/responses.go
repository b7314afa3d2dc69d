package types

// ------------------------------
// Response Payloads
// ------------------------------

// LoginResponse is the body returned by POST /auth/login: the bearer
// credential plus the authenticated user's profile.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	User        User   `json:"user"`
}
