package domain

// SessionUser is the locally persisted display identity. It is not a
// credential: holding one only unlocks the greeting and the dashboard.
type SessionUser struct {
	Name       string `json:"name"`
	IsLoggedIn bool   `json:"is_logged_in"`
}
