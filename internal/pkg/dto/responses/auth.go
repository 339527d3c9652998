package responses

// UserProfile is whatever the backend returns about the logged-in user. Only
// Nombre is rendered; the rest is kept verbatim for the cached session.
type UserProfile struct {
	ID     string `json:"_id,omitempty"`
	Nombre string `json:"nombre"`
	Email  string `json:"email,omitempty"`
	Rol    string `json:"rol,omitempty"`
}

type LoginUser struct {
	Token string `json:"token"`
	UserProfile
}

type BackendError struct {
	Msg string `json:"msg"`
}
