package models

import "sonrisitas-client/internal/pkg/dto/responses"

// Session is the locally persisted authentication state. User may be nil
// while Token is set; the inverse never holds.
type Session struct {
	Token string
	User  *responses.UserProfile
}

// UserName is the display name for the home greeting; empty when only the
// token survived locally.
func (s *Session) UserName() string {
	if s.User == nil {
		return ""
	}
	return s.User.Nombre
}
