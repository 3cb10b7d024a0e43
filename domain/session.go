package domain

// Session holds the single current-user reference. The zero value is logged out.
type Session struct {
	user *User
}

// User returns the active user or nil.
func (s *Session) User() *User {
	if s == nil {
		return nil
	}
	return s.user
}

// UserID returns the active user's id, or "" when logged out.
func (s *Session) UserID() string {
	if u := s.User(); u != nil {
		return u.ID
	}
	return ""
}

func (s *Session) Active() bool {
	return s.User() != nil
}

func (s *Session) Set(u *User) {
	s.user = u
}

func (s *Session) Clear() {
	s.user = nil
}
