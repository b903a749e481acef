package models

// User is the registered account record. Created once at registration and
// never edited or deleted afterwards. PasswordHash holds an argon2id encoded
// hash, never the cleartext password.
type User struct {
	ID           string `json:"id"`
	FirstName    string `json:"firstName"`
	Email        string `json:"email"`
	PasswordHash string `json:"passwordHash"`
}

// Session is the reduced, non-secret projection of a User held in memory for
// the active device session. Created at login, cleared at logout.
type Session struct {
	ID        string
	FirstName string
	Email     string
}

// NewSession derives a Session from a stored user record.
func NewSession(u *User) *Session {
	return &Session{ID: u.ID, FirstName: u.FirstName, Email: u.Email}
}
