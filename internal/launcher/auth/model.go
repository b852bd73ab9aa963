package auth

// UserRecord is one registered account. Records are immutable once created
// and live in a single JSON array under the "users" storage key.
//
// Passwords are stored and compared as plain text: the launcher keeps only
// local make-believe accounts, there is no real backend to protect.
type UserRecord struct {
	Login    string `json:"login"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Session is the single active authenticated identity. It caches the public
// fields of one UserRecord and is persisted under "currentSession" as a
// signed token.
type Session struct {
	Login string `json:"login"`
	Email string `json:"email"`
}
