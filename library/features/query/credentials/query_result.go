package credentials

// Credentials must never be rendered to a client.
type Credentials struct {
	AccountID    string
	Kind         AccountKind
	Role         string
	Email        string
	PasswordHash string
}
