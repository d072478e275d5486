package application

// PasswordHash is the hashing collaborator injected into the use cases. The
// core never compares plaintext against stored values directly.
type PasswordHash interface {
	Hash(plain string) (string, error)
	Compare(digest, plain string) bool
}
