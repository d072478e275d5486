package helpers

import "golang.org/x/crypto/bcrypt"

// BcryptHash is the production password hashing collaborator.
type BcryptHash struct {
	Cost int
}

func NewBcryptHash() *BcryptHash {
	return &BcryptHash{Cost: bcrypt.DefaultCost}
}

// Hash derives an irreversible digest from the plain text password.
func (b *BcryptHash) Hash(plain string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plain), b.Cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Compare reports whether the plain password matches the stored digest.
func (b *BcryptHash) Compare(digest, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}
