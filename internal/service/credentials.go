package service

import "golang.org/x/crypto/bcrypt"

// Credentials hashes and verifies passwords. Hashing is an explicit
// pipeline step before persistence, never a save-time hook.
type Credentials struct {
	cost int
}

func NewCredentials() *Credentials {
	return &Credentials{cost: bcrypt.DefaultCost}
}

func (c *Credentials) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), c.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (c *Credentials) Compare(hash, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return ErrInvalidCredential
	}
	return nil
}
