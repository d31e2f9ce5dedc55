package util

import "golang.org/x/crypto/bcrypt"

// HashPassword produces a salted bcrypt digest of the plaintext.
func HashPassword(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	if err != nil {
		return "", err
	}

	return string(digest), nil
}

// VerifyPassword checks plaintext against a stored digest. bcrypt does
// the comparison in constant time.
func VerifyPassword(password, digest string) error {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password))
}
