package factory

import (
	fab "github.com/Goldziher/fabricator"
	"golang.org/x/crypto/bcrypt"
)

// NewUser builds a user value with faked fields. Unless the caller
// supplies one, the password digest is a real bcrypt hash of "12345678"
// so login flows verify against it.
func NewUser[T any](customData ...map[string]any) T {
	instance := fab.New(*new(T))

	hasDigest := false

	for _, data := range customData {
		if _, exists := data["EncryptedPassword"]; exists {
			hasDigest = true
			break
		}
	}

	if !hasDigest {
		digest, _ := bcrypt.GenerateFromPassword([]byte("12345678"), bcrypt.DefaultCost)

		customData = append(customData, map[string]any{
			"EncryptedPassword": string(digest),
		})
	}

	return instance.Build(customData...)
}
