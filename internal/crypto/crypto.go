// Package crypto is the credential hasher: one-way bcrypt digests for voter
// secrets. Digests are never reversible and are only compared via Verify.
package crypto

import "golang.org/x/crypto/bcrypt"

// HashPassword produces a salted bcrypt digest of the secret.
func HashPassword(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// VerifyPassword reports whether the secret matches the stored digest.
func VerifyPassword(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
