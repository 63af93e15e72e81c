package auth

import "golang.org/x/crypto/bcrypt"

const bcryptCost = 10

// HashSecret returns a one-way digest of the secret.
func HashSecret(secret string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(secret), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// VerifySecret reports whether the secret matches the digest. Any error,
// including a malformed digest, is treated as a mismatch.
func VerifySecret(digest, secret string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(secret)) == nil
}
