package utils

import (
	"math/rand"
	"time"
)

// GenerateRandomToken builds a short alphanumeric code for password resets.
// Not cryptographically strong; codes expire within minutes.
func GenerateRandomToken(length int) string {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	token := make([]byte, length)
	for i := range token {
		token[i] = charset[r.Intn(len(charset))]
	}
	return string(token)
}
