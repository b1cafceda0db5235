package rand

import (
	"math/rand"
	"time"
)

const chars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

var seededRand = rand.New(rand.NewSource(time.Now().UnixNano()))

// RandomStr returns an alphanumeric string of the given size. Used for
// invite codes and test identifiers, not for anything security sensitive.
func RandomStr(size int) string {
	b := make([]byte, size)
	for i := range b {
		b[i] = chars[seededRand.Intn(len(chars))]
	}
	return string(b)
}

// RandomBytes returns a buffer of the given size filled with random bytes.
func RandomBytes(size int) []byte {
	b := make([]byte, size)
	seededRand.Read(b)
	return b
}
