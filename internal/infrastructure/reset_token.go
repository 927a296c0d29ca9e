package infrastructure

import (
	"crypto/rand"
	"encoding/hex"
)

// resetTokenBytes gives 256 bits of entropy per ticket.
const resetTokenBytes = 32

// ResetTokenGenerator produces hex-encoded random reset ticket values.
type ResetTokenGenerator struct{}

func NewResetTokenGenerator() *ResetTokenGenerator {
	return &ResetTokenGenerator{}
}

func (g *ResetTokenGenerator) Generate() (string, error) {
	buf := make([]byte, resetTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
