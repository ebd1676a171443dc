package services

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// CodeGenerator produces the numeric one-time codes used for delivery
// confirmation.
type CodeGenerator struct{}

// NewCodeGenerator creates a new CodeGenerator instance.
func NewCodeGenerator() CodeGenerator {
	return CodeGenerator{}
}

// Generate returns a 6-digit code drawn from a cryptographic source,
// zero-padded so every code is exactly six characters.
func (CodeGenerator) Generate() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", fmt.Errorf("generate delivery code: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
