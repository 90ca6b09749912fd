package utils

import "github.com/google/uuid"

// UUIDGenerator issues user identifiers.
//
// Identifiers are time-ordered UUIDv7; if the v7 clock source fails a
// random v4 is returned instead.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a new identifier in canonical string form.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
