package utils

import "github.com/google/uuid"

// UUIDGenerator issues string identifiers.
type UUIDGenerator struct {
	next func() (uuid.UUID, error)
}

// NewUUIDGenerator issues time-ordered UUIDv7 values, used for trace IDs.
func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{next: uuid.NewV7}
}

// NewRandomUUIDGenerator issues UUIDv4 values for tokens that must not be
// guessable from the time they were created.
func NewRandomUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{next: uuid.NewRandom}
}

func (g *UUIDGenerator) Generate() string {
	id, err := g.next()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
