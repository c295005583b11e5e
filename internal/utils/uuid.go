package utils

import "github.com/google/uuid"

// UUIDGenerator produces identifiers for game sessions; every process run
// gets a trace id that is attached to the context logger so all log entries
// of one sitting can be correlated.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a time-ordered UUIDv7 string, falling back to a random
// UUIDv4 if v7 generation fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
