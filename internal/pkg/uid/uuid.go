package uid

import "github.com/google/uuid"

// UUID produces correlation IDs. Version 7 keeps them sortable by time in
// log storage.
type UUID struct{}

// NewUUID returns a UUID generator.
func NewUUID() *UUID {
	return &UUID{}
}

// Generate returns a UUIDv7, falling back to UUIDv4 if v7 generation fails.
func (*UUID) Generate() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.NewString()
}
