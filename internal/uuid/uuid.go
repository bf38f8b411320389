// Package uuid wraps google/uuid behind an interface so ids can be fixed in tests
package uuid

import (
	"github.com/google/uuid"
)

// Generator produces unique string ids
type Generator interface {
	New() string
}

type randomGenerator struct{}

// NewGenerator returns a generator of random (v4) UUIDs
func NewGenerator() Generator {
	return randomGenerator{}
}

func (randomGenerator) New() string {
	return uuid.NewString()
}

// Static is a Generator that always returns itself
type Static string

func (s Static) New() string {
	return string(s)
}
