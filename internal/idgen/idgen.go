// Package idgen produces short task identifiers without consulting the store.
package idgen

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	// Alphabet is the symbol set ids are drawn from.
	Alphabet = "1234567890abcdef"
	// Length is the number of symbols in a generated id.
	Length = 8
)

// Generate returns a new random id. Each symbol is drawn independently and
// uniformly from Alphabet using crypto/rand.
//
// Collisions are not checked here; the task table's primary key rejects them.
func Generate() string {
	// MustGenerate only panics when the entropy source fails.
	return gonanoid.MustGenerate(Alphabet, Length)
}

// Valid reports whether id has the shape of a generated id.
func Valid(id string) bool {
	if len(id) != Length {
		return false
	}
	for _, r := range id {
		if !isAlphabetSymbol(r) {
			return false
		}
	}
	return true
}

func isAlphabetSymbol(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f')
}
