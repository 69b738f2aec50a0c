// Package identifier produces certificate numbers, reference numbers and
// verification PINs. Generation is a pure function of the injected random
// source and clock; uniqueness is the caller's concern.
package identifier

import (
	"fmt"
	"math/rand"
	"time"
)

// Set holds one freshly generated identifier triple
type Set struct {
	CertificateNumber string
	ReferenceNumber   string
	VerificationPin   string
}

// Generator creates identifier sets from a random source and a clock
type Generator struct {
	rnd *rand.Rand
	now func() time.Time
}

// New returns a Generator backed by a time-seeded random source
func New() *Generator {
	return NewWithSource(rand.NewSource(time.Now().UnixNano()), time.Now)
}

// NewWithSource returns a Generator with an explicit source and clock,
// used by tests for deterministic output
func NewWithSource(src rand.Source, now func() time.Time) *Generator {
	return &Generator{
		rnd: rand.New(src),
		now: now,
	}
}

// Generate returns a fresh identifier set:
//   - certificate number: BV-JUB-<year>-<5 digit random>
//   - reference number:   REF-<6 digit random>
//   - verification PIN:   6 digit numeric string
func (g *Generator) Generate() Set {
	year := g.now().Year()

	certSeq := 10000 + g.rnd.Intn(90000)
	refSeq := 100000 + g.rnd.Intn(900000)
	pin := 100000 + g.rnd.Intn(900000)

	return Set{
		CertificateNumber: fmt.Sprintf("BV-JUB-%d-%d", year, certSeq),
		ReferenceNumber:   fmt.Sprintf("REF-%d", refSeq),
		VerificationPin:   fmt.Sprintf("%d", pin),
	}
}
