// Package idgen produces the short prefixed identifiers used for cash
// movements, loans, deposits and misc expenses, e.g. "C1717430021472".
package idgen

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

// Prefixes for each record family.
const (
	PrefixCredit = "C"
	PrefixDebit  = "D"
	PrefixLoan   = "L"
	PrefixMisc   = "M"
	PrefixFD     = "FD"
	PrefixRD     = "RD"
)

// Generator mints prefixed ids. now is injectable for tests.
type Generator struct {
	now func() time.Time
}

// New returns a Generator on the real clock.
func New() *Generator {
	return &Generator{now: time.Now}
}

// NewWithClock returns a Generator using the given clock.
func NewWithClock(now func() time.Time) *Generator {
	return &Generator{now: now}
}

// NextID returns prefix + unix seconds + a 3-digit random suffix. The suffix
// disambiguates ids minted in the same second.
func (g *Generator) NextID(prefix string) string {
	n, err := rand.Int(rand.Reader, big.NewInt(900))
	suffix := int64(100)
	if err == nil {
		suffix = n.Int64() + 100
	}
	return fmt.Sprintf("%s%d%d", prefix, g.now().UTC().Unix(), suffix)
}
