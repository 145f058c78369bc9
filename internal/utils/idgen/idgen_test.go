package idgen_test

import (
	"regexp"
	"testing"
	"time"

	"github.com/gurukosh/guru_finance_app/internal/utils/idgen"
	"github.com/stretchr/testify/assert"
)

func TestNextIDFormat(t *testing.T) {
	fixed := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	gen := idgen.NewWithClock(func() time.Time { return fixed })

	id := gen.NextID(idgen.PrefixCredit)
	assert.Regexp(t, regexp.MustCompile(`^C1717243200\d{3}$`), id)

	id = gen.NextID(idgen.PrefixFD)
	assert.Regexp(t, regexp.MustCompile(`^FD1717243200\d{3}$`), id)
}

func TestNextIDMostlyUnique(t *testing.T) {
	gen := idgen.New()
	seen := map[string]bool{}
	dups := 0
	for i := 0; i < 200; i++ {
		id := gen.NextID(idgen.PrefixDebit)
		if seen[id] {
			dups++
		}
		seen[id] = true
	}
	// 3-digit suffix in one second can collide; it just must not be common.
	assert.Less(t, dups, 40)
}
