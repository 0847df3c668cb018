package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Admin routes feed path params straight into MustParseUint; a slug or other
// junk must come back as 0 so the lookup falls through to a not-found.
func TestMustParseUint(t *testing.T) {
	assert.Equal(t, uint(42), MustParseUint("42"))
	assert.Equal(t, uint(0), MustParseUint(""))
	assert.Equal(t, uint(0), MustParseUint("platform-career"))
	assert.Equal(t, uint(0), MustParseUint("-3"))
}
