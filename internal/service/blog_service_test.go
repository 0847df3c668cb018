package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	assert.Equal(t, "the-rest-paradox", Slugify("The Rest Paradox"))
	assert.Equal(t, "career-guidance-101", Slugify("Career Guidance: 101!"))
	assert.Equal(t, "already-a-slug", Slugify("already-a-slug"))
	assert.Equal(t, "trailing", Slugify("  Trailing?? "))
	assert.Equal(t, "", Slugify("???"))
}

func TestReadTime(t *testing.T) {
	assert.Equal(t, "1 min read", ReadTime("short post"))
	assert.Equal(t, "1 min read", ReadTime(""))

	words := strings.Repeat("word ", 200)
	assert.Equal(t, "1 min read", ReadTime(words))
	assert.Equal(t, "2 min read", ReadTime(words+"one more"))
	assert.Equal(t, "5 min read", ReadTime(strings.Repeat("word ", 1000)))
}
