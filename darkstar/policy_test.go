package darkstar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlocklist(t *testing.T) {
	b := NewBlocklist([]int{17, 42})
	assert.True(t, b.Contains(17))
	assert.False(t, b.Contains(18))

	var empty Blocklist
	assert.False(t, empty.Contains(17))
}

func TestHasGMFlag(t *testing.T) {
	assert.False(t, HasGMFlag(0))
	assert.False(t, HasGMFlag(flagAnonymous))
	assert.True(t, HasGMFlag(0x00010000))
	assert.True(t, HasGMFlag(0x04000000))
	assert.True(t, HasGMFlag(0x07000000))
	// partial bits of a higher tier still satisfy the lower tier test
	assert.True(t, HasGMFlag(0x05000000))
	assert.False(t, HasGMFlag(0x01000000))
}

func TestJobs(t *testing.T) {
	assert.Equal(t, 23, JobCount)
	assert.Equal(t, "war", JobAbbr(1))
	assert.Equal(t, "run", JobAbbr(22))
	assert.Equal(t, "", JobAbbr(0))
	assert.Equal(t, "", JobAbbr(23))
	assert.Equal(t, 16, JobID("blu"))
	assert.Equal(t, 0, JobID("xyz"))
}

func TestLinkshellHTMLColor(t *testing.T) {
	assert.Equal(t, "transparent", LinkshellHTMLColor(0))
	assert.Equal(t, "#0F0FFF", LinkshellHTMLColor(0x0F00))
	assert.Equal(t, "#FF0F0F", LinkshellHTMLColor(0x000F))
	assert.Equal(t, "#FFFFFF", LinkshellHTMLColor(0x0FFF))
}

func TestLinkshellFromExtra(t *testing.T) {
	id, ok := linkshellIDFromExtra([]byte{0x10, 0x27, 0, 0, 0xFF})
	assert.True(t, ok)
	assert.EqualValues(t, 10000, id)

	_, ok = linkshellIDFromExtra([]byte{1, 2})
	assert.False(t, ok)

	assert.Equal(t, 1, LinkshellRank(itemLinkshell))
	assert.Equal(t, 2, LinkshellRank(itemLinksack))
	assert.Equal(t, 3, LinkshellRank(itemLinkpearl))
	assert.Equal(t, 0, LinkshellRank(itemCopperOre))
}
