package bizdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookup(t *testing.T) {
	p := Lookup("restaurant")
	assert.NotEmpty(t, p.UniqueValue)
	assert.NotEmpty(t, p.PainPoints)

	fallback := Lookup("submarine-rentals")
	assert.Equal(t, defaultProfile.UniqueValue, fallback.UniqueValue)
	assert.NotEmpty(t, fallback.PainPoints, "synthesis relies on at least one pain point")
}

func TestKnown(t *testing.T) {
	assert.True(t, Known("fitness"))
	assert.False(t, Known("submarine-rentals"))
}

func TestEveryProfileIsComplete(t *testing.T) {
	for category, p := range profiles {
		assert.NotEmpty(t, p.Trends, category)
		assert.NotEmpty(t, p.Challenges, category)
		assert.NotEmpty(t, p.Opportunities, category)
		assert.NotEmpty(t, p.UniqueValue, category)
		assert.NotEmpty(t, p.PainPoints, category)
	}
}
