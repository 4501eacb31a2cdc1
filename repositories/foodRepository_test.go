package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchPatternEscapesMetacharacters(t *testing.T) {
	pattern := searchPattern("1+1 (combo)")

	assert.Equal(t, `1\+1 \(combo\)`, pattern.Pattern)
	assert.Equal(t, "i", pattern.Options)
}

func TestSearchPatternPlainQueryUnchanged(t *testing.T) {
	pattern := searchPattern("pho bo")

	assert.Equal(t, "pho bo", pattern.Pattern)
}
