package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Ada Lovelace", DisplayName("Ada", "Lovelace"))
	assert.Equal(t, "Ada", DisplayName("Ada", ""))
	assert.Equal(t, "Lovelace", DisplayName("", "Lovelace"))
	assert.Equal(t, "", DisplayName("", ""))
	assert.Equal(t, "Ada Lovelace", DisplayName("  Ada ", " Lovelace "))
}
