//go:build !debug

package dragselect

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentity_DuplicateKeepsFirst(t *testing.T) {
	ids := newIdentity([]string{"x", "y", "x"}, func(s string) string { return s })

	i, ok := ids.indexOf("x")
	assert.True(t, ok)
	assert.Equal(t, 0, i)
	assert.Equal(t, 3, ids.len())
}

func TestMustHold_Release(t *testing.T) {
	assert.True(t, mustHold(true, "fine"))
	assert.NotPanics(t, func() {
		assert.False(t, mustHold(false, "broken"))
	})
}
