package reservation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExclusiveLockKey(t *testing.T) {
	t.Run("same pair always maps to the same key", func(t *testing.T) {
		// Equipment and bodyweight creates must contend on one lock, so
		// the key depends only on the (user, slot) pair.
		assert.Equal(t, ExclusiveLockKey("u1", 11), ExclusiveLockKey("u1", 11))
	})

	t.Run("different pairs map to different keys", func(t *testing.T) {
		base := ExclusiveLockKey("u1", 11)

		assert.NotEqual(t, base, ExclusiveLockKey("u2", 11))
		assert.NotEqual(t, base, ExclusiveLockKey("u1", 12))
	})

	t.Run("user and slot do not collapse into each other", func(t *testing.T) {
		// "u1:11" and "u11:1" must not collide through naive concatenation.
		assert.NotEqual(t, ExclusiveLockKey("u11", 1), ExclusiveLockKey("u1", 11))
	})
}
