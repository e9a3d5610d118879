package utid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSources(t *testing.T) {
	allEqual := func(words []uint64) bool {
		for _, w := range words[1:] {
			if w != words[0] {
				return false
			}
		}
		return true
	}

	t.Run("process source", func(t *testing.T) {
		var src processSource

		words := make([]uint64, 4)
		for i := range words {
			words[i] = src.Uint64()
		}

		assert.False(t, allEqual(words), "draws should not repeat")
	})

	t.Run("crypto source", func(t *testing.T) {
		var src CryptoSource

		words := make([]uint64, 4)
		for i := range words {
			words[i] = src.Uint64()
		}

		assert.False(t, allEqual(words), "draws should not repeat")
	})
}
