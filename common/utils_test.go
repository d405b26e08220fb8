package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampSignAbs(t *testing.T) {
	assert.Equal(t, 3, Clamp(1, 3, 100))
	assert.Equal(t, float32(100), Clamp[float32](150, 3, 100))
	assert.Equal(t, float32(42), Clamp[float32](42, 3, 100))

	assert.Equal(t, float32(-1), Sign[float32](-0.2))
	assert.Equal(t, float32(1), Sign[float32](7))
	assert.Equal(t, float32(0), Sign[float32](0))
	assert.Equal(t, int32(-1), Sign[int32](-9))

	assert.Equal(t, float32(2.5), Abs[float32](-2.5))
}

func TestEaseFactor(t *testing.T) {
	assert.InDelta(t, 0.5, EaseFactor(0.05, 0.1), 1e-6)
	assert.Equal(t, float32(1), EaseFactor(1, 0.1))
	assert.Equal(t, float32(1), EaseFactor(0.016, 0))
}

func TestCoalesce(t *testing.T) {
	assert.Equal(t, float32(20), Coalesce[float32](0, 20, 53))
	assert.Equal(t, "", Coalesce("", ""))
}

func TestAssert(t *testing.T) {
	assert.NotPanics(t, func() { Assert(true, "never") })
	assert.PanicsWithValue(t, "assertion failed: glyph height 0", func() {
		Assert(false, "glyph height %d", 0)
	})
}

func TestTextDescriptorValidate(t *testing.T) {
	assert.NotPanics(t, func() { TextDescriptor{GlyphWidth: 1, GlyphHeight: 1}.Validate() })
	assert.Panics(t, func() { TextDescriptor{GlyphWidth: 1}.Validate() })
}
