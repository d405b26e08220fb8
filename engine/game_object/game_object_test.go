package game_object

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-reader/common"
	"github.com/stretchr/testify/assert"
)

func TestGameObject(t *testing.T) {
	desc := common.TextDescriptor{GlyphWidth: 0.5, GlyphHeight: 1, Rows: 300, Columns: 80}
	obj := NewGameObject(WithID(4), WithPosition(1, 2, 3), WithTextDescriptor(desc))

	assert.Equal(t, uint64(4), obj.ID())
	assert.True(t, obj.Enabled())
	x, y, z := obj.Position()
	assert.Equal(t, [3]float32{1, 2, 3}, [3]float32{x, y, z})

	got, ok := obj.TextDescriptor()
	assert.True(t, ok)
	assert.Equal(t, desc, got)

	desc.Rows = 301
	obj.SetTextDescriptor(desc)
	got, _ = obj.TextDescriptor()
	assert.Equal(t, uint32(301), got.Rows)

	obj.ClearTextDescriptor()
	_, ok = obj.TextDescriptor()
	assert.False(t, ok)

	obj.SetEnabled(false)
	assert.False(t, obj.Enabled())
}

func TestGameObjectRejectsEmptyGlyphs(t *testing.T) {
	assert.Panics(t, func() {
		NewGameObject(WithTextDescriptor(common.TextDescriptor{Rows: 10}))
	})
	assert.Panics(t, func() {
		NewGameObject().SetTextDescriptor(common.TextDescriptor{GlyphWidth: 1, GlyphHeight: -1})
	})
}
