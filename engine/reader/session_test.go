package reader

import (
	"strings"
	"testing"

	"github.com/Carmen-Shannon/oxy-reader/common"
	"github.com/Carmen-Shannon/oxy-reader/engine/camera"
	"github.com/Carmen-Shannon/oxy-reader/engine/input"
	"github.com/Carmen-Shannon/oxy-reader/engine/pagination"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tickDt = float32(1.0 / 60.0)

func testDocument() *pagination.Document {
	lines := make([]string, 200)
	for i := range lines {
		lines[i] = strings.Repeat("word ", i%8+1)
	}
	return pagination.NewDocument(strings.Join(lines, "\n"), pagination.WithColumns(40))
}

func step(s *Session, frame input.Frame) {
	s.Scene().Tick(tickDt, frame)
	s.Tick(tickDt, frame)
}

func wheel(lines float32) input.Frame {
	return input.NewFrame(mgl32.Vec2{}, []input.WheelEvent{{Y: -lines, Unit: input.ScrollUnitLine}}, nil, nil)
}

func keys(just ...uint32) input.Frame {
	return input.NewFrame(mgl32.Vec2{}, nil, just, just)
}

func TestNewSession(t *testing.T) {
	s := NewSession(testDocument(), WithAspect(2))
	defer s.Release()

	assert.Equal(t, 1, s.Scene().Count())
	require.Len(t, s.Scene().Cameras(), 1)

	ctrl := s.Camera().Controller()
	assert.Equal(t, camera.ModeReader, ctrl.Mode())
	id, ok := ctrl.Target()
	require.True(t, ok)
	assert.NotNil(t, s.Scene().Get(id))
	assert.Equal(t, float32(2), s.Camera().Projection().Aspect)
}

func TestWheelMovesDocument(t *testing.T) {
	var changes []Status
	s := NewSession(testDocument(), WithRowChangeCallback(func(st Status) {
		changes = append(changes, st)
	}))
	defer s.Release()

	step(s, wheel(1.25))

	assert.Equal(t, uint32(1), s.Document().Offset())
	assert.Equal(t, uint32(1), s.Camera().Controller().RowOffsetRequested())
	require.Len(t, changes, 1)
	assert.Equal(t, uint32(1), changes[0].Offset)
	assert.Equal(t, 200, changes[0].Rows)

	// The delta was consumed: a quiet frame does not move the document again.
	step(s, input.NewFrame(mgl32.Vec2{}, nil, nil, nil))
	assert.Equal(t, uint32(1), s.Document().Offset())
	assert.Len(t, changes, 1)
}

func TestPageSizeFollowsCamera(t *testing.T) {
	s := NewSession(testDocument())
	defer s.Release()

	step(s, input.NewFrame(mgl32.Vec2{}, nil, nil, nil))

	rows := s.Status().VisibleRows
	require.Greater(t, rows, float32(0))
	assert.Len(t, s.Document().VisibleLines(), int(common.Ceil(rows)))
}

func TestSessionKeys(t *testing.T) {
	s := NewSession(testDocument())
	defer s.Release()

	step(s, keys(common.KeyDown))
	assert.Equal(t, uint32(1), s.Document().Offset())
	assert.Equal(t, uint32(1), s.Camera().Controller().RowOffsetRequested())

	step(s, keys(common.Key1))
	assert.Equal(t, camera.ModeFly, s.Status().Mode)

	// Navigation keys only page in Reader mode.
	step(s, keys(common.KeyDown))
	assert.Equal(t, uint32(1), s.Document().Offset())

	step(s, keys(common.Key3))
	assert.Equal(t, camera.ModeReader, s.Status().Mode)
}
