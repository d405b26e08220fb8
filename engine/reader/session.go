package reader

import (
	"log"
	"math"
	"sync"

	"github.com/Carmen-Shannon/oxy-reader/common"
	"github.com/Carmen-Shannon/oxy-reader/engine/camera"
	"github.com/Carmen-Shannon/oxy-reader/engine/game_object"
	"github.com/Carmen-Shannon/oxy-reader/engine/input"
	"github.com/Carmen-Shannon/oxy-reader/engine/pagination"
	"github.com/Carmen-Shannon/oxy-reader/engine/scene"
)

// Session wires a paginated Document to a reader camera: a page object carrying the document's
// glyph grid, a camera targeting it, and the scene that ticks them.
// Tick is meant to be the engine's tick callback, so it runs after the scene has moved the camera.
type Session struct {
	mu *sync.Mutex

	scene    scene.Scene
	camera   camera.Camera
	page     game_object.GameObject
	document *pagination.Document

	onRowChange func(status Status)
	last        Status
}

// Status is a snapshot of the session for status lines and logs.
type Status struct {
	Mode           camera.Mode
	Offset         uint32
	Rows           int
	Reported       uint32
	VisibleRows    float32
	VisibleColumns float32
	Column         uint32
	Zoom           float32
	Pitch          float32
	ScrollResidual float32
	Awake          bool
}

// NewSession builds the page, camera and scene for a document. The camera starts in Reader mode
// with the default zoom, looking down -Z at the page.
//
// Parameters:
//   - document: the document to display
//   - options: functional options to configure the session
//
// Returns:
//   - *Session: the new session
func NewSession(document *pagination.Document, options ...SessionOption) *Session {
	cfg := sessionConfig{
		aspect:         1,
		fov:            math.Pi / 4,
		computeWorkers: 1,
	}
	for _, opt := range options {
		opt(&cfg)
	}

	page := game_object.NewGameObject(
		game_object.WithPosition(0, 0, 0),
		game_object.WithTextDescriptor(document.TextDescriptor()),
	)
	sc := scene.NewScene(
		scene.WithName("reader"),
		scene.WithActive(true),
		scene.WithObjects(page),
		scene.WithComputeWorkers(cfg.computeWorkers),
	)

	controllerOptions := append([]camera.CameraControllerOption{
		camera.WithMode(camera.ModeReader),
		camera.WithTarget(page.ID()),
	}, cfg.controllerOptions...)
	ctrl := camera.NewCameraController(controllerOptions...)

	cam := camera.NewCamera(
		camera.WithFov(cfg.fov),
		camera.WithAspect(cfg.aspect),
		camera.WithTranslation(0, 0, ctrl.ZoomDistance()+camera.ContentDepthOffset),
		camera.WithController(ctrl),
	)
	sc.AddCamera(cam)

	s := &Session{
		mu:          &sync.Mutex{},
		scene:       sc,
		camera:      cam,
		page:        page,
		document:    document,
		onRowChange: cfg.onRowChange,
	}
	s.last = s.status()
	return s
}

// Scene returns the scene to register with the engine.
func (s *Session) Scene() scene.Scene {
	return s.scene
}

// Camera returns the reader camera.
func (s *Session) Camera() camera.Camera {
	return s.camera
}

// Document returns the displayed document.
func (s *Session) Document() *pagination.Document {
	return s.document
}

// Tick runs the pagination side of one frame: mode keys, navigation keys, then the row-offset
// handshake. The document's page size follows the camera's visible rows.
//
// Parameters:
//   - dt: elapsed time since the last tick in seconds
//   - frame: the tick's input frame
func (s *Session) Tick(dt float32, frame input.Frame) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctrl := s.camera.Controller()
	switch {
	case frame.JustPressed(common.Key1):
		s.switchMode(camera.ModeFly)
	case frame.JustPressed(common.Key2):
		s.switchMode(camera.ModeFollow)
	case frame.JustPressed(common.Key3):
		s.switchMode(camera.ModeReader)
	}

	s.document.SetVisibleLines(int(common.Ceil(ctrl.VisibleRows())))
	if ctrl.Mode() == camera.ModeReader {
		s.document.HandleKeys(dt, frame)
	}
	s.document.Sync(ctrl)

	status := s.status()
	if status.Offset != s.last.Offset && s.onRowChange != nil {
		s.onRowChange(status)
	}
	s.last = status
}

// Status returns the state after the most recent Tick.
//
// Returns:
//   - Status: the session status
func (s *Session) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

// Release stops the scene's workers.
func (s *Session) Release() {
	s.scene.Release()
}

// switchMode changes the camera mode. Caller must hold the mutex.
func (s *Session) switchMode(mode camera.Mode) {
	ctrl := s.camera.Controller()
	if ctrl.Mode() == mode {
		return
	}
	ctrl.SetMode(mode)
	log.Printf("[Reader] camera mode: %s", mode)
}

// status snapshots the session. Caller must hold the mutex or be constructing the session.
func (s *Session) status() Status {
	ctrl := s.camera.Controller()
	return Status{
		Mode:           ctrl.Mode(),
		Offset:         s.document.Offset(),
		Rows:           s.document.Rows(),
		Reported:       ctrl.RowOffsetReported(),
		VisibleRows:    ctrl.VisibleRows(),
		VisibleColumns: ctrl.VisibleColumns(),
		Column:         ctrl.Column(),
		Zoom:           ctrl.ZoomDistance(),
		Pitch:          ctrl.Pitch(),
		ScrollResidual: ctrl.ScrollResidual(),
		Awake:          ctrl.IsAwake(),
	}
}
