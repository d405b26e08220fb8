package scene

import (
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/oxy-reader/engine/camera"
	"github.com/Carmen-Shannon/oxy-reader/engine/game_object"
	"github.com/Carmen-Shannon/oxy-reader/engine/input"
)

// Scene owns a registry of GameObjects and the cameras that view them.
// Each tick runs in two ordered phases: the extent phase measures every camera's visible
// rows and columns from its current frustum, then the motion phase advances each camera's
// controller sequentially. The extent phase always completes for every camera before any
// motion runs, so a controller never moves against a frustum from the previous frame.
// Scenes can be hot-swapped via the Active flag.
// Thread-safe for concurrent access.
type Scene interface {
	// Name returns the scene's identifier.
	Name() string

	// SetName sets the scene's identifier.
	SetName(name string)

	// Active returns whether this scene is currently ticked by the engine.
	Active() bool

	// SetActive sets whether this scene is ticked by the engine.
	SetActive(active bool)

	// Count returns the number of GameObjects in the scene's registry.
	//
	// Returns:
	//   - int: count of registered GameObjects
	Count() int

	// Add registers a GameObject with the scene. Objects without an ID are assigned the next free one.
	//
	// Parameters:
	//   - obj: the GameObject to add
	//
	// Returns:
	//   - uint64: the object's ID
	Add(obj game_object.GameObject) uint64

	// Get retrieves a GameObject by its ID.
	// Returns nil if not found.
	//
	// Parameters:
	//   - id: the object's unique ID
	//
	// Returns:
	//   - game_object.GameObject: the object or nil
	Get(id uint64) game_object.GameObject

	// Remove removes a GameObject from the registry by ID.
	// Cameras still targeting the ID are skipped by the motion phase until retargeted.
	//
	// Parameters:
	//   - id: the object's unique ID
	Remove(id uint64)

	// AddCamera appends a camera to the scene. Panics if the camera has no controller.
	//
	// Parameters:
	//   - cam: the camera to add
	AddCamera(cam camera.Camera)

	// Cameras returns a snapshot of the scene's cameras in tick order.
	//
	// Returns:
	//   - []camera.Camera: the cameras
	Cameras() []camera.Camera

	// Clear removes all objects and cameras from the scene.
	Clear()

	// Tick runs the extent phase for every camera, waits for all of them, then runs the motion phase.
	// Follow and Reader cameras without a registered, enabled target are skipped.
	//
	// Parameters:
	//   - dt: elapsed time since the last tick in seconds
	//   - frame: the input snapshot for this tick
	Tick(dt float32, frame input.Frame)

	// Release stops the extent worker pool. The scene must not be ticked afterwards.
	Release()
}

type scene struct {
	mu *sync.RWMutex

	name   string
	active bool

	registry map[uint64]game_object.GameObject
	nextID   uint64

	cameras []camera.Camera

	computeWorkers int
	computePool    worker.DynamicWorkerPool
}

// binding pairs a camera with the target resolved for this tick.
type binding struct {
	cam    camera.Camera
	target camera.Target
}

var _ Scene = &scene{}

// NewScene creates a new Scene with the given options.
// The scene is inactive by default.
//
// Parameters:
//   - options: functional options to configure the scene
//
// Returns:
//   - Scene: the newly created scene
func NewScene(options ...SceneBuilderOption) Scene {
	s := &scene{
		mu:             &sync.RWMutex{},
		registry:       make(map[uint64]game_object.GameObject),
		nextID:         1,
		computeWorkers: max(runtime.NumCPU()-1, 1),
	}

	for _, opt := range options {
		opt(s)
	}

	s.computePool = worker.NewDynamicWorkerPool(s.computeWorkers, 256, 1*time.Second)
	return s
}

func (s *scene) Name() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.name
}

func (s *scene) SetName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.name = name
}

func (s *scene) Active() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

func (s *scene) SetActive(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = active
}

func (s *scene) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.registry)
}

func (s *scene) Add(obj game_object.GameObject) uint64 {
	if obj == nil {
		panic("scene: Add requires a non-nil GameObject")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.register(obj)
}

func (s *scene) Get(id uint64) game_object.GameObject {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.registry[id]
}

func (s *scene) Remove(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.registry, id)
}

func (s *scene) AddCamera(cam camera.Camera) {
	if cam == nil || cam.Controller() == nil {
		panic("scene: AddCamera requires a Camera with a CameraController")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cameras = append(s.cameras, cam)
}

func (s *scene) Cameras() []camera.Camera {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]camera.Camera, len(s.cameras))
	copy(out, s.cameras)
	return out
}

func (s *scene) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.registry = make(map[uint64]game_object.GameObject)
	s.cameras = nil
	s.nextID = 1
}

func (s *scene) Tick(dt float32, frame input.Frame) {
	bindings := s.resolve()
	if len(bindings) == 0 {
		return
	}

	// Extent phase. Each controller owns its own state, so cameras measure independently.
	var wg sync.WaitGroup
	for i, b := range bindings {
		if b.cam.Controller().Mode() != camera.ModeReader {
			continue
		}
		wg.Add(1)
		s.computePool.SubmitTask(worker.Task{
			ID: i,
			Do: func() (any, error) {
				defer wg.Done()
				b.cam.Controller().UpdateExtent(b.cam, b.target)
				return nil, nil
			},
		})
	}
	wg.Wait()

	// Motion phase.
	for _, b := range bindings {
		b.cam.Controller().Update(dt, frame, b.cam, b.target)
	}
}

func (s *scene) Release() {
	s.computePool.Stop()
}

// resolve snapshots the cameras that can run this tick along with their targets.
// Fly cameras always run; Follow and Reader cameras need a registered, enabled target.
func (s *scene) resolve() []binding {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bindings := make([]binding, 0, len(s.cameras))
	for _, cam := range s.cameras {
		ctrl := cam.Controller()
		if ctrl == nil {
			continue
		}
		var target camera.Target
		if id, ok := ctrl.Target(); ok {
			if obj, found := s.registry[id]; found && obj.Enabled() {
				target = obj
			}
		}
		if target == nil && ctrl.Mode() != camera.ModeFly {
			continue
		}
		bindings = append(bindings, binding{cam: cam, target: target})
	}
	return bindings
}

// register assigns an ID when needed and stores the object. Caller must hold the write lock.
func (s *scene) register(obj game_object.GameObject) uint64 {
	if obj.ID() == 0 {
		obj.SetID(s.nextID)
		s.nextID++
	} else if obj.ID() >= s.nextID {
		s.nextID = obj.ID() + 1
	}
	s.registry[obj.ID()] = obj
	return obj.ID()
}
