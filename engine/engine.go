package engine

import (
	"log"
	"sort"
	"sync"
	"time"

	"github.com/Carmen-Shannon/oxy-reader/engine/input"
	"github.com/Carmen-Shannon/oxy-reader/engine/profiler"
	"github.com/Carmen-Shannon/oxy-reader/engine/scene"
	"github.com/Carmen-Shannon/oxy-reader/engine/window"
)

// engine implements the Engine interface.
// Coordinates the tick, render, and window threads.
type engine struct {
	tickRateChannel chan time.Duration // Channel for dynamic tick rate updates

	running bool
	wg      sync.WaitGroup

	quitChannel chan struct{}
	quitOnce    sync.Once // Ensures quitChannel is only closed once

	window window.Window
	input  *input.Collector

	profiler         *profiler.Profiler
	profilingEnabled bool

	engineTickRate time.Duration
	tickCallback   func(deltaTime float32, frame input.Frame)
	renderCallback func(deltaTime float32)

	// mu guards scenes, focused and dormant.
	mu     *sync.RWMutex
	scenes map[int]scene.Scene

	renderFrameLimit time.Duration // minimum frame duration; 0 = uncapped

	// Dormancy: cameras sleep while the window is unfocused or input has been idle for dormantAfter.
	dormantAfter time.Duration
	focused      bool
	dormant      bool
	dragging     map[window.MouseButton]bool

	now func() time.Time
}

// Engine is the main entry point for the engine.
// It orchestrates the tick loop, render loop, and window management.
// Each tick snapshots the input collector, advances every active scene in ascending key order,
// then calls the tick callback with the same input frame.
type Engine interface {
	// Window returns the underlying window, or nil when the engine runs headless.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// Input returns the collector that window or terminal callbacks feed.
	//
	// Returns:
	//   - *input.Collector: the input collector
	Input() *input.Collector

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// SetTickRate sets the engine tick rate in frames per second.
	//
	// Parameters:
	//   - fps: target frames per second (defaults to 60 if <= 0)
	SetTickRate(fps float64)

	// SetTickCallback registers the function called each engine tick after the scenes have advanced.
	// Use this for the pagination handshake and other per-tick logic.
	//
	// Parameters:
	//   - callback: function receiving the delta time in seconds and the tick's input frame
	SetTickCallback(callback func(deltaTime float32, frame input.Frame))

	// SetRenderCallback registers the function called each render frame.
	//
	// Parameters:
	//   - callback: function to call each render frame, receiving the delta time in seconds
	SetRenderCallback(callback func(deltaTime float32))

	// SetRenderFrameLimit sets an optional render frame rate cap in frames per second.
	// Pass 0 to uncap the render loop.
	//
	// Parameters:
	//   - fps: maximum render frames per second (0 = uncapped)
	SetRenderFrameLimit(fps float64)

	// SetFocused reports a focus change. Losing focus puts every camera to sleep.
	//
	// Parameters:
	//   - focused: whether the input surface has focus
	SetFocused(focused bool)

	// Dormant returns whether the cameras are currently asleep.
	//
	// Returns:
	//   - bool: true while dormant
	Dormant() bool

	// AddScene registers a scene at the given key. Scenes tick in ascending key order.
	//
	// Parameters:
	//   - key: the ordering key (lower ticks first)
	//   - s: the Scene to register
	AddScene(key int, s scene.Scene)

	// RemoveScene removes the scene at the given key.
	//
	// Parameters:
	//   - key: the key of the scene to remove
	RemoveScene(key int)

	// Scene retrieves the scene registered at the given key.
	// Returns nil if no scene exists at that key.
	//
	// Parameters:
	//   - key: the key of the scene to retrieve
	//
	// Returns:
	//   - scene.Scene: the scene at the key, or nil if not found
	Scene(key int) scene.Scene

	// Scenes returns a copy of all registered scenes.
	//
	// Returns:
	//   - map[int]scene.Scene: a copy of the scenes map
	Scenes() map[int]scene.Scene

	// Run starts the engine loops. With a window it blocks in the window message loop until the
	// window closes; headless it blocks until Quit is called.
	Run()

	// Quit signals all engine goroutines to stop.
	// Safe to call multiple times; subsequent calls are no-ops.
	Quit()
}

// NewEngine creates a new Engine instance with the provided options.
// When a window is supplied its input, resize and focus events are routed into the engine.
//
// Parameters:
//   - options: functional options for engine configuration (window, tick rate, dormancy, etc.)
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		tickRateChannel:  make(chan time.Duration, 1),
		quitChannel:      make(chan struct{}),
		mu:               &sync.RWMutex{},
		scenes:           make(map[int]scene.Scene),
		profiler:         profiler.NewProfiler(),
		engineTickRate:   time.Second / 60,
		renderFrameLimit: time.Second / 60,
		dormantAfter:     DefaultDormantAfter,
		focused:          true,
		dragging:         make(map[window.MouseButton]bool),
		now:              time.Now,
	}

	for _, opt := range options {
		opt(e)
	}
	if e.input == nil {
		e.input = input.NewCollector()
	}

	if e.window != nil {
		e.bindWindow()
	}

	return e
}

// DefaultDormantAfter is the input idle time after which cameras are put to sleep.
const DefaultDormantAfter = 2 * time.Second

// bindWindow routes window callbacks into the collector, the cameras and the focus state.
// Pointer motion only counts while the left or middle button drags.
func (e *engine) bindWindow() {
	w := e.window
	w.SetResizeCallback(func(width, height int) {
		if width <= 0 || height <= 0 {
			return
		}
		aspect := float32(width) / float32(height)
		for _, s := range e.Scenes() {
			for _, cam := range s.Cameras() {
				cam.SetAspect(aspect)
			}
		}
	})
	w.SetScrollCallback(func(x, y float32) {
		e.input.Scroll(x, y, input.ScrollUnitLine)
	})
	w.SetKeyDownCallback(e.input.KeyDown)
	w.SetKeyUpCallback(e.input.KeyUp)
	w.SetMouseButtonCallback(func(button window.MouseButton, pressed bool, x, y float32) {
		if button == window.MouseButtonRight {
			return
		}
		e.dragging[button] = pressed
		e.input.ResetCursor()
		if pressed {
			e.input.CursorMoved(x, y)
		}
	})
	w.SetMouseMoveCallback(func(x, y float32) {
		if e.dragging[window.MouseButtonLeft] || e.dragging[window.MouseButtonMiddle] {
			e.input.CursorMoved(x, y)
		}
	})
	w.SetFocusCallback(e.SetFocused)
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Input() *input.Collector {
	return e.input
}

func (e *engine) Run() {
	e.running = true
	e.handle()
	if e.window != nil {
		e.window.ProcessMessages()
		e.signalQuit()
	}
	e.wg.Wait()
}

// Quit signals all engine goroutines to stop and shuts down the engine.
// Safe to call multiple times; subsequent calls are no-ops due to sync.Once.
func (e *engine) Quit() {
	e.signalQuit()
}

// signalQuit closes the quit channel to signal all goroutines to exit.
// Uses sync.Once to ensure the channel is only closed once.
func (e *engine) signalQuit() {
	e.quitOnce.Do(func() {
		e.running = false
		close(e.quitChannel)
	})
}

// handle launches the engine, render, and quit goroutines.
// Each goroutine is tracked by the engine's WaitGroup.
func (e *engine) handle() {
	e.wg.Add(3)
	go e.handleEngine()
	go e.handleRender()
	go e.handleQuit()
}

// handleEngine runs the fixed-rate engine tick loop in its own goroutine.
// Listens for dynamic rate changes via tickRateChannel. Exits when the quit channel is closed.
// Recovers from panics, logs them and signals quit.
func (e *engine) handleEngine() {
	defer e.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[Engine] tick goroutine recovered from panic: %v", r)
			e.signalQuit()
		}
	}()

	ticker := time.NewTicker(e.engineTickRate)
	defer ticker.Stop()

	lastTick := e.now()

	for {
		select {
		case <-e.quitChannel:
			return
		case <-ticker.C:
			now := e.now()
			dt := float32(now.Sub(lastTick).Seconds())
			lastTick = now
			e.tick(dt)
		case newRate := <-e.tickRateChannel:
			ticker.Reset(newRate)
			e.engineTickRate = newRate
		}
	}
}

// tick runs one engine tick: input snapshot, dormancy, active scenes in key order, then the tick callback.
func (e *engine) tick(dt float32) {
	frame := e.input.Snapshot()
	active := e.activeScenes()
	e.updateDormancy(frame, active)

	for _, s := range active {
		s.Tick(dt, frame)
	}

	if e.tickCallback != nil {
		e.tickCallback(dt, frame)
	}

	if e.profilingEnabled && e.profiler != nil {
		e.profiler.RecordTick(dt)
	}
}

// updateDormancy decides whether cameras sleep this tick and applies it to every active camera.
// Held keys count as activity.
func (e *engine) updateDormancy(frame input.Frame, active []scene.Scene) {
	idle := e.dormantAfter > 0 &&
		frame.Empty() && !frame.Held() &&
		e.now().Sub(e.input.LastActivity()) >= e.dormantAfter

	e.mu.Lock()
	dormant := !e.focused || idle
	changed := dormant != e.dormant
	e.dormant = dormant
	e.mu.Unlock()

	if changed {
		log.Printf("[Engine] cameras dormant: %t", dormant)
	}

	for _, s := range active {
		for _, cam := range s.Cameras() {
			if dormant {
				cam.Controller().PutToSleep()
			} else {
				cam.Controller().WakeUp()
			}
		}
	}
}

// activeScenes returns the active scenes in ascending key order.
func (e *engine) activeScenes() []scene.Scene {
	e.mu.RLock()
	defer e.mu.RUnlock()

	keys := make([]int, 0, len(e.scenes))
	for k := range e.scenes {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	active := make([]scene.Scene, 0, len(keys))
	for _, k := range keys {
		if s := e.scenes[k]; s.Active() {
			active = append(active, s)
		}
	}
	return active
}

// handleRender runs the frame-limited render loop in its own goroutine.
// Drawing is delegated to the render callback.
// Recovers from panics to avoid crashing the process and signals quit on recovery.
func (e *engine) handleRender() {
	defer e.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[Engine] render goroutine recovered from panic: %v", r)
			e.signalQuit()
		}
	}()

	lastRender := time.Now()

	for {
		select {
		case <-e.quitChannel:
			return
		default:
			now := time.Now()
			dt := float32(now.Sub(lastRender).Seconds())
			lastRender = now

			if e.renderCallback != nil {
				e.renderCallback(dt)
			}

			if e.profilingEnabled && e.profiler != nil {
				e.profiler.Tick()
			}

			if e.renderFrameLimit > 0 {
				elapsed := time.Since(lastRender)
				if remaining := e.renderFrameLimit - elapsed; remaining > 0 {
					time.Sleep(remaining)
				}
			}
		}
	}
}

// handleQuit blocks until the quit channel is closed, then decrements the WaitGroup.
func (e *engine) handleQuit() {
	defer e.wg.Done()
	<-e.quitChannel
}

// EnableProfiler enables performance profiling output to the log.
func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

// DisableProfiler disables performance profiling output.
func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

// SetTickRate sets the engine tick rate in frames per second.
// If the engine is running, the change takes effect immediately.
func (e *engine) SetTickRate(fps float64) {
	if fps <= 0 {
		fps = 60
	}
	newRate := time.Second / time.Duration(fps)

	if e.running {
		// Non-blocking send - if channel is full, replace the pending value
		select {
		case e.tickRateChannel <- newRate:
		default:
			select {
			case <-e.tickRateChannel:
			default:
			}
			e.tickRateChannel <- newRate
		}
	} else {
		e.engineTickRate = newRate
	}
}

func (e *engine) SetTickCallback(callback func(deltaTime float32, frame input.Frame)) {
	e.tickCallback = callback
}

func (e *engine) SetRenderCallback(callback func(deltaTime float32)) {
	e.renderCallback = callback
}

// SetRenderFrameLimit sets an optional render frame rate cap.
// Pass 0 to uncap the render loop.
func (e *engine) SetRenderFrameLimit(fps float64) {
	if fps <= 0 {
		e.renderFrameLimit = 0
		return
	}
	e.renderFrameLimit = time.Second / time.Duration(fps)
}

// SetFocused takes effect on the next tick.
func (e *engine) SetFocused(focused bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.focused = focused
}

func (e *engine) Dormant() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.dormant
}

func (e *engine) AddScene(key int, s scene.Scene) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.scenes[key] = s
}

func (e *engine) RemoveScene(key int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.scenes, key)
}

func (e *engine) Scene(key int) scene.Scene {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.scenes[key]
}

func (e *engine) Scenes() map[int]scene.Scene {
	e.mu.RLock()
	defer e.mu.RUnlock()
	cp := make(map[int]scene.Scene, len(e.scenes))
	for k, v := range e.scenes {
		cp[k] = v
	}
	return cp
}
