package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/Carmen-Shannon/oxy-reader/engine"
	"github.com/Carmen-Shannon/oxy-reader/engine/input"
	"github.com/Carmen-Shannon/oxy-reader/engine/pagination"
	"github.com/Carmen-Shannon/oxy-reader/engine/reader"
	"github.com/gdamore/tcell/v2"
)

func main() {
	path := flag.String("file", "", "text file to read (required)")
	columns := flag.Int("columns", pagination.DefaultColumns, "wrap width in cells")
	cellWidth := flag.Float64("cell-width", 8, "terminal cell width in pixels, scales drag motion")
	cellHeight := flag.Float64("cell-height", 16, "terminal cell height in pixels, scales drag motion")
	sound := flag.Bool("sound", false, "play a tone when the first or last row is reached")
	logPath := flag.String("log", "", "write logs to this file instead of discarding them")
	profile := flag.Bool("profile", false, "log frame, tick and memory statistics")
	flag.Parse()

	if *path == "" {
		flag.Usage()
		os.Exit(2)
	}
	text, err := os.ReadFile(*path)
	if err != nil {
		log.Fatalf("[Reader] failed to read %s: %v", *path, err)
	}

	log.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := os.Create(*logPath)
		if err != nil {
			log.Fatalf("[Reader] failed to open log: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	// ── Terminal ────────────────────────────────────────────────────────
	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("[Reader] failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("[Reader] failed to initialize screen: %v", err)
	}
	screen.EnableMouse()
	screen.EnableFocus()

	cue := &boundaryCue{atEdge: true}
	if *sound {
		if cue, err = newBoundaryCue(); err != nil {
			log.Printf("[Reader] running without sound: %v", err)
		}
	}

	// ── Document + Session + Engine ─────────────────────────────────────
	t := &termReader{
		screen:     screen,
		cellWidth:  float32(*cellWidth),
		cellHeight: float32(*cellHeight),
		cue:        cue,
	}
	doc := pagination.NewDocument(string(text), pagination.WithColumns(*columns))
	t.session = reader.NewSession(doc,
		reader.WithAspect(t.aspect()),
		reader.WithRowChangeCallback(func(st reader.Status) {
			log.Printf("[Reader] row %d/%d (camera %d)", st.Offset, st.Rows, st.Reported)
		}),
	)
	t.eng = engine.NewEngine(
		engine.WithTickRate(60),
		engine.WithRenderFrameLimit(30),
		engine.WithProfiling(*profile),
		engine.WithScene(0, t.session.Scene()),
	)
	t.holds = newKeyHolds(t.eng.Input())
	t.eng.SetTickCallback(t.tick)
	t.eng.SetRenderCallback(func(float32) { t.draw() })

	done := make(chan struct{})
	go func() {
		t.eng.Run()
		close(done)
	}()

	for {
		ev := screen.PollEvent()
		if ev == nil || !t.handleEvent(ev) {
			break
		}
	}

	t.eng.Quit()
	<-done
	t.session.Release()
	t.cue.close()
	screen.Fini()
	fmt.Printf("stopped at row %d of %d\n", doc.Offset(), doc.Rows())
}

// termReader adapts a tcell screen to the engine's input collector and draws the session.
type termReader struct {
	screen  tcell.Screen
	session *reader.Session
	eng     engine.Engine
	holds   *keyHolds
	cue     *boundaryCue

	cellWidth, cellHeight float32
	dragging              bool
}

// tick runs after the scene each engine tick.
func (t *termReader) tick(dt float32, frame input.Frame) {
	t.session.Tick(dt, frame)
	st := t.session.Status()
	t.cue.update(st.Offset, st.Rows)
	t.holds.expire(time.Now())
}

// handleEvent feeds one terminal event into the engine. Returns false to quit.
func (t *termReader) handleEvent(ev tcell.Event) bool {
	in := t.eng.Input()
	now := time.Now()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if code, ok := keyCode(ev); ok {
			t.holds.press(code, now)
		}

	case *tcell.EventMouse:
		t.holds.setModifier(ev.Modifiers(), now)
		x, y := ev.Position()
		buttons := ev.Buttons()
		switch {
		case buttons&tcell.WheelUp != 0:
			in.Scroll(0, 1, input.ScrollUnitLine)
		case buttons&tcell.WheelDown != 0:
			in.Scroll(0, -1, input.ScrollUnitLine)
		case buttons&tcell.WheelLeft != 0:
			in.Scroll(1, 0, input.ScrollUnitLine)
		case buttons&tcell.WheelRight != 0:
			in.Scroll(-1, 0, input.ScrollUnitLine)
		}

		if buttons&(tcell.Button1|tcell.Button3) != 0 {
			if !t.dragging {
				in.ResetCursor()
				t.dragging = true
			}
			in.CursorMoved(float32(x)*t.cellWidth, float32(y)*t.cellHeight)
		} else if t.dragging {
			t.dragging = false
			in.ResetCursor()
		}

	case *tcell.EventFocus:
		t.eng.SetFocused(ev.Focused)

	case *tcell.EventResize:
		t.screen.Sync()
		t.session.Camera().SetAspect(t.aspect())
	}
	return true
}

// aspect is the terminal's pixel aspect ratio.
func (t *termReader) aspect() float32 {
	w, h := t.screen.Size()
	if w <= 0 || h <= 0 {
		return 1
	}
	return (float32(w) * t.cellWidth) / (float32(h) * t.cellHeight)
}

func (t *termReader) draw() {
	doc := t.session.Document()
	st := t.session.Status()
	shift := int(st.Column) - doc.Columns()/2
	drawPage(t.screen, st, doc.VisibleLines(), shift)
}
