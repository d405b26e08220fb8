package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/Carmen-Shannon/oxy-reader/engine"
	"github.com/Carmen-Shannon/oxy-reader/engine/camera"
	"github.com/Carmen-Shannon/oxy-reader/engine/pagination"
	"github.com/Carmen-Shannon/oxy-reader/engine/reader"
	"github.com/Carmen-Shannon/oxy-reader/engine/window"
)

func main() {
	path := flag.String("file", "", "text file to read (required)")
	columns := flag.Int("columns", pagination.DefaultColumns, "wrap width in cells")
	lean := flag.Float64("lean", float64(camera.DefaultPitchMax), "pitch lean in degrees while scrolling")
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

	// ── Window ──────────────────────────────────────────────────────────
	win, err := window.NewWindow(
		window.WithTitle(fmt.Sprintf("oxy-reader - %s", *path)),
		window.WithWidth(1280),
		window.WithHeight(800),
	)
	if err != nil {
		log.Fatalf("[Reader] %v", err)
	}

	// ── Document + Session ──────────────────────────────────────────────
	doc := pagination.NewDocument(string(text), pagination.WithColumns(*columns))
	session := reader.NewSession(doc,
		reader.WithAspect(win.Aspect()),
		reader.WithComputeWorkers(2),
		reader.WithControllerOptions(camera.WithLean(float32(*lean), camera.DefaultLeanEasingSeconds, camera.DefaultLeanResetEasingSeconds)),
		reader.WithRowChangeCallback(func(st reader.Status) {
			log.Printf("[Reader] row %d/%d (camera %d, visible %.1f, zoom %.2f)", st.Offset, st.Rows, st.Reported, st.VisibleRows, st.Zoom)
		}),
	)
	defer session.Release()

	// ── Engine ──────────────────────────────────────────────────────────
	eng := engine.NewEngine(
		engine.WithWindow(win),
		engine.WithTickRate(60),
		engine.WithProfiling(*profile),
		engine.WithScene(0, session.Scene()),
	)
	eng.SetTickCallback(session.Tick)

	fmt.Println("╔══════════════════════════════════════════════════════╗")
	fmt.Println("║  oxy-reader                                          ║")
	fmt.Println("╠══════════════════════════════════════════════════════╣")
	fmt.Println("║  Wheel=Scroll  Ctrl+Wheel=Zoom  Drag=Scroll/Swipe    ║")
	fmt.Println("║  Up/Down/PgUp/PgDn/Home/End=Rows  Left/Right=Column  ║")
	fmt.Println("║  1=Fly  2=Follow  3=Reader  Esc=Quit                 ║")
	fmt.Println("╚══════════════════════════════════════════════════════╝")

	log.Printf("[Reader] %d rows at %d columns", doc.Rows(), doc.Columns())
	eng.Run()

	if err := win.Close(); err != nil {
		log.Printf("[Reader] %v", err)
	}
}
