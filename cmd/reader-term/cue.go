package main

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const cueSampleRate = beep.SampleRate(44100)

// boundaryCue plays a short tone when the document reaches its first or last row.
type boundaryCue struct {
	enabled bool
	atEdge  bool
}

// newBoundaryCue initializes the speaker. Audio failure is returned so the caller can run silent.
func newBoundaryCue() (*boundaryCue, error) {
	if err := speaker.Init(cueSampleRate, cueSampleRate.N(time.Second/10)); err != nil {
		return &boundaryCue{atEdge: true}, fmt.Errorf("failed to initialize speaker: %w", err)
	}
	return &boundaryCue{enabled: true, atEdge: true}, nil
}

// update plays the cue on the frame the offset arrives at an edge.
func (c *boundaryCue) update(offset uint32, rows int) {
	atEdge := rows > 0 && (offset == 0 || int(offset) == rows-1)
	if atEdge && !c.atEdge && c.enabled {
		c.play()
	}
	c.atEdge = atEdge
}

func (c *boundaryCue) play() {
	tone, err := generators.SineTone(cueSampleRate, 660)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(cueSampleRate.N(40*time.Millisecond), tone))
}

func (c *boundaryCue) close() {
	if c.enabled {
		speaker.Close()
	}
}
