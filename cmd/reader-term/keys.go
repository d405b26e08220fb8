package main

import (
	"sync"
	"time"

	"github.com/Carmen-Shannon/oxy-reader/common"
	"github.com/Carmen-Shannon/oxy-reader/engine/input"
	"github.com/gdamore/tcell/v2"
)

// holdWindow is how long a terminal key counts as held after its last press or repeat.
const holdWindow = 150 * time.Millisecond

var tcellKeys = map[tcell.Key]uint32{
	tcell.KeyUp:    common.KeyUp,
	tcell.KeyDown:  common.KeyDown,
	tcell.KeyLeft:  common.KeyLeft,
	tcell.KeyRight: common.KeyRight,
	tcell.KeyPgUp:  common.KeyPageUp,
	tcell.KeyPgDn:  common.KeyPageDown,
	tcell.KeyHome:  common.KeyHome,
	tcell.KeyEnd:   common.KeyEnd,
	tcell.KeyEnter: common.KeyEnter,
}

var runeKeys = map[rune]uint32{
	'w': common.KeyW, 'a': common.KeyA, 's': common.KeyS, 'd': common.KeyD,
	'q': common.KeyQ, 'f': common.KeyF, 'g': common.KeyG, 'r': common.KeyR,
	' ': common.KeySpace,
	'1': common.Key1, '2': common.Key2, '3': common.Key3,
}

// keyCode maps a terminal key event to an engine key code.
func keyCode(ev *tcell.EventKey) (uint32, bool) {
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		code, ok := runeKeys[r]
		return code, ok
	}
	code, ok := tcellKeys[ev.Key()]
	return code, ok
}

// keyHolds turns terminal key presses, which carry no release, into press/release pairs.
// A key is released once holdWindow passes without a repeat.
type keyHolds struct {
	mu        sync.Mutex
	collector *input.Collector
	deadlines map[uint32]time.Time
}

func newKeyHolds(c *input.Collector) *keyHolds {
	return &keyHolds{collector: c, deadlines: make(map[uint32]time.Time)}
}

// press records a press or repeat of key at now.
func (k *keyHolds) press(key uint32, now time.Time) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.collector.KeyDown(key)
	k.deadlines[key] = now.Add(holdWindow)
}

// expire releases every key whose hold window ended before now.
func (k *keyHolds) expire(now time.Time) {
	k.mu.Lock()
	defer k.mu.Unlock()
	for key, deadline := range k.deadlines {
		if now.After(deadline) {
			k.collector.KeyUp(key)
			delete(k.deadlines, key)
		}
	}
}

// setModifier holds or releases the control modifier so a modified wheel event reaches the
// collector with the modifier pressed.
func (k *keyHolds) setModifier(mods tcell.ModMask, now time.Time) {
	if mods&tcell.ModCtrl != 0 {
		k.press(common.KeyLeftControl, now)
	}
}
