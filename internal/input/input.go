// Package input captures raw terminal bytes and turns them into a
// debounced pressed-key snapshot for the simulation. Terminals deliver key
// repeats, not key-up events, so a key counts as held for a short window
// after its last byte arrived.
package input

import (
	"bufio"
	"time"
)

// keyHoldDuration is how long a key is considered held after its last
// press. Long enough to bridge the terminal auto-repeat gap, short enough
// that releasing a key stops the ship promptly.
const keyHoldDuration = 120 * time.Millisecond

// tapHoldDuration is the shorter window for tap-style keys (rotate, pause,
// enter) where lingering state would register extra taps.
const tapHoldDuration = 40 * time.Millisecond

// Input is the current frame's pressed-key snapshot.
type Input struct {
	Up, Down, Left, Right bool
	Fire                  bool
	RotateLeft            bool
	RotateRight           bool
	Pause                 bool
	Enter                 bool
	Quit                  bool
}

// keyState tracks the last time each key was seen.
type keyState struct {
	up, down, left, right time.Time
	fire                  time.Time
	rotateLeft            time.Time
	rotateRight           time.Time
	pause                 time.Time
	enter                 time.Time
	quit                  time.Time
}

// Stream delivers input bytes via a channel and tracks key state so
// simultaneous keys are detected across frames.
type Stream struct {
	ch    chan byte
	state keyState
}

// StartStream spawns a goroutine that reads from r and feeds the stream.
// The goroutine exits when the reader does.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{ch: make(chan byte, 128)}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// ReadInput drains all pending bytes (non-blocking), updates key state and
// returns the snapshot for this frame.
func (s *Stream) ReadInput() Input {
	now := time.Now()
	var buf []byte

drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// CSI sequences: ESC [ <code> (arrow keys)
		if b == 0x1b && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'A':
				s.state.up = now
			case 'B':
				s.state.down = now
			case 'C':
				s.state.right = now
			case 'D':
				s.state.left = now
			}
			i += 2
			continue
		}

		s.applyByte(b, now)
	}

	held := func(t time.Time) bool { return now.Sub(t) < keyHoldDuration }
	tapped := func(t time.Time) bool { return now.Sub(t) < tapHoldDuration }

	return Input{
		Up:          held(s.state.up),
		Down:        held(s.state.down),
		Left:        held(s.state.left),
		Right:       held(s.state.right),
		Fire:        held(s.state.fire),
		RotateLeft:  tapped(s.state.rotateLeft),
		RotateRight: tapped(s.state.rotateRight),
		Pause:       tapped(s.state.pause),
		Enter:       tapped(s.state.enter),
		Quit:        held(s.state.quit),
	}
}

func (s *Stream) applyByte(b byte, now time.Time) {
	switch b {
	case 'w', 'W':
		s.state.up = now
	case 's', 'S':
		s.state.down = now
	case 'a', 'A':
		s.state.left = now
	case 'd', 'D':
		s.state.right = now
	case ' ':
		s.state.fire = now
	case 'q', 'Q':
		s.state.rotateLeft = now
	case 'e', 'E':
		s.state.rotateRight = now
	case 'p', 'P':
		s.state.pause = now
	case '\n', '\r':
		s.state.enter = now
	case 0x03, 0x04: // Ctrl-C / Ctrl-D
		s.state.quit = now
	}
}
