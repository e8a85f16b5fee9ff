// Package input decodes raw key bytes into per-tick directional controls.
package input

import "bufio"

// Controls is the input state observed since the previous poll. Directions
// are -1, 0 or 1 per axis; multiple presses on one axis collapse to the
// latest one.
type Controls struct {
	Rows int // -1 up, 1 down
	Cols int // -1 left, 1 right
	Fire bool
	Quit bool
}

// Stream delivers input bytes from a reader via a channel so polls never
// block on the terminal.
type Stream struct {
	ch   chan byte
	tail []byte // incomplete escape sequence held over from the last poll
}

// StartStream spawns a goroutine that reads from r and feeds the stream. The
// channel is closed when the reader is exhausted (e.g. the session ended).
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

// ReadControls drains all bytes available on the stream without blocking and
// returns the decoded controls. A poll with no pending input returns the zero
// value. A closed stream reads as a quit request.
func ReadControls(s *Stream) Controls {
	buf := s.tail
	s.tail = nil
	closed := false

drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	// An escape sequence can arrive split across polls. Hold an incomplete
	// trailing one for the next poll; its bytes must not reach the WASD
	// fallback.
	if n := len(buf); n > 0 && buf[n-1] == '\x1b' {
		s.tail = []byte{'\x1b'}
		buf = buf[:n-1]
	} else if n > 1 && buf[n-2] == '\x1b' && buf[n-1] == '[' {
		s.tail = []byte{'\x1b', '['}
		buf = buf[:n-2]
	}

	ctl := parseControls(buf)
	if closed {
		ctl.Quit = true
	}
	return ctl
}

// parseControls decodes a batch of raw bytes. Arrow keys arrive as CSI
// sequences (ESC [ A/B/C/D); WASD works as a fallback binding.
func parseControls(buf []byte) Controls {
	var ctl Controls
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'A':
				ctl.Rows = -1
			case 'B':
				ctl.Rows = 1
			case 'C':
				ctl.Cols = 1
			case 'D':
				ctl.Cols = -1
			}
			i += 2
			continue
		}

		switch b {
		case 'w', 'W':
			ctl.Rows = -1
		case 's', 'S':
			ctl.Rows = 1
		case 'a', 'A':
			ctl.Cols = -1
		case 'd', 'D':
			ctl.Cols = 1
		case ' ':
			ctl.Fire = true
		case 'q', 'Q', '\x03':
			ctl.Quit = true
		}
	}
	return ctl
}
