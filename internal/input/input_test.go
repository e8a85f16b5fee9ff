package input

import (
	"bufio"
	"strings"
	"testing"
	"time"
)

func TestParseControls(t *testing.T) {
	tests := []struct {
		name string
		buf  string
		want Controls
	}{
		{"empty", "", Controls{}},
		{"arrow up", "\x1b[A", Controls{Rows: -1}},
		{"arrow down", "\x1b[B", Controls{Rows: 1}},
		{"arrow right", "\x1b[C", Controls{Cols: 1}},
		{"arrow left", "\x1b[D", Controls{Cols: -1}},
		{"wasd up", "w", Controls{Rows: -1}},
		{"wasd all", "wa", Controls{Rows: -1, Cols: -1}},
		{"latest wins on one axis", "\x1b[C\x1b[D", Controls{Cols: -1}},
		{"axes are independent", "\x1b[A\x1b[C", Controls{Rows: -1, Cols: 1}},
		{"fire", " ", Controls{Fire: true}},
		{"fire while moving", "\x1b[A ", Controls{Rows: -1, Fire: true}},
		{"quit q", "q", Controls{Quit: true}},
		{"quit ctrl-c", "\x03", Controls{Quit: true}},
		{"truncated escape ignored", "\x1b[", Controls{}},
		{"unknown bytes ignored", "xyz", Controls{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseControls([]byte(tt.buf)); got != tt.want {
				t.Fatalf("parseControls(%q) = %+v, want %+v", tt.buf, got, tt.want)
			}
		})
	}
}

// pollUntil polls the stream until pred accepts the controls or the deadline
// passes. The stream is fed by a goroutine, so the first polls may see nothing.
func pollUntil(t *testing.T, s *Stream, pred func(Controls) bool) Controls {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if ctl := ReadControls(s); pred(ctl) {
			return ctl
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("stream never delivered the expected controls")
	return Controls{}
}

func TestReadControlsDrainsStream(t *testing.T) {
	// A single-byte key: a CSI sequence could land split across two polls.
	s := StartStream(bufio.NewReader(strings.NewReader("d")))
	ctl := pollUntil(t, s, func(c Controls) bool { return c.Cols != 0 })
	if ctl.Cols != 1 {
		t.Fatalf("Cols = %d, want 1", ctl.Cols)
	}
}

func TestReadControlsClosedStreamMeansQuit(t *testing.T) {
	s := StartStream(bufio.NewReader(strings.NewReader("")))
	ctl := pollUntil(t, s, func(c Controls) bool { return c.Quit })
	if !ctl.Quit {
		t.Fatal("closed stream did not report quit")
	}
	// Once closed, every poll keeps reporting quit without blocking.
	if ctl := ReadControls(s); !ctl.Quit {
		t.Fatal("second poll on closed stream did not report quit")
	}
}

func TestReadControlsEscapeSplitAcrossPolls(t *testing.T) {
	tests := []struct {
		name   string
		chunks []string
		wants  []Controls
	}{
		{
			"split after ESC",
			[]string{"\x1b", "[A"},
			[]Controls{{}, {Rows: -1}},
		},
		{
			"split after CSI",
			[]string{"\x1b[", "D"},
			[]Controls{{}, {Cols: -1}},
		},
		{
			"byte at a time",
			[]string{"\x1b", "[", "B"},
			[]Controls{{}, {}, {Rows: 1}},
		},
		{
			"movement before the split",
			[]string{"w\x1b", "[C"},
			[]Controls{{Rows: -1}, {Cols: 1}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Stream{ch: make(chan byte, 16)}
			for i, chunk := range tt.chunks {
				for _, b := range []byte(chunk) {
					s.ch <- b
				}
				if got := ReadControls(s); got != tt.wants[i] {
					t.Fatalf("poll %d = %+v, want %+v", i, got, tt.wants[i])
				}
			}
		})
	}
}

func TestReadControlsEmptyPollReturnsZero(t *testing.T) {
	blocked := make(chan struct{})
	s := StartStream(bufio.NewReader(blockedReader{wait: blocked}))
	defer close(blocked)

	if ctl := ReadControls(s); ctl != (Controls{}) {
		t.Fatalf("poll with no input = %+v, want zero", ctl)
	}
}

// blockedReader blocks until wait is closed, so the stream stays open and
// empty for the duration of the test.
type blockedReader struct {
	wait chan struct{}
}

func (r blockedReader) Read(p []byte) (int, error) {
	<-r.wait
	return 0, nil
}
