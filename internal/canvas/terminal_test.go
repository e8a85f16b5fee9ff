package canvas

import (
	"bytes"
	"strings"
	"testing"
)

func TestChunkWriterMoveCursor(t *testing.T) {
	var buf bytes.Buffer
	cw := NewChunkWriter(&buf)
	cw.MoveCursor(3, 7)
	cw.WriteRune('x')
	if err := cw.Flush(); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "\033[7;3Hx"; got != want {
		t.Fatalf("output = %q, want %q", got, want)
	}
}

func TestChunkWriterLargePayloadSurvivesChunking(t *testing.T) {
	var buf bytes.Buffer
	cw := NewChunkWriter(&buf)
	payload := strings.Repeat("abcdefgh", 500) // well over one chunk
	cw.WriteString(payload)
	if err := cw.Flush(); err != nil {
		t.Fatal(err)
	}
	if buf.String() != payload {
		t.Fatalf("payload corrupted: got %d bytes, want %d", buf.Len(), len(payload))
	}
}

func TestChunkWriterFlushResetsBuffer(t *testing.T) {
	var buf bytes.Buffer
	cw := NewChunkWriter(&buf)
	cw.WriteString("first")
	if err := cw.Flush(); err != nil {
		t.Fatal(err)
	}
	buf.Reset()
	cw.WriteString("second")
	if err := cw.Flush(); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "second" {
		t.Fatalf("second flush = %q, want %q", got, "second")
	}
}
