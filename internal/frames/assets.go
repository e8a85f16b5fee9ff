package frames

import (
	"embed"
	"fmt"
)

//go:embed assets/*.txt
var assetFS embed.FS

// GarbageNames lists the glyph assets usable as falling garbage.
var GarbageNames = []string{
	"trash_small",
	"trash_large",
	"trash_xl",
	"duck",
	"hubble",
	"lamp",
}

// Load reads a named glyph asset. Names map to assets/<name>.txt.
func Load(name string) (Frame, error) {
	data, err := assetFS.ReadFile("assets/" + name + ".txt")
	if err != nil {
		return Frame{}, fmt.Errorf("load frame %q: %w", name, err)
	}
	return New(string(data)), nil
}

// MustLoad is Load panicking on error; for assets known at compile time.
func MustLoad(name string) Frame {
	f, err := Load(name)
	if err != nil {
		panic(err)
	}
	return f
}
