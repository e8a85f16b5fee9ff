package main

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/aevtikheev/starships-game/internal/canvas"
	"github.com/aevtikheev/starships-game/internal/game"
	"github.com/aevtikheev/starships-game/internal/input"
)

func main() {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to enable raw mode: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	width, height, err := canvas.DefaultTermSizeFunc()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read terminal size: %v\n", err)
		os.Exit(1)
	}

	c := canvas.New(height, width)
	stream := input.StartStream(bufio.NewReader(os.Stdin))

	if err := game.Run(context.Background(), os.Stdout, c, stream); err != nil {
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}
