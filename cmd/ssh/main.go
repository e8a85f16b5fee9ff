package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/logging"

	"github.com/aevtikheev/starships-game/internal/canvas"
	"github.com/aevtikheev/starships-game/internal/config"
	"github.com/aevtikheev/starships-game/internal/game"
	"github.com/aevtikheev/starships-game/internal/input"
)

func main() {
	cfg := config.LoadSSH()
	log.Info("SSH config", "host", cfg.Host, "port", cfg.Port, "hostKeyPath", cfg.HostKeyPath)

	opts := []ssh.Option{
		wish.WithAddress(cfg.Addr()),
		wish.WithMiddleware(
			gameMiddleware,
			activeterm.Middleware(),
			logging.Middleware(),
		),
		// Reduce latency for game input
		ssh.WrapConn(func(ctx ssh.Context, conn net.Conn) net.Conn {
			if tcpConn, ok := conn.(*net.TCPConn); ok {
				_ = tcpConn.SetNoDelay(true)
			}
			return conn
		}),
	}

	if cfg.HostKeyPath != "" {
		opts = append(opts, wish.WithHostKeyPath(cfg.HostKeyPath))
	}

	s, err := wish.NewServer(opts...)
	if err != nil {
		log.Fatal("failed to create server", "error", err)
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	log.Info("Starting SSH server", "addr", cfg.Addr())
	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			log.Fatal("server error", "error", err)
		}
	}()

	<-done
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.Shutdown(ctx); err != nil {
		log.Fatal("shutdown error", "error", err)
	}
}

// gameMiddleware runs a game instance for each SSH session. Every session
// gets its own canvas, input stream and scheduler; sessions share nothing.
func gameMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		pty, winCh, ok := sess.Pty()
		if !ok {
			fmt.Fprintln(sess, "Error: PTY required. Please connect with: ssh -t user@host")
			return
		}

		log.Info("New game session",
			"user", sess.User(),
			"terminal", pty.Term,
			"width", pty.Window.Width,
			"height", pty.Window.Height)

		// Drain window-change events; the canvas keeps its initial size.
		go func() {
			for range winCh {
			}
		}()

		c := canvas.New(pty.Window.Height, pty.Window.Width)
		stream := input.StartStream(bufio.NewReader(sess))

		if err := game.Run(sess.Context(), sess, c, stream); err != nil {
			log.Error("Game error", "user", sess.User(), "error", err)
		}

		log.Info("Session ended", "user", sess.User())
		next(sess)
	}
}
