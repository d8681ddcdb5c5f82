package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/loop"
	"github.com/vovakirdan/tui-snake/internal/render"
	"github.com/vovakirdan/tui-snake/internal/storage"
	"github.com/vovakirdan/tui-snake/internal/terminal"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.snake/host_key.
	HostKeyPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// Game configures every session.
	Game config.Config
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		IdleTimeout: 30 * time.Minute,
		Game:        config.Default(),
	}
}

// SSHServer runs one snake session per SSH connection. All sessions share
// the high score store.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  storage.HighScoreStore
	logger *log.Logger
}

// NewSSHServer creates a new SSH server. The caller owns store and closes
// it after Shutdown.
func NewSSHServer(cfg SSHServerConfig, store storage.HighScoreStore, logger *log.Logger) (*SSHServer, error) {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "snake-ssh",
		})
	}
	if store == nil {
		store = &storage.Memory{}
	}

	if _, err := render.Configure(cfg.Game.Render); err != nil {
		return nil, err
	}

	srv := &SSHServer{
		config: cfg,
		store:  store,
		logger: logger,
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", err)
		}
		hostKeyPath = filepath.Join(home, ".snake", "host_key")
	}
	hostKeyPath = config.ExpandPath(hostKeyPath)

	if err := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); err != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", err)
	}

	// Middleware runs last to first: logging wraps the pty check.
	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			srv.gameHandler,
			activeterm.Middleware(),
			srv.loggingMiddleware,
		),
	)
	if err != nil {
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// gameHandler plays one session over the SSH channel.
func (s *SSHServer) gameHandler(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		s.play(sess)
		next(sess)
	}
}

func (s *SSHServer) play(sess ssh.Session) {
	logger := s.logger.With("user", sess.User())

	stream, err := terminal.NewStream(sess, sess)
	if err != nil {
		logger.Error("cannot open session stream", "error", err)
		return
	}
	defer stream.Close()

	pty, _, _ := sess.Pty()
	opts, _ := render.Configure(s.config.Game.Render)
	if cols, rows := opts.Footprint(s.config.Game.Game.GridSize); pty.Window.Width < cols || pty.Window.Height < rows {
		wish.Fatalf(sess, "Terminal too small: need %dx%d, have %dx%d\n", cols, rows, pty.Window.Width, pty.Window.Height)
		return
	}

	ctrl, err := loop.NewSession(stream, s.config.Game, s.store, logger, sess.User(), time.Now().UnixNano())
	if err != nil {
		logger.Error("cannot start session", "error", err)
		return
	}

	stream.EnterAltScreen()
	stream.HideCursor()
	defer func() {
		stream.ShowCursor()
		stream.ExitAltScreen()
		_ = stream.Flush()
	}()

	if err := ctrl.Run(sess.Context()); err != nil {
		logger.Warn("session aborted", "error", err)
		return
	}
	logger.Info("session finished", "rounds", ctrl.Rounds())
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		s.logger.Info("session started",
			"user", sess.User(),
			"remote", sess.RemoteAddr().String(),
		)
		next(sess)
		s.logger.Info("session ended",
			"user", sess.User(),
			"remote", sess.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until interrupted.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(done)

	errc := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		if err != nil {
			return fmt.Errorf("ssh server: %w", err)
		}
		return nil
	case <-done:
	}

	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}
