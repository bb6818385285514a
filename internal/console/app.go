package console

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/mhdirfanpn/panadol-platform-client/internal/config"
	"github.com/mhdirfanpn/panadol-platform-client/internal/service/dashboard"
	"github.com/mhdirfanpn/panadol-platform-client/internal/service/doctor"
	"github.com/mhdirfanpn/panadol-platform-client/internal/service/user"
	"github.com/mhdirfanpn/panadol-platform-client/internal/session"
	"github.com/mhdirfanpn/panadol-platform-client/internal/transport"
	"github.com/mhdirfanpn/panadol-platform-client/pkg/logger"
	"github.com/mhdirfanpn/panadol-platform-client/pkg/metrics"
)

// App wires the session, transport and services for the interactive
// console. It is the composition root: identity and theme are loaded once
// here and injected explicitly, never reached for globally.
type App struct {
	Cfg     *config.Config
	Log     *logger.Logger
	Sess    *session.Session
	Users   *user.Service
	Doctors *doctor.Service
	Stats   *dashboard.Service

	in  *bufio.Scanner
	out io.Writer
}

// NewApp loads configuration and the session file, then builds the API
// client stack.
func NewApp() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	log := logger.New(&logger.Config{Level: cfg.Log.Level})

	sess, err := session.Load(cfg.Session.File, cfg.Session.UserID)
	if err != nil {
		return nil, err
	}

	client, err := transport.New(transport.Config{
		BaseURL:           cfg.API.BaseURL,
		Timeout:           cfg.API.Timeout,
		RequestsPerSecond: cfg.API.RequestsPerSecond,
		Burst:             cfg.API.Burst,
	}, sess.UserID(), log.WithComponent("transport").Zerolog(),
		transport.WithMetrics(metrics.New("panadol_console", prometheus.DefaultRegisterer)))
	if err != nil {
		return nil, err
	}

	return &App{
		Cfg:     cfg,
		Log:     log,
		Sess:    sess,
		Users:   user.NewService(client),
		Doctors: doctor.NewService(client),
		Stats:   dashboard.NewService(client),
		in:      bufio.NewScanner(os.Stdin),
		out:     os.Stdout,
	}, nil
}

func (a *App) printf(format string, args ...interface{}) {
	fmt.Fprintf(a.out, format, args...)
}

// readLine prompts and returns the trimmed input line; ok is false on EOF.
func (a *App) readLine(prompt string) (string, bool) {
	a.printf("%s", prompt)
	if !a.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(a.in.Text()), true
}

// splitCommand separates the command word from its argument, keeping the
// argument verbatim so multi-word search terms survive.
func splitCommand(line string) (cmd, arg string) {
	parts := strings.SplitN(line, " ", 2)
	cmd = strings.ToLower(parts[0])
	if len(parts) == 2 {
		arg = strings.TrimSpace(parts[1])
	}
	return cmd, arg
}
