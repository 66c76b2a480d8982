package urlecho

import (
	"net"
	"os"

	"github.com/indigo-web/urlecho/config"
	"github.com/indigo-web/urlecho/internal/protocol/http1"
	"github.com/indigo-web/urlecho/transport"
	"github.com/rs/zerolog"
)

// App binds the listener and serves every accepted connection in its own goroutine.
type App struct {
	cfg        *config.Config
	log        zerolog.Logger
	supervisor *transport.Supervisor
	onBind     func(addr net.Addr)
}

// New returns a new App instance listening at the default address.
func New() *App {
	return &App{
		cfg:        config.Default(),
		log:        zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger(),
		supervisor: transport.NewSupervisor(),
	}
}

// Tune replaces the default config.
func (a *App) Tune(cfg *config.Config) *App {
	a.cfg = cfg
	return a
}

// Logger replaces the default logger, writing to stderr.
func (a *App) Logger(log zerolog.Logger) *App {
	a.log = log
	return a
}

// NotifyOnBind calls the callback with the actual address, as soon as the listener is bound.
func (a *App) NotifyOnBind(cb func(addr net.Addr)) *App {
	a.onBind = cb
	return a
}

// Serve binds the listener and blocks until the accept loop fails or Stop is called.
// Failing to bind is returned immediately.
func (a *App) Serve() error {
	tcp := transport.NewTCP()
	if err := a.supervisor.Add(a.cfg.NET.Addr, tcp, a.serveConn); err != nil {
		return err
	}

	a.log.Info().Stringer("addr", tcp.Addr()).Msg("listening")
	if a.onBind != nil {
		a.onBind(tcp.Addr())
	}

	return a.supervisor.Run()
}

// Stop stops accepting new connections. Connections already accepted are served until they
// end on their own.
//
// NOTE: the call isn't blocking.
func (a *App) Stop() {
	a.supervisor.Stop()
}

func (a *App) serveConn(conn net.Conn) {
	client := transport.NewClient(conn)

	if err := http1.NewSession(a.cfg, client).Serve(); err != nil {
		a.log.Error().
			Err(err).
			Stringer("remote", client.Remote()).
			Msg("connection closed")
	}
}
