package api

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/curaious/taskdeck/internal/config"
	"github.com/curaious/taskdeck/internal/events"
	"github.com/curaious/taskdeck/internal/migrations"
	"github.com/curaious/taskdeck/internal/services"
	"github.com/curaious/taskdeck/internal/workflows"
	"github.com/valyala/fasthttp"
	"go.temporal.io/sdk/client"
)

// Server is the REST server: HTTP routes over the service layer, plus the
// workflow client used to hand events off to the worker.
type Server struct {
	srv        *fasthttp.Server
	addr       string
	conf       *config.Config
	services   *services.Services
	temporal   client.Client
	dispatcher *workflows.Dispatcher
	verifier   *events.SignatureVerifier
}

// New builds the server: runs pending migrations, connects the service layer
// and the workflow engine, and wires the routes.
func New() *Server {
	conf := config.ReadConfig()

	m, err := migrations.NewMigrator()
	if err != nil {
		panic("unable to create migrator")
	}

	err = m.Up(0)
	if err != nil {
		panic("unable to run migrations")
	}

	temporal, err := client.Dial(client.Options{HostPort: conf.TEMPORAL_HOST_PORT})
	if err != nil {
		log.Fatal("Unable to connect to Temporal: ", err)
	}

	verifier, err := events.NewSignatureVerifier(conf.WEBHOOK_SIGNING_SECRET)
	if err != nil {
		log.Fatal("Invalid webhook signing secret: ", err)
	}

	s := &Server{
		srv:        &fasthttp.Server{},
		addr:       fmt.Sprintf("0.0.0.0:%s", conf.SERVER_PORT),
		conf:       conf,
		services:   services.NewServices(conf),
		temporal:   temporal,
		dispatcher: workflows.NewDispatcher(temporal),
		verifier:   verifier,
	}

	s.srv.Handler = s.initRoutes()

	return s
}

// Start the rest server
func (s *Server) Start() {
	slog.Info("Starting REST server...", slog.String("addr", s.addr))
	go func() {
		if err := s.srv.ListenAndServe(s.addr); err != nil {
			slog.Error("Server shutdown", slog.Any("error", err))
		}
	}()
	slog.Info("REST server started!")

	// Listen for OS interrupts
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	// Block till we receive an interrupt
	<-c
	slog.Info("Received interrupt...")

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	s.shutdown(ctx)
}

func (s *Server) shutdown(ctx context.Context) {
	slog.Info("Gracefully shutting down REST server...")
	if err := s.srv.Shutdown(); err != nil {
		slog.Error("Failed to shutdown the server", slog.Any("error", err))
	}
	s.temporal.Close()
	slog.Info("REST server shutdown!")
}
