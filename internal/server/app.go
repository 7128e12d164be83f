// Package server wires configuration, storage, blob backend and services
// together and runs the gRPC and public HTTP servers until shutdown.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrijs2005/atelier/internal/logging"
	"github.com/dmitrijs2005/atelier/internal/server/blobstore"
	"github.com/dmitrijs2005/atelier/internal/server/capability"
	"github.com/dmitrijs2005/atelier/internal/server/config"
	gs "github.com/dmitrijs2005/atelier/internal/server/grpc"
	"github.com/dmitrijs2005/atelier/internal/server/httpapi"
	"github.com/dmitrijs2005/atelier/internal/server/metrics"
	"github.com/dmitrijs2005/atelier/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/atelier/internal/server/services"
)

type App struct {
	config   *config.Config
	logger   logging.Logger
	db       *sql.DB
	registry *prometheus.Registry
	grpc     *gs.GRPCServer
	http     *httpapi.Server
}

// openDB is a seam for tests.
var openDB = func(dsn string) (*sql.DB, error) {
	return sql.Open("pgx", dsn)
}

// NewApp opens the database, applies migrations and builds every service.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewJSONLogger(os.Stdout, parseLevel(c.LogLevel))

	db, err := openDB(c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrations error: %w", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.MustNew(reg)

	store, opener, err := newBlobStore(ctx, c)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("blob store init error: %w", err)
	}
	store = blobstore.Instrument(store, m)

	issuer := capability.NewIssuer(store, logger, m, c.CapabilityParallelism)
	shares := services.NewShareService(db, rm, logger, m)
	gallery := services.NewGalleryService(db, rm, issuer, shares)

	grpcServer := gs.NewGRPCServer(c.EndpointAddrGRPC, logger, c.SecretKey, c.MaxUploadBytes, gs.Services{
		Users:    services.NewUserService(db, rm, c),
		Artworks: services.NewArtworkService(db, rm, store, logger, c.MaxUploadBytes),
		Gallery:  gallery,
		Shares:   shares,
		Children: services.NewChildService(db, rm),
	})

	httpServer := httpapi.NewServer(c.EndpointAddrHTTP, logger, c.CORSOrigins, gallery, opener, reg)

	return &App{
		config:   c,
		logger:   logger,
		db:       db,
		registry: reg,
		grpc:     grpcServer,
		http:     httpServer,
	}, nil
}

// newBlobStore returns the configured backend. The opener is non-nil only for
// the memory backend, whose signed URLs are served by the HTTP server.
func newBlobStore(ctx context.Context, c *config.Config) (blobstore.Store, httpapi.BlobOpener, error) {
	switch c.BlobBackend {
	case config.BlobBackendMemory:
		ms := blobstore.NewMemoryStore(strings.TrimRight(c.PublicBaseURL, "/")+"/blobs", []byte(c.SecretKey))
		return ms, ms, nil
	case config.BlobBackendS3, "":
		s3, err := blobstore.NewS3Store(ctx, blobstore.S3Config{
			AccessKey:    c.S3RootUser,
			SecretKey:    c.S3RootPassword,
			Bucket:       c.S3Bucket,
			Region:       c.S3Region,
			BaseEndpoint: c.S3BaseEndpoint,
		})
		if err != nil {
			return nil, nil, err
		}
		return s3, nil, nil
	default:
		return nil, nil, fmt.Errorf("unknown blob backend %q", c.BlobBackend)
	}
}

func parseLevel(s string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return l
}

// Run serves until SIGINT/SIGTERM/SIGQUIT or until either server fails.
func (app *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()
	defer app.db.Close()

	app.logger.Info(ctx, "Starting app...")

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return app.grpc.Run(ctx) })
	g.Go(func() error { return app.http.Run(ctx) })

	err := g.Wait()
	app.logger.Info(context.WithoutCancel(ctx), "App stopped")
	return err
}
