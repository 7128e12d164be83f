// Package httpapi serves the public HTTP surface of the server: the guest
// gallery behind a share token, health and Prometheus metrics, and, when
// blobs are kept in memory, the signed blob URLs themselves.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dmitrijs2005/atelier/internal/common"
	"github.com/dmitrijs2005/atelier/internal/imagex"
	"github.com/dmitrijs2005/atelier/internal/logging"
	pb "github.com/dmitrijs2005/atelier/internal/proto"
	grpcserver "github.com/dmitrijs2005/atelier/internal/server/grpc"
	"github.com/dmitrijs2005/atelier/internal/server/services"
)

const shutdownTimeout = 5 * time.Second

// SharedGallery resolves a share token to the guest view of a gallery.
type SharedGallery interface {
	ListShared(ctx context.Context, token string) ([]services.SharedItem, error)
}

// BlobOpener verifies a signed blob URL and returns the blob.
type BlobOpener interface {
	Open(path, expires, signature string) ([]byte, error)
}

type sharedGalleryResponse struct {
	Items []*pb.SharedArtwork `json:"items"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type Server struct {
	address    string
	logger     logging.Logger
	gallery    SharedGallery
	blobs      BlobOpener
	engine     *gin.Engine
	httpServer *http.Server
}

// NewServer builds the HTTP server. blobs may be nil, in which case no
// /blobs route is mounted. gatherer backs /metrics.
func NewServer(address string, l logging.Logger, origins []string, gallery SharedGallery, blobs BlobOpener, gatherer prometheus.Gatherer) *Server {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		address: address,
		logger:  l.With("module", "http_server"),
		gallery: gallery,
		blobs:   blobs,
		engine:  gin.New(),
	}

	s.engine.Use(gin.Recovery(), s.requestLogger())
	s.engine.Use(cors.New(corsConfig(origins)))

	s.engine.GET("/healthz", s.handleHealth)
	s.engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	s.engine.GET("/share/:token", s.handleShare)
	if blobs != nil {
		s.engine.GET("/blobs/*path", s.handleBlob)
	}

	s.httpServer = &http.Server{
		Addr:              address,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

func corsConfig(origins []string) cors.Config {
	c := cors.DefaultConfig()
	c.AllowMethods = []string{http.MethodGet, http.MethodOptions}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = origins
	}
	return c
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info(ctx, "Starting HTTP server", "address", s.address)
		errCh <- s.httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info(ctx, "Stopping HTTP server...")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		// the share token is a credential, keep it out of the logs
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		s.logger.Debug(c.Request.Context(), "http request",
			"method", c.Request.Method, "route", route, "status", c.Writer.Status(), "duration", time.Since(start))
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleShare(c *gin.Context) {
	c.Header("Cache-Control", "no-store")
	c.Header("Referrer-Policy", "no-referrer")

	items, err := s.gallery.ListShared(c.Request.Context(), c.Param("token"))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			c.JSON(http.StatusNotFound, errorResponse{Error: "not found"})
			return
		}
		s.logger.Error(c.Request.Context(), "shared gallery failed", "error", err)
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
		return
	}

	c.JSON(http.StatusOK, sharedGalleryResponse{Items: grpcserver.SharedToPB(items)})
}

func (s *Server) handleBlob(c *gin.Context) {
	path := strings.TrimPrefix(c.Param("path"), "/")

	data, err := s.blobs.Open(path, c.Query("expires"), c.Query("signature"))
	if err != nil {
		c.JSON(http.StatusNotFound, errorResponse{Error: "not found"})
		return
	}

	c.Header("Cache-Control", "private, max-age=300")
	c.Data(http.StatusOK, imagex.ContentType, data)
}
