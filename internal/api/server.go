// Package api serves the scholarship catalog over HTTP for the web frontend.
package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/jimezsa/scholarcli/internal/cache"
	"github.com/jimezsa/scholarcli/internal/models"
)

const DefaultCacheTTL = 5 * time.Minute

// Catalog is the read side of a store.
type Catalog interface {
	List(ctx context.Context) ([]models.Scholarship, error)
	Get(ctx context.Context, id int) (models.Scholarship, error)
}

type ContactSaver interface {
	Save(ctx context.Context, msg models.ContactMessage) error
}

type Config struct {
	Addr           string
	AllowedOrigins []string
	CacheTTL       time.Duration
}

type Server struct {
	catalog  Catalog
	cache    cache.Cache
	contacts ContactSaver
	metrics  *Metrics
	logger   zerolog.Logger
	cfg      Config
	now      func() time.Time
}

// NewServer wires the handlers. A nil cache disables caching; a nil contact
// saver makes the contact form answer 503.
func NewServer(catalog Catalog, c cache.Cache, contacts ContactSaver, metrics *Metrics, logger zerolog.Logger, cfg Config) *Server {
	if c == nil {
		c = cache.Noop{}
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = DefaultCacheTTL
	}
	return &Server{
		catalog:  catalog,
		cache:    c,
		contacts: contacts,
		metrics:  metrics,
		logger:   logger,
		cfg:      cfg,
		now:      time.Now,
	}
}

func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(recovery(), RequestID(), AccessLog(s.logger), CORS(s.cfg.AllowedOrigins), Instrument(s.metrics))

	r.GET("/health", s.health)
	r.GET("/ready", s.ready)
	r.GET("/metrics", gin.WrapH(s.metrics.Handler()))

	v1 := r.Group("/api/v1")
	v1.GET("/scholarships", s.listScholarships)
	v1.GET("/scholarships/featured", s.featuredScholarships)
	v1.GET("/scholarships/:id", s.getScholarship)
	v1.GET("/options", s.options)
	v1.GET("/languages", s.languages)
	v1.GET("/messages", s.messages)
	v1.GET("/messages/:lang", s.messages)
	v1.POST("/contact", s.contact)

	r.NoRoute(func(c *gin.Context) {
		fail(c, ErrNotFound)
	})
	return r
}

// ListenAndServe blocks until ctx is canceled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", s.cfg.Addr).Msg("api listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		<-errCh
		return nil
	}
}

// InvalidateCache drops every cached listing. Called after a harvest.
func (s *Server) InvalidateCache(ctx context.Context) {
	if err := s.cache.Invalidate(ctx, cache.Prefix); err != nil {
		s.logger.Warn().Err(err).Msg("cache invalidation failed")
	}
}
