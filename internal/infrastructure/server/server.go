package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apihttp "github.com/GriffinCanCode/BlinkMD/backend/internal/api/http"
	"github.com/GriffinCanCode/BlinkMD/backend/internal/api/middleware"
	"github.com/GriffinCanCode/BlinkMD/backend/internal/api/ws"
	"github.com/GriffinCanCode/BlinkMD/backend/internal/domain/commands"
	"github.com/GriffinCanCode/BlinkMD/backend/internal/domain/files"
	"github.com/GriffinCanCode/BlinkMD/backend/internal/domain/shortcuts"
	"github.com/GriffinCanCode/BlinkMD/backend/internal/host"
	"github.com/GriffinCanCode/BlinkMD/backend/internal/infrastructure/config"
	"github.com/GriffinCanCode/BlinkMD/backend/internal/infrastructure/logging"
	"github.com/GriffinCanCode/BlinkMD/backend/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/BlinkMD/backend/internal/infrastructure/tracing"
)

const shutdownTimeout = 5 * time.Second

// Server wraps the HTTP server and dependencies
type Server struct {
	router    *gin.Engine
	http      *http.Server
	app       *host.App
	hub       *ws.Hub
	commands  *commands.Registry
	registrar *shortcuts.Registrar
	logger    *logging.Logger
	tracer    *tracing.Tracer
	config    *config.Config
	metrics   *monitoring.Metrics
}

// Option configures a Server.
type Option func(*options)

type options struct {
	logger *logging.Logger
	exit   func(int)
	host   shortcuts.Host
	fsys   files.FS
}

// WithLogger replaces the logger built from config.
func WithLogger(logger *logging.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithExitFunc replaces os.Exit for exit_app.
func WithExitFunc(fn func(int)) Option {
	return func(o *options) { o.exit = fn }
}

// WithShortcutHost replaces the in-memory shortcut host.
func WithShortcutHost(h shortcuts.Host) Option {
	return func(o *options) { o.host = h }
}

// WithFS replaces the OS filesystem used by the file commands.
func WithFS(fsys files.FS) Option {
	return func(o *options) { o.fsys = fsys }
}

// NewServer creates a new server instance. Shortcut registration failures
// abort construction.
func NewServer(cfg *config.Config, opts ...Option) (*Server, error) {
	o := options{fsys: files.OSFS{}}
	for _, opt := range opts {
		opt(&o)
	}

	logger := o.logger
	if logger == nil {
		var err error
		logger, err = logging.New(logging.Config{
			Level:       cfg.Logging.Level,
			Development: cfg.Logging.Development,
			Output:      cfg.Logging.Output,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create logger: %w", err)
		}
	}

	logger.Info("Initializing BlinkMD backend",
		zap.String("addr", cfg.Server.Addr()),
		zap.String("platform", cfg.Shortcuts.ResolvedPlatform()),
	)

	// Initialize metrics first (needed by other components)
	metrics := monitoring.NewMetrics()
	tracer := tracing.New("backend", logger.Logger)

	hostOpts := []host.Option{}
	if o.exit != nil {
		hostOpts = append(hostOpts, host.WithExitFunc(o.exit))
	}
	app := host.New(logger.Logger, hostOpts...)
	app.OnExit(tracer.Close)
	app.OnExit(logger.Sync)

	hub := ws.NewHub(logger.Logger).WithMetrics(metrics)
	app.SetEmitter(hub)

	// Commands
	registry := commands.NewRegistry(logger.Logger).WithMetrics(metrics)
	fileService := files.NewService(o.fsys, logger.Logger)
	if err := commands.RegisterBuiltins(registry, fileService, app); err != nil {
		tracer.Close()
		return nil, fmt.Errorf("failed to register commands: %w", err)
	}

	// Global shortcuts
	registrar, err := setupShortcuts(cfg.Shortcuts, app, o.host, metrics, logger.Logger)
	if err != nil {
		tracer.Close()
		return nil, err
	}

	// Create router
	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(tracing.HTTPMiddleware(tracer))
	router.Use(monitoring.Middleware(metrics))

	// One allowlist guards both the HTTP routes and the IPC socket
	origins := middleware.DefaultOrigins
	if len(cfg.CORS.AllowOrigins) > 0 {
		origins = middleware.Origins(cfg.CORS.AllowOrigins)
	}
	if origins.AllowAll() {
		logger.Warn("CORS allows every origin; any web page can invoke commands")
	}
	corsCfg := middleware.DefaultCORSConfig()
	corsCfg.AllowOrigins = origins
	router.Use(middleware.CORS(corsCfg))

	if cfg.RateLimit.Enabled {
		logger.Info("Rate limiting enabled",
			zap.Int("rps", cfg.RateLimit.RequestsPerSecond),
			zap.Int("burst", cfg.RateLimit.Burst),
		)
		rl := middleware.DefaultRateLimitConfig()
		rl.RequestsPerSecond = cfg.RateLimit.RequestsPerSecond
		rl.Burst = cfg.RateLimit.Burst
		router.Use(middleware.RateLimit(rl))
	}

	handlers := apihttp.NewHandlers(registry, registrar, metrics, hub.Count, logger.Logger)
	primary := shortcuts.PrimaryModifier(cfg.Shortcuts.ResolvedPlatform())
	wsHandler := ws.NewHandler(hub, registry, registrar, primary, tracer, logger.Logger).
		WithOrigins(origins)

	// Register routes
	router.GET("/", handlers.Root)
	router.GET("/health", handlers.Health)
	router.GET("/ping", handlers.Ping)

	router.POST("/commands/:name", handlers.InvokeCommand)
	router.GET("/shortcuts", handlers.Shortcuts)
	router.POST("/logs", handlers.StreamLogs)

	// Metrics endpoints
	router.GET("/metrics", gin.WrapH(metrics.Handler()))
	router.GET("/metrics/json", handlers.MetricsJSON)

	// WebSocket
	router.GET("/ipc", wsHandler.HandleConnection)

	logger.Info("Server initialized successfully",
		zap.Strings("commands", registry.Names()),
		zap.Int("shortcuts", len(registrar.Bindings())),
	)

	return &Server{
		router:    router,
		http:      &http.Server{Addr: cfg.Server.Addr(), Handler: router},
		app:       app,
		hub:       hub,
		commands:  registry,
		registrar: registrar,
		logger:    logger,
		tracer:    tracer,
		config:    cfg,
		metrics:   metrics,
	}, nil
}

func setupShortcuts(cfg config.ShortcutConfig, app *host.App, h shortcuts.Host, metrics *monitoring.Metrics, logger *zap.Logger) (*shortcuts.Registrar, error) {
	var overrides shortcuts.Overrides
	if cfg.KeymapFile != "" {
		loaded, err := shortcuts.LoadOverrides(cfg.KeymapFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load keymap: %w", err)
		}
		overrides = loaded
		logger.Info("Loaded keymap overrides", zap.String("path", cfg.KeymapFile))
	}

	bindings, err := shortcuts.Resolve(cfg.ResolvedPlatform(), shortcuts.Options{
		Split:     cfg.SplitEnabled,
		Overrides: overrides,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to resolve shortcuts: %w", err)
	}

	if h == nil {
		h = shortcuts.NewSoftwareHost()
	}
	registrar := shortcuts.NewRegistrar(bindings, app, logger).WithMetrics(metrics)
	if err := registrar.Setup(h); err != nil {
		return nil, fmt.Errorf("failed to set up global shortcuts: %w", err)
	}
	return registrar, nil
}

// Handler returns the HTTP handler
func (s *Server) Handler() http.Handler {
	return s.router
}

// Host returns the host controller
func (s *Server) Host() *host.App {
	return s.app
}

// Run starts the HTTP server and blocks until it stops.
func (s *Server) Run() error {
	ln, err := net.Listen("tcp", s.http.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.http.Addr, err)
	}
	return s.Serve(ln)
}

// Serve accepts connections on ln. It returns nil after Close.
func (s *Server) Serve(ln net.Listener) error {
	s.logger.Info("Starting HTTP server", zap.String("addr", ln.Addr().String()))
	if err := s.http.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Close gracefully shuts down the server
func (s *Server) Close() error {
	s.logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	err := s.http.Shutdown(ctx)
	if err != nil {
		s.logger.Error("Failed to shut down HTTP server", zap.Error(err))
		err = fmt.Errorf("failed to shut down HTTP server: %w", err)
	}

	s.tracer.Close()
	s.logger.Sync()
	return err
}
