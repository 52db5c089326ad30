package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"time"

	httpSwagger "github.com/swaggo/http-swagger/v2"

	"newsboard/internal/config"
	"newsboard/internal/infra/newsprovider"
	"newsboard/internal/infra/probe"
	"newsboard/internal/infra/upstream"
	"newsboard/internal/observability/logging"
	"newsboard/internal/observability/tracing"

	newsUC "newsboard/internal/usecase/news"
	poetryUC "newsboard/internal/usecase/poetry"
	wallpaperUC "newsboard/internal/usecase/wallpaper"
	weatherUC "newsboard/internal/usecase/weather"

	hhttp "newsboard/internal/handler/http"
	"newsboard/internal/handler/http/middleware"
	hnews "newsboard/internal/handler/http/news"
	hpoetry "newsboard/internal/handler/http/poetry"
	"newsboard/internal/handler/http/requestid"
	hwallpaper "newsboard/internal/handler/http/wallpaper"
	hweather "newsboard/internal/handler/http/weather"

	_ "newsboard/docs" // swagger docs
)

// @title           Newsboard API
// @version         1.0
// @description     新闻、天气、诗词与壁纸聚合接口。
// @description     所有业务接口同时挂载在 /api 前缀下。

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

func main() {
	logger := initLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	shutdownTracing := tracing.Setup()
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(ctx); err != nil {
			logger.Error("failed to shut down tracer provider", slog.Any("error", err))
		}
	}()

	components := setupServer(logger, cfg)
	runServer(logger, cfg, components)
}

// initLogger builds the process logger from LOG_LEVEL and LOG_FORMAT and
// installs it as the slog default.
func initLogger() *slog.Logger {
	logger := logging.NewLoggerFromEnv()
	slog.SetDefault(logger)
	return logger
}

// ServerComponents holds what runServer needs beyond the handler.
type ServerComponents struct {
	Handler http.Handler
	Prober  *probe.Prober // nil when probing is disabled
}

// setupServer builds the upstream client, the use cases and the HTTP handler.
func setupServer(logger *slog.Logger, cfg *config.Config) *ServerComponents {
	upstreamClient := upstream.NewClient(cfg.UpstreamClientConfig(),
		upstream.WithLogger(logger.With(slog.String("component", "upstream"))))

	newsProvider, probeTargets := newNewsProvider(logger, cfg)
	for _, name := range sortedKeys(upstreamClient.Endpoints()) {
		probeTargets = append(probeTargets, probe.Target{Name: name, URL: upstreamClient.Endpoints()[name]})
	}

	var prober *probe.Prober
	if cfg.Probe.Enabled {
		prober = probe.New(probeTargets, probe.WithLogger(logger.With(slog.String("component", "probe"))))
	}

	var rateLimiter *hhttp.RateLimiter
	if cfg.RateLimit.Enabled {
		rateLimiter = hhttp.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst, cfg.RateLimit.TrustForwarded)
		logger.Info("rate limiting initialized",
			slog.Float64("rps", cfg.RateLimit.RPS),
			slog.Int("burst", cfg.RateLimit.Burst),
			slog.Bool("trust_forwarded", cfg.RateLimit.TrustForwarded))
	} else {
		logger.Warn("rate limiting is DISABLED - not recommended for production")
	}

	mux := setupRoutes(cfg, routeDeps{
		news:      &newsUC.Service{Provider: newsProvider},
		weather:   &weatherUC.Service{Fetcher: upstreamClient, DefaultCity: cfg.Weather.DefaultCity},
		poetry:    &poetryUC.Service{Fetcher: upstreamClient},
		wallpaper: &wallpaperUC.Service{Fetcher: upstreamClient},
		breakers:  upstreamClient,
		prober:    prober,
		limiter:   rateLimiter,
	})

	return &ServerComponents{
		Handler: applyMiddleware(logger, cfg, mux, rateLimiter),
		Prober:  prober,
	}
}

// newNewsProvider returns the configured news provider and, for a remote
// feed, the feed as an extra probe target.
func newNewsProvider(logger *slog.Logger, cfg *config.Config) (newsUC.Provider, []probe.Target) {
	if cfg.News.Provider != config.NewsProviderFeed {
		logger.Info("news provider: static sample data")
		return newsprovider.NewStaticProvider(), nil
	}

	feedCfg := cfg.FeedConfig()
	logger.Info("news provider: feed",
		slog.String("url", feedCfg.URL),
		slog.Duration("refresh_interval", feedCfg.RefreshInterval),
		slog.Bool("extract_content", feedCfg.ExtractContent))

	p := newsprovider.NewFeedProvider(feedCfg,
		newsprovider.WithFeedLogger(logger.With(slog.String("component", "news_feed"))))
	return p, []probe.Target{{Name: "news_feed", URL: feedCfg.URL}}
}

type routeDeps struct {
	news      *newsUC.Service
	weather   *weatherUC.Service
	poetry    *poetryUC.Service
	wallpaper *wallpaperUC.Service
	breakers  hhttp.BreakerReporter
	prober    *probe.Prober
	limiter   *hhttp.RateLimiter
}

// setupRoutes registers the API and operational routes.
func setupRoutes(cfg *config.Config, deps routeDeps) *http.ServeMux {
	mux := http.NewServeMux()

	health := &hhttp.HealthHandler{Version: cfg.Version, Breakers: deps.breakers, RateLimiter: deps.limiter}
	ready := &hhttp.ReadyHandler{}
	if deps.prober != nil {
		ready.Probe = deps.prober
	}
	mux.Handle("GET /health", health)
	mux.Handle("GET /ready", ready)
	mux.Handle("GET /metrics", hhttp.MetricsHandler())
	mux.Handle("GET "+middleware.SwaggerPathPrefix, httpSwagger.WrapHandler)

	hnews.Register(mux, deps.news, cfg.PaginationSettings())
	hweather.Register(mux, deps.weather)
	hpoetry.Register(mux, deps.poetry)
	hwallpaper.Register(mux, deps.wallpaper)

	return mux
}

// applyMiddleware wraps the handler with the middleware chain.
// Order, outermost first: CORS → Security Headers → Request ID → request logger → Tracing →
// Rate Limit → Recovery → Access Log → Input Validation → Timeout →
// Body Limit → Metrics.
func applyMiddleware(logger *slog.Logger, cfg *config.Config, handler http.Handler, rateLimiter *hhttp.RateLimiter) http.Handler {
	logger.Info("CORS enabled",
		slog.Any("allowed_origins", cfg.CORS.AllowedOrigins))
	if !cfg.Security.CSPEnabled {
		logger.Warn("CSP is disabled")
	}

	chain := handler

	// Apply in reverse order (innermost to outermost)
	chain = hhttp.MetricsMiddleware(chain)
	chain = hhttp.LimitRequestBody(cfg.HTTP.MaxBodyBytes)(chain)
	chain = hhttp.Timeout(cfg.HTTP.RequestTimeout)(chain)
	chain = hhttp.InputValidation()(chain)
	chain = hhttp.Logging(logger)(chain)
	chain = hhttp.Recover(logger)(chain)
	if rateLimiter != nil {
		chain = rateLimiter.Limit(chain)
	}
	chain = tracing.Middleware(chain)
	chain = logging.Middleware(logger)(chain)
	chain = requestid.Middleware(chain)
	chain = middleware.SecurityHeaders(middleware.SecurityConfig{
		CSPEnabled:    cfg.Security.CSPEnabled,
		CSPReportOnly: cfg.Security.CSPReportOnly,
	})(chain)
	chain = middleware.CORS(middleware.CORSConfig{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		Logger:         logger,
	})(chain)

	return chain
}

// runServer starts the probe and the HTTP server and handles graceful shutdown.
func runServer(logger *slog.Logger, cfg *config.Config, components *ServerComponents) {
	// Context for background work (probe checks)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if components.Prober != nil {
		if err := components.Prober.Start(ctx, cfg.Probe.Schedule); err != nil {
			logger.Error("failed to start upstream probe", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("upstream probe started", slog.String("schedule", cfg.Probe.Schedule))
	}

	srv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           components.Handler,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attacks
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		logger.Info("server starting",
			slog.String("addr", cfg.HTTP.Addr),
			slog.String("version", cfg.Version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	// Shutdown HTTP server with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}

	cancel()
	if components.Prober != nil {
		components.Prober.Stop()
		logger.Debug("upstream probe stopped")
	}
	logger.Info("server stopped")
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
