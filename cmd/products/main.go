package main

import (
	"fmt"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"ProductsAPI/internal/config"
	"ProductsAPI/internal/products"
	"ProductsAPI/pkg/kit"
)

const (
	service     = "products"
	limitWindow = time.Minute
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log, err := kit.NewLogger(service, cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, "init logger:", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	keys, err := products.NewKeyVerifier(cfg.APIKey, cfg.APIKeyHash)
	if err != nil {
		log.Fatal("invalid api key configuration", zap.Error(err))
	}

	s := &products.Server{
		Store: products.NewStore(),
		Log:   log,
	}
	if cfg.WriteLimitPerMin > 0 {
		s.WriteLimiter = kit.NewIPRateLimiter(cfg.WriteLimitPerMin, limitWindow)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	if cfg.MetricsEnabled && cfg.MetricsToken == "" {
		log.Warn("metrics enabled without METRICS_TOKEN; /metrics will reject every request")
	}

	h := products.NewHandler(s, products.HTTPDeps{
		Log:            log,
		Service:        service,
		Registry:       reg,
		Keys:           keys,
		MetricsEnabled: cfg.MetricsEnabled,
		MetricsToken:   cfg.MetricsToken,
	})

	err = kit.RunHTTPServer(kit.ServerConfig{
		Addr:              cfg.Addr(),
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		ShutdownTimeout:   cfg.ShutdownTimeout,
	}, h, log)
	if err != nil {
		log.Fatal("http server stopped", zap.Error(err))
	}
	log.Info("http server stopped")
}
