package cli

import (
	"io"
	"log/slog"

	"github.com/aretw0/waterjug"
	"github.com/aretw0/waterjug/internal/config"
	"github.com/aretw0/waterjug/internal/logging"
	"github.com/aretw0/waterjug/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Runtime bundles what every command needs: settings, logger, engine and metrics.
type Runtime struct {
	Config   *config.Config
	Logger   *slog.Logger
	Engine   *waterjug.Engine
	Metrics  *observability.Metrics
	Registry *prometheus.Registry
}

// Overrides are command-line flags that take precedence over the config file.
type Overrides struct {
	ConfigPath string
	Port       string
	LogLevel   string
}

// NewRuntime loads the configuration and wires the engine with standard CLI conventions.
// Logs go to logOut.
func NewRuntime(o Overrides, logOut io.Writer) (*Runtime, error) {
	cfg, err := config.Load(o.ConfigPath)
	if err != nil {
		return nil, err
	}
	if o.Port != "" {
		cfg.Port = o.Port
	}
	if o.LogLevel != "" {
		cfg.LogLevel = o.LogLevel
	}
	return createRuntime(cfg, logOut)
}

func createRuntime(cfg *config.Config, logOut io.Writer) (*Runtime, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	logger := logging.New(logOut, level, cfg.LogFormat)

	rt := &Runtime{Config: cfg, Logger: logger}

	// 1. Logger & Hooks
	engineOpts := []waterjug.Option{waterjug.WithLogger(logger)}
	if level <= slog.LevelDebug {
		engineOpts = append(engineOpts, waterjug.WithLifecycleHooks(createDebugHooks(logger)))
	}

	// 2. Metrics on a private registry, with the usual process collectors
	if cfg.Metrics {
		rt.Registry = prometheus.NewRegistry()
		rt.Registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		rt.Metrics = observability.NewMetrics(rt.Registry)
		engineOpts = append(engineOpts, waterjug.WithLifecycleHooks(rt.Metrics.Hooks()))
	}

	// 3. Initialize
	rt.Engine = waterjug.New(engineOpts...)
	return rt, nil
}
