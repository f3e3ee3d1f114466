package cli

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/aretw0/waterjug/internal/config"
	"github.com/aretw0/waterjug/pkg/domain"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Port:            "0",
		LogLevel:        "info",
		LogFormat:       "text",
		ShutdownTimeout: time.Second,
		Metrics:         true,
	}
}

func TestCreateRuntime_WiresMetrics(t *testing.T) {
	var logs bytes.Buffer
	rt, err := createRuntime(testConfig(), &logs)
	require.NoError(t, err)
	require.NotNil(t, rt.Metrics)
	require.NotNil(t, rt.Registry)

	_, err = rt.Engine.Solve(context.Background(), domain.Puzzle{X: 2, Y: 10, Z: 4})
	require.NoError(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(rt.Metrics.Solves.WithLabelValues("solved")))
	assert.Contains(t, logs.String(), "solve finished")
}

func TestCreateRuntime_DebugHooks(t *testing.T) {
	cfg := testConfig()
	cfg.LogLevel = "debug"
	cfg.Metrics = false

	var logs bytes.Buffer
	rt, err := createRuntime(cfg, &logs)
	require.NoError(t, err)
	assert.Nil(t, rt.Metrics)

	_, err = rt.Engine.Solve(context.Background(), domain.Puzzle{X: 2, Y: 3, Z: 5})
	require.NoError(t, err)

	assert.Contains(t, logs.String(), "Solve Start")
	assert.Contains(t, logs.String(), "outcome=short_circuit")
}

func TestCreateRuntime_InvalidConfig(t *testing.T) {
	cfg := testConfig()
	cfg.LogFormat = "xml"

	_, err := createRuntime(cfg, &bytes.Buffer{})
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestNewRuntime_Overrides(t *testing.T) {
	t.Chdir(t.TempDir())

	rt, err := NewRuntime(Overrides{Port: "7070", LogLevel: "warn"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "7070", rt.Config.Port)
	assert.Equal(t, "warn", rt.Config.LogLevel)
}
