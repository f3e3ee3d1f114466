package observability

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aretw0/waterjug/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Hooks(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	hooks := m.Hooks()

	ctx := context.Background()
	hooks.OnSolveFinish(ctx, &domain.SolveEvent{Outcome: domain.OutcomeSolved, Steps: 4, Duration: time.Millisecond})
	hooks.OnSolveFinish(ctx, &domain.SolveEvent{Outcome: domain.OutcomeSolved, Steps: 6, Duration: time.Millisecond})
	hooks.OnSolveFinish(ctx, &domain.SolveEvent{Outcome: domain.OutcomeShortCircuit})

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Solves.WithLabelValues("solved")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Solves.WithLabelValues("short_circuit")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.Solves.WithLabelValues("unsolvable")))

	count, err := testutil.GatherAndCount(reg, "waterjug_trace_steps")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestHandler(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	m.Requests.WithLabelValues("POST", "/solution", "200").Inc()

	rec := httptest.NewRecorder()
	Handler(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, `waterjug_http_requests_total{code="200",method="POST",route="/solution"} 1`), body)
}
