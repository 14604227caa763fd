package metrics

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

// TestMain fails the package if any test leaks goroutines.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestNewProvider(t *testing.T) {
	provider, err := NewProvider("lifelog")
	require.NoError(t, err)
	defer func() { _ = provider.Shutdown(context.Background()) }()

	assert.NotNil(t, provider.MeterProvider())
	assert.NotNil(t, provider.Handler())
}

func TestProviderHandlerServesMetrics(t *testing.T) {
	provider, err := NewProvider("lifelog")
	require.NoError(t, err)
	defer func() { _ = provider.Shutdown(context.Background()) }()

	business, err := NewBusinessMetrics(provider.MeterProvider(), "lifelog")
	require.NoError(t, err)

	business.RecordOperation(context.Background(), "journal", "entry_create", "success")
	business.RecordDuration(context.Background(), "journal", "entry_create", 25*time.Millisecond, "success")

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/metrics", nil)
	provider.Handler().ServeHTTP(w, req)

	require.Equal(t, 200, w.Code)
	assert.Contains(t, w.Body.String(), "lifelog_operations_total")
}

func TestNoOpBusinessMetrics(t *testing.T) {
	m := NewNoOpBusinessMetrics()

	assert.NotPanics(t, func() {
		m.RecordOperation(context.Background(), "journal", "entry_create", "success")
		m.RecordDuration(context.Background(), "journal", "entry_create", time.Second, "error")
	})
}
