package metrics

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_Counters(t *testing.T) {
	m := NewManager()

	m.RecordEvaluation("Flush", time.Millisecond)
	m.RecordEvaluation("Flush", time.Millisecond)
	m.RecordEvaluation("Straight", time.Millisecond)
	m.RecordRejection("parse")
	m.RecordRecommendation("RAISE")
	m.RecordShowdown()
	m.SetWebsocketConnections(2)
	m.SetWebsocketConnections(1)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.evaluations.WithLabelValues("Flush")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.evaluations.WithLabelValues("Straight")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.rejections.WithLabelValues("parse")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.recommendations.WithLabelValues("RAISE")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.showdowns))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.wsConnections))
}

func TestManager_SeparateRegistries(t *testing.T) {
	// Two managers must not collide on registration.
	a := NewManager()
	b := NewManager(WithNamespace("other"))

	a.RecordShowdown()
	assert.Equal(t, 1.0, testutil.ToFloat64(a.showdowns))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.showdowns))
}

func TestManager_Handler(t *testing.T) {
	m := NewManager()
	m.RecordHTTPRequest("/api/evaluate", "POST", 200, 5*time.Millisecond)
	m.RecordBatch(4)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `oddside_http_requests_total{endpoint="/api/evaluate",method="POST",status_code="200"} 1`)
	assert.Contains(t, string(body), "oddside_batch_size_count 1")
}
