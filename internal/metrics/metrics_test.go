package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordGoalOperation(t *testing.T) {
	before := testutil.ToFloat64(goalOperations.WithLabelValues("create", "ok"))
	RecordGoalOperation("create", nil)
	assert.Equal(t, before+1, testutil.ToFloat64(goalOperations.WithLabelValues("create", "ok")))

	beforeErr := testutil.ToFloat64(goalOperations.WithLabelValues("create", "error"))
	RecordGoalOperation("create", errors.New("boom"))
	assert.Equal(t, beforeErr+1, testutil.ToFloat64(goalOperations.WithLabelValues("create", "error")))
}

func TestHandlerExposesCollectors(t *testing.T) {
	RecordHTTPRequest(http.MethodGet, "/goals", "200", 5*time.Millisecond)
	RecordUserOperation("read", nil)

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, "goal_tracker_http_requests_total"))
	assert.True(t, strings.Contains(body, "goal_tracker_users_operations_total"))
}
