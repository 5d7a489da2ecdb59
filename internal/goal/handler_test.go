package goal_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/goal-tracker/internal/goal"
	"github.com/saulo-duarte/goal-tracker/internal/testutil"
)

func setupGoalRouter(t *testing.T) http.Handler {
	t.Helper()
	db := testutil.OpenInMemoryDB(t)
	require.NoError(t, db.AutoMigrate(&goal.Goal{}))

	c := goal.NewContainer(db)
	r := chi.NewRouter()
	r.Mount("/goals", goal.Routes(c.Handler))
	r.Mount("/view", goal.ViewRoutes(c.ViewHandler))
	return r
}

func performRequest(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var payload []byte
	if body != nil {
		payload, _ = json.Marshal(body)
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func createGoal(t *testing.T, r http.Handler, title string) int64 {
	t.Helper()
	rec := performRequest(r, http.MethodPost, "/goals", goal.GoalOptions{Title: title})
	require.Equal(t, http.StatusCreated, rec.Code)

	var id int64
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &id))
	return id
}

func goalPath(id int64) string {
	return "/goals/" + strconv.FormatInt(id, 10)
}

func TestGoalHandler_CreateAndGet(t *testing.T) {
	r := setupGoalRouter(t)
	id := createGoal(t, r, "Ship the demo")

	rec := performRequest(r, http.MethodGet, goalPath(id), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, float64(id), got["id"])
	assert.Equal(t, "Ship the demo", got["title"])
	assert.Equal(t, false, got["isComplete"])
}

func TestGoalHandler_List(t *testing.T) {
	r := setupGoalRouter(t)

	rec := performRequest(r, http.MethodGet, "/goals", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	createGoal(t, r, "one")
	createGoal(t, r, "two")

	rec = performRequest(r, http.MethodGet, "/goals", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var goals []goal.Goal
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &goals))
	require.Len(t, goals, 2)
	assert.Equal(t, "one", goals[0].Title)
	assert.Equal(t, "two", goals[1].Title)
}

func TestGoalHandler_NonNumericID(t *testing.T) {
	r := setupGoalRouter(t)

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		t.Run(method, func(t *testing.T) {
			rec := performRequest(r, method, "/goals/abc", goal.GoalOptions{Title: "x"})
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestGoalHandler_NotFound(t *testing.T) {
	r := setupGoalRouter(t)

	rec := performRequest(r, http.MethodGet, "/goals/42", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Goal not found\n", rec.Body.String())

	rec = performRequest(r, http.MethodPut, "/goals/42", goal.GoalOptions{Title: "x"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = performRequest(r, http.MethodPatch, "/goals/42/complete", goal.GoalCompletion{IsComplete: true})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGoalHandler_InvalidBody(t *testing.T) {
	r := setupGoalRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/goals", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGoalHandler_UpdateCompleteDelete(t *testing.T) {
	r := setupGoalRouter(t)
	id := createGoal(t, r, "draft")

	rec := performRequest(r, http.MethodPut, goalPath(id), goal.GoalOptions{Title: "final"})
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = performRequest(r, http.MethodPatch, goalPath(id)+"/complete", goal.GoalCompletion{IsComplete: true})
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = performRequest(r, http.MethodGet, goalPath(id), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var got goal.Goal
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "final", got.Title)
	assert.True(t, got.IsComplete)

	rec = performRequest(r, http.MethodDelete, goalPath(id), nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = performRequest(r, http.MethodGet, goalPath(id), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = performRequest(r, http.MethodDelete, goalPath(id), nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
