package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"enrollment-dispatch/internal/core/domain"
	"enrollment-dispatch/internal/core/ports"
	"enrollment-dispatch/internal/core/ports/mocks"
	"enrollment-dispatch/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeScheduler records the last Schedule call.
type fakeScheduler struct {
	lastHook  domain.HookKind
	lastArgs  domain.HookArgs
	lastDelay time.Duration
	cancelled []string
	err       error
}

func (f *fakeScheduler) Schedule(ctx context.Context, hook domain.HookKind, args domain.HookArgs, delay time.Duration) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.lastHook = hook
	f.lastArgs = args
	f.lastDelay = delay
	return "action-123", nil
}

func (f *fakeScheduler) CancelGroup(ctx context.Context, group string) error {
	f.cancelled = append(f.cancelled, group)
	return nil
}

func (f *fakeScheduler) Backend() string { return "durable" }

type fakeProcessor struct {
	lastLimit int
	summary   ports.ProcessSummary
	err       error
}

func (f *fakeProcessor) Process(ctx context.Context, limit int) (ports.ProcessSummary, error) {
	f.lastLimit = limit
	return f.summary, f.err
}

type fakeResults struct {
	data map[string][]byte
}

func (f *fakeResults) Set(ctx context.Context, actionID string, result []byte, ttl time.Duration) error {
	return nil
}

func (f *fakeResults) Get(ctx context.Context, actionID string) ([]byte, error) {
	return f.data[actionID], nil
}

func newTestRouter(t *testing.T, sched *fakeScheduler, proc *fakeProcessor, results *fakeResults) (*gin.Engine, *mocks.MockWebhookEndpointRepository) {
	ctrl := gomock.NewController(t)
	endpoints := mocks.NewMockWebhookEndpointRepository(ctrl)
	r := SetupRouter(RouterDeps{
		Scheduler:  sched,
		Processor:  proc,
		Endpoints:  endpoints,
		Results:    results,
		BatchLimit: 10,
		Logger:     zerolog.New(io.Discard),
	})
	return r, endpoints
}

func TestOps_Schedule(t *testing.T) {
	sched := &fakeScheduler{}
	r, _ := newTestRouter(t, sched, &fakeProcessor{}, &fakeResults{})

	body, _ := json.Marshal(map[string]interface{}{
		"hook": "webhook",
		"args": map[string]interface{}{
			"event":       "enrollment.completed",
			"instance_id": "inst-1",
		},
		"delay_seconds": 30,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/ops/schedule", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusAccepted, w.Code)
	assert.Contains(t, w.Body.String(), "action-123")
	assert.Contains(t, w.Body.String(), "durable")

	assert.Equal(t, domain.HookWebhook, sched.lastHook)
	assert.Equal(t, 30*time.Second, sched.lastDelay)
	args, ok := sched.lastArgs.(domain.WebhookArgs)
	require.True(t, ok)
	assert.Equal(t, "inst-1", args.InstanceID)
}

func TestOps_Schedule_UnknownHook(t *testing.T) {
	r, _ := newTestRouter(t, &fakeScheduler{}, &fakeProcessor{}, &fakeResults{})

	body, _ := json.Marshal(map[string]interface{}{"hook": "no_such_hook"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/ops/schedule", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "SCH_001")
}

func TestOps_Schedule_SchedulerError(t *testing.T) {
	sched := &fakeScheduler{err: apperror.ErrQueueError(errors.New("redis down"))}
	r, _ := newTestRouter(t, sched, &fakeProcessor{}, &fakeResults{})

	body, _ := json.Marshal(map[string]interface{}{
		"hook": "webhook",
		"args": map[string]interface{}{"event": "e", "instance_id": "i"},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/ops/schedule", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "SYS_002")
}

func TestOps_CancelGroup(t *testing.T) {
	sched := &fakeScheduler{}
	r, _ := newTestRouter(t, sched, &fakeProcessor{}, &fakeResults{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/ops/schedule/groups/inst-1", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"inst-1"}, sched.cancelled)
}

func TestOps_ActionResult(t *testing.T) {
	results := &fakeResults{data: map[string][]byte{
		"action-123": []byte(`{"success":true}`),
	}}
	r, _ := newTestRouter(t, &fakeScheduler{}, &fakeProcessor{}, results)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ops/actions/action-123/result", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/ops/actions/unknown/result", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestOps_RunWorker(t *testing.T) {
	proc := &fakeProcessor{summary: ports.ProcessSummary{Processed: 2, Succeeded: 1, Retried: 1}}
	r, _ := newTestRouter(t, &fakeScheduler{}, proc, &fakeResults{})

	body, _ := json.Marshal(map[string]interface{}{"limit": 5})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/ops/worker/run", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 5, proc.lastLimit)
	assert.Contains(t, w.Body.String(), `"processed":2`)
}

func TestOps_RunWorker_DefaultLimit(t *testing.T) {
	proc := &fakeProcessor{}
	r, _ := newTestRouter(t, &fakeScheduler{}, proc, &fakeResults{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/ops/worker/run", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 10, proc.lastLimit)
}

func TestOps_WebhookStats(t *testing.T) {
	r, endpoints := newTestRouter(t, &fakeScheduler{}, &fakeProcessor{}, &fakeResults{})

	id := uuid.New()
	endpoints.EXPECT().GetByID(gomock.Any(), id).Return(&domain.WebhookEndpoint{
		ID:           id,
		InstanceID:   "inst-1",
		IsActive:     true,
		Events:       []string{"*"},
		SuccessCount: 12,
		FailureCount: 3,
	}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ops/webhooks/"+id.String()+"/stats", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success_count":12`)
	assert.Contains(t, w.Body.String(), `"failure_count":3`)
}

func TestOps_WebhookStats_NotFound(t *testing.T) {
	r, endpoints := newTestRouter(t, &fakeScheduler{}, &fakeProcessor{}, &fakeResults{})

	id := uuid.New()
	endpoints.EXPECT().GetByID(gomock.Any(), id).Return(nil, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ops/webhooks/"+id.String()+"/stats", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHealthz(t *testing.T) {
	r, _ := newTestRouter(t, &fakeScheduler{}, &fakeProcessor{}, &fakeResults{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"healthy"`)
	assert.Contains(t, w.Body.String(), `"backend":"durable"`)
}
