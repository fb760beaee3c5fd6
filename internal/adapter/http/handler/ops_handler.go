package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"enrollment-dispatch/internal/core/domain"
	"enrollment-dispatch/internal/core/ports"
	"enrollment-dispatch/pkg/apperror"
	"enrollment-dispatch/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// OpsHandler exposes the internal operational surface: manual worker ticks,
// ad-hoc scheduling, and endpoint delivery stats.
type OpsHandler struct {
	scheduler ports.Scheduler
	processor ports.RetryProcessor
	endpoints ports.WebhookEndpointRepository
	results   ports.ResultCache
	batchSize int
}

// NewOpsHandler creates the operational handler.
func NewOpsHandler(
	scheduler ports.Scheduler,
	processor ports.RetryProcessor,
	endpoints ports.WebhookEndpointRepository,
	results ports.ResultCache,
	batchSize int,
) *OpsHandler {
	if batchSize <= 0 {
		batchSize = 10
	}
	return &OpsHandler{
		scheduler: scheduler,
		processor: processor,
		endpoints: endpoints,
		results:   results,
		batchSize: batchSize,
	}
}

type scheduleRequest struct {
	Hook         string                 `json:"hook" binding:"required"`
	Args         map[string]interface{} `json:"args"`
	DelaySeconds int                    `json:"delay_seconds"`
}

// Schedule enqueues a task: POST /ops/schedule.
func (h *OpsHandler) Schedule(c *gin.Context) {
	var req scheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation("invalid request body: "+err.Error()))
		return
	}

	kind := domain.HookKind(req.Hook)
	if !kind.Valid() {
		response.Error(c, apperror.ErrUnknownHook(req.Hook))
		return
	}

	raw, err := encodeArgsMap(req.Args)
	if err != nil {
		response.Error(c, apperror.ErrMalformedArgs(err))
		return
	}
	args, err := domain.DecodeArgs(kind, raw)
	if err != nil {
		response.Error(c, apperror.ErrMalformedArgs(err))
		return
	}

	delay := time.Duration(req.DelaySeconds) * time.Second
	actionID, err := h.scheduler.Schedule(c.Request.Context(), kind, args, delay)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Accepted(c, gin.H{
		"action_id": actionID,
		"backend":   h.scheduler.Backend(),
	})
}

// CancelGroup sweeps pending work of a group: DELETE /ops/schedule/groups/:group.
func (h *OpsHandler) CancelGroup(c *gin.Context) {
	group := c.Param("group")
	if group == "" {
		response.Error(c, apperror.Validation("group is required"))
		return
	}
	if err := h.scheduler.CancelGroup(c.Request.Context(), group); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"group": group, "cancelled": true})
}

// ActionResult returns a cached handler result: GET /ops/actions/:id/result.
func (h *OpsHandler) ActionResult(c *gin.Context) {
	actionID := c.Param("id")

	raw, err := h.results.Get(c.Request.Context(), actionID)
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}
	if raw == nil {
		c.JSON(http.StatusNotFound, gin.H{"error_code": "SCH_004", "message": "no result for action"})
		return
	}
	c.Data(http.StatusOK, "application/json", raw)
}

type workerRunRequest struct {
	Limit int `json:"limit"`
}

// RunWorker triggers one retry batch immediately: POST /ops/worker/run.
func (h *OpsHandler) RunWorker(c *gin.Context) {
	req := workerRunRequest{Limit: h.batchSize}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, apperror.Validation("invalid request body: "+err.Error()))
			return
		}
	}
	if req.Limit <= 0 {
		req.Limit = h.batchSize
	}

	summary, err := h.processor.Process(c.Request.Context(), req.Limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, summary)
}

// WebhookStats returns the delivery counters of an endpoint:
// GET /ops/webhooks/:id/stats.
func (h *OpsHandler) WebhookStats(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("endpoint id must be a UUID"))
		return
	}

	ep, err := h.endpoints.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, apperror.ErrDatabaseError(err))
		return
	}
	if ep == nil {
		c.JSON(http.StatusNotFound, gin.H{"error_code": "WHK_001", "message": "endpoint not found"})
		return
	}

	response.OK(c, gin.H{
		"endpoint_id":       ep.ID,
		"instance_id":       ep.InstanceID,
		"is_active":         ep.IsActive,
		"events":            ep.Events,
		"success_count":     ep.SuccessCount,
		"failure_count":     ep.FailureCount,
		"last_triggered_at": ep.LastTriggeredAt,
	})
}

func encodeArgsMap(m map[string]interface{}) (json.RawMessage, error) {
	if m == nil {
		return json.RawMessage("{}"), nil
	}
	return json.Marshal(m)
}
