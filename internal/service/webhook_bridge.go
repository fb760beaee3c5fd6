package service

import (
	"context"

	"enrollment-dispatch/internal/core/domain"
	"enrollment-dispatch/internal/core/ports"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// RegisterWebhookBridge subscribes webhook fan-out to the retry lifecycle
// events: a succeeded replay fires the completion event of its submission
// kind, exhausted retries fire the failure event. Each terminal transition
// publishes exactly once, so each fires exactly one fan-out.
func RegisterWebhookBridge(
	bus ports.EventBus,
	submissions ports.SubmissionRepository,
	dispatcher ports.WebhookDispatcher,
	log zerolog.Logger,
) {
	bus.Subscribe(TopicRetrySucceeded, func(ctx context.Context, event string, payload map[string]interface{}) {
		bridge(ctx, submissions, dispatcher, log, payload, true)
	})
	bus.Subscribe(TopicRetryExhausted, func(ctx context.Context, event string, payload map[string]interface{}) {
		bridge(ctx, submissions, dispatcher, log, payload, false)
	})
}

func bridge(
	ctx context.Context,
	submissions ports.SubmissionRepository,
	dispatcher ports.WebhookDispatcher,
	log zerolog.Logger,
	payload map[string]interface{},
	succeeded bool,
) {
	subRef, _ := payload["submission_id"].(string)
	instanceID, _ := payload["instance_id"].(string)

	subID, err := uuid.Parse(subRef)
	if err != nil {
		log.Error().Str("submission_id", subRef).Msg("retry event carries invalid submission ref")
		return
	}

	sub, err := submissions.GetByID(ctx, subID)
	if err != nil || sub == nil {
		log.Error().Err(err).Str("submission_id", subRef).Msg("loading submission for webhook fan-out")
		return
	}

	webhookEvent := sub.FailedEvent()
	if succeeded {
		webhookEvent = sub.CompletedEvent()
	}

	data := make(map[string]interface{}, len(sub.FormData)+6)
	for k, v := range sub.FormData {
		data[k] = v
	}
	data["submission_id"] = sub.ID.String()
	data["instance_id"] = sub.InstanceID
	data["retry_count"] = payload["retry_count"]
	if succeeded {
		data["status"] = string(domain.SubmissionStatusCompleted)
	} else {
		data["status"] = string(domain.SubmissionStatusFailed)
		data["last_error"] = payload["last_error"]
	}

	if err := dispatcher.Trigger(ctx, webhookEvent, data, instanceID); err != nil {
		log.Error().Err(err).Str("event", webhookEvent).Msg("webhook fan-out failed")
	}
}
