package service

import (
	"context"
	"fmt"
	"time"

	"enrollment-dispatch/internal/core/domain"
	"enrollment-dispatch/internal/core/ports"
	"enrollment-dispatch/pkg/apperror"

	"github.com/rs/zerolog"
)

// RetryProcessorService is the periodically invoked worker. One invocation
// claims a bounded batch of due records, replays each failed operation
// against the provider API, and records outcomes sequentially. Throughput is
// deliberately traded for simplicity: volumes are tenant-scale.
type RetryProcessorService struct {
	store       ports.RetryStore
	submissions ports.SubmissionRepository
	connector   ports.Connector
	credentials ports.CredentialsProvider
	reclaimAge  time.Duration
	log         zerolog.Logger
}

// NewRetryProcessor creates the worker service.
func NewRetryProcessor(
	store ports.RetryStore,
	submissions ports.SubmissionRepository,
	connector ports.Connector,
	credentials ports.CredentialsProvider,
	reclaimAge time.Duration,
	log zerolog.Logger,
) *RetryProcessorService {
	if reclaimAge <= 0 {
		reclaimAge = 15 * time.Minute
	}
	return &RetryProcessorService{
		store:       store,
		submissions: submissions,
		connector:   connector,
		credentials: credentials,
		reclaimAge:  reclaimAge,
		log:         log,
	}
}

// Process implements ports.RetryProcessor.
func (p *RetryProcessorService) Process(ctx context.Context, limit int) (ports.ProcessSummary, error) {
	var summary ports.ProcessSummary

	reclaimed, err := p.store.ReclaimStuck(ctx, p.reclaimAge)
	if err != nil {
		p.log.Error().Err(err).Msg("reclaiming stuck records")
	}
	summary.Reclaimed = reclaimed

	records, err := p.store.GetDue(ctx, limit)
	if err != nil {
		return summary, err
	}

	for i := range records {
		rec := &records[i]
		summary.Processed++
		p.processOne(ctx, rec, &summary)
	}

	p.log.Info().
		Int64("reclaimed", summary.Reclaimed).
		Int("processed", summary.Processed).
		Int("succeeded", summary.Succeeded).
		Int("retried", summary.Retried).
		Int("permanently_failed", summary.PermanentlyFailed).
		Msg("retry batch finished")
	return summary, nil
}

func (p *RetryProcessorService) processOne(ctx context.Context, rec *domain.RetryRecord, summary *ports.ProcessSummary) {
	log := p.log.With().Str("record_id", rec.ID.String()).Str("submission_id", rec.SubmissionID.String()).Logger()

	sub, err := p.submissions.GetByID(ctx, rec.SubmissionID)
	if err != nil {
		// Infrastructure failure: leave the claim in place, stuck-job
		// reclamation returns it to pending later.
		log.Error().Err(err).Msg("loading submission for replay")
		return
	}
	if sub == nil {
		p.finalize(ctx, rec, fmt.Errorf("submission %s no longer exists", rec.SubmissionID), summary)
		return
	}

	creds, err := p.credentials.Get(ctx, sub.InstanceID)
	if err != nil {
		switch apperror.Code(err) {
		case "CFG_002", "CFG_003":
			// Misconfiguration: retrying cannot fix a missing connector
			// or undecryptable credentials.
			p.finalize(ctx, rec, fmt.Errorf("resolving credentials for instance %s: %w", sub.InstanceID, err), summary)
		default:
			// Credential store failure: leave the claim in place,
			// stuck-job reclamation returns it to pending later.
			log.Error().Err(err).Msg("resolving credentials for replay")
		}
		return
	}

	result, callErr := p.replay(ctx, creds, sub)
	if callErr == nil && result.Success {
		if err := p.store.RecordOutcome(ctx, rec, true, nil); err != nil {
			log.Error().Err(err).Msg("recording success outcome")
			return
		}
		if err := p.submissions.UpdateStatus(ctx, sub.ID, domain.SubmissionStatusCompleted); err != nil {
			log.Error().Err(err).Msg("updating submission status")
		}
		summary.Succeeded++
		return
	}

	cause := callErr
	if cause == nil {
		cause = fmt.Errorf("provider rejected replay: %s", result.Code)
	}
	if err := p.store.RecordOutcome(ctx, rec, false, cause); err != nil {
		log.Error().Err(err).Msg("recording failure outcome")
		return
	}

	if rec.Status == domain.RetryStatusFailed {
		summary.PermanentlyFailed++
		if err := p.submissions.UpdateStatus(ctx, sub.ID, domain.SubmissionStatusFailed); err != nil {
			log.Error().Err(err).Msg("updating submission status")
		}
		return
	}

	summary.Retried++
	if err := p.submissions.UpdateStatus(ctx, sub.ID, domain.SubmissionStatusRetrying); err != nil {
		log.Error().Err(err).Msg("updating submission status")
	}
}

// replay resolves the domain operation from the stored form data: scheduling
// fields mean the original call was an appointment booking.
func (p *RetryProcessorService) replay(ctx context.Context, creds string, sub *domain.Submission) (ports.ConnectorResult, error) {
	if sub.IsAppointment() {
		return p.connector.BookAppointment(ctx, creds, sub.FormData)
	}
	return p.connector.SubmitEnrollment(ctx, creds, sub.FormData)
}

func (p *RetryProcessorService) finalize(ctx context.Context, rec *domain.RetryRecord, cause error, summary *ports.ProcessSummary) {
	if err := p.store.FinalizeFailure(ctx, rec, cause); err != nil {
		p.log.Error().Err(err).Str("record_id", rec.ID.String()).Msg("finalizing permanent failure")
		return
	}
	summary.PermanentlyFailed++
	if err := p.submissions.UpdateStatus(ctx, rec.SubmissionID, domain.SubmissionStatusFailed); err != nil {
		p.log.Error().Err(err).Str("record_id", rec.ID.String()).Msg("updating submission status")
	}
}
