package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"enrollment-dispatch/config"
	"enrollment-dispatch/internal/adapter/connector"
	httpHandler "enrollment-dispatch/internal/adapter/http/handler"
	pgStorage "enrollment-dispatch/internal/adapter/storage/postgres"
	redisStorage "enrollment-dispatch/internal/adapter/storage/redis"
	"enrollment-dispatch/internal/core/domain"
	"enrollment-dispatch/internal/core/ports"
	"enrollment-dispatch/internal/service"
	"enrollment-dispatch/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("host", cfg.Server.Host).
		Int("port", cfg.Server.Port).
		Msg("Starting Enrollment Dispatch worker")

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize repositories
	retryRepo := pgStorage.NewRetryRepo(pool)
	submissionRepo := pgStorage.NewSubmissionRepo(pool)
	endpointRepo := pgStorage.NewWebhookEndpointRepo(pool)
	deliveryLogRepo := pgStorage.NewDeliveryLogRepo(pool)
	activityRepo := pgStorage.NewActivityLogRepo(pool)

	// Initialize Redis stores
	queueStore := redisStorage.NewQueueStore(rdb)
	resultCache := redisStorage.NewResultCache(rdb)

	// Initialize core services
	secretsSvc, err := service.NewAESSecretsService(cfg.Connector.CredentialsKey)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize secrets service")
	}
	sigSvc := service.NewHMACSignatureService()
	bus := service.NewEventBus()

	credentialsRepo := pgStorage.NewCredentialsRepo(pool, secretsSvc)

	// Initialize delivery and retry services
	webhookSvc := service.NewWebhookService(
		endpointRepo,
		deliveryLogRepo,
		secretsSvc,
		sigSvc,
		&http.Client{Timeout: cfg.Webhook.Timeout},
		cfg.Webhook.SourceID,
		log,
	)
	service.RegisterWebhookBridge(bus, submissionRepo, webhookSvc, log)

	providerClient := connector.NewHTTPConnector(
		cfg.Connector.BaseURL,
		&http.Client{Timeout: cfg.Connector.Timeout},
		log,
	)

	retrySvc := service.NewRetryService(
		retryRepo,
		activityRepo,
		bus,
		service.BackoffSchedule{Base: cfg.Retry.BaseBackoff, Growth: cfg.Retry.GrowthFactor},
		cfg.Retry.MaxRetries,
		log,
	)
	processor := service.NewRetryProcessor(
		retrySvc,
		submissionRepo,
		providerClient,
		credentialsRepo,
		cfg.Retry.StuckClaimAge,
		log,
	)

	// Register hook handlers
	registry := service.NewHandlerRegistry()
	registerHandlers(registry, providerClient, credentialsRepo, webhookSvc, processor, activityRepo, cfg.Retry.BatchLimit, log)

	// Initialize executors and select the backend
	durable := service.NewDurableExecutor(
		queueStore,
		registry,
		resultCache,
		cfg.Scheduler.ResultCacheTTL,
		cfg.Scheduler.QueuePollEvery,
		cfg.Scheduler.QueueBatchSize,
		log,
	)
	syncExec := service.NewSyncExecutor(registry, log)
	timerExec := service.NewTimerExecutor(registry, log)

	scheduler := service.NewScheduler(ctx, durable, syncExec, timerExec, registry, log)

	runCtx, stopRun := context.WithCancel(ctx)
	defer stopRun()
	if scheduler.Backend() == durable.Name() {
		durable.Start(runCtx)
	}

	// Background retry worker tick
	go func() {
		interval := cfg.Retry.WorkerInterval
		if interval <= 0 {
			interval = 5 * time.Minute
		}
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-runCtx.Done():
				return
			case <-ticker.C:
				summary, err := processor.Process(runCtx, cfg.Retry.BatchLimit)
				if err != nil {
					log.Error().Err(err).Msg("retry worker tick failed")
					continue
				}
				log.Info().
					Int("processed", summary.Processed).
					Int("succeeded", summary.Succeeded).
					Int("retried", summary.Retried).
					Int("failed", summary.PermanentlyFailed).
					Int64("reclaimed", summary.Reclaimed).
					Msg("retry worker tick")
			}
		}
	}()

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with the operational routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		Scheduler:      scheduler,
		Processor:      processor,
		Endpoints:      endpointRepo,
		Results:        resultCache,
		BatchLimit:     cfg.Retry.BatchLimit,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Str("backend", scheduler.Backend()).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down worker...")

	stopRun()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Worker exited")
}

// registerHandlers binds every hook kind the scheduler accepts. Notification
// kinds have no provider integration yet and are acknowledged into the
// activity log so scheduled sends are at least traceable.
func registerHandlers(
	registry *service.HandlerRegistry,
	provider ports.Connector,
	credentials ports.CredentialsProvider,
	dispatcher ports.WebhookDispatcher,
	processor ports.RetryProcessor,
	activity ports.ActivityLogRepository,
	batchLimit int,
	log zerolog.Logger,
) {
	registry.Register(domain.HookAPICall, func(ctx context.Context, action domain.QueuedAction) (map[string]interface{}, error) {
		args, ok := action.Args.(domain.APICallArgs)
		if !ok {
			return nil, fmt.Errorf("api_call: unexpected args type %T", action.Args)
		}
		creds, err := credentials.Get(ctx, args.InstanceID)
		if err != nil {
			return nil, err
		}
		var result ports.ConnectorResult
		switch args.Operation {
		case "validate_account":
			result, err = provider.ValidateAccount(ctx, creds, args.Payload)
		case "submit_enrollment":
			result, err = provider.SubmitEnrollment(ctx, creds, args.Payload)
		case "get_schedule_slots":
			result, err = provider.GetScheduleSlots(ctx, creds, args.Payload)
		case "book_appointment":
			result, err = provider.BookAppointment(ctx, creds, args.Payload)
		default:
			return nil, fmt.Errorf("api_call: unknown operation %q", args.Operation)
		}
		if err != nil {
			return nil, err
		}
		return result.ToMap(), nil
	})

	registry.Register(domain.HookWebhook, func(ctx context.Context, action domain.QueuedAction) (map[string]interface{}, error) {
		args, ok := action.Args.(domain.WebhookArgs)
		if !ok {
			return nil, fmt.Errorf("webhook: unexpected args type %T", action.Args)
		}
		if err := dispatcher.Trigger(ctx, args.Event, args.Data, args.InstanceID); err != nil {
			return nil, err
		}
		return map[string]interface{}{"event": args.Event, "instance_id": args.InstanceID}, nil
	})

	registry.Register(domain.HookRetry, func(ctx context.Context, action domain.QueuedAction) (map[string]interface{}, error) {
		args, _ := action.Args.(domain.RetryArgs)
		limit := args.Limit
		if limit <= 0 {
			limit = batchLimit
		}
		summary, err := processor.Process(ctx, limit)
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{
			"reclaimed": summary.Reclaimed,
			"processed": summary.Processed,
			"succeeded": summary.Succeeded,
			"retried":   summary.Retried,
			"failed":    summary.PermanentlyFailed,
		}, nil
	})

	ack := func(kind domain.HookKind, fields func(domain.QueuedAction) map[string]interface{}) ports.HookHandler {
		return func(ctx context.Context, action domain.QueuedAction) (map[string]interface{}, error) {
			logCtx := fields(action)
			logCtx["action_id"] = action.ActionID
			if err := activity.Append(ctx, "info", string(kind)+" dispatched", logCtx); err != nil {
				log.Warn().Err(err).Str("hook", string(kind)).Msg("activity log append failed")
			}
			return map[string]interface{}{"acknowledged": true}, nil
		}
	}
	registry.Register(domain.HookSendEmail, ack(domain.HookSendEmail, func(a domain.QueuedAction) map[string]interface{} {
		args, _ := a.Args.(domain.SendEmailArgs)
		return map[string]interface{}{"to": args.To, "template_id": args.TemplateID}
	}))
	registry.Register(domain.HookSendSMS, ack(domain.HookSendSMS, func(a domain.QueuedAction) map[string]interface{} {
		args, _ := a.Args.(domain.SendSMSArgs)
		return map[string]interface{}{"to": args.To}
	}))
	registry.Register(domain.HookCRMSync, ack(domain.HookCRMSync, func(a domain.QueuedAction) map[string]interface{} {
		args, _ := a.Args.(domain.CRMSyncArgs)
		return map[string]interface{}{"submission_id": args.SubmissionID, "provider": args.Provider}
	}))
}
