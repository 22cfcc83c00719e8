package statisticsservice

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	leaguedb "github.com/gridline-club/podium-bot/app/modules/league/infrastructure/repositories"
	predictiondb "github.com/gridline-club/podium-bot/app/modules/prediction/infrastructure/repositories"
	statisticsdb "github.com/gridline-club/podium-bot/app/modules/statistics/infrastructure/repositories"
	"github.com/gridline-club/podium-bot/app/shared/attr"
	"github.com/gridline-club/podium-bot/app/shared/observability"
	"github.com/gridline-club/podium-bot/app/shared/results"
)

const moduleName = "statistics"

// StatisticsService implements the Service interface. Recalculation workers
// run detached from the request context; workers is used to drain them on
// shutdown.
type StatisticsService struct {
	statsRepo      statisticsdb.Repository
	jobRepo        statisticsdb.JobRepository
	predictionRepo predictiondb.Repository
	seasonRepo     leaguedb.SeasonRepository
	eventRepo      leaguedb.EventRepository
	userRepo       leaguedb.UserRepository
	logger         *slog.Logger
	metrics        observability.OperationMetrics
	tracer         trace.Tracer
	workers        sync.WaitGroup
}

// NewStatisticsService creates a new StatisticsService.
func NewStatisticsService(
	statsRepo statisticsdb.Repository,
	jobRepo statisticsdb.JobRepository,
	predictionRepo predictiondb.Repository,
	seasonRepo leaguedb.SeasonRepository,
	eventRepo leaguedb.EventRepository,
	userRepo leaguedb.UserRepository,
	logger *slog.Logger,
	metrics observability.OperationMetrics,
	tracer trace.Tracer,
) *StatisticsService {
	return &StatisticsService{
		statsRepo:      statsRepo,
		jobRepo:        jobRepo,
		predictionRepo: predictionRepo,
		seasonRepo:     seasonRepo,
		eventRepo:      eventRepo,
		userRepo:       userRepo,
		logger:         logger,
		metrics:        metrics,
		tracer:         tracer,
	}
}

// Wait blocks until every in-flight recalculation worker has finished.
func (s *StatisticsService) Wait() {
	s.workers.Wait()
}

// operationFunc is the generic signature for service operation functions.
type operationFunc[S any, F any] func(ctx context.Context) (results.OperationResult[S, F], error)

// withTelemetry wraps a service operation with tracing, metrics, and panic
// recovery.
func withTelemetry[S any, F any](
	s *StatisticsService,
	ctx context.Context,
	operationName string,
	op operationFunc[S, F],
) (result results.OperationResult[S, F], err error) {
	ctx, span := s.tracer.Start(ctx, operationName, trace.WithAttributes(
		attribute.String("operation", operationName),
	))
	defer span.End()

	s.metrics.RecordOperationAttempt(ctx, moduleName, operationName)

	startTime := time.Now()
	defer func() {
		s.metrics.RecordOperationDuration(ctx, moduleName, operationName, time.Since(startTime))
	}()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in %s: %v", operationName, r)
			s.logger.ErrorContext(ctx, "Critical panic recovered",
				attr.ExtractCorrelationID(ctx),
				attr.String("operation", operationName),
				attr.Error(err),
			)
			s.metrics.RecordOperationFailure(ctx, moduleName, operationName)
			span.RecordError(err)
			result = results.OperationResult[S, F]{}
		}
	}()

	result, err = op(ctx)

	if err != nil {
		wrappedErr := fmt.Errorf("%s: %w", operationName, err)
		s.logger.ErrorContext(ctx, "Operation failed with error",
			attr.ExtractCorrelationID(ctx),
			attr.String("operation", operationName),
			attr.Error(wrappedErr),
		)
		s.metrics.RecordOperationFailure(ctx, moduleName, operationName)
		span.RecordError(wrappedErr)
		return result, wrappedErr
	}

	if result.IsFailure() {
		s.logger.WarnContext(ctx, "Operation returned failure result",
			attr.ExtractCorrelationID(ctx),
			attr.String("operation", operationName),
			attr.Any("failure_payload", *result.Failure),
		)
		s.metrics.RecordOperationFailure(ctx, moduleName, operationName)
		return result, nil
	}

	s.metrics.RecordOperationSuccess(ctx, moduleName, operationName)
	return result, nil
}
