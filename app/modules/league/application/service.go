package leagueservice

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	leaguedb "github.com/gridline-club/podium-bot/app/modules/league/infrastructure/repositories"
	"github.com/gridline-club/podium-bot/app/shared/attr"
	"github.com/gridline-club/podium-bot/app/shared/observability"
	"github.com/gridline-club/podium-bot/app/shared/results"
)

const moduleName = "league"

// LeagueService implements the Service interface.
type LeagueService struct {
	seasonRepo  leaguedb.SeasonRepository
	eventRepo   leaguedb.EventRepository
	userRepo    leaguedb.UserRepository
	recalcLimit *rate.Limiter
	logger      *slog.Logger
	metrics     observability.OperationMetrics
	tracer      trace.Tracer
}

// NewLeagueService creates a new LeagueService. recalcLimit throttles how
// often season recalculations can be triggered.
func NewLeagueService(
	seasonRepo leaguedb.SeasonRepository,
	eventRepo leaguedb.EventRepository,
	userRepo leaguedb.UserRepository,
	recalcLimit *rate.Limiter,
	logger *slog.Logger,
	metrics observability.OperationMetrics,
	tracer trace.Tracer,
) *LeagueService {
	return &LeagueService{
		seasonRepo:  seasonRepo,
		eventRepo:   eventRepo,
		userRepo:    userRepo,
		recalcLimit: recalcLimit,
		logger:      logger,
		metrics:     metrics,
		tracer:      tracer,
	}
}

// operationFunc is the generic signature for service operation functions.
type operationFunc[S any, F any] func(ctx context.Context) (results.OperationResult[S, F], error)

// withTelemetry wraps a service operation with tracing, metrics, and panic
// recovery.
func withTelemetry[S any, F any](
	s *LeagueService,
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
