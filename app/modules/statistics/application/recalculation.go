package statisticsservice

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	predictiondb "github.com/gridline-club/podium-bot/app/modules/prediction/infrastructure/repositories"
	"github.com/gridline-club/podium-bot/app/modules/prediction/domain/scoring"
	statisticsevents "github.com/gridline-club/podium-bot/app/modules/statistics/domain/events"
	statisticsdb "github.com/gridline-club/podium-bot/app/modules/statistics/infrastructure/repositories"
	"github.com/gridline-club/podium-bot/app/shared/attr"
	"github.com/gridline-club/podium-bot/app/shared/results"
	sharedtypes "github.com/gridline-club/podium-bot/app/shared/types"
)

// StartSeasonRecalculation persists a running job record and launches the
// season-wide recompute in a detached goroutine. The operation succeeds as
// soon as the job record exists; everything after that is reported through
// the job record, not through events.
func (s *StatisticsService) StartSeasonRecalculation(
	ctx context.Context,
	seasonID sharedtypes.SeasonID,
) (StartRecalculationResult, error) {
	s.logger.InfoContext(ctx, "Starting season recalculation",
		attr.ExtractCorrelationID(ctx),
		attr.SeasonID("season_id", seasonID),
	)

	return withTelemetry(s, ctx, "StartSeasonRecalculation", func(ctx context.Context) (StartRecalculationResult, error) {
		job := &statisticsdb.RecalculationJob{
			ID:        sharedtypes.JobID(uuid.New().String()),
			SeasonID:  seasonID,
			Status:    sharedtypes.JobStatusRunning,
			StartedAt: time.Now().UTC(),
		}

		if err := s.jobRepo.Save(ctx, job); err != nil {
			return results.Fail[statisticsevents.SeasonRecalculationStartedPayloadV1](statisticsevents.SeasonRecalculationFailedPayloadV1{
				SeasonID: seasonID,
				Reason:   "failed to create job record: " + err.Error(),
			}), nil
		}

		// The worker must outlive the triggering message's context.
		workerCtx := context.WithoutCancel(ctx)
		s.workers.Add(1)
		go func() {
			defer s.workers.Done()
			s.runRecalculation(workerCtx, job)
		}()

		return results.OK[statisticsevents.SeasonRecalculationStartedPayloadV1, statisticsevents.SeasonRecalculationFailedPayloadV1](statisticsevents.SeasonRecalculationStartedPayloadV1{
			JobID:    job.ID,
			SeasonID: seasonID,
		}), nil
	})
}

// runRecalculation recomputes every user's season statistics from scratch.
// Users are processed one at a time in a stable order; each finished user is
// persisted and reflected in the job's progress counter, so a failure partway
// through leaves the completed users' rows in place.
func (s *StatisticsService) runRecalculation(ctx context.Context, job *statisticsdb.RecalculationJob) {
	defer func() {
		if r := recover(); r != nil {
			s.failJob(ctx, job, fmt.Sprintf("panic during recalculation: %v", r))
		}
	}()

	season, err := s.seasonRepo.GetSeason(ctx, job.SeasonID)
	if err != nil {
		s.failJob(ctx, job, "failed to load season: "+err.Error())
		return
	}
	if season == nil {
		s.failJob(ctx, job, "season not found: "+job.SeasonID.String())
		return
	}

	events, err := s.eventRepo.ListBySeason(ctx, job.SeasonID)
	if err != nil {
		s.failJob(ctx, job, "failed to list season events: "+err.Error())
		return
	}

	eventIDs := make([]sharedtypes.EventID, 0, len(events))
	actualByEvent := make(map[sharedtypes.EventID][3]string, len(events))
	for _, event := range events {
		eventIDs = append(eventIDs, event.ID)
		result, err := s.eventRepo.GetResult(ctx, event.ID)
		if err != nil {
			s.failJob(ctx, job, "failed to load event result: "+err.Error())
			return
		}
		if result != nil {
			actualByEvent[event.ID] = result.ActualNames()
		}
	}

	var predictions []predictiondb.Prediction
	if len(eventIDs) > 0 {
		predictions, err = s.predictionRepo.ListScoredForEvents(ctx, eventIDs)
		if err != nil {
			s.failJob(ctx, job, "failed to list scored predictions: "+err.Error())
			return
		}
	}

	byUser := make(map[sharedtypes.UserID][]predictiondb.Prediction)
	for _, prediction := range predictions {
		byUser[prediction.UserID] = append(byUser[prediction.UserID], prediction)
	}
	userIDs := make([]sharedtypes.UserID, 0, len(byUser))
	for userID := range byUser {
		userIDs = append(userIDs, userID)
	}
	sort.Slice(userIDs, func(i, j int) bool { return userIDs[i] < userIDs[j] })

	job.TotalUsers = len(userIDs)
	if err := s.jobRepo.Update(ctx, job); err != nil {
		s.failJob(ctx, job, "failed to record user count: "+err.Error())
		return
	}

	for _, userID := range userIDs {
		stats := buildUserStatistics(job.SeasonID, userID, byUser[userID], actualByEvent, season.BestResultsCount)

		stats.Username, err = s.resolveUsername(ctx, userID)
		if err != nil {
			s.failJob(ctx, job, "failed to resolve username: "+err.Error())
			return
		}

		if err := s.statsRepo.Upsert(ctx, stats); err != nil {
			s.failJob(ctx, job, "failed to persist statistics for "+userID.String()+": "+err.Error())
			return
		}

		job.ProcessedUsers++
		if err := s.jobRepo.Update(ctx, job); err != nil {
			s.failJob(ctx, job, "failed to record progress: "+err.Error())
			return
		}
	}

	now := time.Now().UTC()
	job.Status = sharedtypes.JobStatusCompleted
	job.CompletedAt = &now
	if err := s.jobRepo.Update(ctx, job); err != nil {
		s.logger.ErrorContext(ctx, "Failed to mark recalculation job completed",
			attr.JobID("job_id", job.ID),
			attr.Error(err),
		)
		return
	}

	s.logger.InfoContext(ctx, "Season recalculation completed",
		attr.JobID("job_id", job.ID),
		attr.SeasonID("season_id", job.SeasonID),
		attr.Int("users", job.ProcessedUsers),
	)
}

// failJob transitions the job to failed. Already-persisted statistics rows
// stay; the error message tells the poller where the run stopped.
func (s *StatisticsService) failJob(ctx context.Context, job *statisticsdb.RecalculationJob, reason string) {
	now := time.Now().UTC()
	job.Status = sharedtypes.JobStatusFailed
	job.CompletedAt = &now
	job.ErrorMessage = &reason

	if err := s.jobRepo.Update(ctx, job); err != nil {
		s.logger.ErrorContext(ctx, "Failed to mark recalculation job failed",
			attr.JobID("job_id", job.ID),
			attr.String("reason", reason),
			attr.Error(err),
		)
		return
	}

	s.logger.ErrorContext(ctx, "Season recalculation failed",
		attr.JobID("job_id", job.ID),
		attr.SeasonID("season_id", job.SeasonID),
		attr.String("reason", reason),
		attr.Int("processed_users", job.ProcessedUsers),
	)
}

// resolveUsername returns the user's display name, falling back to the raw
// ID when the user row is gone. A missing user never fails the run.
func (s *StatisticsService) resolveUsername(ctx context.Context, userID sharedtypes.UserID) (string, error) {
	user, err := s.userRepo.GetUser(ctx, userID)
	if err != nil {
		return "", err
	}
	if user == nil {
		return userID.String(), nil
	}
	return user.Username, nil
}

// buildUserStatistics computes one user's full-season aggregate from their
// scored predictions. Match breakdowns only count predictions whose event
// has a recorded result.
func buildUserStatistics(
	seasonID sharedtypes.SeasonID,
	userID sharedtypes.UserID,
	predictions []predictiondb.Prediction,
	actualByEvent map[sharedtypes.EventID][3]string,
	bestResultsCount *int,
) *statisticsdb.UserStatistics {
	stats := &statisticsdb.UserStatistics{
		SeasonID:         seasonID,
		UserID:           userID,
		PredictionsCount: len(predictions),
		LastUpdated:      time.Now().UTC(),
	}

	points := make([]int, 0, len(predictions))
	for i := range predictions {
		prediction := &predictions[i]
		if prediction.PointsEarned != nil {
			stats.TotalPoints += *prediction.PointsEarned
			points = append(points, *prediction.PointsEarned)
		}

		actual, ok := actualByEvent[prediction.EventID]
		if !ok {
			continue
		}
		breakdown := scoring.ClassifyMatches(prediction.PredictedNames(), actual)
		stats.ExactMatches += breakdown.ExactMatches
		stats.OneOffMatches += breakdown.OneOffMatches
		stats.TwoOffMatches += breakdown.TwoOffMatches
	}

	if bestResultsCount != nil && *bestResultsCount > 0 {
		sort.Sort(sort.Reverse(sort.IntSlice(points)))
		n := *bestResultsCount
		if n > len(points) {
			n = len(points)
		}
		best := 0
		for _, p := range points[:n] {
			best += p
		}
		stats.BestResultsPoints = &best
	}

	return stats
}
