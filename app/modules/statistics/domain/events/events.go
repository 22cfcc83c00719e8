// Package statisticsevents defines the topics and payloads the statistics
// module publishes and consumes.
package statisticsevents

import (
	sharedtypes "github.com/gridline-club/podium-bot/app/shared/types"
)

const (
	// SeasonRecalculationRequestedV1 triggers a season-wide statistics
	// recompute. Fire-and-forget: the started event carries the job ID to
	// poll.
	SeasonRecalculationRequestedV1 = "statistics.season.recalculation.requested.v1"

	// SeasonRecalculationStartedV1 confirms the job record exists and the
	// worker is running.
	SeasonRecalculationStartedV1 = "statistics.season.recalculation.started.v1"

	// SeasonRecalculationFailedV1 reports that a recalculation could not be
	// started at all (the job's own failures live on the job record).
	SeasonRecalculationFailedV1 = "statistics.season.recalculation.failed.v1"

	// JobStatusRequestedV1 polls a recalculation job by ID.
	JobStatusRequestedV1 = "statistics.job.status.requested.v1"

	// JobStatusV1 carries the current job record state.
	JobStatusV1 = "statistics.job.status.v1"

	// JobStatusNotFoundV1 reports an unknown job ID.
	JobStatusNotFoundV1 = "statistics.job.status.notfound.v1"

	// SeasonExportRequestedV1 asks for the season standings as an xlsx
	// workbook.
	SeasonExportRequestedV1 = "statistics.season.export.requested.v1"

	// SeasonExportedV1 carries the rendered workbook.
	SeasonExportedV1 = "statistics.season.export.v1"

	// StandingsChartRequestedV1 asks for the season standings bar chart.
	StandingsChartRequestedV1 = "statistics.season.chart.requested.v1"

	// StandingsChartRenderedV1 carries the rendered PNG.
	StandingsChartRenderedV1 = "statistics.season.chart.v1"
)

// SeasonRecalculationRequestedPayloadV1 identifies the season to recompute.
type SeasonRecalculationRequestedPayloadV1 struct {
	SeasonID sharedtypes.SeasonID `json:"season_id"`
}

// SeasonRecalculationStartedPayloadV1 carries the pollable job ID.
type SeasonRecalculationStartedPayloadV1 struct {
	JobID    sharedtypes.JobID    `json:"job_id"`
	SeasonID sharedtypes.SeasonID `json:"season_id"`
}

// SeasonRecalculationFailedPayloadV1 reports a start failure.
type SeasonRecalculationFailedPayloadV1 struct {
	SeasonID sharedtypes.SeasonID `json:"season_id"`
	Reason   string               `json:"reason"`
}

// JobStatusRequestedPayloadV1 polls one job.
type JobStatusRequestedPayloadV1 struct {
	JobID sharedtypes.JobID `json:"job_id"`
}

// JobStatusPayloadV1 is the current job record state.
type JobStatusPayloadV1 struct {
	Job sharedtypes.RecalculationJobInfo `json:"job"`
}

// JobStatusNotFoundPayloadV1 reports an unknown job ID.
type JobStatusNotFoundPayloadV1 struct {
	JobID sharedtypes.JobID `json:"job_id"`
}

// SeasonExportRequestedPayloadV1 identifies the season to export.
type SeasonExportRequestedPayloadV1 struct {
	SeasonID sharedtypes.SeasonID `json:"season_id"`
}

// SeasonExportedPayloadV1 carries the workbook (base64 over the wire).
type SeasonExportedPayloadV1 struct {
	SeasonID sharedtypes.SeasonID `json:"season_id"`
	Filename string               `json:"filename"`
	File     []byte               `json:"file"`
}

// StandingsChartRequestedPayloadV1 identifies the season to chart. A zero
// limit means the default top-10.
type StandingsChartRequestedPayloadV1 struct {
	SeasonID sharedtypes.SeasonID `json:"season_id"`
	Limit    int                  `json:"limit"`
}

// StandingsChartRenderedPayloadV1 carries the PNG image.
type StandingsChartRenderedPayloadV1 struct {
	SeasonID sharedtypes.SeasonID `json:"season_id"`
	Image    []byte               `json:"image"`
}
