package sharedtypes

import "time"

// SeasonID identifies a competition season.
type SeasonID string

// EventID identifies a single competitive event within a season.
type EventID string

// UserID identifies a registered player.
type UserID string

// JobID identifies one season-wide recalculation attempt.
type JobID string

// Points is an earned point value for a single prediction.
type Points int

func (s SeasonID) String() string { return string(s) }
func (e EventID) String() string  { return string(e) }
func (u UserID) String() string   { return string(u) }
func (j JobID) String() string    { return string(j) }

// PodiumSlot is one position of a podium: who finished (or is predicted to
// finish) there. Name is the display name used for match comparison.
type PodiumSlot struct {
	CompetitorID string `json:"competitor_id"`
	Name         string `json:"name"`
}

// Podium is the top three finishing positions in order.
type Podium struct {
	First  PodiumSlot `json:"first"`
	Second PodiumSlot `json:"second"`
	Third  PodiumSlot `json:"third"`
}

// Names returns the three display names in finishing order.
func (p Podium) Names() [3]string {
	return [3]string{p.First.Name, p.Second.Name, p.Third.Name}
}

// JobStatus is the lifecycle state of a recalculation job.
type JobStatus string

const (
	JobStatusPending   JobStatus = "pending"
	JobStatusRunning   JobStatus = "running"
	JobStatusCompleted JobStatus = "completed"
	JobStatusFailed    JobStatus = "failed"
)

// IsTerminal reports whether the status is a final state.
func (s JobStatus) IsTerminal() bool {
	return s == JobStatusCompleted || s == JobStatusFailed
}

// RecalculationJobInfo is the pollable view of a season recalculation job.
type RecalculationJobInfo struct {
	JobID          JobID      `json:"job_id"`
	SeasonID       SeasonID   `json:"season_id"`
	Status         JobStatus  `json:"status"`
	TotalUsers     int        `json:"total_users"`
	ProcessedUsers int        `json:"processed_users"`
	StartedAt      time.Time  `json:"started_at"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
	ErrorMessage   *string    `json:"error_message,omitempty"`
}
