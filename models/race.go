package models

import "time"

// RaceStatus only moves forward: pending, running, completed.
type RaceStatus string

const (
	RacePending   RaceStatus = "pending"
	RaceRunning   RaceStatus = "running"
	RaceCompleted RaceStatus = "completed"
)

// Race is one round of the schedule.
type Race struct {
	Round     int        `json:"roundNumber"`
	Distance  int        `json:"distance"`
	HorseIDs  []int      `json:"horseIds"`
	Results   []Result   `json:"results"`
	Status    RaceStatus `json:"status"`
	StartTime *time.Time `json:"startTime"`
	EndTime   *time.Time `json:"endTime"`
	// Duration is the pacing the runner waits for once the race is running.
	Duration   time.Duration `json:"-"`
	DurationMS int64         `json:"durationMs,omitempty"`
}

func (r *Race) IsRunning() bool   { return r.Status == RaceRunning }
func (r *Race) IsCompleted() bool { return r.Status == RaceCompleted }

// Clone returns a deep copy safe to hand to readers.
func (r Race) Clone() Race {
	out := r
	out.HorseIDs = append([]int(nil), r.HorseIDs...)
	out.Results = make([]Result, len(r.Results))
	copy(out.Results, r.Results)
	if r.StartTime != nil {
		t := *r.StartTime
		out.StartTime = &t
	}
	if r.EndTime != nil {
		t := *r.EndTime
		out.EndTime = &t
	}
	return out
}
