package models

// OptimizedSchedule is the advisory output of a schedule optimization. It is
// display-only: it is never merged back into task records and is discarded
// when a new date is selected or a new optimization is requested.
type OptimizedSchedule struct {
	Schedule []string `json:"schedule"`
	Advice   string   `json:"advice"`
}
