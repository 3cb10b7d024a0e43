package monitor

import "time"

type Status struct {
	Driver    string    `json:"driver"`
	Storage   bool      `json:"storage"`
	Error     string    `json:"error,omitempty"`
	LastCheck time.Time `json:"last_check"`
}
