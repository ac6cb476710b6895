package activity

import "time"

// Activity is one entry in the audit trail.
type Activity struct {
	ID        int64     `json:"id"`
	Action    string    `json:"action"`
	Details   string    `json:"details"`
	Timestamp time.Time `json:"timestamp"`
}
