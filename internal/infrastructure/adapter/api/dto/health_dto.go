package dto

import "time"

// HealthResponse is the body of GET /healthz
type HealthResponse struct {
	Status   string    `json:"status"`
	Database string    `json:"database"`
	Time     time.Time `json:"time"`
}
