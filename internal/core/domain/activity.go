package domain

import (
	"time"

	"github.com/google/uuid"
)

// ActivityLogEntry is one row of the append-only activity log read by the
// admin dashboards.
type ActivityLogEntry struct {
	ID        uuid.UUID              `json:"id"`
	Level     string                 `json:"level"`
	Message   string                 `json:"message"`
	Context   map[string]interface{} `json:"context"`
	CreatedAt time.Time              `json:"created_at"`
}
