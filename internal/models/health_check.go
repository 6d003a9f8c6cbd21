package models

import "time"

type HealthCheck struct {
	Status      string            `json:"status"`
	ScriptFound bool              `json:"script_found"`
	ScriptPath  string            `json:"script_path"`
	Timestamp   time.Time         `json:"timestamp"`
	Services    map[string]string `json:"services,omitempty"`
}
