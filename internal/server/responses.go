package server

import (
	"github.com/flarewatch/flarewatch/internal/validator"
)

// JSON envelopes for the REST endpoints.

type UsageResponse struct {
	APIName   string   `json:"api_name"`
	Version   string   `json:"version"`
	Endpoints []string `json:"endpoints"`
	Timestamp string   `json:"timestamp"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// ValidatorsListResponse carries one partition (or a prefix of one).
type ValidatorsListResponse struct {
	Timestamp  string                `json:"timestamp"`
	Count      int                   `json:"count"`
	Validators []validator.Validator `json:"validators"`
}

type RefreshResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
