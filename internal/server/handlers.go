// Copyright © 2026 the flarewatch authors.
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/flarewatch/flarewatch/internal/validator"
	"github.com/flarewatch/flarewatch/internal/version"
)

// DefaultTopLimit is the number of validators returned by /api/validators/top
// when no limit is given.
const DefaultTopLimit = 50

func (s *Server) handleUsage(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, UsageResponse{
		APIName: "Flare Validator API",
		Version: version.Version,
		Endpoints: []string{
			"/health",
			"/metrics",
			"/api/validators",
			"/api/validators/eligible",
			"/api/validators/ineligible",
			"/api/validators/top?limit=N",
			"/api/validators/{id}",
			"/api/refresh",
		},
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleAllValidators(w http.ResponseWriter, r *http.Request) {
	snapshot, err := s.snapshots.Get(r.Context())
	if err != nil {
		logrus.WithError(err).Error("failed to fetch validator data")
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "failed to fetch validator data"})
		return
	}
	writeJSON(w, http.StatusOK, snapshot)
}

func (s *Server) handleEligible(w http.ResponseWriter, r *http.Request) {
	snapshot, err := s.snapshots.Get(r.Context())
	if err != nil {
		logrus.WithError(err).Error("failed to fetch eligible validators")
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "failed to fetch eligible validators"})
		return
	}
	writeJSON(w, http.StatusOK, ValidatorsListResponse{
		Timestamp:  snapshot.Timestamp,
		Count:      snapshot.EligibleCount,
		Validators: snapshot.Eligible,
	})
}

func (s *Server) handleIneligible(w http.ResponseWriter, r *http.Request) {
	snapshot, err := s.snapshots.Get(r.Context())
	if err != nil {
		logrus.WithError(err).Error("failed to fetch ineligible validators")
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "failed to fetch ineligible validators"})
		return
	}
	writeJSON(w, http.StatusOK, ValidatorsListResponse{
		Timestamp:  snapshot.Timestamp,
		Count:      snapshot.IneligibleCount,
		Validators: snapshot.Ineligible,
	})
}

func (s *Server) handleTop(w http.ResponseWriter, r *http.Request) {
	limit := DefaultTopLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed >= 0 {
			limit = parsed
		}
	}

	snapshot, err := s.snapshots.Get(r.Context())
	if err != nil {
		logrus.WithError(err).Error("failed to fetch top validators")
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "failed to fetch top validators"})
		return
	}

	// The eligible partition is already sorted; clamp to its length.
	if limit > len(snapshot.Eligible) {
		limit = len(snapshot.Eligible)
	}
	writeJSON(w, http.StatusOK, ValidatorsListResponse{
		Timestamp:  snapshot.Timestamp,
		Count:      limit,
		Validators: snapshot.Eligible[:limit],
	})
}

func (s *Server) handleValidatorByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid validator ID"})
		return
	}

	snapshot, err := s.snapshots.Get(r.Context())
	if err != nil {
		logrus.WithError(err).Error("failed to fetch validator details")
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "failed to fetch validator details"})
		return
	}

	v, err := validator.FindByID(snapshot, id)
	if errors.Is(err, validator.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "validator not found"})
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	s.snapshots.Invalidate()

	snapshot, err := s.snapshots.Get(r.Context())
	if err != nil {
		logrus.WithError(err).Error("failed to refresh cache")
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "failed to refresh cache"})
		return
	}
	writeJSON(w, http.StatusOK, RefreshResponse{
		Success:   true,
		Message:   "Cache refreshed successfully",
		Timestamp: snapshot.Timestamp,
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logrus.WithError(err).Error("failed to encode response")
	}
}
