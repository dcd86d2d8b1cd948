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
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/flarewatch/flarewatch/internal/cache"
	"github.com/flarewatch/flarewatch/internal/logger"
	"github.com/flarewatch/flarewatch/internal/observability"
)

// Server is the REST surface over the snapshot cache. All data-bearing
// endpoints go through Cache.Get; the server itself holds no validator state.
type Server struct {
	addr      string
	snapshots *cache.SnapshotCache
	router    *mux.Router
}

func New(addr string, snapshots *cache.SnapshotCache) *Server {
	s := &Server{
		addr:      addr,
		snapshots: snapshots,
	}
	s.router = s.buildRouter()
	return s
}

func (s *Server) buildRouter() *mux.Router {
	router := mux.NewRouter()
	router.HandleFunc("/", s.handleUsage).Methods(http.MethodGet)
	router.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	router.Handle("/metrics", observability.Handler()).Methods(http.MethodGet)
	router.HandleFunc("/api/validators", s.handleAllValidators).Methods(http.MethodGet)
	router.HandleFunc("/api/validators/eligible", s.handleEligible).Methods(http.MethodGet)
	router.HandleFunc("/api/validators/ineligible", s.handleIneligible).Methods(http.MethodGet)
	router.HandleFunc("/api/validators/top", s.handleTop).Methods(http.MethodGet)
	router.HandleFunc("/api/validators/{id:[0-9]+}", s.handleValidatorByID).Methods(http.MethodGet)
	router.HandleFunc("/api/refresh", s.handleRefresh).Methods(http.MethodPost)
	return router
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until the context is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:         s.addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening on %s", s.addr)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
