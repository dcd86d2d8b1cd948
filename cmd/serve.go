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

package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/flarewatch/flarewatch/internal/cache"
	"github.com/flarewatch/flarewatch/internal/config"
	"github.com/flarewatch/flarewatch/internal/flare"
	"github.com/flarewatch/flarewatch/internal/logger"
	"github.com/flarewatch/flarewatch/internal/server"
	"github.com/flarewatch/flarewatch/internal/validator"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the validator reward API server",
	Long: `Start the REST server. Validator data is fetched from the Flare Systems
Explorer on demand and cached for the configured TTL; all endpoints are served
from the cached snapshot.`,
	Run: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) {
	logger.SetDebugMode(IsDebugMode())

	var cfg config.Config
	if err := viper.Unmarshal(&cfg); err != nil {
		fmt.Printf("Error parsing config: %v\n", err)
		os.Exit(1)
	}

	client := flare.NewClient(cfg.GetUpstreamURL(), cfg.GetFetchTimeout(), cfg.GetPageLimit())
	aggregator := validator.NewAggregator(client)
	snapshots := cache.New(aggregator.Refresh, cfg.GetCacheTTL())
	srv := server.New(cfg.GetListenAddress(), snapshots)

	printBanner(cfg.GetListenAddress())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("received signal %v, shutting down", sig)
		cancel()
	}()

	if err := srv.Run(ctx); err != nil {
		fmt.Printf("Server error: %v\n", err)
		os.Exit(1)
	}
}

func printBanner(addr string) {
	fmt.Println("Flare Validator API")
	fmt.Println("Listening on", addr)
	fmt.Println("Usage:")
	fmt.Println("  /                           - API usage information")
	fmt.Println("  /health                     - Health check endpoint")
	fmt.Println("  /metrics                    - Prometheus metrics")
	fmt.Println("  /api/validators             - List all validators")
	fmt.Println("  /api/validators/eligible    - List eligible validators")
	fmt.Println("  /api/validators/ineligible  - List ineligible validators")
	fmt.Println("  /api/validators/top?limit=N - List top N validators (default: 50)")
	fmt.Println("  /api/validators/{id}        - Get validator by ID")
	fmt.Println("  /api/refresh                - Force refresh cache (POST)")
}
