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
	"time"

	"github.com/spf13/cobra"

	"github.com/flarewatch/flarewatch/internal/logger"
	"github.com/flarewatch/flarewatch/internal/monitor"
)

var (
	watchEndpoint string
	watchInterval time.Duration
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Live terminal dashboard for a running flarewatch server",
	Long: `Display a live terminal dashboard that polls a running flarewatch server.
Shows the top eligible validators by combined reward rate together with
snapshot counts and cache statistics scraped from the server's /metrics
endpoint.`,
	Run: runWatch,
}

func init() {
	watchCmd.Flags().StringVar(&watchEndpoint, "endpoint", "http://localhost:3000", "base URL of the flarewatch server")
	watchCmd.Flags().DurationVar(&watchInterval, "interval", 10*time.Second, "refresh interval")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) {
	logger.SetDebugMode(IsDebugMode())

	mon := monitor.NewMonitor(watchEndpoint, watchInterval)
	display := monitor.NewDisplay(mon)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go mon.Start(ctx)

	if err := display.Run(); err != nil {
		fmt.Printf("Display error: %v\n", err)
		os.Exit(1)
	}
}
