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

package monitor

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/flarewatch/flarewatch/internal/validator"
)

// Status symbols for visual indicators
const (
	StatusSymbolEligible   = "●"
	StatusSymbolIneligible = "○"
)

// displayRows caps the validator table at a screenful.
const displayRows = 25

type Display struct {
	app     *tview.Application
	title   *tview.TextView
	summary *tview.TextView
	table   *tview.Table
	help    *tview.TextView
	monitor *Monitor
}

func NewDisplay(monitor *Monitor) *Display {
	return &Display{
		app:     tview.NewApplication(),
		title:   tview.NewTextView(),
		summary: tview.NewTextView(),
		table:   tview.NewTable(),
		help:    tview.NewTextView(),
		monitor: monitor,
	}
}

func (d *Display) Run() error {
	d.setupLayout()

	go d.updateLoop()

	return d.app.Run()
}

func (d *Display) setupLayout() {
	d.title.SetDynamicColors(true).SetTextAlign(tview.AlignCenter)
	d.title.SetText("[orange::b]flarewatch[-::-] Flare validator rewards")

	d.summary.SetDynamicColors(true)
	d.summary.SetBorder(true).SetTitle(" Snapshot ")

	d.table.SetBorders(false).
		SetFixed(1, 0).
		SetSelectable(false, false)
	d.table.SetBorder(true).SetTitle(" Top eligible validators ")

	d.help.SetDynamicColors(true)
	d.help.SetText("[yellow]q[-] quit  [yellow]r[-] force refresh")

	layout := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(d.title, 1, 0, false).
		AddItem(d.summary, 7, 0, false).
		AddItem(d.table, 0, 1, false).
		AddItem(d.help, 1, 0, false)

	d.app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Rune() {
		case 'q':
			d.app.Stop()
			return nil
		case 'r':
			go d.monitor.ForceRefresh(context.Background())
			return nil
		}
		if event.Key() == tcell.KeyEscape || event.Key() == tcell.KeyCtrlC {
			d.app.Stop()
			return nil
		}
		return event
	})

	d.app.SetRoot(layout, true)
}

func (d *Display) updateLoop() {
	for update := range d.monitor.Updates() {
		u := update
		d.app.QueueUpdateDraw(func() {
			d.render(u)
		})
	}
}

func (d *Display) render(update Update) {
	if update.Err != nil {
		d.summary.SetText(fmt.Sprintf("[red]Connection failed: %v[-]\n\nIs the server running? Start it with 'flarewatch serve'.", update.Err))
		return
	}

	d.renderSummary(update)
	d.renderTable(update.Snapshot)
}

func (d *Display) renderSummary(update Update) {
	snapshot := update.Snapshot

	text := fmt.Sprintf(
		"Snapshot:   [white]%s[-]\nValidators: [white]%d[-] total, [green]%d[-] eligible, [gray]%d[-] ineligible\nPolled:     [white]%s[-] (every %s)",
		snapshot.Timestamp,
		snapshot.TotalValidators,
		snapshot.EligibleCount,
		snapshot.IneligibleCount,
		update.FetchedAt.Format(time.TimeOnly),
		d.monitor.GetRefreshInterval(),
	)

	if stats := update.Stats; stats != nil {
		text += fmt.Sprintf(
			"\nCache:      hits %.0f, misses %.0f (%.1f%% hit rate), invalidations %.0f\nRefreshes:  %.0f ok, %.0f failed, avg %.2fs",
			stats.CacheHits, stats.CacheMisses, stats.HitRate(), stats.CacheInvalidations,
			stats.RefreshSuccesses, stats.RefreshErrors, stats.AvgRefreshSeconds,
		)
	}

	d.summary.SetText(text)
}

func (d *Display) renderTable(snapshot *validator.Snapshot) {
	d.table.Clear()

	headers := []string{"", "Rank", "ID", "Name", "Node ID", "Combined", "WNat", "Mirror", "Pure", "Passes"}
	for col, header := range headers {
		d.setCell(0, col, header, tcell.ColorYellow)
	}

	rows := len(snapshot.Eligible)
	if rows > displayRows {
		rows = displayRows
	}

	for i := 0; i < rows; i++ {
		v := snapshot.Eligible[i]
		row := i + 1

		d.setCell(row, 0, StatusSymbolEligible, tcell.ColorGreen)
		d.setCell(row, 1, fmt.Sprintf("%d", row), tcell.ColorWhite)
		d.setCell(row, 2, fmt.Sprintf("%d", v.ID), tcell.ColorWhite)
		d.setCell(row, 3, v.Name, tcell.ColorWhite)
		d.setCell(row, 4, formatNodeID(v.NodeID), tcell.ColorGray)

		if r := v.RewardRates; r != nil {
			d.setCell(row, 5, fmt.Sprintf("%.4f", r.Combined), tcell.ColorGreen)
			d.setCell(row, 6, fmt.Sprintf("%.4f", r.WNat), tcell.ColorWhite)
			d.setCell(row, 7, fmt.Sprintf("%.4f", r.Mirror), tcell.ColorWhite)
			d.setCell(row, 8, fmt.Sprintf("%.4f", r.Pure), tcell.ColorWhite)
		} else {
			d.setCell(row, 5, "-", tcell.ColorGray)
		}

		if v.Conditions != nil {
			d.setCell(row, 9, fmt.Sprintf("%d", v.Conditions.Passes), tcell.ColorWhite)
		}
	}
}

func (d *Display) setCell(row, col int, text string, color tcell.Color) {
	cell := tview.NewTableCell(" " + text + " ").
		SetTextColor(color).
		SetAlign(tview.AlignLeft)
	d.table.SetCell(row, col, cell)
}

func formatNodeID(nodeID *string) string {
	if nodeID == nil {
		return "-"
	}
	if len(*nodeID) > 24 {
		return (*nodeID)[:21] + "..."
	}
	return *nodeID
}
