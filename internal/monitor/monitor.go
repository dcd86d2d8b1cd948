package monitor

import (
	"context"
	"sync"
	"time"

	"github.com/flarewatch/flarewatch/internal/validator"
)

// Update is one polling result: the current snapshot plus service stats.
// Err is set when the snapshot fetch failed; stats are best-effort and may
// be nil even on success.
type Update struct {
	Snapshot  *validator.Snapshot
	Stats     *ServiceStats
	Err       error
	FetchedAt time.Time
}

type Monitor struct {
	api             *APIClient
	stats           *StatsClient
	refreshInterval time.Duration

	mu     sync.RWMutex
	latest Update

	updateChan chan Update
}

func NewMonitor(endpoint string, refreshInterval time.Duration) *Monitor {
	return &Monitor{
		api:             NewAPIClient(endpoint),
		stats:           NewStatsClient(endpoint),
		refreshInterval: refreshInterval,
		updateChan:      make(chan Update, 1),
	}
}

func (m *Monitor) Start(ctx context.Context) {
	ticker := time.NewTicker(m.refreshInterval)
	defer ticker.Stop()

	m.update(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.update(ctx)
		}
	}
}

func (m *Monitor) update(ctx context.Context) {
	fetchCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	update := Update{FetchedAt: time.Now()}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		update.Snapshot, update.Err = m.api.FetchSnapshot(fetchCtx)
	}()
	go func() {
		defer wg.Done()
		// Stats are optional; a scrape failure leaves them nil.
		stats, err := m.stats.GetServiceStats(fetchCtx)
		if err == nil {
			update.Stats = stats
		}
	}()
	wg.Wait()

	m.mu.Lock()
	m.latest = update
	m.mu.Unlock()

	select {
	case m.updateChan <- update:
	default:
	}
}

// ForceRefresh tells the server to rebuild its snapshot, then polls again.
func (m *Monitor) ForceRefresh(ctx context.Context) error {
	refreshCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	if err := m.api.TriggerRefresh(refreshCtx); err != nil {
		return err
	}
	m.update(ctx)
	return nil
}

// Latest returns the most recent update.
func (m *Monitor) Latest() Update {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.latest
}

func (m *Monitor) Updates() <-chan Update {
	return m.updateChan
}

func (m *Monitor) GetRefreshInterval() time.Duration {
	return m.refreshInterval
}
