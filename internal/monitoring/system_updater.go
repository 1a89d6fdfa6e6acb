package monitoring

import (
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
)

// SystemSnapshot holds one sample of host resource usage.
type SystemSnapshot struct {
	CPUPercent    float64   `json:"cpuPercent"`
	MemoryPercent float64   `json:"memoryPercent"`
	MemoryUsedMB  uint64    `json:"memoryUsedMb"`
	MemoryTotalMB uint64    `json:"memoryTotalMb"`
	DiskPercent   float64   `json:"diskPercent"`
	UptimeSeconds uint64    `json:"uptimeSeconds"`
	SampledAt     time.Time `json:"sampledAt"`
}

// SystemUpdater periodically samples host stats and caches the latest snapshot.
type SystemUpdater struct {
	interval time.Duration
	ticker   *time.Ticker
	done     chan bool

	mu       sync.RWMutex
	snapshot *SystemSnapshot
}

// NewSystemUpdater creates a new SystemUpdater.
func NewSystemUpdater(interval time.Duration) *SystemUpdater {
	return &SystemUpdater{
		interval: interval,
		done:     make(chan bool),
	}
}

// Run starts the periodic sampling loop.
func (su *SystemUpdater) Run() {
	log.Info().Dur("interval", su.interval).Msg("Starting background system updater...")
	su.ticker = time.NewTicker(su.interval)
	defer su.ticker.Stop()

	// Sample once immediately on start
	su.sample()

	for {
		select {
		case <-su.done:
			log.Info().Msg("Stopping background system updater.")
			return
		case <-su.ticker.C:
			su.sample()
		}
	}
}

// Stop halts the periodic sampling.
func (su *SystemUpdater) Stop() {
	su.done <- true
}

// Latest returns the most recent snapshot, or nil before the first sample.
func (su *SystemUpdater) Latest() *SystemSnapshot {
	su.mu.RLock()
	defer su.mu.RUnlock()
	return su.snapshot
}

func (su *SystemUpdater) sample() {
	snap := &SystemSnapshot{SampledAt: time.Now().UTC()}

	if percents, err := cpu.Percent(time.Second, false); err == nil && len(percents) > 0 {
		snap.CPUPercent = percents[0]
	} else if err != nil {
		log.Warn().Err(err).Msg("Failed to sample CPU usage")
	}

	if vm, err := mem.VirtualMemory(); err == nil {
		snap.MemoryPercent = vm.UsedPercent
		snap.MemoryUsedMB = vm.Used / 1024 / 1024
		snap.MemoryTotalMB = vm.Total / 1024 / 1024
	} else {
		log.Warn().Err(err).Msg("Failed to sample memory usage")
	}

	if du, err := disk.Usage("/"); err == nil {
		snap.DiskPercent = du.UsedPercent
	} else {
		log.Warn().Err(err).Msg("Failed to sample disk usage")
	}

	if uptime, err := host.Uptime(); err == nil {
		snap.UptimeSeconds = uptime
	}

	su.mu.Lock()
	su.snapshot = snap
	su.mu.Unlock()
}
