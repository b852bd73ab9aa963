package sim

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/derol/majestic-launcher/internal/logging"
)

// PopulationTick is the cadence of the online-count random walk.
const PopulationTick = 5 * time.Second

// populationStep bounds a single walk step: delta is uniform in [-10, +10].
const populationStep = 10

// Band is the permitted [Min, Max] range for an online counter at a given
// hour of day.
type Band struct {
	Min, Max int
}

// BandForHour returns the band in force at the given local hour. Quiet
// mornings, a midday ramp, packed evenings.
func BandForHour(hour int) Band {
	switch {
	case hour >= 2 && hour < 12:
		return Band{Min: 100, Max: 800}
	case hour >= 12 && hour < 18:
		return Band{Min: 1000, Max: 3000}
	default:
		return Band{Min: 4000, Max: 5000}
	}
}

func (b Band) Clamp(v int) int {
	if v < b.Min {
		return b.Min
	}
	if v > b.Max {
		return b.Max
	}
	return v
}

// Population fabricates a live-looking online count for every catalog
// server. Counters are drawn fresh at construction and then only nudged:
// each tick applies an independent small delta and clamps into the band for
// the current hour. Crossing a band boundary therefore drags counters to the
// band edge instead of teleporting them.
type Population struct {
	mu     sync.Mutex
	names  []string
	counts []int
	handle TimerHandle

	rng    *rand.Rand
	now    func() time.Time
	logger logging.Logger
}

// NewPopulation seeds one counter per catalog server, uniform within the
// current hour's band.
func NewPopulation(logger logging.Logger) *Population {
	return newPopulation(logger, rand.New(rand.NewSource(time.Now().UnixNano())), time.Now)
}

func newPopulation(logger logging.Logger, rng *rand.Rand, now func() time.Time) *Population {
	p := &Population{
		names:  ServerNames,
		rng:    rng,
		now:    now,
		logger: logger.With("component", "population"),
	}

	band := BandForHour(p.now().Hour())
	p.counts = make([]int, len(p.names))
	for i := range p.counts {
		p.counts[i] = band.Min + p.rng.Intn(band.Max-band.Min+1)
	}
	return p
}

// Start begins the walk. The returned ownership rule is strict: whoever
// starts the walk must Stop it on view teardown.
func (p *Population) Start(s Scheduler) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.handle != nil {
		return
	}
	p.handle = s.Every(PopulationTick, p.step)
	p.logger.Debug(context.Background(), "population walk started", "servers", len(p.names))
}

// Stop halts the walk. Safe to call twice.
func (p *Population) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.handle == nil {
		return
	}
	p.handle.Stop()
	p.handle = nil
	p.logger.Debug(context.Background(), "population walk stopped")
}

// step advances every counter by an independent delta in [-10, +10] and
// clamps into the band for the hour at tick time. The band is re-evaluated
// each tick because a tick may cross a band boundary.
func (p *Population) step() {
	p.mu.Lock()
	defer p.mu.Unlock()

	band := BandForHour(p.now().Hour())
	for i := range p.counts {
		delta := p.rng.Intn(2*populationStep+1) - populationStep
		p.counts[i] = band.Clamp(p.counts[i] + delta)
	}
}

// Snapshot returns the current server list rows.
func (p *Population) Snapshot() []ServerEntry {
	p.mu.Lock()
	defer p.mu.Unlock()

	entries := make([]ServerEntry, len(p.names))
	for i, name := range p.names {
		entries[i] = ServerEntry{Name: name, Online: p.counts[i]}
	}
	return entries
}
