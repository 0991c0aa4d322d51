package engine

import (
	"log"
	"math/rand"
	"sort"
	"sync"
	"time"

	"TreasureDig/internal/clock"
	"TreasureDig/internal/limiter"
	"TreasureDig/internal/model"
	"TreasureDig/internal/recorder"
	"TreasureDig/internal/registry"
	"TreasureDig/internal/rewards"
	"TreasureDig/internal/store"
)

// Notifier receives fire-and-forget advisory notices from the engine.
// Implementations must not block; notices are informational only and are
// never consulted for control flow.
type Notifier interface {
	Notify(level, message string)
}

// Advisory severity tags.
const (
	LevelInfo = "info"
	LevelWarn = "warn"
)

type noopNotifier struct{}

func (noopNotifier) Notify(string, string) {}

// Options configures an Engine. Zero fields fall back to defaults.
type Options struct {
	EconomyFile string
	DigSeconds  int
	IntroReward float64
	EmptyRefill float64
	Clock       clock.Clock
	Rand        *rand.Rand
	Recorder    recorder.Recorder
	Notifier    Notifier
}

// Engine owns the single economy instance: credits, ledger, intro gates
// and the dig state machine. All mutations are serialized by one mutex
// and mirrored to durable storage after each change; a failed write is
// logged and never blocks the state machine.
type Engine struct {
	mu   sync.Mutex
	econ *model.EconomyState

	registry *registry.Registry
	limiter  *limiter.Limiter

	filePath    string
	digSeconds  int
	tick        time.Duration
	introReward float64
	emptyRefill float64

	clk    clock.Clock
	rng    *rand.Rand
	rec    recorder.Recorder
	notify Notifier

	active *Attempt
}

// New creates an Engine, loading or initializing economy state from disk.
func New(reg *registry.Registry, lim *limiter.Limiter, opts Options) *Engine {
	if opts.DigSeconds == 0 {
		opts.DigSeconds = 10
	}
	if opts.IntroReward == 0 {
		opts.IntroReward = 2.5
	}
	if opts.EmptyRefill == 0 {
		opts.EmptyRefill = 5
	}
	if opts.Clock == nil {
		opts.Clock = clock.System{}
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Recorder == nil {
		opts.Recorder = recorder.NewNoopRecorder()
	}
	if opts.Notifier == nil {
		opts.Notifier = noopNotifier{}
	}

	e := &Engine{
		econ:        store.LoadEconomy(opts.EconomyFile),
		registry:    reg,
		limiter:     lim,
		filePath:    opts.EconomyFile,
		digSeconds:  opts.DigSeconds,
		tick:        time.Second,
		introReward: opts.IntroReward,
		emptyRefill: opts.EmptyRefill,
		clk:         opts.Clock,
		rng:         opts.Rand,
		rec:         opts.Recorder,
		notify:      opts.Notifier,
	}
	e.mu.Lock()
	e.saveLocked()
	e.mu.Unlock()
	return e
}

// Snapshot returns a copy of the current economy state.
func (e *Engine) Snapshot() model.EconomyState {
	e.mu.Lock()
	defer e.mu.Unlock()

	snap := *e.econ
	snap.IntroRewards = make(map[model.IntroStep]bool, len(e.econ.IntroRewards))
	for k, v := range e.econ.IntroRewards {
		snap.IntroRewards[k] = v
	}
	snap.Ledger = make(map[string]float64, len(e.econ.Ledger))
	for k, v := range e.econ.Ledger {
		snap.Ledger[k] = v
	}
	return snap
}

// Credits returns the current spendable balance.
func (e *Engine) Credits() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.econ.Credits
}

// Resolving reports whether a dig attempt is currently counting down.
func (e *Engine) Resolving() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.active != nil
}

// ListPools returns all pools in display order: soonest-ending first,
// unparseable ends labels last, seed order as the tiebreak.
func (e *Engine) ListPools() []model.TreasurePool {
	pools := e.registry.List()
	sort.SliceStable(pools, func(i, j int) bool {
		return endsOrder(pools[i].Ends) < endsOrder(pools[j].Ends)
	})
	return pools
}

func endsOrder(label string) time.Duration {
	if d, ok := rewards.ParseEndsLabel(label); ok {
		return d
	}
	return time.Duration(1<<63 - 1)
}

func (e *Engine) saveLocked() {
	if err := store.SaveEconomy(e.filePath, e.econ); err != nil {
		log.Printf("[ERROR] failed to save economy state: %v", err)
	}
}

func (e *Engine) recordCredit(kind string, amount float64, note string) {
	if err := e.rec.RecordCredit(&recorder.CreditEvent{
		Kind:         kind,
		Amount:       amount,
		CreditsAfter: e.econ.Credits,
		Note:         note,
	}); err != nil {
		log.Printf("[ERROR] record credit event: %v", err)
	}
}
