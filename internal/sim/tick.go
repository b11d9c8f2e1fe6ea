package sim

import (
	"context"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/mkweon/grandmall/internal/catalog"
)

// Step executes one simulation tick. Phases run strictly in sequence under
// the state mutex: income, rival growth, counter advance and day-boundary
// upkeep, event/campaign countdown and triggering, the customer market
// model, VOC rotation, delegation, synergy recheck, quest recheck.
//
// Returns true when the tick crossed a day boundary, so the host can
// autosave.
func (st *State) Step() bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.Paused {
		return false
	}

	tick := st.TickOfDay

	st.applyIncome()
	st.growRival(tick)

	dayRolled := false
	st.TickOfDay++
	if st.TickOfDay >= catalog.TicksPerDay {
		st.TickOfDay = 0
		st.Day++
		dayRolled = true
		st.markRivalDayRolled()
		st.runDailyUpkeep()
	}

	st.tickCountdowns()
	st.maybeTriggerEvent()
	st.updateCustomers()
	st.maybeRotateVOC()

	if st.Delegation {
		st.runDelegation(tick)
	}

	st.recomputeSynergies()
	st.evaluateQuests()

	return dayRolled
}

// runDailyUpkeep applies everything that happens once per simulated day.
func (st *State) runDailyUpkeep() {
	st.ResearchPoints += catalog.RPPerDay
	st.addLog("info", "Day %d begins! (+%d RP)", st.Day, catalog.RPPerDay)

	st.settleSalaries()
	st.applyDailyCleanliness()
	st.applyManagerReputation()
	st.generateApplicants()

	slog.Info("daily report",
		"day", st.Day,
		"gold", humanize.Comma(int64(st.Gold)),
		"reputation", st.Reputation,
		"customers", st.totalCustomers(),
		"market_share", int(st.MarketShare),
		"shops", st.totalShops(),
		"rival_rep", int(st.Rival.Reputation),
	)
}

// Engine drives State.Step on a real-time timer. The interval is divided by
// the state's speed multiplier; pausing stops simulated time entirely. One
// goroutine owns the loop, so ticks never overlap.
type Engine struct {
	state    *State
	interval time.Duration

	// OnTick runs after every executed tick, outside the state lock.
	OnTick func(dayRolled bool)
}

// NewEngine creates a tick engine for the given state.
func NewEngine(state *State, interval time.Duration) *Engine {
	return &Engine{state: state, interval: interval}
}

// Run loops until the context is cancelled.
func (e *Engine) Run(ctx context.Context) {
	slog.Info("simulation started", "interval", e.interval)
	for {
		speed := 1
		e.state.WithLock(func(st *State) {
			if st.Speed > 0 {
				speed = st.Speed
			}
		})
		wait := e.interval / time.Duration(speed)

		select {
		case <-ctx.Done():
			slog.Info("simulation stopped")
			return
		case <-time.After(wait):
		}

		start := time.Now()
		dayRolled := e.state.Step()
		if e.OnTick != nil {
			e.OnTick(dayRolled)
		}
		if d := time.Since(start); d > e.interval {
			slog.Warn("tick overran interval", "took", d)
		}
	}
}
