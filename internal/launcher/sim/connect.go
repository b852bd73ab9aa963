package sim

import (
	"context"
	"regexp"
	"sync"
	"time"

	"github.com/derol/majestic-launcher/internal/common"
	"github.com/derol/majestic-launcher/internal/logging"
	"github.com/google/uuid"
)

const (
	// ConnectTick is the cadence of connection progress.
	ConnectTick = 1 * time.Second
	// connectTotalTicks is how many ticks the fake connection takes:
	// progress advances by 100/60 percent per tick and tops out at tick 60.
	connectTotalTicks = 60
)

// nicknamePattern is Name_Surname: each half one uppercase letter followed
// by lowercase letters, joined by a single underscore.
var nicknamePattern = regexp.MustCompile(`^[A-Z][a-z]+_[A-Z][a-z]+$`)

// ValidNickname reports whether nickname matches the required
// Name_Surname form, e.g. "Ivan_Petrov".
func ValidNickname(nickname string) bool {
	return nicknamePattern.MatchString(nickname)
}

// Connect simulates joining a game server. The progress bar fills over 60
// seconds and then the attempt always resolves to the same scripted failure:
// the game itself is not installed. Cancelling discards the attempt with no
// outcome.
type Connect struct {
	mu       sync.Mutex
	id       string
	server   string
	nickname string
	ticks    int
	active   bool
	outcome  Outcome
	handle   TimerHandle

	logger logging.Logger
}

func NewConnect(logger logging.Logger) *Connect {
	return &Connect{logger: logger.With("component", "connect")}
}

// Start validates the nickname and begins the progress timer. A malformed
// nickname is rejected up front and no state is started.
func (c *Connect) Start(s Scheduler, server, nickname string) error {
	if !ValidNickname(nickname) {
		return common.ErrInvalidNickname
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.active {
		return common.ErrFlowActive
	}

	c.id = uuid.NewString()
	c.server = server
	c.nickname = nickname
	c.ticks = 0
	c.outcome = OutcomeNone
	c.active = true
	c.handle = s.Every(ConnectTick, c.tick)

	c.logger.Info(context.Background(), "connection started",
		"attempt", c.id, "server", server, "nickname", nickname)
	return nil
}

func (c *Connect) tick() {
	c.mu.Lock()
	if !c.active {
		c.mu.Unlock()
		return
	}

	c.ticks++
	if c.percentLocked() < 100 {
		c.mu.Unlock()
		return
	}

	// Tick 60: the attempt resolves to its scripted ending.
	c.active = false
	c.outcome = OutcomePrerequisiteMissing
	handle := c.handle
	c.handle = nil
	id := c.id
	c.mu.Unlock()

	handle.Stop()
	c.logger.Info(context.Background(), "connection resolved",
		"attempt", id, "outcome", OutcomePrerequisiteMissing)
}

// Cancel stops the timer immediately and discards the attempt. No outcome
// is reported for a cancelled attempt.
func (c *Connect) Cancel() {
	c.mu.Lock()
	if !c.active {
		c.mu.Unlock()
		return
	}
	c.active = false
	c.ticks = 0
	handle := c.handle
	c.handle = nil
	id := c.id
	c.mu.Unlock()

	handle.Stop()
	c.logger.Info(context.Background(), "connection cancelled", "attempt", id)
}

// Stop is the teardown hook: it behaves like Cancel and also forgets any
// resolved outcome.
func (c *Connect) Stop() {
	c.Cancel()
	c.mu.Lock()
	c.outcome = OutcomeNone
	c.mu.Unlock()
}

// Progress returns the current snapshot. Display percent is capped at 100.
func (c *Connect) Progress() ProgressState {
	c.mu.Lock()
	defer c.mu.Unlock()

	phase := PhaseIdle
	if c.active {
		phase = PhaseConnecting
	} else if c.outcome != OutcomeNone {
		phase = PhaseFailed
	}

	return ProgressState{
		Elapsed: time.Duration(c.ticks) * ConnectTick,
		Percent: c.percentLocked(),
		Phase:   phase,
	}
}

// Outcome returns the scripted result once the attempt has resolved, and
// OutcomeNone while it is running or after a cancel.
func (c *Connect) Outcome() Outcome {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.outcome
}

// percentLocked computes percent from the tick count so tick 60 lands on
// exactly 100. Callers must hold mu.
func (c *Connect) percentLocked() float64 {
	p := float64(c.ticks) * 100 / connectTotalTicks
	if p > 100 {
		return 100
	}
	return p
}
