package sim

import (
	"context"
	"sync"
	"time"

	"github.com/derol/majestic-launcher/internal/common"
	"github.com/derol/majestic-launcher/internal/logging"
	"github.com/google/uuid"
)

const (
	// DownloadTick is the cadence of download progress.
	DownloadTick = 1 * time.Second
	// downloadFullTicks is where the bar reads 100%: 300 seconds.
	downloadFullTicks = 300
	// downloadFailTicks is where the flow fails: progress is allowed to
	// overflow to 140% (two more minutes) before the scripted ending.
	downloadFailTicks = 420
	// CancelDelay is the blocking "cancelling..." wait before a cancel
	// actually takes effect.
	CancelDelay = 10 * time.Second
)

// Download simulates fetching the game. It is a small state machine:
//
//	idle -> prompt -> warned -> idle            (user admits owning no copy)
//	idle -> prompt -> downloading -> failed     (progress runs 0..140%)
//	downloading -> cancel-pending -> idle       (10s delayed cancel)
//
// The failure at 140% is the designed ending; cancellation is the only way
// to avoid it.
type Download struct {
	mu           sync.Mutex
	id           string
	state        Phase
	ticks        int
	handle       TimerHandle
	cancelHandle TimerHandle

	sched  Scheduler
	logger logging.Logger
}

func NewDownload(logger logging.Logger, sched Scheduler) *Download {
	return &Download{
		state:  PhaseIdle,
		sched:  sched,
		logger: logger.With("component", "download"),
	}
}

// State returns the current machine state.
func (d *Download) State() Phase {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// Begin opens the ownership prompt. Only valid from idle.
func (d *Download) Begin() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state != PhaseIdle {
		return common.ErrFlowActive
	}
	d.state = PhasePrompt
	return nil
}

// Answer resolves the ownership prompt. "No" shows the warning and no
// download starts; "yes" starts the progress timer.
func (d *Download) Answer(ownsCopy bool) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state != PhasePrompt {
		return common.ErrFlowActive
	}

	if !ownsCopy {
		d.state = PhaseWarned
		return nil
	}

	d.id = uuid.NewString()
	d.state = PhaseDownloading
	d.ticks = 0
	d.handle = d.sched.Every(DownloadTick, d.tick)
	d.logger.Info(context.Background(), "download started", "attempt", d.id)
	return nil
}

// AcknowledgeWarning dismisses the warning dialog.
func (d *Download) AcknowledgeWarning() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state != PhaseWarned {
		return common.ErrFlowActive
	}
	d.state = PhaseIdle
	return nil
}

func (d *Download) tick() {
	d.mu.Lock()
	if d.state != PhaseDownloading && d.state != PhaseCancelPending {
		d.mu.Unlock()
		return
	}

	d.ticks++

	// Once a cancel is pending the ending can no longer be reached; the
	// timer keeps running purely until the cancel delay fires.
	if d.state != PhaseDownloading || d.ticks < downloadFailTicks {
		d.mu.Unlock()
		return
	}

	// Tick 420 (140%): the scripted ending.
	d.state = PhaseFailed
	handle := d.handle
	d.handle = nil
	id := d.id
	d.mu.Unlock()

	handle.Stop()
	d.logger.Info(context.Background(), "download resolved",
		"attempt", id, "outcome", OutcomeDownloadFailed)
}

// Cancel requests cancellation of a running download. The flow enters
// cancel-pending and stays there for CancelDelay; only then does the
// progress timer stop and the state return to idle. Repeated cancels during
// the wait neither restart nor shorten the delay.
func (d *Download) Cancel() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	switch d.state {
	case PhaseCancelPending:
		return nil
	case PhaseDownloading:
	default:
		return common.ErrFlowActive
	}

	d.state = PhaseCancelPending
	d.cancelHandle = d.sched.After(CancelDelay, d.finishCancel)
	d.logger.Info(context.Background(), "download cancel requested", "attempt", d.id)
	return nil
}

func (d *Download) finishCancel() {
	d.mu.Lock()
	if d.state != PhaseCancelPending {
		d.mu.Unlock()
		return
	}
	d.state = PhaseIdle
	d.ticks = 0
	handle := d.handle
	d.handle = nil
	d.cancelHandle = nil
	id := d.id
	d.mu.Unlock()

	if handle != nil {
		handle.Stop()
	}
	d.logger.Info(context.Background(), "download cancelled", "attempt", id)
}

// Dismiss acknowledges the terminal failure dialog.
func (d *Download) Dismiss() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state != PhaseFailed {
		return common.ErrFlowActive
	}
	d.state = PhaseIdle
	d.ticks = 0
	return nil
}

// Outcome reports the scripted ending while the failure dialog is showing.
func (d *Download) Outcome() Outcome {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state == PhaseFailed {
		return OutcomeDownloadFailed
	}
	return OutcomeNone
}

// Stop is the teardown hook: it halts all timers unconditionally and
// resets to idle. Unlike Cancel it does not wait.
func (d *Download) Stop() {
	d.mu.Lock()
	handle := d.handle
	cancelHandle := d.cancelHandle
	d.handle = nil
	d.cancelHandle = nil
	d.state = PhaseIdle
	d.ticks = 0
	d.mu.Unlock()

	if handle != nil {
		handle.Stop()
	}
	if cancelHandle != nil {
		cancelHandle.Stop()
	}
}

// Progress returns the current snapshot. Percent runs 0..140 with the
// region past 100 flagged as overflow.
func (d *Download) Progress() ProgressState {
	d.mu.Lock()
	defer d.mu.Unlock()

	p := float64(d.ticks) * 100 / downloadFullTicks
	if max := float64(downloadFailTicks) * 100 / downloadFullTicks; p > max {
		p = max
	}

	return ProgressState{
		Elapsed:  time.Duration(d.ticks) * DownloadTick,
		Percent:  p,
		Phase:    d.state,
		Overflow: p > 100,
	}
}
