package sim

import (
	"testing"
	"time"

	"github.com/derol/majestic-launcher/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startedDownload(t *testing.T) (*Download, *fakeScheduler) {
	t.Helper()
	s := &fakeScheduler{}
	d := NewDownload(testLogger(), s)
	require.NoError(t, d.Begin())
	require.NoError(t, d.Answer(true))
	require.Len(t, s.every, 1)
	require.Equal(t, DownloadTick, s.every[0].d)
	return d, s
}

func TestDownload_DecliningOwnershipShowsWarningAndNoDownload(t *testing.T) {
	s := &fakeScheduler{}
	d := NewDownload(testLogger(), s)

	require.NoError(t, d.Begin())
	assert.Equal(t, PhasePrompt, d.State())

	require.NoError(t, d.Answer(false))
	assert.Equal(t, PhaseWarned, d.State())
	assert.Empty(t, s.every, "no progress timer may start")

	require.NoError(t, d.AcknowledgeWarning())
	assert.Equal(t, PhaseIdle, d.State())
}

func TestDownload_BeginOnlyFromIdle(t *testing.T) {
	d, _ := startedDownload(t)
	assert.ErrorIs(t, d.Begin(), common.ErrFlowActive)
}

func TestDownload_ProgressTimeline(t *testing.T) {
	d, s := startedDownload(t)
	tick := s.every[0]

	// t=299s: still below 100%.
	for i := 0; i < 299; i++ {
		tick.fire()
	}
	p := d.Progress()
	assert.Less(t, p.Percent, 100.0)
	assert.False(t, p.Overflow)

	// t=300s: exactly 100%, the overflow region begins past this point.
	tick.fire()
	p = d.Progress()
	assert.Equal(t, 100.0, p.Percent)
	assert.False(t, p.Overflow)
	assert.Equal(t, PhaseDownloading, p.Phase)

	// t=301s: visibly inside the overflow region.
	tick.fire()
	p = d.Progress()
	assert.Greater(t, p.Percent, 100.0)
	assert.True(t, p.Overflow)

	// t=420s: exactly 140% and the scripted ending.
	for i := 0; i < 119; i++ {
		tick.fire()
	}
	p = d.Progress()
	assert.Equal(t, 140.0, p.Percent)
	assert.Equal(t, 420*time.Second, p.Elapsed)
	assert.Equal(t, PhaseFailed, d.State())
	assert.Equal(t, OutcomeDownloadFailed, d.Outcome())
	assert.True(t, tick.handle.Stopped())
}

func TestDownload_CancelWaitsTenSecondsThenIdle(t *testing.T) {
	d, s := startedDownload(t)
	tick := s.every[0]

	for i := 0; i < 150; i++ {
		tick.fire()
	}
	require.NoError(t, d.Cancel())
	assert.Equal(t, PhaseCancelPending, d.State())
	require.Len(t, s.after, 1)
	assert.Equal(t, CancelDelay, s.after[0].d)

	// The progress timer is still alive during the wait.
	assert.False(t, tick.handle.Stopped())
	tick.fire()
	assert.Equal(t, PhaseCancelPending, d.State())

	s.after[0].fire()
	assert.Equal(t, PhaseIdle, d.State())
	assert.True(t, tick.handle.Stopped())
	assert.Equal(t, 0.0, d.Progress().Percent)
}

func TestDownload_RecancelDoesNotRestartDelay(t *testing.T) {
	d, s := startedDownload(t)

	require.NoError(t, d.Cancel())
	require.NoError(t, d.Cancel())
	require.NoError(t, d.Cancel())
	assert.Len(t, s.after, 1, "the delay must be scheduled once")
}

func TestDownload_CancelPendingSuppressesFailure(t *testing.T) {
	d, s := startedDownload(t)
	tick := s.every[0]

	for i := 0; i < 415; i++ {
		tick.fire()
	}
	require.NoError(t, d.Cancel())

	// Ticks past the failure threshold no longer matter: the cancel wins.
	for i := 0; i < 20; i++ {
		tick.fire()
	}
	assert.Equal(t, PhaseCancelPending, d.State())
	assert.Equal(t, OutcomeNone, d.Outcome())

	s.after[0].fire()
	assert.Equal(t, PhaseIdle, d.State())
}

func TestDownload_DismissReturnsToIdle(t *testing.T) {
	d, s := startedDownload(t)
	for i := 0; i < 420; i++ {
		s.every[0].fire()
	}
	require.Equal(t, PhaseFailed, d.State())

	require.NoError(t, d.Dismiss())
	assert.Equal(t, PhaseIdle, d.State())
	assert.Equal(t, 0.0, d.Progress().Percent)

	// The machine is reusable after a dismissed failure.
	require.NoError(t, d.Begin())
}

func TestDownload_AnswerOutsidePromptRejected(t *testing.T) {
	s := &fakeScheduler{}
	d := NewDownload(testLogger(), s)
	assert.ErrorIs(t, d.Answer(true), common.ErrFlowActive)
}

func TestDownload_CancelOutsideDownloadingRejected(t *testing.T) {
	s := &fakeScheduler{}
	d := NewDownload(testLogger(), s)
	assert.ErrorIs(t, d.Cancel(), common.ErrFlowActive)
}

func TestDownload_StopTearsDownAllTimers(t *testing.T) {
	d, s := startedDownload(t)
	for i := 0; i < 10; i++ {
		s.every[0].fire()
	}
	require.NoError(t, d.Cancel())

	d.Stop()
	assert.Equal(t, PhaseIdle, d.State())
	assert.True(t, s.every[0].handle.Stopped())
	assert.True(t, s.after[0].handle.Stopped())
}
