package sim

import "time"

// Phase names the observable state of a simulated flow.
type Phase string

const (
	PhaseIdle          Phase = "idle"
	PhaseConnecting    Phase = "connecting"
	PhasePrompt        Phase = "prompt"
	PhaseWarned        Phase = "warned"
	PhaseDownloading   Phase = "downloading"
	PhaseCancelPending Phase = "cancel-pending"
	PhaseFailed        Phase = "failed"
)

// Outcome is the scripted terminal result of a flow. These are designed
// endings, not errors: the taxonomy keeps them apart from real failures.
type Outcome string

const (
	OutcomeNone                Outcome = ""
	OutcomePrerequisiteMissing Outcome = "prerequisite-missing"
	OutcomeDownloadFailed      Outcome = "download-failed"
)

// ProgressState is a snapshot of an active simulated operation. It is owned
// by its flow and discarded on completion or cancellation.
type ProgressState struct {
	Elapsed time.Duration
	Percent float64
	Phase   Phase
	// Overflow marks the download's past-100% region, which the UI must
	// render distinctly from the normal range.
	Overflow bool
}
