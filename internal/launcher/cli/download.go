package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/derol/majestic-launcher/internal/common"
	"github.com/derol/majestic-launcher/internal/launcher/sim"
)

// Download runs the interactive game-files flow. Users without a licensed
// copy get a warning and return to the prompt; owners watch the progress
// line until the transfer fails or they press Enter to cancel. A requested
// cancel takes effect only after its grace period.
func (a *App) Download(ctx context.Context) error {
	if err := a.download.Begin(); err != nil {
		if errors.Is(err, common.ErrFlowActive) {
			fmt.Fprintln(a.out, "Another download is already running.")
			return nil
		}
		return err
	}

	answer, err := getSimpleText(a.reader, "Do you own a licensed copy of the game? (y/n)", a.out)
	if err != nil {
		a.download.Stop()
		return err
	}
	owns := strings.EqualFold(answer, "y") || strings.EqualFold(answer, "yes")

	if err := a.download.Answer(owns); err != nil {
		return err
	}

	if !owns {
		fmt.Fprintln(a.out, "A licensed copy is required to download the game files.")
		return a.download.AcknowledgeWarning()
	}

	fmt.Fprintln(a.out, "Downloading game files (press Enter to cancel)")

	enter := a.watchEnter()
	ticker := time.NewTicker(a.config.RefreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-enter:
			// A nil channel blocks forever, so the closed channel
			// stops re-triggering once the cancel is in flight.
			enter = nil
			if err := a.download.Cancel(); err == nil {
				fmt.Fprintln(a.out, "\nCancelling, this takes about 10 seconds...")
			}

		case <-ticker.C:
			st := a.download.Progress()
			switch st.Phase {
			case sim.PhaseFailed:
				fmt.Fprintln(a.out, "\nDownload error: license verification failed.")
				fmt.Fprintln(a.out, "Press Enter to continue")
				// An Enter pressed between the failure and this redraw
				// was already consumed by the no-op cancel above, so a
				// fresh press is needed to dismiss.
				if enter == nil {
					enter = a.watchEnter()
				}
				<-enter
				return a.download.Dismiss()

			case sim.PhaseIdle:
				fmt.Fprintln(a.out, "\nDownload cancelled.")
				return nil

			default:
				if st.Overflow {
					fmt.Fprintf(a.out, "\rDownloading... %3.0f%% (past expected size)", st.Percent)
				} else {
					fmt.Fprintf(a.out, "\rDownloading... %3.0f%%", st.Percent)
				}
			}

		case <-ctx.Done():
			a.download.Stop()
			return ctx.Err()
		}
	}
}
