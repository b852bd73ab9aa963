package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/derol/majestic-launcher/internal/common"
	"github.com/derol/majestic-launcher/internal/launcher/sim"
)

// Servers prints the server list with the current online counts.
func (a *App) Servers(ctx context.Context) error {
	for i, e := range a.population.Snapshot() {
		fmt.Fprintf(a.out, "%2d. %-22s %4d / %d\n", i+1, e.Name, e.Online, sim.MaxOnline)
	}
	return nil
}

// Connect runs the interactive connection flow: pick a server, enter a
// nickname, then watch the progress line until the attempt resolves or the
// user presses Enter to cancel.
func (a *App) Connect(ctx context.Context) error {
	entries := a.population.Snapshot()
	if err := a.Servers(ctx); err != nil {
		return err
	}

	numText, err := getSimpleText(a.reader, "Server number", a.out)
	if err != nil {
		return err
	}
	n, err := strconv.Atoi(numText)
	if err != nil || n < 1 || n > len(entries) {
		fmt.Fprintf(a.out, "Enter a server number between 1 and %d.\n", len(entries))
		return nil
	}
	server := entries[n-1].Name

	nickname, err := getSimpleText(a.reader, "Nickname (Name_Surname)", a.out)
	if err != nil {
		return err
	}

	if err := a.connect.Start(a.sched, server, nickname); err != nil {
		switch {
		case errors.Is(err, common.ErrInvalidNickname):
			fmt.Fprintln(a.out, "Nickname must look like Name_Surname, e.g. John_Doe.")
		case errors.Is(err, common.ErrFlowActive):
			fmt.Fprintln(a.out, "Another connection attempt is already running.")
		default:
			return err
		}
		return nil
	}

	fmt.Fprintf(a.out, "Connecting to %s as %s (press Enter to cancel)\n", server, nickname)

	enter := a.watchEnter()
	ticker := time.NewTicker(a.config.RefreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-enter:
			a.connect.Cancel()
			fmt.Fprintln(a.out, "\nConnection cancelled.")
			return nil

		case <-ticker.C:
			st := a.connect.Progress()
			if st.Phase == sim.PhaseFailed {
				fmt.Fprintln(a.out, "\nCould not connect: the game client was not found.")
				fmt.Fprintln(a.out, "Download the game files first, then try again.")
				fmt.Fprintln(a.out, "Press Enter to continue")
				<-enter
				a.connect.Stop()
				return nil
			}
			fmt.Fprintf(a.out, "\rConnecting... %3.0f%%", st.Percent)

		case <-ctx.Done():
			a.connect.Cancel()
			return ctx.Err()
		}
	}
}

// watchEnter consumes one line from the shared reader in the background and
// signals by closing the returned channel. Progress loops use it so a bare
// Enter acts as the cancel key without blocking the redraw ticker.
func (a *App) watchEnter() <-chan struct{} {
	ch := make(chan struct{})
	go func() {
		_, _ = a.reader.ReadString('\n')
		close(ch)
	}()
	return ch
}
