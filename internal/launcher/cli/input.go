package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

// GetSimpleText prints a prompt to w and reads a single line of input from
// reader. The trailing newline is trimmed. If EOF occurs after some input
// was read, the partial line is returned.
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetPassword prints a prompt to w and reads a password from the user's
// terminal without echo.
func GetPassword(prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+": "); err != nil {
		return "", err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return "", err
	}
	return string(pw), nil
}

// GetIntInRange prompts for an integer between min and max. An empty line
// keeps the current value; anything unparsable or out of range re-prompts.
func GetIntInRange(reader *bufio.Reader, prompt string, current, min, max int, w io.Writer) (int, error) {
	for {
		line, err := GetSimpleText(reader, fmt.Sprintf("%s [%d]", prompt, current), w)
		if err != nil {
			return 0, err
		}
		if line == "" {
			return current, nil
		}
		v, err := strconv.Atoi(line)
		if err != nil || v < min || v > max {
			fmt.Fprintf(w, "enter a number between %d and %d\n", min, max)
			continue
		}
		return v, nil
	}
}
