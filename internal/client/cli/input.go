package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ashish-aa/skillmesh/internal/datex"
	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
// In tests you can replace it with a stub to avoid touching the terminal.
var readPassword = term.ReadPassword

// GetSimpleText prints a prompt to w and reads a single line of input from reader.
// The trailing newline is trimmed. If EOF occurs after some input was read,
// the partial line is returned.
//
// Example prompt format:
//
//	Prompt text
//	> _
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

// GetPassword prints a password prompt to w and reads a password
// from the user's terminal without echo. A newline is printed after
// the read to keep the UI tidy.
func GetPassword(w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, "Enter password: "); err != nil {
		return "", err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return "", err
	}
	return string(pw), nil
}

// GetDate prompts for a calendar date in yyyy-mm-dd form. An empty line
// returns the zero time so optional dates can be skipped.
func GetDate(reader *bufio.Reader, prompt string, w io.Writer) (time.Time, error) {
	for {
		text, err := GetSimpleText(reader, prompt+" (yyyy-mm-dd)", w)
		if err != nil {
			return time.Time{}, err
		}
		if text == "" {
			return time.Time{}, nil
		}
		d, err := datex.ParseServerDate(text)
		if err != nil {
			fmt.Fprintln(w, "Invalid date, expected yyyy-mm-dd")
			continue
		}
		return d, nil
	}
}

// GetChoice prints a numbered list of options and reads one pick. An empty
// line returns -1 so optional choices can be skipped.
func GetChoice(reader *bufio.Reader, prompt string, options []string, w io.Writer) (int, error) {
	fmt.Fprintln(w, prompt)
	for i, o := range options {
		fmt.Fprintf(w, "  %d) %s\n", i+1, o)
	}

	for {
		text, err := GetSimpleText(reader, "Enter a number", w)
		if err != nil {
			return -1, err
		}
		if text == "" {
			return -1, nil
		}
		n, err := strconv.Atoi(text)
		if err != nil || n < 1 || n > len(options) {
			fmt.Fprintf(w, "Enter a number between 1 and %d\n", len(options))
			continue
		}
		return n - 1, nil
	}
}

// GetMultiChoice reads a comma-separated list of picks from a numbered
// list, e.g. "1,3". At least one pick is required.
func GetMultiChoice(reader *bufio.Reader, prompt string, options []string, w io.Writer) ([]string, error) {
	fmt.Fprintln(w, prompt)
	for i, o := range options {
		fmt.Fprintf(w, "  %d) %s\n", i+1, o)
	}

	for {
		text, err := GetSimpleText(reader, "Enter numbers separated by commas", w)
		if err != nil {
			return nil, err
		}

		var picks []string
		valid := true
		for _, part := range strings.Split(text, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			n, err := strconv.Atoi(part)
			if err != nil || n < 1 || n > len(options) {
				valid = false
				break
			}
			picks = append(picks, options[n-1])
		}
		if !valid || len(picks) == 0 {
			fmt.Fprintf(w, "Enter at least one number between 1 and %d\n", len(options))
			continue
		}
		return picks, nil
	}
}
