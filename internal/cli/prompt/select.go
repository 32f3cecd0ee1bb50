// Package prompt provides interactive CLI prompts for user input.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/ktr0731/go-fuzzyfinder"

	"github.com/gitzsh/gitz/internal/logging"
)

// Sentinel errors for selection prompts.
var (
	ErrNoOptions          = errors.New("no options to select from")
	ErrInvalidSelection   = errors.New("invalid selection")
	ErrSelectionCancelled = errors.New("selection cancelled")
)

// Selector handles interactive selection prompts. On a terminal it opens a
// fuzzy finder; otherwise it falls back to a numbered list read from the
// input, which keeps the prompt scriptable and testable.
type Selector struct {
	reader io.Reader
	writer io.Writer
	fuzzy  bool
}

// NewSelector creates a new Selector using stdin and stdout.
func NewSelector() *Selector {
	return &Selector{
		reader: os.Stdin,
		writer: os.Stdout,
		fuzzy:  logging.IsTTY(os.Stdout),
	}
}

// NewSelectorWithIO creates a Selector with custom reader and writer for
// testing. It always uses the numbered-list fallback.
func NewSelectorWithIO(r io.Reader, w io.Writer) *Selector {
	return &Selector{
		reader: r,
		writer: w,
	}
}

// Select prompts the user to choose one of the options, returning its
// index. An empty answer picks defaultIndex.
//
// Returns:
//   - ErrNoOptions if the option list is empty
//   - ErrInvalidSelection if the answer is not a listed option
//   - ErrSelectionCancelled if input is EOF (e.g. Ctrl+D) or the fuzzy
//     finder is aborted
func (s *Selector) Select(question string, options []string, defaultIndex int) (int, error) {
	if len(options) == 0 {
		return 0, ErrNoOptions
	}

	if s.fuzzy {
		return s.selectFuzzy(question, options)
	}
	return s.selectNumbered(question, options, defaultIndex)
}

func (s *Selector) selectFuzzy(question string, options []string) (int, error) {
	idx, err := fuzzyfinder.Find(
		options,
		func(i int) string { return options[i] },
		fuzzyfinder.WithHeader(question),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return 0, ErrSelectionCancelled
		}
		return 0, errors.Wrap(err, "interactive selection failed")
	}
	return idx, nil
}

func (s *Selector) selectNumbered(question string, options []string, defaultIndex int) (int, error) {
	fmt.Fprintf(s.writer, "%s\n", question)
	for i, option := range options {
		fmt.Fprintf(s.writer, "  [%d] %s\n", i+1, option)
	}
	fmt.Fprintf(s.writer, "Select [%d]: ", defaultIndex+1)

	reader := bufio.NewReader(s.reader)
	input, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return 0, errors.Wrap(err, "reading selection")
	}

	input = strings.TrimSpace(input)
	if input == "" {
		if err != nil {
			// EOF without an answer.
			return 0, ErrSelectionCancelled
		}
		return defaultIndex, nil
	}

	selection, convErr := strconv.Atoi(input)
	if convErr != nil {
		return 0, errors.Wrapf(ErrInvalidSelection, "%q is not a number", input)
	}
	if selection < 1 || selection > len(options) {
		return 0, errors.Wrapf(ErrInvalidSelection, "%d is out of range [1-%d]", selection, len(options))
	}

	return selection - 1, nil
}
