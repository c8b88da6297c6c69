package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/google/uuid"

	"scaffolddemo/internal/config"
	"scaffolddemo/internal/i18n"
	"scaffolddemo/internal/state"
	"scaffolddemo/pkg/logging"
)

// Replay script errors
var (
	ErrUnknownEvent     = errors.New("unknown event")
	ErrUnknownItem      = errors.New("unknown item")
	ErrUnsupportedEvent = errors.New("event not available on this screen")
)

// Replayer drives one screen's reducer from a text script.
//
// Script lines hold one event each: open, close, toggle, fab, dismiss,
// select:<title> or select#<n> (1-based). Blank lines and lines starting with
// # are skipped.
type Replayer struct {
	screen   config.Screen
	scaffold state.ScaffoldState
	backdrop state.BackdropState
	snack    string
	out      io.Writer

	newID func() string
}

// NewReplayer creates a replayer over the screen cfg selects.
func NewReplayer(cfg config.DemoConfig, out io.Writer) *Replayer {
	snack := cfg.Snackbar.Message
	if snack == "" {
		snack = i18n.T(i18n.MsgButtonClicked)
	}
	return &Replayer{
		screen:   cfg.Screen,
		scaffold: state.NewScaffoldState(cfg.BottomMenuItems()),
		backdrop: state.NewBackdropState(cfg.BackdropMenuItems()),
		snack:    snack,
		out:      out,
		newID:    uuid.NewString,
	}
}

// State renders the current screen state as one line.
func (r *Replayer) State() string {
	if r.screen == config.ScreenScaffold {
		return r.scaffold.String()
	}
	return r.backdrop.String()
}

// PrintState writes the current state line.
func (r *Replayer) PrintState() error {
	_, err := fmt.Fprintln(r.out, r.State())
	return err
}

// Run prints the initial state, then applies every script line in order.
// It stops at the first invalid line or when ctx is done.
func (r *Replayer) Run(ctx context.Context, in io.Reader) error {
	if err := r.PrintState(); err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	lineNo := 0
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := r.Step(line); err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read events: %w", err)
	}
	return nil
}

// Step applies a single script line and prints the resulting state.
func (r *Replayer) Step(line string) error {
	ev, err := r.Parse(line)
	if err != nil {
		return err
	}
	r.apply(ev)
	_, err = fmt.Fprintf(r.out, "%s -> %s\n", ev, r.State())
	return err
}

// Parse turns a script line into an event for the current screen.
func (r *Replayer) Parse(line string) (state.Event, error) {
	switch {
	case line == "open":
		return state.OpenPanel{}, nil
	case line == "close":
		return state.ClosePanel{}, nil
	case line == "toggle":
		return state.TogglePanel{}, nil
	case line == "fab":
		if r.screen != config.ScreenScaffold {
			return nil, fmt.Errorf("%w: fab", ErrUnsupportedEvent)
		}
		return state.ShowNotification{ID: r.newID(), Text: r.snack}, nil
	case line == "dismiss":
		n, ok := r.snackbar().Visible()
		if !ok {
			return state.DismissNotification{}, nil
		}
		return state.DismissNotification{ID: n.ID}, nil
	case strings.HasPrefix(line, "select:"):
		title := strings.TrimSpace(strings.TrimPrefix(line, "select:"))
		if !r.selection().Contains(title) {
			return nil, unknownItem(title, r.selection().Items())
		}
		return state.SelectItem{Title: title}, nil
	case strings.HasPrefix(line, "select#"):
		raw := strings.TrimSpace(strings.TrimPrefix(line, "select#"))
		n, err := strconv.Atoi(raw)
		items := r.selection().Items()
		if err != nil || n < 1 || n > len(items) {
			return nil, fmt.Errorf("%w: position %q, expected 1..%d", ErrUnknownItem, raw, len(items))
		}
		return state.SelectItem{Title: items[n-1]}, nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownEvent, line)
	}
}

func (r *Replayer) apply(ev state.Event) {
	if r.screen == config.ScreenScaffold {
		r.scaffold = state.ReduceScaffold(r.scaffold, ev)
	} else {
		r.backdrop = state.ReduceBackdrop(r.backdrop, ev)
	}
	logging.Debug("Replay", "%s -> %s", ev, r.State())
}

func (r *Replayer) selection() state.Selection {
	if r.screen == config.ScreenScaffold {
		return r.scaffold.Selection
	}
	return r.backdrop.Selection
}

func (r *Replayer) snackbar() state.Snackbar {
	if r.screen == config.ScreenScaffold {
		return r.scaffold.Snackbar
	}
	return r.backdrop.Snackbar
}

// unknownItem builds an ErrUnknownItem with the closest title as a hint.
func unknownItem(title string, items []string) error {
	if best, ok := closest(title, items); ok {
		return fmt.Errorf("%w %q, did you mean %q?", ErrUnknownItem, title, best)
	}
	return fmt.Errorf("%w %q", ErrUnknownItem, title)
}

func closest(title string, items []string) (string, bool) {
	best := ""
	bestDist := -1
	lower := strings.ToLower(title)
	for _, item := range items {
		d := levenshtein.ComputeDistance(lower, strings.ToLower(item))
		if bestDist < 0 || d < bestDist {
			best, bestDist = item, d
		}
	}
	limit := len(title) / 2
	if limit < 2 {
		limit = 2
	}
	if bestDist < 0 || bestDist > limit {
		return "", false
	}
	return best, true
}
