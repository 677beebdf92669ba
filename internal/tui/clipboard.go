package tui

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/jmylchreest/animo/internal/config"
)

// clipboardTimeout bounds a single copy; wl-copy and xclip fork and return quickly.
const clipboardTimeout = 5 * time.Second

// ErrNoClipboard is returned when no clipboard command is configured or found.
var ErrNoClipboard = errors.New("no clipboard command available")

// clipboardCandidates are tried in order when [clipboard] command is unset.
var clipboardCandidates = []string{
	"wl-copy",                    // Wayland
	"xclip -selection clipboard", // X11
	"xsel --clipboard --input",   // X11
	"pbcopy",                     // macOS
}

// lookPath is swapped in tests.
var lookPath = exec.LookPath

// copyText pipes text into the clipboard command. The command is killed when
// ctx is done.
func copyText(ctx context.Context, text string, cfg *config.Config) error {
	argv, err := clipboardCommand(cfg)
	if err != nil {
		return err
	}

	c := exec.CommandContext(ctx, argv[0], argv[1:]...)
	c.Stdin = strings.NewReader(text)

	if err := c.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("clipboard command %q: %w", argv[0], ctxErr)
		}
		return fmt.Errorf("clipboard command %q failed: %w", argv[0], err)
	}
	return nil
}

// clipboardCommand returns the configured command split into argv, or the
// first installed candidate.
func clipboardCommand(cfg *config.Config) ([]string, error) {
	if cfg != nil {
		if argv := strings.Fields(cfg.Clipboard.Command); len(argv) > 0 {
			return argv, nil
		}
	}

	for _, candidate := range clipboardCandidates {
		argv := strings.Fields(candidate)
		if _, err := lookPath(argv[0]); err == nil {
			return argv, nil
		}
	}
	return nil, ErrNoClipboard
}
