package pdftext

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
	"time"

	"github.com/custodia-labs/apply-cli/internal/logger"
)

// Runner runs an external command. Tests substitute a fake.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (stdout, stderr []byte, err error)
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct{}

// Run executes name with args and captures both output streams.
func (ExecRunner) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	start := time.Now()

	cmd := exec.CommandContext(ctx, name, args...)
	var out, errb bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errb

	err := cmd.Run()
	dur := time.Since(start)

	if err != nil {
		logger.Warn("exec %s %s failed after %dms: %v: %s",
			name, strings.Join(args, " "), dur.Milliseconds(), err, truncate(errb.String(), 8<<10))
	} else {
		logger.Debug("exec %s ok in %dms (%d bytes)", name, dur.Milliseconds(), out.Len())
	}

	return out.Bytes(), errb.Bytes(), err
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "...(truncated)"
}
