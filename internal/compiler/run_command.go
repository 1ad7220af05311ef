package compiler

import (
	"context"
	"os/exec"
	"strings"
)

// runCommand invokes name with args, capturing stderr for diagnostics on
// failure. Stdout is discarded; the toolchains K drives don't put anything
// load-bearing there.
func runCommand(ctx context.Context, name string, args ...string) (diagnostics string, err error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var stderr strings.Builder
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return msg, err
	}
	return "", nil
}
