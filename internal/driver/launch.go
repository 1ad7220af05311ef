package driver

import (
	"context"
	"os"
	"os/exec"
)

// Launch starts the generated executable as a child process, wired to the
// driver's own stdio so the generated program's print output and the
// runtime's "hotreload runtime error" messages on stderr reach the user
// directly.
// Process-tree teardown is how cancellation reaches the running binary
// (§5): there is no separate shutdown protocol.
func Launch(ctx context.Context, exePath string) (*exec.Cmd, error) {
	cmd := exec.CommandContext(ctx, exePath)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	if err := cmd.Start(); err != nil {
		return nil, err
	}
	return cmd, nil
}
