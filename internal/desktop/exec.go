// Package desktop wraps the external programs hyprsystem drives: hyprctl,
// companion services and desktop notifications.
package desktop

import (
	"bytes"
	"context"
	"os/exec"
)

// Executor runs external commands.
type Executor interface {
	// Exec runs a command to completion and captures its output.
	Exec(ctx context.Context, name string, args ...string) (stdout, stderr []byte, err error)

	// Start launches a long-running command without waiting for it.
	Start(ctx context.Context, name string, args ...string) error
}

// LocalExecutor runs commands on the local machine.
type LocalExecutor struct{}

// Exec implements Executor.
func (LocalExecutor) Exec(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.Bytes(), stderr.Bytes(), err
}

// Start implements Executor. The process is released and outlives hyprsystem;
// its output is discarded.
func (LocalExecutor) Start(ctx context.Context, name string, args ...string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	return cmd.Process.Release()
}
