package desktop

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// AppName is passed to notify-send.
const AppName = "hyprsystem"

// Monitor is one entry of `hyprctl monitors -j`.
type Monitor struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	RefreshRate float64 `json:"refreshRate"`
	Focused     bool    `json:"focused"`
}

// Client wraps hyprctl, service and notification commands.
type Client struct {
	exec Executor
}

// NewClient creates a client. A nil executor runs commands locally.
func NewClient(executor Executor) *Client {
	if executor == nil {
		executor = LocalExecutor{}
	}
	return &Client{exec: executor}
}

// Monitors returns the live monitor topology.
func (c *Client) Monitors(ctx context.Context) ([]Monitor, error) {
	stdout, stderr, err := c.exec.Exec(ctx, "hyprctl", "monitors", "-j")
	if err != nil {
		return nil, fmt.Errorf("hyprctl monitors failed: %w%s", err, stderrSuffix(stderr))
	}

	output := strings.TrimSpace(string(stdout))
	if output == "" {
		return []Monitor{}, nil
	}

	var monitors []Monitor
	if err := json.Unmarshal([]byte(output), &monitors); err != nil {
		return nil, fmt.Errorf("parse hyprctl monitors output: %w", err)
	}
	return monitors, nil
}

// Reload asks Hyprland to re-read its configuration.
func (c *Client) Reload(ctx context.Context) error {
	_, stderr, err := c.exec.Exec(ctx, "hyprctl", "reload")
	if err != nil {
		return fmt.Errorf("hyprctl reload failed: %w%s", err, stderrSuffix(stderr))
	}
	return nil
}

// RestartService kills any running instance of name and starts a new one.
func (c *Client) RestartService(ctx context.Context, name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("service name is required")
	}

	_, stderr, err := c.exec.Exec(ctx, "pkill", name)
	if err != nil && !isNoProcessMatched(err) {
		return fmt.Errorf("pkill %s failed: %w%s", name, err, stderrSuffix(stderr))
	}

	if err := c.exec.Start(ctx, name); err != nil {
		return fmt.Errorf("start %s failed: %w", name, err)
	}
	return nil
}

// Notify shows a desktop notification.
func (c *Client) Notify(ctx context.Context, summary, body string) error {
	args := []string{"-a", AppName, summary}
	if body != "" {
		args = append(args, body)
	}
	_, stderr, err := c.exec.Exec(ctx, "notify-send", args...)
	if err != nil {
		return fmt.Errorf("notify-send failed: %w%s", err, stderrSuffix(stderr))
	}
	return nil
}

// pkill exits 1 when nothing matched.
func isNoProcessMatched(err error) bool {
	var exitErr *exec.ExitError
	return errors.As(err, &exitErr) && exitErr.ExitCode() == 1
}

func stderrSuffix(stderr []byte) string {
	msg := strings.TrimSpace(string(stderr))
	if msg == "" {
		return ""
	}
	return ": " + msg
}
