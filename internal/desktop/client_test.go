package desktop

import (
	"context"
	"errors"
	"os/exec"
	"strings"
	"testing"
)

type fakeExecutor struct {
	stdout   []byte
	stderr   []byte
	err      error
	startErr error

	calls   []string
	started []string
}

func (f *fakeExecutor) Exec(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	f.calls = append(f.calls, strings.TrimSpace(name+" "+strings.Join(args, " ")))
	return f.stdout, f.stderr, f.err
}

func (f *fakeExecutor) Start(ctx context.Context, name string, args ...string) error {
	f.started = append(f.started, name)
	return f.startErr
}

func TestMonitors(t *testing.T) {
	fake := &fakeExecutor{stdout: []byte(`[{"id":0,"name":"DP-1","width":2560,"height":1440,"focused":true},{"id":1,"name":"HDMI-A-1"}]`)}
	client := NewClient(fake)

	monitors, err := client.Monitors(context.Background())
	if err != nil {
		t.Fatalf("Monitors failed: %v", err)
	}
	if len(fake.calls) != 1 || fake.calls[0] != "hyprctl monitors -j" {
		t.Fatalf("unexpected calls: %v", fake.calls)
	}
	if len(monitors) != 2 {
		t.Fatalf("expected 2 monitors, got %d", len(monitors))
	}
	if monitors[0].Name != "DP-1" || !monitors[0].Focused || monitors[0].Width != 2560 {
		t.Fatalf("unexpected first monitor: %+v", monitors[0])
	}
}

func TestMonitors_Empty(t *testing.T) {
	client := NewClient(&fakeExecutor{stdout: []byte("  \n")})

	monitors, err := client.Monitors(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(monitors) != 0 {
		t.Fatalf("expected no monitors, got %d", len(monitors))
	}
}

func TestMonitors_CommandFailure(t *testing.T) {
	client := NewClient(&fakeExecutor{err: errors.New("exit status 1"), stderr: []byte("HYPRLAND_INSTANCE_SIGNATURE not set")})

	_, err := client.Monitors(context.Background())
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "HYPRLAND_INSTANCE_SIGNATURE") {
		t.Fatalf("expected stderr in error, got %v", err)
	}
}

func TestMonitors_InvalidOutput(t *testing.T) {
	client := NewClient(&fakeExecutor{stdout: []byte("not json")})

	if _, err := client.Monitors(context.Background()); err == nil {
		t.Fatalf("expected error for invalid output")
	}
}

func TestReload(t *testing.T) {
	fake := &fakeExecutor{}
	if err := NewClient(fake).Reload(context.Background()); err != nil {
		t.Fatalf("Reload failed: %v", err)
	}
	if fake.calls[0] != "hyprctl reload" {
		t.Fatalf("unexpected call %q", fake.calls[0])
	}

	failing := &fakeExecutor{err: errors.New("boom")}
	if err := NewClient(failing).Reload(context.Background()); err == nil {
		t.Fatalf("expected reload error")
	}
}

func TestRestartService(t *testing.T) {
	fake := &fakeExecutor{}
	client := NewClient(fake)

	if err := client.RestartService(context.Background(), "waybar"); err != nil {
		t.Fatalf("RestartService failed: %v", err)
	}
	if fake.calls[0] != "pkill waybar" {
		t.Fatalf("unexpected call %q", fake.calls[0])
	}
	if len(fake.started) != 1 || fake.started[0] != "waybar" {
		t.Fatalf("expected waybar to be started, got %v", fake.started)
	}

	if err := client.RestartService(context.Background(), " "); err == nil {
		t.Fatalf("expected error for empty service name")
	}
}

func TestRestartService_StartFailure(t *testing.T) {
	fake := &fakeExecutor{startErr: errors.New("not found")}
	if err := NewClient(fake).RestartService(context.Background(), "dunst"); err == nil {
		t.Fatalf("expected start error")
	}
}

func TestRestartService_PkillFailure(t *testing.T) {
	fake := &fakeExecutor{err: errors.New("permission denied")}
	if err := NewClient(fake).RestartService(context.Background(), "dunst"); err == nil {
		t.Fatalf("expected pkill error")
	}
	if len(fake.started) != 0 {
		t.Fatalf("service should not start after pkill failure")
	}
}

func TestNotify(t *testing.T) {
	fake := &fakeExecutor{}
	if err := NewClient(fake).Notify(context.Background(), "Workspace mode", "per_monitor"); err != nil {
		t.Fatalf("Notify failed: %v", err)
	}
	if fake.calls[0] != "notify-send -a hyprsystem Workspace mode per_monitor" {
		t.Fatalf("unexpected call %q", fake.calls[0])
	}
}

func TestLocalExecutorExec(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
	stdout, _, err := LocalExecutor{}.Exec(context.Background(), "sh", "-c", "printf hello")
	if err != nil {
		t.Fatalf("Exec failed: %v", err)
	}
	if string(stdout) != "hello" {
		t.Fatalf("unexpected stdout %q", stdout)
	}

	_, _, err = LocalExecutor{}.Exec(context.Background(), "sh", "-c", "exit 1")
	if !isNoProcessMatched(err) {
		t.Fatalf("expected exit status 1 to be recognized, got %v", err)
	}
}
