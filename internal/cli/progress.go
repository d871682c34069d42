package cli

import (
	"fmt"
	"io"
	"os"
	"time"
)

type progressStep struct {
	out     io.Writer
	label   string
	started time.Time
}

func startProgress(out io.Writer, label string) *progressStep {
	if !progressEnabled() {
		return nil
	}
	fmt.Fprintf(out, "%s... ", label)
	return &progressStep{
		out:     out,
		label:   label,
		started: time.Now(),
	}
}

func (p *progressStep) Done() {
	if p == nil {
		return
	}
	fmt.Fprintf(p.out, "done (%s)\n", formatDuration(time.Since(p.started)))
}

func progressEnabled() bool {
	if IsJSONOutput() || noProgress {
		return false
	}
	if _, ok := os.LookupEnv("HYPRSYSTEM_NO_PROGRESS"); ok {
		return false
	}
	if _, ok := os.LookupEnv("NO_PROGRESS"); ok {
		return false
	}
	return true
}

func formatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return d.String()
	}
	if d < time.Second {
		return d.Round(10 * time.Millisecond).String()
	}
	return d.Round(100 * time.Millisecond).String()
}
