package main

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/bounce-arcade/internal/config"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func baseOptions() simOptions {
	return simOptions{
		Config:      config.DefaultBounceConfig(),
		Width:       40,
		Height:      23,
		Seed:        99,
		Ticks:       300,
		ReportEvery: 100,
		FPS:         60,
	}
}

func TestSimulateRunsRequestedTicks(t *testing.T) {
	rec, err := simulate(context.Background(), baseOptions(), quietLogger())
	if err != nil {
		t.Fatalf("simulate() failed: %v", err)
	}
	if rec.Ticks != 300 {
		t.Errorf("Ticks = %d, expected 300", rec.Ticks)
	}
	if rec.Bodies != 12 || rec.Toy != "bounce" || rec.Seed != 99 {
		t.Errorf("record = %+v, unexpected summary", rec)
	}

	var decoded config.BounceConfig
	if err := yaml.Unmarshal([]byte(rec.Params), &decoded); err != nil {
		t.Fatalf("Params is not YAML: %v", err)
	}
	if decoded.Physics.Gravity != config.DefaultBounceConfig().Physics.Gravity {
		t.Errorf("recorded gravity = %v", decoded.Physics.Gravity)
	}
}

func TestSimulateIsDeterministic(t *testing.T) {
	a, err := simulate(context.Background(), baseOptions(), quietLogger())
	if err != nil {
		t.Fatalf("simulate() failed: %v", err)
	}
	b, err := simulate(context.Background(), baseOptions(), quietLogger())
	if err != nil {
		t.Fatalf("simulate() failed: %v", err)
	}
	if a.Kinetic != b.Kinetic || a.Resting != b.Resting {
		t.Errorf("same seed diverged: %+v vs %+v", a, b)
	}
}

func TestSimulateRejectsInvalidConfig(t *testing.T) {
	opts := baseOptions()
	opts.Config.Population.Count = 0
	if _, err := simulate(context.Background(), opts, quietLogger()); err == nil {
		t.Error("expected an error for zero bodies")
	}
}

func TestSimulateRealtimeStopsOnCancel(t *testing.T) {
	opts := baseOptions()
	opts.Realtime = true
	opts.FPS = 1000
	opts.Ticks = 1 << 30

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	rec, err := simulate(ctx, opts, quietLogger())
	if err != nil {
		t.Fatalf("simulate() = %v, expected a clean stop", err)
	}
	if rec.Ticks >= opts.Ticks {
		t.Errorf("Ticks = %d, expected an early stop", rec.Ticks)
	}
}

func TestPresetListNamesEveryPreset(t *testing.T) {
	list := presetList()
	for _, p := range config.BouncePresets() {
		if !strings.Contains(list, string(p)) {
			t.Errorf("presetList() = %q, missing %q", list, p)
		}
	}
}
