package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/jungle-run/internal/config"
	"github.com/vovakirdan/jungle-run/internal/core"
	"github.com/vovakirdan/jungle-run/internal/registry"
)

func newSimGame(t *testing.T, seed int64) registry.Game {
	t.Helper()
	g, err := registry.Create(defaultGame, registry.Options{Config: config.Default(), RuntimeConfig: core.RuntimeConfig{Seed: seed}})
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	return g
}

func TestSimulateIdleRunsToLimitOrEnd(t *testing.T) {
	g := newSimGame(t, 3)

	res, err := simulate(context.Background(), g, simOptions{Ticks: 500, Policy: idlePolicy})
	if err != nil {
		t.Fatalf("simulate() failed: %v", err)
	}
	if res.Frames == 0 || res.Frames > 500 {
		t.Errorf("Frames = %d", res.Frames)
	}
	if res.Ticks != res.Frames {
		t.Errorf("every running frame should advance one tick: frames=%d ticks=%d", res.Frames, res.Ticks)
	}
	if res.State.Score%10 != 0 {
		t.Errorf("score %d is not a multiple of the reward", res.State.Score)
	}
	if !res.State.GameOver && res.Frames != 500 {
		t.Errorf("a running game should stop at the tick limit, stopped at %d", res.Frames)
	}
}

func TestSimulateIsReproducible(t *testing.T) {
	run := func() simResult {
		pol, err := parsePolicy("random", 99)
		if err != nil {
			t.Fatal(err)
		}
		res, err := simulate(context.Background(), newSimGame(t, 99), simOptions{Ticks: 4000, Policy: pol})
		if err != nil {
			t.Fatal(err)
		}
		return res
	}

	a, b := run(), run()
	if a.Frames != b.Frames || a.State != b.State {
		t.Errorf("same seed diverged: %+v vs %+v", a.State, b.State)
	}
	if a.Screen.String() != b.Screen.String() {
		t.Error("final frames differ for the same seed")
	}
}

func TestSimulateCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := simulate(ctx, newSimGame(t, 1), simOptions{Ticks: 100, Interval: time.Millisecond})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if res.Frames != 0 {
		t.Errorf("cancelled run advanced %d frames", res.Frames)
	}
}

func TestParsePolicy(t *testing.T) {
	if _, err := parsePolicy("idle", 0); err != nil {
		t.Errorf("idle: %v", err)
	}
	if _, err := parsePolicy("random", 0); err != nil {
		t.Errorf("random: %v", err)
	}
	if _, err := parsePolicy("greedy", 0); err == nil {
		t.Error("unknown policy should fail")
	}
}

func TestRandomPolicyInputs(t *testing.T) {
	pol := randomPolicy(5)
	var presses int
	for i := 0; i < 600; i++ {
		in, ok := pol(i)
		if !ok {
			continue
		}
		presses++
		if in.Action != core.ActionUp && in.Action != core.ActionDown {
			t.Fatalf("unexpected action %s", in.Action)
		}
	}
	if presses == 0 || presses == 600 {
		t.Errorf("presses = %d, expected a mix", presses)
	}
}

func TestPrintSimResult(t *testing.T) {
	var buf bytes.Buffer
	printSimResult(&buf, "Jungle Run", 42, simResult{
		Frames: 10,
		Ticks:  10,
		State:  core.GameState{Score: 20, GameOver: true},
		Screen: core.NewScreen(4, 2),
	})

	if !strings.Contains(buf.String(), "seed=42") || !strings.Contains(buf.String(), "score=20") {
		t.Errorf("summary missing fields: %q", buf.String())
	}
}

func TestRunSimInterruptedReturnsError(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"sim", "--ticks", "50", "--seed", "3"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.ExecuteContext(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("interrupted sim should fail with context.Canceled, got %v", err)
	}
	if !strings.Contains(out.String(), "frames=0") {
		t.Errorf("partial result should still be printed, got %q", out.String())
	}
}

func TestRuntimeConfigFromFlags(t *testing.T) {
	fps, seed := flagFPS, flagSeed
	t.Cleanup(func() { flagFPS, flagSeed = fps, seed })

	flagFPS, flagSeed = 30, 42
	if rt := runtimeConfig(); rt.TickRate != 30 || rt.Seed != 42 {
		t.Errorf("runtimeConfig() = %+v, expected rate 30 seed 42", rt)
	}

	flagSeed = 0
	if rt := runtimeConfig(); rt.Seed == 0 {
		t.Error("a zero --seed should be resolved to a concrete seed")
	}
}
