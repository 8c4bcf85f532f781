package ecs_test

import (
	"context"
	"testing"
	"time"

	"github.com/plus3/worldkit/ecs"
)

func TestRunStopsOnContextCancel(t *testing.T) {
	w := ecs.NewWorld()
	var log []string
	logic := newRecordingSystem("logic", 0, &log)
	render := newRecordingRenderSystem("render", 0, &log)
	w.AddSystem(logic)
	w.AddRenderSystem(render)

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan bool)
	go func() {
		w.Run(ctx, time.Millisecond)
		done <- true
	}()

	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(100 * time.Millisecond):
		t.Fatal("Run did not stop after context cancellation")
	}

	if logic.updateCount == 0 {
		t.Error("expected at least one Update tick")
	}
	if render.renderCount == 0 {
		t.Error("expected at least one Render tick")
	}
}
