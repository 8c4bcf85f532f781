package ecs

import (
	"context"
	"time"
)

// Run drives the World at the given interval until the context is
// cancelled: one Update with the measured delta time, then one Render,
// per tick. Hosts with their own frame loop (an ebiten game, a server
// tick) call Update and Render directly instead.
func (w *World) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			w.Update(dt)
			w.Render()
		}
	}
}
