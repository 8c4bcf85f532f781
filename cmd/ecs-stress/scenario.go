package main

import (
	"fmt"
	"math/rand"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/plus3/worldkit/ecs"
)

// Scenario describes the initial entity population declaratively, so
// stress shapes can be swapped without recompiling.
type Scenario struct {
	Spawns []SpawnGroup `yaml:"spawns"`
}

type SpawnGroup struct {
	Count      int      `yaml:"count"`
	Tags       []string `yaml:"tags"`
	Components []string `yaml:"components"` // kind names; empty means random
	RandomMin  int      `yaml:"random_min"` // used when Components is empty
	RandomMax  int      `yaml:"random_max"`
}

func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario %s: %w", path, err)
	}
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	for i, g := range sc.Spawns {
		if g.Count <= 0 {
			return nil, fmt.Errorf("scenario spawn group %d: count must be positive", i)
		}
		for _, name := range g.Components {
			if _, ok := componentFactories[ecs.ComponentKind(name)]; !ok {
				return nil, fmt.Errorf("scenario spawn group %d: unknown component kind %q", i, name)
			}
		}
	}
	return &sc, nil
}

// Apply queues every spawn group's entities into the world and returns
// the total queued.
func (sc *Scenario) Apply(w *ecs.World, rng *rand.Rand) int {
	total := 0
	for _, g := range sc.Spawns {
		for i := 0; i < g.Count; i++ {
			if len(g.Components) > 0 {
				e := w.CreateEntity()
				for _, name := range g.Components {
					e.AddComponent(componentFactories[ecs.ComponentKind(name)](rng))
				}
				for _, tag := range g.Tags {
					e.AddTag(tag)
				}
			} else {
				min, max := g.RandomMin, g.RandomMax
				if min <= 0 {
					min = 1
				}
				if max < min {
					max = min + 4
				}
				e := SpawnRandomEntity(w, min+rng.Intn(max-min+1), rng)
				for _, tag := range g.Tags {
					e.AddTag(tag)
				}
			}
		}
		total += g.Count
	}
	return total
}
