package main

import (
	"math/rand"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/worldkit/ecs"
)

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig("testdata/config.toml")
	require.NoError(t, err)

	assert.Equal(t, 2*time.Second, cfg.Stress.Duration)
	assert.Equal(t, 500, cfg.Stress.Entities)
	assert.Equal(t, 10*time.Millisecond, cfg.Stress.TickRate)
	assert.Equal(t, "cpu", cfg.Stress.Profile)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.True(t, cfg.Report.GCPauseMetrics)
	assert.Equal(t, "report.md", cfg.Report.Output)
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, 10*time.Second, cfg.Stress.Duration)
	assert.Equal(t, 10000, cfg.Stress.Entities)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadScenario(t *testing.T) {
	sc, err := LoadScenario("testdata/scenario.yaml")
	require.NoError(t, err)
	require.Len(t, sc.Spawns, 2)

	assert.Equal(t, 10, sc.Spawns[0].Count)
	assert.Equal(t, []string{"swarm"}, sc.Spawns[0].Tags)
	assert.Len(t, sc.Spawns[0].Components, 3)
	assert.Equal(t, 5, sc.Spawns[1].Count)
}

func TestScenarioApply(t *testing.T) {
	sc, err := LoadScenario("testdata/scenario.yaml")
	require.NoError(t, err)

	w := ecs.NewWorld()
	rng := rand.New(rand.NewSource(1))
	total := sc.Apply(w, rng)
	assert.Equal(t, 15, total)

	w.Update(0)
	assert.Equal(t, 15, w.EntityCount())

	swarm := w.EntitiesByTag("swarm")
	require.Len(t, swarm, 10)
	for _, e := range swarm {
		assert.True(t, e.HasComponent(KindStress01))
		assert.True(t, e.HasComponent(KindStress02))
		assert.True(t, e.HasComponent(KindStress03))
	}

	for _, e := range w.EntitiesByTag("noise") {
		n := len(e.ComponentKinds())
		assert.GreaterOrEqual(t, n, 2)
		assert.LessOrEqual(t, n, 4)
	}
}

func TestScenarioRejectsUnknownKind(t *testing.T) {
	_, err := LoadScenario("testdata/scenario.yaml")
	require.NoError(t, err)

	tmp := t.TempDir() + "/bad.yaml"
	writeFile(t, tmp, "spawns:\n  - count: 1\n    components: [no-such-kind]\n")
	_, err = LoadScenario(tmp)
	assert.Error(t, err)
}

func TestGeneratedSystemsAdvanceState(t *testing.T) {
	w := ecs.NewWorld()
	RegisterAllGeneratedSystems(w)

	e := w.CreateEntity().
		AddComponent(&StressComponent02{ValueA: 1, ValueB: 1}).
		AddComponent(&StressComponent03{ValueA: 2})
	w.Update(0.016)

	c, ok := ecs.Get[*StressComponent02](e, KindStress02)
	require.True(t, ok)
	assert.Equal(t, int64(1), c.Counter)
	assert.InDelta(t, 1+2*0.016, c.ValueA, 1e-9)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
