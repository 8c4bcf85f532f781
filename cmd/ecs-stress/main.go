// Command ecs-stress drives a World with generated components and
// systems and reports frame timing and memory behavior.
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/pkg/profile"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/plus3/worldkit/ecs"
)

func main() {
	configPath := flag.String("config", "", "Path to a TOML config file. Flags override config values.")
	scenarioPath := flag.String("scenario", "", "Path to a YAML spawn scenario. Empty spawns random entities.")
	duration := flag.Duration("duration", 0, "The total duration the test should run for.")
	entityCount := flag.Int("entities", 0, "The initial number of entities to create.")
	profileMode := flag.String("profile", "", "Profiling mode: cpu or mem.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	seed := flag.Int64("seed", 1, "Random seed for entity population.")
	flag.Parse()

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *duration > 0 {
		cfg.Stress.Duration = *duration
	}
	if *entityCount > 0 {
		cfg.Stress.Entities = *entityCount
	}
	if *profileMode != "" {
		cfg.Stress.Profile = *profileMode
	}
	if *gcPauseMetrics {
		cfg.Report.GCPauseMetrics = true
	}

	log, err := newLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()

	switch cfg.Stress.Profile {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	case "mem":
		defer profile.Start(profile.MemProfileAllocs, profile.ProfilePath(".")).Stop()
	default:
		log.Fatal("unknown profile mode", zap.String("mode", cfg.Stress.Profile))
	}

	log.Info("starting stress test",
		zap.Duration("duration", cfg.Stress.Duration),
		zap.Int("entities", cfg.Stress.Entities),
		zap.Int("components", generatedComponentCount),
		zap.Int("systems", generatedSystemCount))

	world := ecs.NewWorld()
	RegisterAllGeneratedSystems(world)
	rng := rand.New(rand.NewSource(*seed))

	populated := cfg.Stress.Entities
	if *scenarioPath != "" {
		scenario, err := LoadScenario(*scenarioPath)
		if err != nil {
			log.Fatal("load scenario", zap.Error(err))
		}
		populated = scenario.Apply(world, rng)
		log.Info("applied scenario", zap.String("path", *scenarioPath), zap.Int("entities", populated))
	} else {
		for i := 0; i < cfg.Stress.Entities; i++ {
			SpawnRandomEntity(world, rng.Intn(5)+1, rng)
		}
		log.Info("populated world", zap.Int("entities", cfg.Stress.Entities))
	}

	report := &Report{
		Duration:       cfg.Stress.Duration,
		Entities:       populated,
		Components:     generatedComponentCount,
		Systems:        generatedSystemCount,
		GCPauseMetrics: cfg.Report.GCPauseMetrics,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Stress.Duration)
	defer cancel()

	startTime := time.Now()
	var totalUpdates int64
	lastFrameTime := time.Now()

	var ticker *time.Ticker
	if cfg.Stress.TickRate > 0 {
		ticker = time.NewTicker(cfg.Stress.TickRate)
		defer ticker.Stop()
	}

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			if ticker != nil {
				select {
				case <-ctx.Done():
					break Loop
				case <-ticker.C:
				}
			}

			deltaTime := time.Since(lastFrameTime)
			lastFrameTime = time.Now()

			updateStart := time.Now()
			world.Update(deltaTime.Seconds())
			updateDuration := time.Since(updateStart)

			report.UpdateTime.Samples = append(report.UpdateTime.Samples, updateDuration)
			totalUpdates++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalUpdates = totalUpdates
	report.UpdateTime.Finalize()
	report.WorldStats = world.CollectStats()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Info("simulation finished",
		zap.Int64("updates", totalUpdates),
		zap.Duration("elapsed", report.TotalTime))

	out := os.Stdout
	if cfg.Report.Output != "" {
		f, err := os.Create(cfg.Report.Output)
		if err != nil {
			log.Fatal("create report file", zap.Error(err))
		}
		defer f.Close()
		out = f
	}
	if err := report.Generate(out); err != nil {
		log.Fatal("generate report", zap.Error(err))
	}
}

func newLogger(cfg LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
