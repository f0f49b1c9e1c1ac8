package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/adaptiq/internal/engine"
	"github.com/abhisek/adaptiq/internal/fixture"
	"github.com/abhisek/adaptiq/internal/store"
)

// loadConfig returns the engine config: defaults, overridden by the
// YAML file given via --config if present.
func loadConfig(cmd *cobra.Command) (engine.Config, error) {
	cfg := engine.DefaultConfig()
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// resolveFixturePath returns the fixture path from --fixture or the
// ADAPTIQ_FIXTURE env var.
func resolveFixturePath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("fixture"); p != "" {
		return p, nil
	}
	if p := os.Getenv("ADAPTIQ_FIXTURE"); p != "" {
		return p, nil
	}
	return "", fmt.Errorf("no fixture given: pass --fixture or set ADAPTIQ_FIXTURE")
}

// openEngine builds the engine from the fixture, restores the latest
// trained parameters from the store, and replays the score log to
// rebuild per-learner mastery.
func openEngine(ctx context.Context, cmd *cobra.Command) (*engine.Engine, *store.Store, error) {
	fixturePath, err := resolveFixturePath(cmd)
	if err != nil {
		return nil, nil, err
	}
	cat, params, err := fixture.LoadFile(fixturePath)
	if err != nil {
		return nil, nil, fmt.Errorf("load fixture: %w", err)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}

	eng, err := engine.New(cat, params, cfg)
	if err != nil {
		return nil, nil, err
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}

	snap, err := st.ParamsRepo().Latest(ctx)
	if err != nil {
		st.Close()
		return nil, nil, err
	}
	if snap != nil {
		trained, err := store.ParamsFromSnapshot(snap)
		if err != nil {
			st.Close()
			return nil, nil, err
		}
		if err := eng.SetParams(trained); err != nil {
			st.Close()
			return nil, nil, fmt.Errorf("restore trained parameters: %w", err)
		}
	}

	obs, err := st.ScoreRepo().Observations(ctx)
	if err != nil {
		st.Close()
		return nil, nil, err
	}
	for _, o := range obs {
		if err := eng.UpdateFromScore(o.Learner, o.Activity, o.Score); err != nil {
			st.Close()
			return nil, nil, fmt.Errorf("replay score log: %w", err)
		}
	}

	return eng, st, nil
}
