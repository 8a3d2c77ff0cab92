package cmd

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jsphweid/changes/engine"
	"github.com/jsphweid/changes/model"
	"github.com/jsphweid/changes/theory"
)

var (
	flagKey        string
	flagSeed       int64
	flagStability  float64
	flagAdventure  float64
	flagComplexity float64
	flagTwoChord   float64
)

func addEngineFlags(c *cobra.Command) {
	c.Flags().StringVar(&flagKey, "key", "", "starting key, e.g. Bb or Cm (random if empty)")
	c.Flags().Int64Var(&flagSeed, "seed", 0, "random seed (0 means time-based)")
	c.Flags().Float64Var(&flagStability, "stability", engine.DefaultSettings.KeyStability, "key stability [0,1]")
	c.Flags().Float64Var(&flagAdventure, "adventurousness", engine.DefaultSettings.Adventurousness, "transition adventurousness [0,1]")
	c.Flags().Float64Var(&flagComplexity, "complexity", engine.DefaultSettings.Complexity, "chord quality complexity [0,1]")
	c.Flags().Float64Var(&flagTwoChord, "two-chord", engine.DefaultSettings.TwoChordProbability, "probability of two chords per bar [0,1]")
}

func newEngineFromFlags() (*engine.Engine, error) {
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	e := engine.NewWithRand(rand.New(rand.NewSource(seed)))
	e.Configure(model.SettingsPatch{
		KeyStability:        &flagStability,
		Adventurousness:     &flagAdventure,
		Complexity:          &flagComplexity,
		TwoChordProbability: &flagTwoChord,
	})
	if flagKey != "" {
		k, err := theory.ParseKey(flagKey)
		if err != nil {
			return nil, err
		}
		e.Reset(&k)
	}
	return e, nil
}

func renderBar(b model.Bar) string {
	names := make([]string, 0, len(b.Chords))
	for _, c := range b.Chords {
		names = append(names, c.DisplayName.Root+c.DisplayName.Quality)
	}
	line := fmt.Sprintf("%3d. | %-16s |", b.Number, strings.Join(names, "  "))
	if b.Number == 1 || b.KeyChanged {
		line += fmt.Sprintf("  %v %v", b.Key.Root, b.Key.Mode)
	}
	return line
}
