// Package engine is the stateful harmonic generator. An Engine owns
// one progression timeline; callers needing several independent
// progressions construct several engines. It is a pure state machine
// polled via GenerateBar and makes no outbound calls.
package engine

import (
	"math/rand"
	"time"

	"github.com/jsphweid/changes/chord"
	"github.com/jsphweid/changes/model"
	"github.com/jsphweid/changes/progression"
	"github.com/jsphweid/changes/theory"
	"github.com/jsphweid/changes/util"
)

const (
	approachProbability  = 0.12
	recentWindow         = 8
	tonicAfterModulation = 0.6
)

var DefaultSettings = model.Settings{
	KeyStability:        0.85,
	Adventurousness:     0.30,
	Complexity:          0.50,
	TwoChordProbability: 0.35,
}

type Engine struct {
	rng *rand.Rand

	key      model.Key
	current  model.Degree
	previous model.Degree

	approachQueue []model.Degree
	recent        []model.Degree

	bars     []model.Bar
	settings model.Settings
}

func New() *Engine {
	return NewWithRand(rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewWithRand injects the random source so tests can force branches.
func NewWithRand(rng *rand.Rand) *Engine {
	e := &Engine{rng: rng, settings: DefaultSettings}
	e.Reset(nil)
	return e
}

// Configure merges a partial settings update, clamping everything to
// [0,1]. Takes effect from the next generated chord.
func (e *Engine) Configure(p model.SettingsPatch) {
	if p.KeyStability != nil {
		e.settings.KeyStability = util.Clamp01(*p.KeyStability)
	}
	if p.Adventurousness != nil {
		e.settings.Adventurousness = util.Clamp01(*p.Adventurousness)
	}
	if p.Complexity != nil {
		e.settings.Complexity = util.Clamp01(*p.Complexity)
	}
	if p.TwoChordProbability != nil {
		e.settings.TwoChordProbability = util.Clamp01(*p.TwoChordProbability)
	}
}

// Reset reinitializes all state. With a nil key a starting key is
// drawn from the common jazz roots, biased toward major.
func (e *Engine) Reset(k *model.Key) {
	if k != nil {
		e.key = *k
	} else {
		e.key = progression.RandomKey(e.rng)
	}
	e.current = theory.Tonic(e.key.Mode)
	e.previous = ""
	e.approachQueue = nil
	e.recent = nil
	e.bars = nil
}

// GenerateBar advances the session by one bar and retains it in the
// history. Bars hold 1 or 2 chords per twoChordProbability.
func (e *Engine) GenerateBar() model.Bar {
	numChords := 1
	if e.rng.Float64() < e.settings.TwoChordProbability {
		numChords = 2
	}

	chords := make([]model.Chord, 0, numChords)
	for i := 0; i < numChords; i++ {
		e.maybeModulate()
		deg := e.nextDegree()
		hint := e.peekLikelyNext()
		chords = append(chords, chord.Realize(e.key, deg, hint, e.settings.Complexity, e.rng))
	}

	bar := model.Bar{
		Number: len(e.bars) + 1,
		Chords: chords,
		Key:    e.key,
	}
	if n := len(e.bars); n > 0 {
		bar.KeyChanged = e.bars[n-1].Key != e.key
	}
	e.bars = append(e.bars, bar)
	return bar
}

func (e *Engine) State() model.EngineState {
	return model.EngineState{
		Key:           e.key,
		CurrentDegree: e.current,
		BarCount:      len(e.bars),
	}
}

func (e *Engine) Settings() model.Settings {
	return e.settings
}

// Bars returns the retained history since the last reset.
func (e *Engine) Bars() []model.Bar {
	res := make([]model.Bar, len(e.bars))
	copy(res, e.bars)
	return res
}

// nextDegree is the transition model. Precedence: in-flight approach
// queue, then a fresh approach attempt, then second-order override,
// then the first-order table. Only the table paths are shaped.
func (e *Engine) nextDegree() model.Degree {
	if len(e.approachQueue) > 0 {
		d := e.approachQueue[0]
		e.approachQueue = e.approachQueue[1:]
		e.emit(d)
		return d
	}

	if e.rng.Float64() < approachProbability {
		if seq, ok := progression.PickApproach(e.rng, e.current); ok {
			d := seq[0]
			e.approachQueue = seq[1:]
			e.emit(d)
			return d
		}
	}

	raw := e.rawDistribution(e.previous, e.current)
	shaped := raw.Blend(e.settings.Adventurousness).PenalizeRepeats(e.recent)
	d := shaped.Pick(e.rng)
	e.emit(d)
	return d
}

// peekLikelyNext is the read-only lookahead that informs the current
// chord's quality. Never shaped, never mutates.
func (e *Engine) peekLikelyNext() model.Degree {
	return e.rawDistribution(e.previous, e.current).MostProbable()
}

func (e *Engine) rawDistribution(prev, cur model.Degree) progression.Table {
	if prev != "" {
		if t, ok := progression.Override(prev, cur); ok {
			return t
		}
	}
	return progression.FirstOrder(cur, e.key.Mode)
}

func (e *Engine) emit(d model.Degree) {
	e.previous = e.current
	e.current = d
	e.recent = append(e.recent, d)
	if len(e.recent) > recentWindow {
		e.recent = e.recent[1:]
	}
}

// maybeModulate fires once per chord slot. Landing on a tonic doubles
// the chance (post-cadence bias).
func (e *Engine) maybeModulate() {
	chance := 1 - e.settings.KeyStability
	if e.current == "I" || e.current == "i" {
		chance *= 2
	}
	if e.rng.Float64() < chance {
		e.modulate()
	}
}

func (e *Engine) modulate() {
	t := progression.PickModulation(e.rng)
	e.key = progression.ApplyModulation(e.key, t)
	// usually restart from the tonic in the new key; otherwise the
	// degree token carries over and reinterprets against the new root
	if e.rng.Float64() < tonicAfterModulation {
		e.current = theory.Tonic(e.key.Mode)
	}
}
