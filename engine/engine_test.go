package engine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jsphweid/changes/model"
)

func f(v float64) *float64 {
	return &v
}

func newTestEngine(seed int64) *Engine {
	return NewWithRand(rand.New(rand.NewSource(seed)))
}

func TestBarNumbersIncreaseFromOne(t *testing.T) {
	e := newTestEngine(1)
	for i := 1; i <= 20; i++ {
		bar := e.GenerateBar()
		assert.Equal(t, i, bar.Number)
	}

	e.Reset(nil)
	assert.Equal(t, 1, e.GenerateBar().Number)
}

func TestBarsAlwaysHoldOneOrTwoChords(t *testing.T) {
	e := newTestEngine(2)
	e.Configure(model.SettingsPatch{
		KeyStability:        f(0),
		Adventurousness:     f(1),
		Complexity:          f(1),
		TwoChordProbability: f(0.5),
	})
	for i := 0; i < 300; i++ {
		n := len(e.GenerateBar().Chords)
		if n < 1 || n > 2 {
			t.Fatalf("bar with %v chords", n)
		}
	}
}

func TestTwoChordProbabilityBounds(t *testing.T) {
	e := newTestEngine(3)
	e.Configure(model.SettingsPatch{TwoChordProbability: f(0)})
	for i := 0; i < 50; i++ {
		assert.Len(t, e.GenerateBar().Chords, 1)
	}

	e.Configure(model.SettingsPatch{TwoChordProbability: f(1)})
	for i := 0; i < 50; i++ {
		assert.Len(t, e.GenerateBar().Chords, 2)
	}
}

func TestResetWithExplicitKey(t *testing.T) {
	e := newTestEngine(4)
	for i := 0; i < 5; i++ {
		e.GenerateBar()
	}

	k := model.Key{Root: "Eb", Mode: model.Minor}
	e.Reset(&k)

	assert := assert.New(t)
	state := e.State()
	assert.Equal(k, state.Key)
	assert.Equal(model.Degree("i"), state.CurrentDegree)
	assert.Equal(0, state.BarCount)

	bar := e.GenerateBar()
	assert.Equal(1, bar.Number)
	assert.Equal(k, bar.Key)
	assert.False(bar.KeyChanged)
}

func TestStableKeyNeverModulates(t *testing.T) {
	e := newTestEngine(5)
	e.Configure(model.SettingsPatch{KeyStability: f(1)})
	start := e.State().Key
	for i := 0; i < 200; i++ {
		bar := e.GenerateBar()
		assert.Equal(t, start, bar.Key)
		assert.False(t, bar.KeyChanged)
	}
}

func TestUnstableKeyModulates(t *testing.T) {
	e := newTestEngine(6)
	e.Configure(model.SettingsPatch{KeyStability: f(0)})
	changed := false
	for i := 0; i < 50; i++ {
		if e.GenerateBar().KeyChanged {
			changed = true
		}
	}
	assert.True(t, changed)
}

func TestApproachQueuePreemptsTransitions(t *testing.T) {
	e := newTestEngine(7)
	e.approachQueue = []model.Degree{"ii", "V", "I"}

	assert := assert.New(t)
	assert.Equal(model.Degree("ii"), e.nextDegree())
	assert.Equal(model.Degree("V"), e.nextDegree())
	assert.Equal(model.Degree("I"), e.nextDegree())
	assert.Empty(e.approachQueue)
	assert.Equal(model.Degree("I"), e.current)
	assert.Equal(model.Degree("V"), e.previous)
}

func TestApproachSequencesRunToCompletion(t *testing.T) {
	// an in-flight queue is consumed before any fresh approach or
	// transition logic, regardless of what the rng would do
	e := newTestEngine(8)
	for trial := 0; trial < 100; trial++ {
		e.Reset(nil)
		e.approachQueue = []model.Degree{"vi", "II", "V"}
		got := []model.Degree{e.nextDegree(), e.nextDegree(), e.nextDegree()}
		assert.Equal(t, []model.Degree{"vi", "II", "V"}, got)
	}
}

func TestRecentWindowIsBounded(t *testing.T) {
	e := newTestEngine(9)
	for i := 0; i < 50; i++ {
		e.GenerateBar()
		if len(e.recent) > recentWindow {
			t.Fatalf("recent window grew to %v", len(e.recent))
		}
	}
	assert.Len(t, e.recent, recentWindow)
}

func TestConfigureClampsAndMerges(t *testing.T) {
	e := newTestEngine(10)
	e.Configure(model.SettingsPatch{Complexity: f(2.5)})

	assert := assert.New(t)
	s := e.Settings()
	assert.Equal(1.0, s.Complexity)
	// unspecified fields keep prior values
	assert.Equal(DefaultSettings.KeyStability, s.KeyStability)

	e.Configure(model.SettingsPatch{KeyStability: f(-3)})
	assert.Equal(0.0, e.Settings().KeyStability)
	assert.Equal(1.0, e.Settings().Complexity)
}

func TestPeekNeverMutates(t *testing.T) {
	e := newTestEngine(11)
	e.GenerateBar()

	before := e.State()
	recentLen := len(e.recent)
	for i := 0; i < 10; i++ {
		e.peekLikelyNext()
	}

	assert := assert.New(t)
	assert.Equal(before, e.State())
	assert.Len(e.recent, recentLen)
}

func TestPeekIsDeterministic(t *testing.T) {
	e := newTestEngine(12)
	e.GenerateBar()
	first := e.peekLikelyNext()
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, e.peekLikelyNext())
	}
}

func TestExtremeSettingsSmoke(t *testing.T) {
	for _, v := range []float64{0, 1} {
		e := newTestEngine(13)
		e.Configure(model.SettingsPatch{
			KeyStability:        f(v),
			Adventurousness:     f(v),
			Complexity:          f(v),
			TwoChordProbability: f(v),
		})
		for i := 0; i < 200; i++ {
			bar := e.GenerateBar()
			if len(bar.Chords) == 0 {
				t.Fatal("empty bar")
			}
		}
	}
}

func TestBarsReturnsRetainedHistory(t *testing.T) {
	e := newTestEngine(14)
	var generated []model.Bar
	for i := 0; i < 8; i++ {
		generated = append(generated, e.GenerateBar())
	}

	assert := assert.New(t)
	assert.Equal(generated, e.Bars())

	e.Reset(nil)
	assert.Empty(e.Bars())
}
