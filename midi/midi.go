// Package midi turns generated bars into MIDI: note voicings per
// quality, SMF files for export and messages for live playback.
package midi

import (
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/jsphweid/changes/constants"
	"github.com/jsphweid/changes/model"
	"github.com/jsphweid/changes/theory"
)

// semitone stacks from the chord root for every quality token
var qualityIntervals = map[string][]int{
	"maj7": {0, 4, 7, 11},
	"maj9": {0, 4, 7, 11, 14},
	"6":    {0, 4, 7, 9},
	"69":   {0, 4, 7, 9, 14},
	"m7":   {0, 3, 7, 10},
	"m9":   {0, 3, 7, 10, 14},
	"m11":  {0, 3, 7, 10, 14, 17},
	"m6":   {0, 3, 7, 9},
	"m69":  {0, 3, 7, 9, 14},
	"7":    {0, 4, 7, 10},
	"9":    {0, 4, 7, 10, 14},
	"13":   {0, 4, 7, 10, 14, 21},
	"7#11": {0, 4, 7, 10, 18},
	"7b9":  {0, 4, 7, 10, 13},
	"7#9":  {0, 4, 7, 10, 15},
	"m7b5": {0, 3, 6, 10},
	"dim7": {0, 3, 6, 9},
}

// ChordNotes voices a chord from its root in the given octave
// (octave 3 roots around C3=48). Out-of-range notes are dropped.
func ChordNotes(c model.Chord, octave int) []uint8 {
	pc, ok := theory.PitchClass(c.Root)
	if !ok {
		pc = 0
	}
	intervals, ok := qualityIntervals[c.Quality]
	if !ok {
		intervals = qualityIntervals["7"]
	}
	root := pc + 12*(octave+1)
	var notes []uint8
	for _, iv := range intervals {
		n := root + iv
		if n < 0 || n > 127 {
			continue
		}
		notes = append(notes, uint8(n))
	}
	return notes
}

// BuildSMF renders bars into a single-track standard MIDI file. Chords
// in a bar split the bar evenly.
func BuildSMF(bars []model.Bar, tempo float64) *smf.SMF {
	clock := smf.MetricTicks(constants.TicksPerQuarter)
	s := smf.New()
	s.TimeFormat = clock

	var tr smf.Track
	tr.Add(0, smf.MetaTrackSequenceName("changes"))
	tr.Add(0, smf.MetaMeter(4, 4))
	tr.Add(0, smf.MetaTempo(tempo))

	quarter := clock.Ticks4th()
	for _, bar := range bars {
		beats := constants.BeatsPerBar / len(bar.Chords)
		for _, c := range bar.Chords {
			notes := ChordNotes(c, constants.DefaultOctave)
			for _, n := range notes {
				tr.Add(0, midi.NoteOn(0, n, constants.DefaultVelocity))
			}
			delta := quarter * uint32(beats)
			for _, n := range notes {
				tr.Add(delta, midi.NoteOff(0, n))
				delta = 0
			}
		}
	}
	tr.Close(0)
	s.Add(tr)
	return s
}
