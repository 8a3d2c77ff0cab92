package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	gomidi "gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver

	"github.com/jsphweid/changes/constants"
	"github.com/jsphweid/changes/midi"
)

var (
	playTempo float64
	playPort  int
)

func init() {
	addEngineFlags(playCmd)
	playCmd.Flags().Float64Var(&playTempo, "tempo", constants.DefaultTempo, "tempo in bpm")
	playCmd.Flags().IntVar(&playPort, "port", 0, "midi out port number")
	rootCmd.AddCommand(playCmd)
}

var playCmd = &cobra.Command{
	Use:   "play [numBars]",
	Short: "Plays a generated progression over midi",
	Long:  `Plays a generated progression over midi`,
	Run: func(cmd *cobra.Command, args []string) {
		numBars := 32
		if len(args) == 1 {
			arg1, err := strconv.Atoi(args[0])
			if err != nil {
				panic(err)
			}
			numBars = arg1
		}
		play(numBars)
	},
}

func play(numBars int) {
	defer gomidi.CloseDriver()

	out, err := gomidi.OutPort(playPort)
	if err != nil {
		fmt.Printf("can't find midi out port %v: %v\n", playPort, err)
		return
	}
	send, err := gomidi.SendTo(out)
	cobra.CheckErr(err)

	e, err := newEngineFromFlags()
	cobra.CheckErr(err)

	barDur := time.Duration(float64(time.Minute) / playTempo * constants.BeatsPerBar)
	for i := 0; i < numBars; i++ {
		bar := e.GenerateBar()
		fmt.Println(renderBar(bar))
		chordDur := barDur / time.Duration(len(bar.Chords))
		for _, c := range bar.Chords {
			notes := midi.ChordNotes(c, constants.DefaultOctave)
			for _, n := range notes {
				send(gomidi.NoteOn(0, n, constants.DefaultVelocity))
			}
			time.Sleep(chordDur)
			for _, n := range notes {
				send(gomidi.NoteOff(0, n))
			}
		}
	}
}
