package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jsphweid/changes/constants"
	"github.com/jsphweid/changes/midi"
	"github.com/jsphweid/changes/model"
)

var exportTempo float64

func init() {
	addEngineFlags(exportCmd)
	exportCmd.Flags().Float64Var(&exportTempo, "tempo", constants.DefaultTempo, "tempo in bpm")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export [numBars] [outfile]",
	Short: "Writes a generated progression to a midi file",
	Long:  `Writes a generated progression to a midi file`,
	Run: func(cmd *cobra.Command, args []string) {
		numBars := 32
		outfile := "changes.mid"
		if len(args) >= 1 {
			arg1, err := strconv.Atoi(args[0])
			if err != nil {
				panic(err)
			}
			numBars = arg1
		}
		if len(args) >= 2 {
			outfile = args[1]
		}
		export(numBars, outfile)
	},
}

func export(numBars int, outfile string) {
	e, err := newEngineFromFlags()
	cobra.CheckErr(err)

	bars := make([]model.Bar, 0, numBars)
	for i := 0; i < numBars; i++ {
		bar := e.GenerateBar()
		fmt.Println(renderBar(bar))
		bars = append(bars, bar)
	}

	s := midi.BuildSMF(bars, exportTempo)
	if err := s.WriteFile(outfile); err != nil {
		panic("Could not write midi file: " + err.Error())
	}
	fmt.Printf("Wrote %v bars to %v\n", numBars, outfile)
}
