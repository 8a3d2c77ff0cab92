package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func init() {
	addEngineFlags(generateCmd)
	rootCmd.AddCommand(generateCmd)
}

var generateCmd = &cobra.Command{
	Use:   "generate [numBars]",
	Short: "Prints a generated progression",
	Long:  `Prints a generated progression`,
	Run: func(cmd *cobra.Command, args []string) {
		numBars := 16
		if len(args) == 1 {
			arg1, err := strconv.Atoi(args[0])
			if err != nil {
				panic(err)
			}
			numBars = arg1
		}
		generate(numBars)
	},
}

func generate(numBars int) {
	e, err := newEngineFromFlags()
	cobra.CheckErr(err)
	for i := 0; i < numBars; i++ {
		fmt.Println(renderBar(e.GenerateBar()))
	}
}
