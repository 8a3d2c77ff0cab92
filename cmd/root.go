package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "changes",
	Short: "Procedural jazz chord progressions",
	Long:  `Generates jazz chord progressions bar by bar by walking a probabilistic harmonic model.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
