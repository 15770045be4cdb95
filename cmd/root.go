package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "homegains",
	Short: "12-week home training program tracker (bodyweight & dumbbell)",
}

func Execute() error {
	return rootCmd.Execute()
}
