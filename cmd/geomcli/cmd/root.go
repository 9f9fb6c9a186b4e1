package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "geomcli",
	Short: "inspect the geometry quadtree from a YAML scenario file",
	Long: `geomcli is the command-line companion to the geometry library:
	- loads a set of rectangles and query windows from a YAML scenario file,
	- builds a quadtree.Tree over the rectangles,
	- runs insert or query operations and prints the results.`,
}

// Execute adds all child commands to the root command and runs it. Called
// once from main.main.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
}

func check(err error) {
	if err != nil {
		fmt.Printf("error, %v\n", err)
		os.Exit(-1)
	}
}
