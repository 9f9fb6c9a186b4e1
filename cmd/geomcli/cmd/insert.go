package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ArgishtiAyvazyan/geometry"
	"github.com/ArgishtiAyvazyan/geometry/cmd/geomcli/render"
	"github.com/ArgishtiAyvazyan/geometry/quadtree"
)

// insertCmd represents the insert command.
var insertCmd = &cobra.Command{
	Use:   "insert SCENARIO",
	Short: "insert every rectangle in a scenario file and report the result",
	Long: `Load SCENARIO (a YAML file with a top-level 'rects' list) and insert
each rectangle into a fresh quadtree one at a time, printing whether it
was newly inserted or already present.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s, err := loadScenario(args[0])
		check(err)

		tree := quadtree.New[int32, geometry.Rect[int32]]()
		for _, rs := range s.Rects {
			r := rs.toRect()
			inserted := tree.Insert(r)
			fmt.Printf("%s inserted=%v size=%d\n", render.Rect(r), inserted, tree.Size())
		}
	},
}

func init() {
	RootCmd.AddCommand(insertCmd)
}
