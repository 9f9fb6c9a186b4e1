package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ArgishtiAyvazyan/geometry"
	"github.com/ArgishtiAyvazyan/geometry/cmd/geomcli/render"
)

// queryCmd represents the query command.
var queryCmd = &cobra.Command{
	Use:   "query SCENARIO",
	Short: "index a scenario's rectangles and run its query windows",
	Long: `Load SCENARIO (a YAML file with top-level 'rects' and 'queries' lists),
build a quadtree over 'rects', then run each window in 'queries' against
it, printing the matching rectangles. Match order is unspecified.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s, err := loadScenario(args[0])
		check(err)

		tree := buildTree(s)
		for i, qs := range s.Queries {
			q := qs.toRect()
			fmt.Printf("query %d: %s\n", i, render.Rect(q))
			tree.Query(q, func(k geometry.Rect[int32]) {
				fmt.Printf("  match: %s\n", render.Rect(k))
			})
		}
	},
}

func init() {
	RootCmd.AddCommand(queryCmd)
}
