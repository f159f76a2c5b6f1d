package client

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Esderin/Standard-of-Iron/internal/handlers/pathing/v1alpha1"
)

var findPathCmd = &cobra.Command{
	Use:   "find-path [level-id] [start x,y] [end x,y]",
	Short: "Run a blocking path search",
	Long: `Search for the shortest grid path. An empty path means the target is
unreachable. Example:

  find-path lvl_1 0,0 12,7`,
	Args: cobra.ExactArgs(3),
	RunE: findPath,
}

func findPath(cmd *cobra.Command, args []string) error {
	start, err := parsePoint(args[1])
	if err != nil {
		return fmt.Errorf("invalid start: %w", err)
	}
	end, err := parsePoint(args[2])
	if err != nil {
		return fmt.Errorf("invalid end: %w", err)
	}

	return call(cmd, v1alpha1.MethodFindPath, map[string]any{
		"level_id": args[0],
		"start":    start,
		"end":      end,
	})
}
