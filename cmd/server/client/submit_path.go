package client

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Esderin/Standard-of-Iron/internal/handlers/pathing/v1alpha1"
)

var submitPathCmd = &cobra.Command{
	Use:   "submit-path [level-id] [request-id] [start x,y] [end x,y]",
	Short: "Queue a path search",
	Long: `Queue a search under your own request id. Collect it with fetch-paths. Example:

  submit-path lvl_1 42 0,0 12,7`,
	Args: cobra.ExactArgs(4),
	RunE: submitPath,
}

func submitPath(cmd *cobra.Command, args []string) error {
	if _, err := strconv.ParseUint(args[1], 10, 64); err != nil {
		return fmt.Errorf("invalid request id: %w", err)
	}
	start, err := parsePoint(args[2])
	if err != nil {
		return fmt.Errorf("invalid start: %w", err)
	}
	end, err := parsePoint(args[3])
	if err != nil {
		return fmt.Errorf("invalid end: %w", err)
	}

	return call(cmd, v1alpha1.MethodSubmitPathRequest, map[string]any{
		"level_id":   args[0],
		"request_id": args[1],
		"start":      start,
		"end":        end,
	})
}
