package client

import (
	"github.com/spf13/cobra"

	"github.com/Esderin/Standard-of-Iron/internal/handlers/pathing/v1alpha1"
)

var fetchPathsCmd = &cobra.Command{
	Use:   "fetch-paths [level-id]",
	Short: "Drain completed queued searches",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(cmd, v1alpha1.MethodFetchCompletedPaths, map[string]any{
			"level_id": args[0],
		})
	},
}
