package client

import (
	"github.com/spf13/cobra"

	"github.com/Esderin/Standard-of-Iron/internal/handlers/pathing/v1alpha1"
)

var listLevelsCmd = &cobra.Command{
	Use:   "list-levels",
	Short: "List stored level ids",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return call(cmd, v1alpha1.MethodListLevels, map[string]any{})
	},
}
