package client

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Esderin/Standard-of-Iron/internal/handlers/pathing/v1alpha1"
)

var placeBuildingCmd = &cobra.Command{
	Use:   "place-building [level-id] [building-id] [center x,z] [size w,d]",
	Short: "Place a building footprint on a level",
	Long: `Register a rectangular building. Cells it covers become obstacles. Example:

  place-building lvl_1 barracks 10,12 4,3`,
	Args: cobra.ExactArgs(4),
	RunE: placeBuilding,
}

func placeBuilding(cmd *cobra.Command, args []string) error {
	centerX, centerZ, err := parseFloatPair(args[2])
	if err != nil {
		return fmt.Errorf("invalid center: %w", err)
	}
	width, depth, err := parseFloatPair(args[3])
	if err != nil {
		return fmt.Errorf("invalid size: %w", err)
	}

	return call(cmd, v1alpha1.MethodPlaceBuilding, map[string]any{
		"level_id": args[0],
		"building": map[string]any{
			"id":       args[1],
			"center_x": centerX,
			"center_z": centerZ,
			"width":    width,
			"depth":    depth,
		},
	})
}
