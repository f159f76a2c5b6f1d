package client

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Esderin/Standard-of-Iron/internal/handlers/pathing/v1alpha1"
)

var (
	levelCellSize    float64
	levelOffset      string
	levelTerrainFile string
	levelMountains   []string
	levelHills       []string
)

var createLevelCmd = &cobra.Command{
	Use:   "create-level [width] [height]",
	Short: "Create a level",
	Long: `Create a level with optional terrain. Terrain files hold one row of
glyphs per line: '.' flat, 'M' mountain, '^' hill slope, '=' hill plateau,
'E' hill entrance. Mountains and hills are stamped on top as x,y,radius;
hills take entrances as @x,y suffixes. Examples:

  create-level 64 64
  create-level 32 32 --cell-size 2 --offset=-8,-8 --terrain map.txt
  create-level 40 40 --mountain 30,30,3 --hill 12,12,6@12,6@6,12`,
	Args: cobra.ExactArgs(2),
	RunE: createLevel,
}

func init() {
	createLevelCmd.Flags().Float64Var(&levelCellSize, "cell-size", 1, "World size of one cell")
	createLevelCmd.Flags().StringVar(&levelOffset, "offset", "0,0", "Grid offset as x,z")
	createLevelCmd.Flags().StringVar(&levelTerrainFile, "terrain", "", "Path to a terrain rows file")
	createLevelCmd.Flags().StringArrayVar(&levelMountains, "mountain", nil, "Mountain as x,y,radius (repeatable)")
	createLevelCmd.Flags().StringArrayVar(&levelHills, "hill", nil, "Hill as x,y,radius[@x,y...] (repeatable)")
}

func createLevel(cmd *cobra.Command, args []string) error {
	size, err := parsePoint(args[0] + "," + args[1])
	if err != nil {
		return fmt.Errorf("invalid size: %w", err)
	}
	offsetX, offsetZ, err := parseFloatPair(levelOffset)
	if err != nil {
		return fmt.Errorf("invalid offset: %w", err)
	}

	req := map[string]any{
		"width":     size["x"],
		"height":    size["y"],
		"cell_size": levelCellSize,
		"offset_x":  offsetX,
		"offset_z":  offsetZ,
	}

	if levelTerrainFile != "" {
		rows, err := readTerrainRows(levelTerrainFile)
		if err != nil {
			return err
		}
		req["terrain_rows"] = rows
	}

	if len(levelMountains) > 0 {
		mountains := make([]any, 0, len(levelMountains))
		for _, spec := range levelMountains {
			mountain, err := parseMountain(spec)
			if err != nil {
				return fmt.Errorf("invalid mountain: %w", err)
			}
			mountains = append(mountains, mountain)
		}
		req["mountains"] = mountains
	}
	if len(levelHills) > 0 {
		hills := make([]any, 0, len(levelHills))
		for _, spec := range levelHills {
			hill, err := parseHill(spec)
			if err != nil {
				return fmt.Errorf("invalid hill: %w", err)
			}
			hills = append(hills, hill)
		}
		req["hills"] = hills
	}

	return call(cmd, v1alpha1.MethodCreateLevel, req)
}

func readTerrainRows(path string) ([]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read terrain: %w", err)
	}

	var rows []any
	for _, line := range strings.Split(strings.TrimRight(string(data), "\n"), "\n") {
		rows = append(rows, strings.TrimRight(line, "\r"))
	}
	return rows, nil
}

// parseMountain reads "x,y,radius".
func parseMountain(s string) (map[string]any, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return nil, fmt.Errorf("expected x,y,radius, got %q", s)
	}
	center, err := parsePoint(parts[0] + "," + parts[1])
	if err != nil {
		return nil, err
	}
	radius, err := strconv.ParseFloat(strings.TrimSpace(parts[2]), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid radius %q: %w", parts[2], err)
	}
	return map[string]any{"center_x": center["x"], "center_y": center["y"], "radius": radius}, nil
}

// parseHill reads "x,y,radius" followed by any number of "@x,y" entrances.
func parseHill(s string) (map[string]any, error) {
	parts := strings.Split(s, "@")
	hill, err := parseMountain(parts[0])
	if err != nil {
		return nil, err
	}
	if len(parts) > 1 {
		entrances := make([]any, 0, len(parts)-1)
		for _, part := range parts[1:] {
			entrance, err := parsePoint(part)
			if err != nil {
				return nil, fmt.Errorf("invalid entrance: %w", err)
			}
			entrances = append(entrances, entrance)
		}
		hill["entrances"] = entrances
	}
	return hill, nil
}
