// Package main is the entry point for the pathing gRPC server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Esderin/Standard-of-Iron/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "standard-of-iron",
	Short: "Grid pathfinding gRPC server",
	Long:  `Standard of Iron serves grid pathfinding for RTS levels: blocking and queued A* searches over terrain and building obstacles.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
