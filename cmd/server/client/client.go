// Package client provides test commands for the pathing gRPC service
package client

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/Esderin/Standard-of-Iron/internal/errors"
	"github.com/Esderin/Standard-of-Iron/internal/handlers/pathing/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
)

// ClientCmd is the root command for all client test commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Test client commands for the pathing service",
	Long:  `Client commands allow you to test the pathing service by making real gRPC requests.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")

	// Level commands
	ClientCmd.AddCommand(createLevelCmd)
	ClientCmd.AddCommand(listLevelsCmd)
	ClientCmd.AddCommand(placeBuildingCmd)

	// Path commands
	ClientCmd.AddCommand(findPathCmd)
	ClientCmd.AddCommand(submitPathCmd)
	ClientCmd.AddCommand(fetchPathsCmd)
}

// createClient dials the server and returns a pathing client
func createClient() (*v1alpha1.Client, func(), error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return v1alpha1.NewClient(conn), cleanup, nil
}

// call runs one method and prints the response as JSON.
func call(cmd *cobra.Command, method string, req map[string]any) error {
	client, cleanup, err := createClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.CallMap(ctx, method, req)
	if err != nil {
		converted := errors.FromGRPCError(err)
		if meta := errors.GetMeta(converted); len(meta) > 0 {
			return fmt.Errorf("%s failed: %w (%v)", method, converted, meta)
		}
		return fmt.Errorf("%s failed: %w", method, converted)
	}

	return printStruct(cmd, resp)
}

func printStruct(cmd *cobra.Command, s *structpb.Struct) error {
	out, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to format response: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}

// parsePoint reads "x,y" into a grid point map.
func parsePoint(s string) (map[string]any, error) {
	x, y, err := parsePair(s, strconv.Atoi)
	if err != nil {
		return nil, err
	}
	return map[string]any{"x": x, "y": y}, nil
}

// parseFloatPair reads "a,b" into two floats.
func parseFloatPair(s string) (float64, float64, error) {
	return parsePair(s, func(v string) (float64, error) {
		return strconv.ParseFloat(v, 64)
	})
}

func parsePair[T any](s string, parse func(string) (T, error)) (T, T, error) {
	var zero T
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return zero, zero, fmt.Errorf("expected two comma-separated values, got %q", s)
	}
	a, err := parse(strings.TrimSpace(parts[0]))
	if err != nil {
		return zero, zero, fmt.Errorf("invalid value %q: %w", parts[0], err)
	}
	b, err := parse(strings.TrimSpace(parts[1]))
	if err != nil {
		return zero, zero, fmt.Errorf("invalid value %q: %w", parts[1], err)
	}
	return a, b, nil
}
