// Package client provides test commands for the statistics gRPC service
package client

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/duxrumyantsev-ux/DND-Manager-sub000/internal/errors"
	"github.com/duxrumyantsev-ux/DND-Manager-sub000/internal/handlers/statistics/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
)

// ClientCmd is the root command for all client test commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Test client commands for the statistics service",
	Long:  `Client commands allow you to test the statistics service by making real gRPC requests.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")

	// Character commands
	ClientCmd.AddCommand(computeCmd)
	ClientCmd.AddCommand(getCharacterCmd)
	ClientCmd.AddCommand(listCharactersCmd)
	ClientCmd.AddCommand(saveCharacterCmd)
	ClientCmd.AddCommand(deleteCharacterCmd)
	ClientCmd.AddCommand(updateSkillCmd)
	ClientCmd.AddCommand(hitPointsCmd)

	// Ability score commands
	ClientCmd.AddCommand(rollAbilityScoresCmd)
	ClientCmd.AddCommand(getRollSessionCmd)
	ClientCmd.AddCommand(clearRollSessionCmd)
	ClientCmd.AddCommand(assignScoresCmd)
}

type rpcFunc func(v1alpha1.StatisticsServiceClient, context.Context, *structpb.Struct, ...grpc.CallOption) (*structpb.Struct, error)

// createStatisticsClient creates a statistics service client
func createStatisticsClient() (v1alpha1.StatisticsServiceClient, func(), error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return v1alpha1.NewStatisticsServiceClient(conn), cleanup, nil
}

// invoke encodes req, calls rpc and prints the response as indented JSON
func invoke(cmd *cobra.Command, rpc rpcFunc, req interface{}) error {
	msg, err := v1alpha1.EncodeMessage(req)
	if err != nil {
		return err
	}

	client, cleanup, err := createStatisticsClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	resp, err := rpc(client, ctx, msg)
	if err != nil {
		return describeError(cmd, err)
	}

	out, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(resp)
	if err != nil {
		return fmt.Errorf("failed to print response: %w", err)
	}
	cmd.Println(string(out))
	return nil
}

// describeError restores the coded error from the status and prints any
// per-field validation messages before returning it
func describeError(cmd *cobra.Command, err error) error {
	coded := errors.FromGRPCError(err)
	fields := errors.ValidationFields(coded)
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		cmd.PrintErrf("  %s: %s\n", name, strings.Join(fields[name], ", "))
	}
	return fmt.Errorf("%s failed (%s): %s", cmd.Name(), errors.GetCode(coded), errors.GetMessage(coded))
}
