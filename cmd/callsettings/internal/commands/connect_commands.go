package commands

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/am-sokolov/livekit-call-settings/pkg/agent"
)

func newConnectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "connect",
		Short: "Join the configured room and publish a camera track",
		Long: `connect joins LIVEKIT_ROOM on the server for the configured region and
publishes a VP8 camera track at the selected resolution. It stays in the
room until interrupted.`,
		Args: cobra.NoArgs,
		RunE: runConnect,
	}
}

func runConnect(cmd *cobra.Command, _ []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	if err := s.cfg.ValidateCredentials(); err != nil {
		return err
	}

	opts, err := s.cfg.ClientOptions(s.logger)
	if err != nil {
		return err
	}
	client, err := agent.NewClient(s.store, opts)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if _, err := client.Connect(ctx, nil); err != nil {
		return err
	}
	defer client.Disconnect()

	track, err := agent.NewCameraTrack("camera")
	if err != nil {
		return fmt.Errorf("failed to create camera track: %w", err)
	}
	pub, err := client.PublishCamera(track)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "published %s as %s, press Ctrl+C to leave\n", pub.SID(), client.Identity())
	<-ctx.Done()
	return nil
}
