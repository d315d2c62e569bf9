package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/am-sokolov/livekit-call-settings/pkg/agent"
	"github.com/am-sokolov/livekit-call-settings/pkg/settings"
)

func newShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the region and every setting with its options",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := newSession(cmd)
			if err != nil {
				return err
			}
			return printSettings(cmd.OutOrStdout(), s.store)
		},
	}
}

func newLayersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "layers",
		Short: "Print the simulcast layers for the selected resolution",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := newSession(cmd)
			if err != nil {
				return err
			}
			size, err := s.store.CurrentSize(settings.Resolution)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, layer := range agent.SimulcastLayers(size) {
				fmt.Fprintf(out, "%-7s %dx%d %d bps\n", layer.Quality, layer.Width, layer.Height, layer.Bitrate)
			}
			return nil
		},
	}
}

func printSettings(out io.Writer, store *settings.Store) error {
	fmt.Fprintf(out, "region: %s\n", store.Region())
	fmt.Fprintf(out, "screen share uid: %d\n", store.ScreenShareUID())
	fmt.Fprintf(out, "screen share broadcaster uid: %d\n", store.ScreenShareBroadcasterUID())

	for _, name := range store.Names() {
		list, err := store.Get(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s:\n", name)
		for _, opt := range list.Options() {
			marker := " "
			if opt.Index() == list.Selected() {
				marker = "*"
			}
			fmt.Fprintf(out, "  %s %d %s\n", marker, opt.Index(), opt.Label())
		}
	}
	return nil
}
