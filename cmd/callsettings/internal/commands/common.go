// Package commands implements the callsettings subcommands.
package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/am-sokolov/livekit-call-settings/internal/config"
	"github.com/am-sokolov/livekit-call-settings/pkg/settings"
)

const (
	flagEnvFile    = "env-file"
	flagRegion     = "region"
	flagResolution = "resolution"
)

// NewRootCommand builds the command tree writing results to out.
func NewRootCommand(out io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "callsettings",
		Short: "Inspect and use video call settings",
		Long: `callsettings shows the region and video settings a LiveKit client uses
and can join a room with them.

Configuration is read from the environment (optionally seeded from --env-file):
- LIVEKIT_URL, LIVEKIT_API_KEY, LIVEKIT_API_SECRET, LIVEKIT_ROOM
- CALL_REGION, CALL_RESOLUTION
- LIVEKIT_URL_<REGION> for per-region servers`,
		SilenceUsage: true,
	}
	rootCmd.SetOut(out)

	flags := rootCmd.PersistentFlags()
	flags.StringSlice(flagEnvFile, []string{".env"}, "dotenv files to load before reading the environment")
	flags.String(flagRegion, "", "connection region (global, cn, na, eu, as, jp, in)")
	flags.String(flagResolution, "", "resolution label (e.g. 1280x720) or index")

	rootCmd.AddCommand(newShowCommand(), newLayersCommand(), newConnectCommand())
	return rootCmd
}

// session is the state shared by subcommands.
type session struct {
	cfg    *config.Config
	store  *settings.Store
	logger settings.Logger
}

// newSession loads configuration, applies flag overrides and builds the
// logger and store.
func newSession(cmd *cobra.Command) (*session, error) {
	envFiles, err := cmd.Flags().GetStringSlice(flagEnvFile)
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(envFiles...)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if region, _ := cmd.Flags().GetString(flagRegion); region != "" {
		cfg.Region = strings.ToLower(strings.TrimSpace(region))
	}
	if resolution, _ := cmd.Flags().GetString(flagResolution); resolution != "" {
		cfg.Resolution = resolution
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	zl, err := cfg.Logger.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger := settings.NewZapLogger(zl)

	store := settings.NewDefaultStore(settings.WithLogger(logger))
	if err := cfg.Apply(store); err != nil {
		return nil, err
	}

	return &session{cfg: cfg, store: store, logger: logger}, nil
}
