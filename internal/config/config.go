package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/am-sokolov/livekit-call-settings/pkg/agent"
	"github.com/am-sokolov/livekit-call-settings/pkg/settings"
)

// Environment variable names.
const (
	EnvLiveKitURL = "LIVEKIT_URL"
	EnvAPIKey     = "LIVEKIT_API_KEY"
	EnvAPISecret  = "LIVEKIT_API_SECRET"
	EnvRoom       = "LIVEKIT_ROOM"
	EnvIdentity   = "LIVEKIT_IDENTITY"
	EnvRegion     = "CALL_REGION"
	EnvResolution = "CALL_RESOLUTION"
	EnvLogLevel   = "LOG_LEVEL"
	EnvLogFormat  = "LOG_FORMAT"

	// EnvRegionURLPrefix prefixes per-region URL overrides, e.g. LIVEKIT_URL_EU.
	EnvRegionURLPrefix = "LIVEKIT_URL_"
)

const (
	defaultLiveKitURL = "ws://localhost:7880"
	defaultRegion     = "global"
	defaultLogLevel   = LogLevelInfo
	defaultLogFormat  = LogFormatConsole
)

// Config is the client configuration.
type Config struct {
	LiveKitURL string `validate:"required,url"`
	APIKey     string
	APISecret  string
	RoomName   string
	Identity   string

	// Region is a short region name, see settings.ParseRegion.
	Region string `validate:"omitempty,oneof=global cn na eu as jp in"`

	// Resolution is an option label such as "1280x720" or an option index.
	// Empty keeps the store default.
	Resolution string

	// RegionURLs are per-region server URLs keyed by short region name.
	RegionURLs map[string]string `validate:"dive,keys,oneof=global cn na eu as jp in,endkeys,url"`

	Logger LoggerSettings
}

// Load reads envFiles (missing files are skipped) and then the environment.
// Variables already set in the environment win over .env values.
func Load(envFiles ...string) (*Config, error) {
	for _, path := range envFiles {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", path, err)
		}
	}

	cfg := &Config{
		LiveKitURL: getEnv(EnvLiveKitURL, defaultLiveKitURL),
		APIKey:     os.Getenv(EnvAPIKey),
		APISecret:  os.Getenv(EnvAPISecret),
		RoomName:   os.Getenv(EnvRoom),
		Identity:   os.Getenv(EnvIdentity),
		Region:     strings.ToLower(getEnv(EnvRegion, defaultRegion)),
		Resolution: os.Getenv(EnvResolution),
		RegionURLs: regionURLsFromEnv(),
		Logger: LoggerSettings{
			Level:  getEnv(EnvLogLevel, defaultLogLevel),
			Format: getEnv(EnvLogFormat, defaultLogFormat),
		},
	}
	return cfg, nil
}

// Validate checks the configuration fields.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("validation failed for Config: %w", err)
	}
	return nil
}

// ValidateCredentials checks the fields needed to connect.
func (c *Config) ValidateCredentials() error {
	var missing []string
	if c.APIKey == "" {
		missing = append(missing, EnvAPIKey)
	}
	if c.APISecret == "" {
		missing = append(missing, EnvAPISecret)
	}
	if c.RoomName == "" {
		missing = append(missing, EnvRoom)
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return nil
}

// Apply sets the configured region and resolution on store.
// An unknown resolution label yields settings.ErrNotFound and a bad index
// settings.ErrOutOfRange; the store is left unchanged on error.
func (c *Config) Apply(store *settings.Store) error {
	region, err := settings.ParseRegion(c.Region)
	if err != nil {
		return err
	}

	if c.Resolution != "" {
		list, err := store.Get(settings.Resolution)
		if err != nil {
			return err
		}
		index, err := strconv.Atoi(c.Resolution)
		if err != nil {
			if index, err = list.IndexOf(c.Resolution); err != nil {
				return fmt.Errorf("resolution: %w", err)
			}
		}
		if err := store.SetSelected(settings.Resolution, index); err != nil {
			return err
		}
	}

	store.SetRegion(region)
	return nil
}

// ClientOptions converts the configuration to agent options.
func (c *Config) ClientOptions(logger settings.Logger) (agent.ClientOptions, error) {
	regionURLs := make(map[settings.RegionCode]string, len(c.RegionURLs))
	for name, url := range c.RegionURLs {
		region, err := settings.ParseRegion(name)
		if err != nil {
			return agent.ClientOptions{}, err
		}
		regionURLs[region] = url
	}

	return agent.ClientOptions{
		URL:        c.LiveKitURL,
		RegionURLs: regionURLs,
		APIKey:     c.APIKey,
		APISecret:  c.APISecret,
		RoomName:   c.RoomName,
		Identity:   c.Identity,
		Name:       c.Identity,
		Logger:     logger,
	}, nil
}

func regionURLsFromEnv() map[string]string {
	urls := make(map[string]string)
	for _, region := range settings.Regions() {
		key := EnvRegionURLPrefix + strings.ToUpper(region.String())
		if v := os.Getenv(key); v != "" {
			urls[region.String()] = v
		}
	}
	return urls
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
