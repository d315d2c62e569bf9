// Package agent connects a LiveKit participant using the call settings held
// in a settings.Store.
//
// The client reads the store at call time: the region picks the server URL
// when connecting, and the selected "resolution" sizes the published camera
// track and its simulcast layers. Changing the store therefore affects the
// next connection or publication, never one already in flight.
//
// Example:
//
//	store := settings.NewDefaultStore()
//	client, err := agent.NewClient(store, agent.ClientOptions{
//		URL:       "wss://example.livekit.cloud",
//		APIKey:    key,
//		APISecret: secret,
//		RoomName:  "standup",
//	})
//	room, err := client.Connect(ctx, nil)
package agent

import (
	"time"

	"github.com/am-sokolov/livekit-call-settings/pkg/settings"
)

// DefaultTokenTTL is the validity of access tokens minted by the client.
const DefaultTokenTTL = time.Hour

// ClientOptions configures a Client.
type ClientOptions struct {
	// URL is the default LiveKit server URL.
	URL string

	// RegionURLs overrides URL for specific regions.
	// RegionGlobal is looked up like any other region.
	RegionURLs map[settings.RegionCode]string

	// APIKey and APISecret sign access tokens.
	APIKey    string
	APISecret string

	// RoomName is the room to join.
	RoomName string

	// Identity is the participant identity. If empty, a random one is generated.
	Identity string

	// Name is the participant display name.
	Name string

	// TokenTTL is how long minted tokens are valid. Defaults to DefaultTokenTTL.
	TokenTTL time.Duration

	// Logger receives client events. Defaults to a no-op logger.
	Logger settings.Logger
}

// Error represents a typed error with a code and message.
// Error codes are stable and can be used for programmatic error handling.
type Error struct {
	// Code is a stable identifier for the error type.
	Code string

	// Message provides human-readable error details.
	Message string
}

// Error implements the error interface.
// Returns a string in the format "CODE: message".
func (e *Error) Error() string {
	return e.Code + ": " + e.Message
}

// Common errors returned by the client.
// Use errors.Is() to check for specific error types.
var (
	// ErrInvalidOptions indicates missing or malformed ClientOptions.
	ErrInvalidOptions = &Error{Code: "INVALID_OPTIONS", Message: "invalid client options"}

	// ErrConnectionFailed indicates a failure to establish connection to LiveKit server.
	ErrConnectionFailed = &Error{Code: "CONNECTION_FAILED", Message: "failed to connect to LiveKit server"}

	// ErrNotConnected indicates an operation that needs a room before Connect.
	ErrNotConnected = &Error{Code: "NOT_CONNECTED", Message: "not connected to a room"}

	// ErrPublishFailed indicates the SDK rejected a track publication.
	ErrPublishFailed = &Error{Code: "PUBLISH_FAILED", Message: "failed to publish track"}
)
