package agent

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/livekit/protocol/auth"
	"github.com/livekit/protocol/livekit"
	"github.com/pion/webrtc/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/am-sokolov/livekit-call-settings/internal/test/mocks"
	"github.com/am-sokolov/livekit-call-settings/pkg/settings"
)

func newTestClient(t *testing.T, store *settings.Store, mutate func(*ClientOptions)) *Client {
	t.Helper()

	opts := ClientOptions{
		URL:       "ws://localhost:7880",
		APIKey:    "devkey",
		APISecret: "secretsecretsecretsecretsecretsecret",
		RoomName:  "test-room",
		Identity:  "alice",
	}
	if mutate != nil {
		mutate(&opts)
	}

	client, err := NewClient(store, opts)
	require.NoError(t, err)
	return client
}

func TestNewClientValidation(t *testing.T) {
	store := settings.NewDefaultStore()

	tests := []struct {
		name  string
		store *settings.Store
		opts  ClientOptions
	}{
		{name: "nil store", opts: ClientOptions{URL: "ws://x", APIKey: "k", APISecret: "s", RoomName: "r"}},
		{name: "missing url", store: store, opts: ClientOptions{APIKey: "k", APISecret: "s", RoomName: "r"}},
		{name: "missing key", store: store, opts: ClientOptions{URL: "ws://x", APISecret: "s", RoomName: "r"}},
		{name: "missing secret", store: store, opts: ClientOptions{URL: "ws://x", APIKey: "k", RoomName: "r"}},
		{name: "missing room", store: store, opts: ClientOptions{URL: "ws://x", APIKey: "k", APISecret: "s"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewClient(tt.store, tt.opts)
			assert.ErrorIs(t, err, ErrInvalidOptions)
		})
	}
}

func TestNewClientDefaults(t *testing.T) {
	client := newTestClient(t, settings.NewDefaultStore(), func(o *ClientOptions) {
		o.Identity = ""
	})

	assert.True(t, strings.HasPrefix(client.Identity(), "caller-"))
	assert.Equal(t, DefaultTokenTTL, client.opts.TokenTTL)
	assert.NotNil(t, client.logger)
	assert.Nil(t, client.Room())
}

func TestServerURLFollowsRegion(t *testing.T) {
	store := settings.NewDefaultStore()
	client := newTestClient(t, store, func(o *ClientOptions) {
		o.RegionURLs = map[settings.RegionCode]string{
			settings.RegionEurope: "wss://eu.example.com",
		}
	})

	url, err := client.ServerURL()
	require.NoError(t, err)
	assert.Equal(t, "ws://localhost:7880", url)

	store.SetRegion(settings.RegionEurope)
	url, err = client.ServerURL()
	require.NoError(t, err)
	assert.Equal(t, "wss://eu.example.com", url)

	store.SetRegion(settings.RegionJapan)
	url, err = client.ServerURL()
	require.NoError(t, err)
	assert.Equal(t, "ws://localhost:7880", url)
}

func TestServerURLRegionOnly(t *testing.T) {
	store := settings.NewDefaultStore()
	client := newTestClient(t, store, func(o *ClientOptions) {
		o.URL = ""
		o.RegionURLs = map[settings.RegionCode]string{
			settings.RegionAsia: "wss://as.example.com",
		}
	})

	_, err := client.ServerURL()
	assert.ErrorIs(t, err, ErrInvalidOptions)

	store.SetRegion(settings.RegionAsia)
	url, err := client.ServerURL()
	require.NoError(t, err)
	assert.Equal(t, "wss://as.example.com", url)
}

func TestToken(t *testing.T) {
	client := newTestClient(t, settings.NewDefaultStore(), nil)

	token, err := client.Token(client.Identity())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	verifier, err := auth.ParseAPIToken(token)
	require.NoError(t, err)
	assert.Equal(t, "devkey", verifier.APIKey())
	assert.Equal(t, "alice", verifier.Identity())
}

func TestScreenShareIdentity(t *testing.T) {
	store, err := settings.NewStore(append(settings.DefaultSettings(), settings.WithScreenShareUIDs(777, 1777))...)
	require.NoError(t, err)

	client := newTestClient(t, store, nil)
	assert.Equal(t, "alice-screen-777", client.ScreenShareIdentity())
}

func TestVideoPublicationOptions(t *testing.T) {
	store := settings.NewDefaultStore()
	client := newTestClient(t, store, nil)

	opts, err := client.VideoPublicationOptions()
	require.NoError(t, err)
	assert.Equal(t, livekit.TrackSource_CAMERA, opts.Source)
	assert.Equal(t, 640, opts.VideoWidth)
	assert.Equal(t, 360, opts.VideoHeight)

	require.NoError(t, store.SetSelected(settings.Resolution, 4))

	opts, err = client.VideoPublicationOptions()
	require.NoError(t, err)
	assert.Equal(t, 1280, opts.VideoWidth)
	assert.Equal(t, 720, opts.VideoHeight)

	opts, err = client.ScreenSharePublicationOptions()
	require.NoError(t, err)
	assert.Equal(t, livekit.TrackSource_SCREEN_SHARE, opts.Source)
	assert.Equal(t, 1280, opts.VideoWidth)
}

func TestVideoPublicationOptionsWithoutResolution(t *testing.T) {
	store, err := settings.NewStore()
	require.NoError(t, err)
	client := newTestClient(t, store, nil)

	_, err = client.VideoPublicationOptions()
	assert.ErrorIs(t, err, settings.ErrNotFound)

	_, err = client.VideoLayers()
	assert.ErrorIs(t, err, settings.ErrNotFound)
}

func TestVideoLayers(t *testing.T) {
	store := settings.NewDefaultStore()
	client := newTestClient(t, store, nil)

	layers, err := client.VideoLayers()
	require.NoError(t, err)
	require.Len(t, layers, 2)
	assert.Equal(t, livekit.VideoQuality_MEDIUM, layers[1].Quality)
	assert.Equal(t, uint32(640), layers[1].Width)
}

func TestConnectCancelledContext(t *testing.T) {
	logger := mocks.NewRecordingLogger()
	client := newTestClient(t, settings.NewDefaultStore(), func(o *ClientOptions) {
		o.Logger = logger
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	room, err := client.Connect(ctx, nil)
	assert.Nil(t, room)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Empty(t, logger.Entries())
}

func TestPublishCameraNotConnected(t *testing.T) {
	client := newTestClient(t, settings.NewDefaultStore(), nil)

	track, err := NewCameraTrack("cam")
	require.NoError(t, err)
	assert.Equal(t, webrtc.MimeTypeVP8, track.Codec().MimeType)

	_, err = client.PublishCamera(track)
	assert.ErrorIs(t, err, ErrNotConnected)
}

func TestDisconnectWithoutRoom(t *testing.T) {
	client := newTestClient(t, settings.NewDefaultStore(), nil)
	assert.NotPanics(t, client.Disconnect)
}

func TestErrorCodes(t *testing.T) {
	assert.Equal(t, "NOT_CONNECTED: not connected to a room", ErrNotConnected.Error())
	assert.Equal(t, "INVALID_OPTIONS: invalid client options", ErrInvalidOptions.Error())
}
