package agent

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/livekit/protocol/auth"
	"github.com/livekit/protocol/livekit"
	lksdk "github.com/livekit/server-sdk-go/v2"
	"github.com/pion/webrtc/v4"

	"github.com/am-sokolov/livekit-call-settings/pkg/settings"
)

// Client joins a LiveKit room configured by a settings.Store.
type Client struct {
	store  *settings.Store
	opts   ClientOptions
	logger settings.Logger

	mu   sync.Mutex
	room *lksdk.Room
}

// NewClient validates opts and creates a client reading from store.
func NewClient(store *settings.Store, opts ClientOptions) (*Client, error) {
	if store == nil {
		return nil, fmt.Errorf("%w: store is required", ErrInvalidOptions)
	}
	if opts.URL == "" && len(opts.RegionURLs) == 0 {
		return nil, fmt.Errorf("%w: server URL is required", ErrInvalidOptions)
	}
	if opts.APIKey == "" || opts.APISecret == "" {
		return nil, fmt.Errorf("%w: API key and secret are required", ErrInvalidOptions)
	}
	if opts.RoomName == "" {
		return nil, fmt.Errorf("%w: room name is required", ErrInvalidOptions)
	}
	if opts.Identity == "" {
		opts.Identity = "caller-" + uuid.NewString()
	}
	if opts.TokenTTL <= 0 {
		opts.TokenTTL = DefaultTokenTTL
	}
	if opts.Logger == nil {
		opts.Logger = settings.NewNopLogger()
	}

	return &Client{
		store:  store,
		opts:   opts,
		logger: opts.Logger,
	}, nil
}

// Identity returns the participant identity used in tokens.
func (c *Client) Identity() string {
	return c.opts.Identity
}

// ScreenShareIdentity returns the identity used by the screen-share
// participant. It carries the store's screen-share UID.
func (c *Client) ScreenShareIdentity() string {
	return c.opts.Identity + "-screen-" + strconv.FormatUint(uint64(c.store.ScreenShareUID()), 10)
}

// ServerURL returns the URL for the store's current region, falling back to
// the default URL.
func (c *Client) ServerURL() (string, error) {
	region := c.store.Region()
	if url, ok := c.opts.RegionURLs[region]; ok && url != "" {
		return url, nil
	}
	if c.opts.URL == "" {
		return "", fmt.Errorf("%w: no server URL for region %s", ErrInvalidOptions, region)
	}
	return c.opts.URL, nil
}

// Token mints an access token allowing identity to join the room.
func (c *Client) Token(identity string) (string, error) {
	canPublish := true
	canSubscribe := true

	grant := &auth.VideoGrant{
		RoomJoin:     true,
		Room:         c.opts.RoomName,
		CanPublish:   &canPublish,
		CanSubscribe: &canSubscribe,
	}

	at := auth.NewAccessToken(c.opts.APIKey, c.opts.APISecret)
	at.AddGrant(grant).
		SetIdentity(identity).
		SetName(c.opts.Name).
		SetValidFor(c.opts.TokenTTL)

	token, err := at.ToJWT()
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return token, nil
}

// VideoPublicationOptions describes the camera track at the currently
// selected resolution.
func (c *Client) VideoPublicationOptions() (*lksdk.TrackPublicationOptions, error) {
	return c.publicationOptions("camera", livekit.TrackSource_CAMERA)
}

// ScreenSharePublicationOptions describes a screen-share track at the
// currently selected resolution.
func (c *Client) ScreenSharePublicationOptions() (*lksdk.TrackPublicationOptions, error) {
	return c.publicationOptions("screen", livekit.TrackSource_SCREEN_SHARE)
}

func (c *Client) publicationOptions(name string, source livekit.TrackSource) (*lksdk.TrackPublicationOptions, error) {
	size, err := c.store.CurrentSize(settings.Resolution)
	if err != nil {
		return nil, err
	}
	return &lksdk.TrackPublicationOptions{
		Name:        name,
		Source:      source,
		VideoWidth:  int(size.Width),
		VideoHeight: int(size.Height),
	}, nil
}

// VideoLayers returns the simulcast ladder for the selected resolution.
//
// The ladder is informational. PublishCamera only passes the top
// resolution in TrackPublicationOptions; the SDK derives the simulcast
// encodings it actually sends.
func (c *Client) VideoLayers() ([]*livekit.VideoLayer, error) {
	size, err := c.store.CurrentSize(settings.Resolution)
	if err != nil {
		return nil, err
	}
	return SimulcastLayers(size), nil
}

// Connect joins the room. The region and token are resolved at call time.
// A nil callback is allowed.
func (c *Client) Connect(ctx context.Context, callback *lksdk.RoomCallback) (*lksdk.Room, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	url, err := c.ServerURL()
	if err != nil {
		return nil, err
	}
	token, err := c.Token(c.opts.Identity)
	if err != nil {
		return nil, err
	}
	if callback == nil {
		callback = &lksdk.RoomCallback{}
	}

	c.logger.Info("connecting to room",
		"url", url,
		"room", c.opts.RoomName,
		"identity", c.opts.Identity,
		"region", c.store.Region().String())

	start := time.Now()
	room, err := lksdk.ConnectToRoomWithToken(url, token, callback)
	if err != nil {
		c.logger.Error("failed to connect", "url", url, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrConnectionFailed, err)
	}

	c.mu.Lock()
	c.room = room
	c.mu.Unlock()

	c.logger.Info("connected to room", "room", c.opts.RoomName, "elapsed", time.Since(start))
	return room, nil
}

// Room returns the connected room, or nil.
func (c *Client) Room() *lksdk.Room {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.room
}

// NewCameraTrack creates a VP8 sample track for the camera.
func NewCameraTrack(id string) (*webrtc.TrackLocalStaticSample, error) {
	return webrtc.NewTrackLocalStaticSample(
		webrtc.RTPCodecCapability{MimeType: webrtc.MimeTypeVP8},
		id,
		"camera",
	)
}

// PublishCamera publishes track on the connected room at the selected
// resolution.
func (c *Client) PublishCamera(track webrtc.TrackLocal) (*lksdk.LocalTrackPublication, error) {
	room := c.Room()
	if room == nil {
		return nil, ErrNotConnected
	}

	opts, err := c.VideoPublicationOptions()
	if err != nil {
		return nil, err
	}

	pub, err := room.LocalParticipant.PublishTrack(track, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPublishFailed, err)
	}

	c.logger.Info("published camera track",
		"trackSID", pub.SID(),
		"width", opts.VideoWidth,
		"height", opts.VideoHeight)
	return pub, nil
}

// Disconnect leaves the room if connected.
func (c *Client) Disconnect() {
	c.mu.Lock()
	room := c.room
	c.room = nil
	c.mu.Unlock()

	if room != nil {
		room.Disconnect()
		c.logger.Info("disconnected from room", "room", c.opts.RoomName)
	}
}
