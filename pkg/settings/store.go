package settings

import (
	"fmt"
	"sort"
	"sync"
)

// Resolution is the name of the video resolution setting the SDK client
// reads when configuring the encoder.
const Resolution = "resolution"

// DefaultResolutionIndex selects 640x360 in DefaultResolutions.
const DefaultResolutionIndex = 3

// DefaultResolutions are the resolution presets of the default store.
var DefaultResolutions = []Size{
	{Width: 90, Height: 90},
	{Width: 160, Height: 120},
	{Width: 320, Height: 240},
	{Width: 640, Height: 360},
	{Width: 1280, Height: 720},
}

// Store holds the connection region and the named selectable settings.
//
// Reads return snapshots; all mutation goes through Store methods, which
// are safe for concurrent use.
type Store struct {
	mu       sync.RWMutex
	region   RegionCode
	settings map[string]SelectableList

	screenShareUID            uint
	screenShareBroadcasterUID uint

	logger Logger
}

// StoreOption configures a Store at construction.
type StoreOption func(*Store) error

// WithLogger sets the logger used to record mutations.
func WithLogger(logger Logger) StoreOption {
	return func(s *Store) error {
		if logger != nil {
			s.logger = logger
		}
		return nil
	}
}

// WithRegion sets the initial region.
func WithRegion(region RegionCode) StoreOption {
	return func(s *Store) error {
		s.region = region
		return nil
	}
}

// WithSetting registers a named setting.
func WithSetting(name string, list SelectableList) StoreOption {
	return func(s *Store) error {
		if _, err := list.CurrentOption(); err != nil {
			return fmt.Errorf("setting %q: %w", name, err)
		}
		s.settings[name] = list
		return nil
	}
}

// NewStore creates an empty store in RegionGlobal and applies opts.
// Screen-share UIDs are drawn from their ranges unless fixed by
// WithScreenShareUIDs.
func NewStore(opts ...StoreOption) (*Store, error) {
	s := &Store{
		region:                    RegionGlobal,
		settings:                  make(map[string]SelectableList),
		screenShareUID:            ScreenShareUIDs.Random(),
		screenShareBroadcasterUID: ScreenShareBroadcasterUIDs.Random(),
		logger:                    NewNopLogger(),
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// DefaultSettings returns the options that make up the default store:
// the resolution presets with 640x360 selected.
func DefaultSettings() []StoreOption {
	list, err := NewSelectableList(DefaultResolutionIndex, SizeOptions(DefaultResolutions...)...)
	if err != nil {
		panic(err)
	}
	return []StoreOption{WithSetting(Resolution, list)}
}

// NewDefaultStore creates a store with the default settings.
// Additional opts are applied after the defaults.
func NewDefaultStore(opts ...StoreOption) *Store {
	s, err := NewStore(append(DefaultSettings(), opts...)...)
	if err != nil {
		panic(err)
	}
	return s
}

// Get returns a snapshot of the named setting.
func (s *Store) Get(name string) (SelectableList, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list, ok := s.settings[name]
	if !ok {
		return SelectableList{}, fmt.Errorf("setting %q: %w", name, ErrNotFound)
	}
	return list, nil
}

// SetSelected changes the active option of the named setting.
// The setting is left unchanged if index is not a valid position.
func (s *Store) SetSelected(name string, index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, ok := s.settings[name]
	if !ok {
		return fmt.Errorf("setting %q: %w", name, ErrNotFound)
	}
	updated, err := list.withSelected(index)
	if err != nil {
		return fmt.Errorf("setting %q: %w", name, err)
	}
	s.settings[name] = updated

	s.logger.Debug("setting selected", "name", name, "from", list.selected, "to", index)
	return nil
}

// CurrentValue returns the value of the named setting's active option.
func (s *Store) CurrentValue(name string) (Value, error) {
	list, err := s.Get(name)
	if err != nil {
		return nil, err
	}
	opt, err := list.CurrentOption()
	if err != nil {
		return nil, fmt.Errorf("setting %q: %w", name, err)
	}
	return opt.Value(), nil
}

// CurrentSize returns the active value of the named setting as a Size.
func (s *Store) CurrentSize(name string) (Size, error) {
	v, err := s.CurrentValue(name)
	if err != nil {
		return Size{}, err
	}
	size, ok := v.(Size)
	if !ok {
		return Size{}, fmt.Errorf("setting %q holds %T: %w", name, v, ErrValueType)
	}
	return size, nil
}

// Register adds or replaces a named setting.
func (s *Store) Register(name string, list SelectableList) error {
	if _, err := list.CurrentOption(); err != nil {
		return fmt.Errorf("setting %q: %w", name, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings[name] = list

	s.logger.Debug("setting registered", "name", name, "options", list.Len())
	return nil
}

// Names returns the setting names in sorted order.
func (s *Store) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.settings))
	for name := range s.settings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Region returns the connection region.
func (s *Store) Region() RegionCode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.region
}

// SetRegion replaces the connection region. It takes effect on the next
// connection.
func (s *Store) SetRegion(region RegionCode) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.logger.Debug("region changed", "from", s.region.String(), "to", region.String())
	s.region = region
}

// ScreenShareUID returns the UID reserved for the local screen-share stream.
func (s *Store) ScreenShareUID() uint {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.screenShareUID
}

// ScreenShareBroadcasterUID returns the UID reserved for the screen-share
// broadcaster.
func (s *Store) ScreenShareBroadcasterUID() uint {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.screenShareBroadcasterUID
}
