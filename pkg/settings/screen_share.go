package settings

import (
	"fmt"
	"math/rand/v2"
)

// UIDRange is an inclusive range of participant UIDs.
type UIDRange struct {
	Min uint
	Max uint
}

// Reserved UID ranges for screen sharing.
var (
	ScreenShareUIDs            = UIDRange{Min: 501, Max: 1000}
	ScreenShareBroadcasterUIDs = UIDRange{Min: 1001, Max: 2000}
)

// Contains reports whether uid lies in the range.
func (r UIDRange) Contains(uid uint) bool {
	return uid >= r.Min && uid <= r.Max
}

// Random draws a UID uniformly from the range.
func (r UIDRange) Random() uint {
	return r.Min + rand.UintN(r.Max-r.Min+1)
}

// WithScreenShareUIDs fixes the screen-share UIDs instead of drawing them.
func WithScreenShareUIDs(uid, broadcasterUID uint) StoreOption {
	return func(s *Store) error {
		if !ScreenShareUIDs.Contains(uid) {
			return fmt.Errorf("screen share uid %d not in [%d,%d]: %w",
				uid, ScreenShareUIDs.Min, ScreenShareUIDs.Max, ErrOutOfRange)
		}
		if !ScreenShareBroadcasterUIDs.Contains(broadcasterUID) {
			return fmt.Errorf("screen share broadcaster uid %d not in [%d,%d]: %w",
				broadcasterUID, ScreenShareBroadcasterUIDs.Min, ScreenShareBroadcasterUIDs.Max, ErrOutOfRange)
		}
		s.screenShareUID = uid
		s.screenShareBroadcasterUID = broadcasterUID
		return nil
	}
}
