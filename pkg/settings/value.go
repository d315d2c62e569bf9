package settings

import "fmt"

// Value is the payload carried by an Option.
// The set of variants is closed; Size is the only one in use.
type Value interface {
	fmt.Stringer
	isValue()
}

// Size is a width/height pair in pixels.
type Size struct {
	Width  uint32
	Height uint32
}

func (Size) isValue() {}

// String formats the size as "WxH".
func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}
