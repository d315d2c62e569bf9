package settings

import (
	"fmt"
	"strings"
)

// RegionCode restricts which geographic zone the SDK connects to.
type RegionCode int

const (
	// RegionGlobal lets the SDK pick any server. This is the default.
	RegionGlobal RegionCode = iota
	RegionChina
	RegionNorthAmerica
	RegionEurope
	RegionAsia
	RegionJapan
	RegionIndia
)

var regionNames = map[RegionCode]string{
	RegionGlobal:       "global",
	RegionChina:        "cn",
	RegionNorthAmerica: "na",
	RegionEurope:       "eu",
	RegionAsia:         "as",
	RegionJapan:        "jp",
	RegionIndia:        "in",
}

// Regions returns every known region in declaration order.
func Regions() []RegionCode {
	return []RegionCode{
		RegionGlobal,
		RegionChina,
		RegionNorthAmerica,
		RegionEurope,
		RegionAsia,
		RegionJapan,
		RegionIndia,
	}
}

// String returns the short region name, e.g. "eu".
func (r RegionCode) String() string {
	if name, ok := regionNames[r]; ok {
		return name
	}
	return fmt.Sprintf("region(%d)", int(r))
}

// ParseRegion converts a short region name (case-insensitive) to a RegionCode.
// An empty string yields RegionGlobal.
func ParseRegion(s string) (RegionCode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return RegionGlobal, nil
	}
	for code, name := range regionNames {
		if name == s {
			return code, nil
		}
	}
	return RegionGlobal, fmt.Errorf("region %q: %w", s, ErrNotFound)
}
