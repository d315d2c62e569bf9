package agent

import (
	"github.com/livekit/protocol/livekit"

	"github.com/am-sokolov/livekit-call-settings/pkg/settings"
)

// QualityForSize maps a resolution to the simulcast quality it is
// published as:
//   - HIGH: 720 lines and up
//   - MEDIUM: 360 lines and up
//   - LOW: anything smaller
func QualityForSize(size settings.Size) livekit.VideoQuality {
	switch {
	case size.Height >= 720:
		return livekit.VideoQuality_HIGH
	case size.Height >= 360:
		return livekit.VideoQuality_MEDIUM
	default:
		return livekit.VideoQuality_LOW
	}
}

// TargetBitrate returns the encoder bitrate in bits per second for a quality.
func TargetBitrate(quality livekit.VideoQuality) uint32 {
	switch quality {
	case livekit.VideoQuality_HIGH:
		return 2_500_000 // 2.5 Mbps
	case livekit.VideoQuality_MEDIUM:
		return 1_000_000 // 1 Mbps
	case livekit.VideoQuality_LOW:
		return 500_000 // 500 Kbps
	default:
		return 1_000_000
	}
}

// decreaseQuality returns the next lower quality level
func decreaseQuality(current livekit.VideoQuality) livekit.VideoQuality {
	switch current {
	case livekit.VideoQuality_HIGH:
		return livekit.VideoQuality_MEDIUM
	default:
		return livekit.VideoQuality_LOW
	}
}

// SimulcastLayers builds the simulcast ladder for a published resolution.
//
// The top layer is the resolution itself at QualityForSize. Each lower
// layer halves both dimensions and drops one quality level, ending with
// the LOW layer. Layers are ordered from lowest to highest quality.
func SimulcastLayers(size settings.Size) []*livekit.VideoLayer {
	var layers []*livekit.VideoLayer

	quality := QualityForSize(size)
	width, height := size.Width, size.Height
	for {
		layers = append([]*livekit.VideoLayer{{
			Quality: quality,
			Width:   width,
			Height:  height,
			Bitrate: TargetBitrate(quality),
		}}, layers...)

		if quality == livekit.VideoQuality_LOW || width < 2 || height < 2 {
			break
		}
		quality = decreaseQuality(quality)
		width, height = width/2, height/2
	}
	return layers
}
