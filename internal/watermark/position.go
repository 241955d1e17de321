package watermark

import (
	"image"

	"github.com/LittleExian/PhotoWatermark/internal/model"
)

// Margin is the fixed distance in pixels between the watermark text box
// and the nearest image edges.
const Margin = 10

// AnchorPoint computes the top-left corner of the watermark text box for
// a named anchor, given the image and text extents in pixels.
// Unrecognized positions render at the bottom-right corner.
func AnchorPoint(position model.Position, imageW, imageH, textW, textH int) image.Point {
	switch position {
	case model.PositionTopLeft:
		return image.Pt(Margin, Margin)
	case model.PositionTopRight:
		return image.Pt(imageW-textW-Margin, Margin)
	case model.PositionBottomLeft:
		return image.Pt(Margin, imageH-textH-Margin)
	case model.PositionCenter:
		return image.Pt((imageW-textW)/2, (imageH-textH)/2)
	default:
		// bottom-right, also the fallback for unknown values
		return image.Pt(imageW-textW-Margin, imageH-textH-Margin)
	}
}
