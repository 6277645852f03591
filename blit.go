package bootgfx

import (
	"fmt"
	"image"
)

// BlitRegion returns the framebuffer rectangle Blit would write for buf
// placed at (dstX, dstY) with the given scale.
func BlitRegion(buf *TextBuffer, dstX, dstY, scale int) image.Rectangle {
	return image.Rect(dstX, dstY, dstX+buf.width*scale, dstY+buf.height*scale)
}

// Blit copies buf into fb with its top-left corner at (dstX, dstY).
//
// Every sample is written as a grey level in the framebuffer's format;
// a scale above 1 replicates each sample into a scale×scale block.
// Nothing is clipped: when the destination region does not lie entirely
// inside fb, Blit returns ErrOutOfBounds and writes nothing.
func Blit(buf *TextBuffer, fb *Framebuffer, dstX, dstY, scale int) error {
	if scale < 1 {
		return fmt.Errorf("bootgfx: blit scale %d: %w", scale, ErrInvalidDimensions)
	}
	if scale > fb.width/max(buf.width, 1) || scale > fb.height/max(buf.height, 1) {
		return fmt.Errorf("bootgfx: blit scale %d for %dx%d buffer exceeds framebuffer %v: %w",
			scale, buf.width, buf.height, fb.Bounds(), ErrOutOfBounds)
	}
	r := BlitRegion(buf, dstX, dstY, scale)
	if !r.In(fb.Bounds()) {
		return fmt.Errorf("bootgfx: blit region %v outside framebuffer %v: %w", r, fb.Bounds(), ErrOutOfBounds)
	}

	bpp := fb.format.BytesPerPixel()
	rowBytes := buf.width * scale * bpp
	for y := range buf.height {
		src := buf.pix[y*buf.width : (y+1)*buf.width]

		row := fb.offset(dstX, dstY+y*scale)
		i := row
		for _, v := range src {
			for range scale {
				fb.putGrey(i, v)
				i += bpp
			}
		}
		for k := 1; k < scale; k++ {
			copy(fb.pix[row+k*fb.stride:], fb.pix[row:row+rowBytes])
		}
	}
	return nil
}
