package bootgfx

import (
	"encoding/binary"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
)

// Format is the pixel layout of a Framebuffer.
type Format uint8

const (
	// FormatGrey8 stores one luminance byte per pixel.
	FormatGrey8 Format = iota

	// FormatRGB565 stores 16-bit little-endian 5:6:5 pixels.
	FormatRGB565

	// FormatXRGB8888 stores 32-bit pixels as the bytes B, G, R, X.
	FormatXRGB8888
)

// BytesPerPixel returns the size of one pixel, or 0 for unknown formats.
func (f Format) BytesPerPixel() int {
	switch f {
	case FormatGrey8:
		return 1
	case FormatRGB565:
		return 2
	case FormatXRGB8888:
		return 4
	default:
		return 0
	}
}

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatGrey8:
		return "Grey8"
	case FormatRGB565:
		return "RGB565"
	case FormatXRGB8888:
		return "XRGB8888"
	default:
		return unknownStr
	}
}

// Framebuffer is a linear pixel buffer, usually the memory the display
// scans out of. It implements draw.Image.
type Framebuffer struct {
	width  int
	height int
	stride int // bytes per row
	format Format
	pix    []uint8
}

// NewFramebuffer allocates a framebuffer with tightly packed rows.
func NewFramebuffer(width, height int, format Format) (*Framebuffer, error) {
	bpp := format.BytesPerPixel()
	if bpp == 0 {
		return nil, &DimensionError{Width: width, Height: height, Reason: "unknown pixel format"}
	}
	if width <= 0 || height <= 0 {
		return nil, &DimensionError{Width: width, Height: height, Reason: "framebuffer must not be empty"}
	}
	stride := width * bpp
	return &Framebuffer{
		width:  width,
		height: height,
		stride: stride,
		format: format,
		pix:    make([]uint8, stride*height),
	}, nil
}

// WrapFramebuffer uses existing pixel memory, such as a mapped display
// buffer, as a framebuffer. Rows are stride bytes apart.
func WrapFramebuffer(pix []uint8, width, height, stride int, format Format) (*Framebuffer, error) {
	bpp := format.BytesPerPixel()
	switch {
	case bpp == 0:
		return nil, &DimensionError{Width: width, Height: height, Reason: "unknown pixel format"}
	case width <= 0 || height <= 0:
		return nil, &DimensionError{Width: width, Height: height, Reason: "framebuffer must not be empty"}
	case stride < width*bpp:
		return nil, &DimensionError{Width: width, Height: height, Reason: fmt.Sprintf("stride %d shorter than a row", stride)}
	case len(pix) < (height-1)*stride+width*bpp:
		return nil, &DimensionError{Width: width, Height: height, Reason: fmt.Sprintf("%d bytes of pixel memory is too small", len(pix))}
	}
	return &Framebuffer{
		width:  width,
		height: height,
		stride: stride,
		format: format,
		pix:    pix,
	}, nil
}

// Width returns the width of the framebuffer.
func (fb *Framebuffer) Width() int {
	return fb.width
}

// Height returns the height of the framebuffer.
func (fb *Framebuffer) Height() int {
	return fb.height
}

// Stride returns the distance between rows in bytes.
func (fb *Framebuffer) Stride() int {
	return fb.stride
}

// Format returns the pixel format.
func (fb *Framebuffer) Format() Format {
	return fb.format
}

// Pix returns the raw pixel memory.
func (fb *Framebuffer) Pix() []uint8 {
	return fb.pix
}

func (fb *Framebuffer) offset(x, y int) int {
	return y*fb.stride + x*fb.format.BytesPerPixel()
}

// putRGB stores an opaque color at byte offset i.
func (fb *Framebuffer) putRGB(i int, r, g, b uint8) {
	switch fb.format {
	case FormatGrey8:
		fb.pix[i] = color.GrayModel.Convert(color.RGBA{R: r, G: g, B: b, A: 0xff}).(color.Gray).Y
	case FormatRGB565:
		v := uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3)
		binary.LittleEndian.PutUint16(fb.pix[i:], v)
	case FormatXRGB8888:
		fb.pix[i+0] = b
		fb.pix[i+1] = g
		fb.pix[i+2] = r
		fb.pix[i+3] = 0xff
	}
}

// putGrey stores grey level v at byte offset i.
func (fb *Framebuffer) putGrey(i int, v uint8) {
	if fb.format == FormatGrey8 {
		fb.pix[i] = v
		return
	}
	fb.putRGB(i, v, v, v)
}

// SetGrey sets the pixel at (x, y) to grey level v.
// Out-of-bounds coordinates are silently ignored.
func (fb *Framebuffer) SetGrey(x, y int, v uint8) {
	if x < 0 || x >= fb.width || y < 0 || y >= fb.height {
		return
	}
	fb.putGrey(fb.offset(x, y), v)
}

// GreyAt returns the luminance of the pixel at (x, y), or 0 outside the
// framebuffer.
func (fb *Framebuffer) GreyAt(x, y int) uint8 {
	if x < 0 || x >= fb.width || y < 0 || y >= fb.height {
		return 0
	}
	if fb.format == FormatGrey8 {
		return fb.pix[fb.offset(x, y)]
	}
	return color.GrayModel.Convert(fb.At(x, y)).(color.Gray).Y
}

// Clear fills the entire framebuffer with grey level v.
func (fb *Framebuffer) Clear(v uint8) {
	rowBytes := fb.width * fb.format.BytesPerPixel()
	for x := range fb.width {
		fb.putGrey(fb.offset(x, 0), v)
	}
	first := fb.pix[:rowBytes]
	for y := 1; y < fb.height; y++ {
		copy(fb.pix[y*fb.stride:], first)
	}
}

// At implements the image.Image interface.
func (fb *Framebuffer) At(x, y int) color.Color {
	if x < 0 || x >= fb.width || y < 0 || y >= fb.height {
		if fb.format == FormatGrey8 {
			return color.Gray{}
		}
		return color.RGBA{}
	}
	i := fb.offset(x, y)
	switch fb.format {
	case FormatGrey8:
		return color.Gray{Y: fb.pix[i]}
	case FormatRGB565:
		v := binary.LittleEndian.Uint16(fb.pix[i:])
		r := uint8(v>>11) & 0x1f
		g := uint8(v>>5) & 0x3f
		b := uint8(v) & 0x1f
		return color.RGBA{R: r<<3 | r>>2, G: g<<2 | g>>4, B: b<<3 | b>>2, A: 0xff}
	default:
		return color.RGBA{R: fb.pix[i+2], G: fb.pix[i+1], B: fb.pix[i], A: 0xff}
	}
}

// Set implements the draw.Image interface. Alpha is ignored: the display
// has no transparency.
func (fb *Framebuffer) Set(x, y int, c color.Color) {
	if x < 0 || x >= fb.width || y < 0 || y >= fb.height {
		return
	}
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	fb.putRGB(fb.offset(x, y), rgba.R, rgba.G, rgba.B)
}

// Bounds implements the image.Image interface.
func (fb *Framebuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, fb.width, fb.height)
}

// ColorModel implements the image.Image interface.
func (fb *Framebuffer) ColorModel() color.Model {
	if fb.format == FormatGrey8 {
		return color.GrayModel
	}
	return color.RGBAModel
}

// ToImage converts the framebuffer to an image.RGBA.
func (fb *Framebuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(fb.Bounds())
	draw.Draw(img, img.Bounds(), fb, image.Point{}, draw.Src)
	return img
}

// DrawImage copies img into the framebuffer with its top-left corner at
// at. Pixels falling outside the framebuffer are clipped.
func (fb *Framebuffer) DrawImage(img image.Image, at image.Point) {
	b := img.Bounds()
	r := image.Rectangle{Min: at, Max: at.Add(b.Size())}
	draw.Draw(fb, r, img, b.Min, draw.Src)
}

// LoadBackground decodes a BMP image from r and draws it over the whole
// framebuffer, rescaling it when its size differs.
func (fb *Framebuffer) LoadBackground(r io.Reader) error {
	img, err := bmp.Decode(r)
	if err != nil {
		return fmt.Errorf("bootgfx: decode background: %w", err)
	}
	if img.Bounds().Size() == fb.Bounds().Size() {
		fb.DrawImage(img, image.Point{})
		return nil
	}
	draw.ApproxBiLinear.Scale(fb, fb.Bounds(), img, img.Bounds(), draw.Src, nil)
	return nil
}

// EncodeBMP writes the framebuffer to w as a BMP image.
func (fb *Framebuffer) EncodeBMP(w io.Writer) error {
	return bmp.Encode(w, fb.ToImage())
}

// EncodePNG writes the framebuffer to w as a PNG image.
func (fb *Framebuffer) EncodePNG(w io.Writer) error {
	return png.Encode(w, fb.ToImage())
}

// SavePNG saves the framebuffer to a PNG file.
func (fb *Framebuffer) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return fb.EncodePNG(f)
}
