// Command bootsplash renders a boot screen text block into an off-screen
// framebuffer and saves it as an image.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/bootgfx"
	"github.com/gogpu/bootgfx/text"
)

// sampleText exercises wrapping, a hard line break and punctuation.
const sampleText = "The quick brown fox jumps over the lazy dog. " +
	"The quick brown fox jumps over the lazy dog. " +
	"The quick brown fox jumps over the lazy dog. " +
	"The quick brown fox jumps over the lazy dog.\n" +
	"0123456789 !?()[]{}/\\+-*"

type config struct {
	text       string
	sample     bool
	font       string
	parser     string
	size       float64
	width      int
	margin     int
	scale      int
	align      string
	justify    bool
	dark       bool
	clamp      bool
	fbWidth    int
	fbHeight   int
	format     string
	originX    int
	originY    int
	blitScale  int
	clear      int
	background string
	output     string
	verbose    bool
}

func main() {
	var cfg config
	flag.StringVar(&cfg.text, "text", "Hello from bootgfx! Using Go Regular :)", "text to render")
	flag.BoolVar(&cfg.sample, "sample", false, "render the built-in sample paragraph instead of -text")
	flag.StringVar(&cfg.font, "font", "", `TTF/OTF font file; empty for Go Regular, "fixed" for the 7x13 bitmap font`)
	flag.StringVar(&cfg.parser, "parser", "ximage", "font metrics backend (ximage, gotext)")
	flag.Float64Var(&cfg.size, "size", 16, "font size in pixels per em")
	flag.IntVar(&cfg.width, "width", 1200, "text block width")
	flag.IntVar(&cfg.margin, "margin", 5, "horizontal margin inside the block")
	flag.IntVar(&cfg.scale, "scale", 3, "integer font magnification")
	flag.StringVar(&cfg.align, "align", "left", "alignment (left, center, right)")
	flag.BoolVar(&cfg.justify, "justify", false, "justify lines")
	flag.BoolVar(&cfg.dark, "dark", false, "dark text on a light buffer")
	flag.BoolVar(&cfg.clamp, "clamp", false, "saturate coverage instead of the legacy wrap-around")
	flag.IntVar(&cfg.fbWidth, "fb-width", 1280, "framebuffer width")
	flag.IntVar(&cfg.fbHeight, "fb-height", 720, "framebuffer height")
	flag.StringVar(&cfg.format, "format", "xrgb8888", "framebuffer format (grey8, rgb565, xrgb8888)")
	flag.IntVar(&cfg.originX, "x", 10, "blit origin x")
	flag.IntVar(&cfg.originY, "y", 10, "blit origin y")
	flag.IntVar(&cfg.blitScale, "blit-scale", 1, "replicate every buffer sample into an n×n block")
	flag.IntVar(&cfg.clear, "clear", 0, "grey level the screen is cleared to")
	flag.StringVar(&cfg.background, "background", "", "BMP image drawn behind the text")
	flag.StringVar(&cfg.output, "output", "bootsplash.png", "output file (.png or .bmp)")
	flag.BoolVar(&cfg.verbose, "v", false, "debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	bootgfx.SetLogger(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("bootsplash failed", "err", err)
		os.Exit(1)
	}
}

func run(cfg config, logger *slog.Logger) error {
	format, err := parseFormat(cfg.format)
	if err != nil {
		return err
	}
	align, err := parseAlign(cfg.align)
	if err != nil {
		return err
	}

	fb, err := bootgfx.NewFramebuffer(cfg.fbWidth, cfg.fbHeight, format)
	if err != nil {
		return err
	}
	fb.Clear(uint8(cfg.clear)) //nolint:gosec // grey level, truncation intended

	if cfg.background != "" {
		if err := loadBackground(fb, cfg.background); err != nil {
			return err
		}
	}

	font, err := loadFont(cfg)
	if err != nil {
		return err
	}

	opts := []bootgfx.RendererOption{
		bootgfx.WithOrigin(cfg.originX, cfg.originY),
		bootgfx.WithBlitScale(cfg.blitScale),
	}
	if cfg.clamp {
		opts = append(opts, bootgfx.WithBlendPolicy(bootgfx.BlendClamp))
	}
	style := bootgfx.Style{
		Align:   align,
		Justify: cfg.justify,
		Margin:  cfg.margin,
	}
	if cfg.dark {
		style.Polarity = bootgfx.PolarityDark
		opts = append(opts, bootgfx.WithBackground(0xff))
	}

	s := cfg.text
	if cfg.sample {
		s = sampleText
	}

	r := bootgfx.NewRenderer(fb, opts...)
	region, err := r.Render(s, cfg.width, style, font, cfg.scale)
	if err != nil {
		return err
	}
	logger.Info("text rendered", "region", region, "height", region.Dy()/max(cfg.blitScale, 1))

	if err := save(fb, cfg.output); err != nil {
		return err
	}
	logger.Info("screen saved", "path", cfg.output, "size", fb.Bounds().Size(), "format", fb.Format())
	return nil
}

func loadFont(cfg config) (text.Font, error) {
	if cfg.font == "fixed" {
		return text.FixedFont(), nil
	}

	var (
		src *text.FontSource
		err error
	)
	switch {
	case cfg.font == "" && cfg.parser == "ximage":
		src, err = text.DefaultSource()
	case cfg.font == "":
		src, err = text.NewFontSource(goregular.TTF, text.WithParser(cfg.parser))
	default:
		src, err = text.NewFontSourceFromFile(cfg.font, text.WithParser(cfg.parser))
	}
	if err != nil {
		return nil, err
	}
	face, err := src.Face(cfg.size)
	if err != nil || cfg.font == "" {
		return face, err
	}

	// Custom boot fonts are often subsets; borrow Latin glyphs they lack
	// from the built-in font.
	def, err := text.DefaultSource()
	if err != nil {
		return nil, err
	}
	latin, err := def.Face(cfg.size)
	if err != nil {
		return nil, err
	}
	multi, err := text.NewMultiFont(face, text.NewFilteredFont(latin, text.RangeBasicLatin, text.RangeLatin1Sup))
	if err != nil {
		return nil, err
	}
	return multi, nil
}

func loadBackground(fb *bootgfx.Framebuffer, path string) error {
	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()
	return fb.LoadBackground(f)
}

func save(fb *bootgfx.Framebuffer, path string) error {
	if strings.EqualFold(filepath.Ext(path), ".bmp") {
		f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
		if err != nil {
			return err
		}
		if err := fb.EncodeBMP(f); err != nil {
			_ = f.Close()
			return err
		}
		return f.Close()
	}
	return fb.SavePNG(path)
}

var errUsage = errors.New("bootsplash: invalid flag value")

func parseFormat(s string) (bootgfx.Format, error) {
	switch strings.ToLower(s) {
	case "grey8", "gray8":
		return bootgfx.FormatGrey8, nil
	case "rgb565":
		return bootgfx.FormatRGB565, nil
	case "xrgb8888":
		return bootgfx.FormatXRGB8888, nil
	default:
		return 0, fmt.Errorf("%w: format %q", errUsage, s)
	}
}

func parseAlign(s string) (text.Alignment, error) {
	switch strings.ToLower(s) {
	case "left":
		return text.AlignLeft, nil
	case "center", "centre":
		return text.AlignCenter, nil
	case "right":
		return text.AlignRight, nil
	default:
		return 0, fmt.Errorf("%w: align %q", errUsage, s)
	}
}
