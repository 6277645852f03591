package main

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/bootgfx"
	"github.com/gogpu/bootgfx/text"
)

func testConfig(t *testing.T, output string) config {
	t.Helper()
	return config{
		text:      "Hello from bootgfx!",
		parser:    "ximage",
		size:      12,
		width:     400,
		margin:    5,
		scale:     2,
		align:     "left",
		fbWidth:   640,
		fbHeight:  200,
		format:    "xrgb8888",
		originX:   10,
		originY:   10,
		blitScale: 1,
		output:    filepath.Join(t.TempDir(), output),
	}
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
}

func TestRunWritesBMP(t *testing.T) {
	cfg := testConfig(t, "splash.bmp")
	if err := run(cfg, quietLogger()); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	f, err := os.Open(cfg.output)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := bmp.Decode(f)
	if err != nil {
		t.Fatalf("bmp.Decode() error = %v", err)
	}
	if img.Bounds().Dx() != 640 || img.Bounds().Dy() != 200 {
		t.Errorf("image bounds = %v, want 640x200", img.Bounds())
	}
}

func TestRunVariants(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*config)
	}{
		{"fixed font", func(c *config) { c.font = "fixed" }},
		{"gotext metrics", func(c *config) { c.parser = "gotext" }},
		{"sample justified", func(c *config) { c.sample, c.justify, c.scale, c.fbHeight = true, true, 1, 400 }},
		{"dark clamp rgb565", func(c *config) { c.dark, c.clamp, c.format = true, true, "rgb565" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(t, "splash.png")
			tt.modify(&cfg)
			if err := run(cfg, quietLogger()); err != nil {
				t.Fatalf("run() error = %v", err)
			}
			if _, err := os.Stat(cfg.output); err != nil {
				t.Errorf("output missing: %v", err)
			}
		})
	}
}

func TestRunErrors(t *testing.T) {
	cfg := testConfig(t, "splash.png")
	cfg.format = "cmyk"
	if err := run(cfg, quietLogger()); !errors.Is(err, errUsage) {
		t.Errorf("bad format error = %v, want errUsage", err)
	}

	cfg = testConfig(t, "splash.png")
	cfg.originX = 600
	if err := run(cfg, quietLogger()); !errors.Is(err, bootgfx.ErrOutOfBounds) {
		t.Errorf("off-screen origin error = %v, want ErrOutOfBounds", err)
	}
}

func TestParseAlign(t *testing.T) {
	tests := []struct {
		in   string
		want text.Alignment
	}{
		{"left", text.AlignLeft},
		{"Center", text.AlignCenter},
		{"right", text.AlignRight},
	}
	for _, tt := range tests {
		got, err := parseAlign(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("parseAlign(%q) = %v, %v, want %v", tt.in, got, err, tt.want)
		}
	}
	if _, err := parseAlign("middle"); !errors.Is(err, errUsage) {
		t.Errorf("parseAlign(middle) error = %v, want errUsage", err)
	}
}

func TestLoadFontFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "regular.ttf")
	if err := os.WriteFile(path, goregular.TTF, 0o600); err != nil {
		t.Fatal(err)
	}
	cfg := testConfig(t, "splash.png")
	cfg.font = path

	f, err := loadFont(cfg)
	if err != nil {
		t.Fatalf("loadFont() error = %v", err)
	}
	if _, ok := f.(*text.MultiFont); !ok {
		t.Errorf("loadFont() = %T, want *text.MultiFont", f)
	}
	if err := run(cfg, quietLogger()); err != nil {
		t.Errorf("run() error = %v", err)
	}
}
