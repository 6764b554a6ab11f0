package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/fatih/color"

	"github.com/nativekit/nativekit-go/pkg/mlt"
)

func runFrame(args []string) error {
	fs := flag.NewFlagSet("frame", flag.ExitOnError)
	var (
		configPath = fs.String("config", "", "path to YAML configuration")
		index      = fs.Int("n", 0, "frame index to extract")
		out        = fs.String("out", "frame.png", "output PNG path")
		verbose    = fs.Bool("v", false, "verbose logging")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: nativekit frame -n <index> -out <png> <media file>")
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	zl, err := newLogger(*verbose)
	if err != nil {
		return err
	}
	defer func() { _ = zl.Sync() }()

	factory, err := mlt.Open(mlt.Config{ModuleDir: cfg.Media.ModuleDir, Logger: bindingLogger(zl)})
	if err != nil {
		return err
	}
	defer func() { _ = factory.Close() }()

	profile, err := factory.NewProfile(cfg.Media.Profile)
	if err != nil {
		return err
	}
	defer func() { _ = profile.Close() }()

	producer, err := profile.NewProducer("", fs.Arg(0))
	if err != nil {
		return err
	}
	defer func() { _ = producer.Close() }()

	frame, err := producer.Frame(*index)
	if err != nil {
		return err
	}
	defer func() { _ = frame.Close() }()

	img, err := frame.Image(mlt.FormatRGB)
	if err != nil {
		return err
	}

	shape := img.Shape()
	px, err := img.Uint8s()
	if err != nil {
		return err
	}
	height, width := shape[0], shape[1]
	rgba := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			src := (y*width + x) * 3
			dst := rgba.PixOffset(x, y)
			rgba.Pix[dst] = px[src]
			rgba.Pix[dst+1] = px[src+1]
			rgba.Pix[dst+2] = px[src+2]
			rgba.Pix[dst+3] = 0xFF
		}
	}

	f, err := os.Create(*out)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()
	if err := png.Encode(f, rgba); err != nil {
		return err
	}
	color.Green("wrote %s (%dx%d, frame %d)", *out, width, height, *index)
	return nil
}
