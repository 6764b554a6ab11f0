package main

import (
	"flag"
	"fmt"

	"github.com/fatih/color"

	"github.com/nativekit/nativekit-go/pkg/tess"
)

func runOCR(args []string) error {
	fs := flag.NewFlagSet("ocr", flag.ExitOnError)
	var (
		configPath = fs.String("config", "", "path to YAML configuration")
		imagePath  = fs.String("image", "", "image file to recognize")
		language   = fs.String("lang", "", "traineddata language code")
		datapath   = fs.String("datapath", "", "tessdata directory")
		psm        = fs.Int("psm", -1, "page segmentation mode")
		words      = fs.Bool("words", false, "print word boxes and confidences")
		verbose    = fs.Bool("v", false, "verbose logging")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *imagePath == "" {
		return fmt.Errorf("-image is required")
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	lang := *language
	if lang == "" {
		lang = cfg.OCR.Language
	}
	if lang == "" {
		lang = "eng"
	}
	dp := *datapath
	if dp == "" {
		dp = cfg.OCR.Datapath
	}

	zl, err := newLogger(*verbose)
	if err != nil {
		return err
	}
	defer func() { _ = zl.Sync() }()

	engine, err := tess.New(tess.Config{
		Datapath:  dp,
		Language:  lang,
		Variables: cfg.OCR.Variables,
		Logger:    bindingLogger(zl),
	})
	if err != nil {
		return err
	}
	defer func() { _ = engine.Close() }()

	if *psm >= 0 {
		if err := engine.SetPageSegMode(*psm); err != nil {
			return err
		}
	}

	img, err := tess.LoadImage(*imagePath)
	if err != nil {
		return err
	}
	if err := engine.SetImage(img); err != nil {
		return err
	}
	if err := engine.Recognize(); err != nil {
		return err
	}

	text, err := engine.Text()
	if err != nil {
		return err
	}
	fmt.Print(text)

	conf, err := engine.MeanConfidence()
	if err != nil {
		return err
	}
	color.Green("mean confidence: %d%%", conf)

	if *words {
		spans, err := engine.Words()
		if err != nil {
			return err
		}
		bold := color.New(color.Bold)
		for _, s := range spans {
			bold.Printf("%-20s", s.Text)
			fmt.Printf(" %5.1f%%  [%d,%d %dx%d]\n",
				s.Confidence, s.Box.Left, s.Box.Top, s.Box.Width, s.Box.Height)
		}
	}
	return nil
}
