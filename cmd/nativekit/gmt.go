package main

import (
	"flag"
	"fmt"

	"github.com/fatih/color"

	"github.com/nativekit/nativekit-go/pkg/gmt"
)

func newSession(configPath string, verbose bool) (*gmt.Session, error) {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return nil, err
	}
	zl, err := newLogger(verbose)
	if err != nil {
		return nil, err
	}
	return gmt.NewSession(gmt.Config{
		Tag:    cfg.GMT.Tag,
		Pad:    cfg.GMT.Pad,
		Logger: bindingLogger(zl),
	})
}

func runGrdInfo(args []string) error {
	fs := flag.NewFlagSet("grdinfo", flag.ExitOnError)
	var (
		configPath = fs.String("config", "", "path to YAML configuration")
		verbose    = fs.Bool("v", false, "verbose logging")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: nativekit grdinfo <grid>")
	}

	sess, err := newSession(*configPath, *verbose)
	if err != nil {
		return err
	}
	defer func() { _ = sess.Close() }()

	grid, err := sess.ReadGrid(fs.Arg(0))
	if err != nil {
		return err
	}
	defer func() { _ = grid.Free() }()

	meta := grid.Meta()
	color.Cyan(fs.Arg(0))
	fmt.Printf("size:         %d x %d\n", meta.Rows, meta.Cols)
	fmt.Printf("region:       %g/%g/%g/%g\n", meta.WESN[0], meta.WESN[1], meta.WESN[2], meta.WESN[3])
	fmt.Printf("increment:    %g x %g\n", meta.Inc[0], meta.Inc[1])
	fmt.Printf("registration: %d\n", meta.Registration)
	return nil
}

func runGrdCut(args []string) error {
	fs := flag.NewFlagSet("grdcut", flag.ExitOnError)
	var (
		configPath = fs.String("config", "", "path to YAML configuration")
		out        = fs.String("out", "", "output grid path")
		xmin       = fs.Float64("xmin", 0, "region west bound")
		xmax       = fs.Float64("xmax", 0, "region east bound")
		ymin       = fs.Float64("ymin", 0, "region south bound")
		ymax       = fs.Float64("ymax", 0, "region north bound")
		verbose    = fs.Bool("v", false, "verbose logging")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 || *out == "" {
		return fmt.Errorf("usage: nativekit grdcut -out <outgrid> -xmin ... <grid>")
	}

	sess, err := newSession(*configPath, *verbose)
	if err != nil {
		return err
	}
	defer func() { _ = sess.Close() }()

	region := gmt.Region{XMin: *xmin, XMax: *xmax, YMin: *ymin, YMax: *ymax}
	if err := sess.GrdCut(fs.Arg(0), *out, region); err != nil {
		return err
	}
	color.Green("wrote %s", *out)
	return nil
}
