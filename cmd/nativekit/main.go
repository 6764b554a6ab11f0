// Command nativekit exercises the native bindings from the command line:
// OCR over Tesseract, grid operations over GMT, and frame extraction over
// MLT.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

func usage() {
	fmt.Fprint(os.Stderr, `usage: nativekit <command> [flags]

commands:
  ocr      recognize text in an image
  grdinfo  print grid header metadata
  grdcut   cut a subregion out of a grid
  frame    extract a video frame as PNG
  version  print linked library versions
`)
	os.Exit(2)
}

func main() {
	if len(os.Args) < 2 {
		usage()
	}

	var err error
	switch os.Args[1] {
	case "ocr":
		err = runOCR(os.Args[2:])
	case "grdinfo":
		err = runGrdInfo(os.Args[2:])
	case "grdcut":
		err = runGrdCut(os.Args[2:])
	case "frame":
		err = runFrame(os.Args[2:])
	case "version":
		err = runVersion()
	default:
		usage()
	}
	if err != nil {
		color.Red("error: %v", err)
		os.Exit(1)
	}
}
