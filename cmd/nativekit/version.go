package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"

	"github.com/nativekit/nativekit-go/pkg/gmt"
	"github.com/nativekit/nativekit-go/pkg/mlt"
	"github.com/nativekit/nativekit-go/pkg/native"
	"github.com/nativekit/nativekit-go/pkg/tess"
)

func runVersion() error {
	bold := color.New(color.Bold)

	bold.Print("tesseract: ")
	if v := tess.Version(); v != "" {
		fmt.Println(v)
	} else {
		fmt.Println("not built")
	}

	bold.Print("gmt:       ")
	if sess, err := gmt.NewSession(gmt.Config{}); err == nil {
		info, ierr := sess.Info()
		_ = sess.Close()
		if ierr != nil {
			return ierr
		}
		fmt.Println(info["gmt_version"])
	} else if errors.Is(err, native.ErrNotBuilt) {
		fmt.Println("not built")
	} else {
		return err
	}

	bold.Print("mlt:       ")
	if factory, err := mlt.Open(mlt.Config{}); err == nil {
		_ = factory.Close()
		fmt.Println("available")
	} else if errors.Is(err, native.ErrNotBuilt) {
		fmt.Println("not built")
	} else {
		return err
	}
	return nil
}
