package gmt

import (
	"fmt"
	"strconv"
	"strings"
)

// Region is a rectangular region in grid coordinates, rendered as GMT's
// -Rxmin/xmax/ymin/ymax option.
type Region struct {
	XMin, XMax, YMin, YMax float64
}

func (r Region) String() string {
	parts := []string{
		strconv.FormatFloat(r.XMin, 'g', -1, 64),
		strconv.FormatFloat(r.XMax, 'g', -1, 64),
		strconv.FormatFloat(r.YMin, 'g', -1, 64),
		strconv.FormatFloat(r.YMax, 'g', -1, 64),
	}
	return strings.Join(parts, "/")
}

// GrdCut extracts the subregion of grid into outgrid.
func (s *Session) GrdCut(grid, outgrid string, region Region) error {
	return s.CallModule("grdcut", grid, "-G"+outgrid, "-R"+region.String())
}

// GrdSample resamples grid onto the given increments, writing outgrid.
func (s *Session) GrdSample(grid, outgrid string, incX, incY float64) error {
	inc := fmt.Sprintf("-I%g/%g", incX, incY)
	return s.CallModule("grdsample", grid, "-G"+outgrid, inc)
}

// GrdInfo prints header information for grid through GMT's own reporting.
func (s *Session) GrdInfo(grid string) error {
	return s.CallModule("grdinfo", grid)
}

// MakeCPT builds a color palette table file from a master palette.
func (s *Session) MakeCPT(cmap, series, output string) error {
	args := []string{"-C" + cmap}
	if series != "" {
		args = append(args, "-T"+series)
	}
	if output != "" {
		// GMT's module argument convention for output redirection.
		args = append(args, "->"+output)
	}
	return s.CallModule("makecpt", args...)
}
