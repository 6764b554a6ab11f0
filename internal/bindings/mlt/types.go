package mlt

// ImageFormat selects the pixel layout requested from mlt_frame_get_image.
// Values mirror mlt_image_format.
type ImageFormat int

const (
	FormatNone    ImageFormat = 0
	FormatRGB     ImageFormat = 1
	FormatRGBA    ImageFormat = 2
	FormatYUV422  ImageFormat = 3
	FormatYUV420P ImageFormat = 4
)

// Channels returns the bytes per pixel for the format, defaulting to 4 the
// way the MLT consumers do for unknown packed formats.
func (f ImageFormat) Channels() int {
	switch f {
	case FormatRGB:
		return 3
	case FormatYUV422:
		return 2
	case FormatRGBA:
		return 4
	default:
		return 4
	}
}

// ImageInfo describes the buffer mlt_frame_get_image produced. Width and
// height come back from the native call by reference; they are the
// authoritative shape, not whatever the profile advertised.
type ImageInfo struct {
	Format   ImageFormat
	Width    int
	Height   int
	Channels int
}
