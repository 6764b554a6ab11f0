package tess

import (
	"fmt"
	"image"
	"io"
	"os"

	// Codecs registered for image.Decode. TIFF and BMP come from x/image;
	// scanned documents are overwhelmingly TIFF.
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"github.com/nativekit/nativekit-go/pkg/native"
	"github.com/nativekit/nativekit-go/pkg/ndarray"
)

// DecodeImage reads an encoded image (PNG, JPEG, TIFF, BMP) and converts it
// to the (height, width, 3) uint8 RGB view SetImage expects.
func DecodeImage(r io.Reader) (*ndarray.Array, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, native.NewError("tess.DecodeImage", native.ErrInvalidArgument,
			fmt.Sprintf("decode: %v", err))
	}
	return FromImage(img), nil
}

// LoadImage reads an image file and converts it for SetImage.
func LoadImage(path string) (*ndarray.Array, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, native.NewError("tess.LoadImage", native.ErrInvalidArgument, err.Error())
	}
	defer f.Close()
	return DecodeImage(f)
}

// FromImage flattens a decoded image into a (height, width, 3) uint8 RGB
// view. Alpha is dropped; the 16-bit samples image.Image reports are
// reduced to 8 bits, which is the depth Tesseract consumes.
func FromImage(img image.Image) *ndarray.Array {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	data := make([]byte, height*width*3)
	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			data[i] = byte(r >> 8)
			data[i+1] = byte(g >> 8)
			data[i+2] = byte(b >> 8)
			i += 3
		}
	}

	arr, err := ndarray.FromBytes(data, []int{height, width, 3}, ndarray.Uint8)
	if err != nil {
		// Unreachable: shape and buffer are built together above.
		panic(err)
	}
	return arr
}
