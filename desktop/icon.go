package desktop

import (
	"bytes"
	"fmt"
	"image"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/ttk-go/ttk/ttkerr"
)

// DecodeSVGIcon rasterizes an SVG document to a square RGBA image at the
// given pixel size, for use as a window icon. The toolkit accepts icon
// bytes from the caller rather than embedding an asset (the pack carries
// no icon files to embed), so a caller typically reads one from disk or a
// resource bundle and passes the bytes straight through.
func DecodeSVGIcon(svgData []byte, size int) (image.Image, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(svgData))
	if err != nil {
		return nil, fmt.Errorf("%w: parsing svg icon: %v", ttkerr.ResourceFailure, err)
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, img, img.Bounds())
	raster := rasterx.NewDasher(size, size, scanner)
	icon.Draw(raster, 1.0)
	return img, nil
}

// DecodeSVGIconSizes rasterizes the same SVG at several sizes, for
// SetIcon's multi-resolution icon slice (window managers pick whichever
// fits their decoration scale).
func DecodeSVGIconSizes(svgData []byte, sizes []int) ([]image.Image, error) {
	icons := make([]image.Image, 0, len(sizes))
	for _, sz := range sizes {
		img, err := DecodeSVGIcon(svgData, sz)
		if err != nil {
			return nil, err
		}
		icons = append(icons, img)
	}
	return icons, nil
}
