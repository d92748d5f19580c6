package artwork

import (
	"bytes"
	"encoding/base64"
	"image"
	_ "image/jpeg" // JPEG format support
	_ "image/png"  // PNG format support

	"github.com/disintegration/imaging"
)

// encodeDataURI turns raw image bytes into an inline base64 JPEG data
// URI for direct use in an <img> element. Images larger than maxEdge on
// their longest side are downscaled first so a full-size archive scan
// does not get pushed to every viewer. Bytes that do not decode as an
// image are passed through untouched; the device's embedded artwork is
// already JPEG.
func encodeDataURI(data []byte, maxEdge int) string {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err == nil && maxEdge > 0 {
		bounds := img.Bounds()
		if bounds.Dx() > maxEdge || bounds.Dy() > maxEdge {
			img = imaging.Fit(img, maxEdge, maxEdge, imaging.Lanczos)
			var buf bytes.Buffer
			if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(90)); err == nil {
				data = buf.Bytes()
			}
		}
	}

	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(data)
}
