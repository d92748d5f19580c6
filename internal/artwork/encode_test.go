package artwork

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"strings"
	"testing"
)

func makePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func decodePayload(t *testing.T, uri string) image.Image {
	t.Helper()
	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, "data:image/jpeg;base64,"))
	if err != nil {
		t.Fatalf("payload is not valid base64: %v", err)
	}
	img, err := jpeg.Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("payload is not a JPEG: %v", err)
	}
	return img
}

func TestEncodeDataURI(t *testing.T) {
	t.Run("Small image passes through untouched", func(t *testing.T) {
		data := makePNG(t, 40, 40)
		uri := encodeDataURI(data, 1000)

		want := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(data)
		if uri != want {
			t.Error("small image should not be re-encoded")
		}
	})

	t.Run("Oversized image is downscaled to the edge bound", func(t *testing.T) {
		data := makePNG(t, 1600, 800)
		uri := encodeDataURI(data, 1000)

		img := decodePayload(t, uri)
		bounds := img.Bounds()
		if bounds.Dx() != 1000 {
			t.Errorf("width = %d, want 1000", bounds.Dx())
		}
		if bounds.Dy() != 500 {
			t.Errorf("height = %d, want 500 (aspect preserved)", bounds.Dy())
		}
	})

	t.Run("Non-image bytes pass through as-is", func(t *testing.T) {
		data := []byte("not-an-image")
		uri := encodeDataURI(data, 1000)

		want := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(data)
		if uri != want {
			t.Errorf("encodeDataURI() = %q, want raw passthrough", uri)
		}
	})

	t.Run("Zero edge bound disables scaling", func(t *testing.T) {
		data := makePNG(t, 1600, 800)
		uri := encodeDataURI(data, 0)

		want := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(data)
		if uri != want {
			t.Error("maxEdge 0 should pass bytes through")
		}
	})
}
