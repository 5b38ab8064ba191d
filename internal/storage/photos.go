package storage

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
)

// PhotoStore persists a processed client photo and returns the public
// URL that goes into the client's photo_url field.
type PhotoStore interface {
	Put(ctx context.Context, key string, body []byte, contentType string) (string, error)
}

const (
	maxPhotoEdge = 1024
	webpQuality  = 80
)

// ProcessPhoto decodes an uploaded image, downscales it so the longest
// edge fits maxPhotoEdge, and re-encodes it as webp.
func ProcessPhoto(raw []byte) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decode photo: %w", err)
	}

	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w > maxPhotoEdge || h > maxPhotoEdge {
		scale := float64(maxPhotoEdge) / float64(max(w, h))
		nw := int(float64(w) * scale)
		nh := int(float64(h) * scale)
		dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
		src = dst
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, src, &webp.Options{Quality: webpQuality}); err != nil {
		return nil, fmt.Errorf("encode webp: %w", err)
	}
	return buf.Bytes(), nil
}
