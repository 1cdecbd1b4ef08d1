package storage

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	"image/png"

	"github.com/nfnt/resize"
)

// Downscale shrinks images wider than maxWidth, keeping the aspect ratio.
// PNGs stay PNG, everything else decodable is re-encoded as JPEG. Data that
// is not a decodable image, or already fits, is returned untouched.
func Downscale(data []byte, contentType string, maxWidth uint) ([]byte, string, error) {
	if maxWidth == 0 {
		return data, contentType, nil
	}
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil || uint(cfg.Width) <= maxWidth {
		return data, contentType, nil
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("decoding %s image: %w", format, err)
	}
	resized := resize.Resize(maxWidth, 0, img, resize.Lanczos3)

	var buf bytes.Buffer
	if format == "png" {
		if err := png.Encode(&buf, resized); err != nil {
			return nil, "", fmt.Errorf("encoding resized image: %w", err)
		}
		return buf.Bytes(), "image/png", nil
	}
	if err := jpeg.Encode(&buf, resized, &jpeg.Options{Quality: 85}); err != nil {
		return nil, "", fmt.Errorf("encoding resized image: %w", err)
	}
	return buf.Bytes(), "image/jpeg", nil
}
