package media

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"

	"github.com/chai2010/webp"
)

// ErrCodecUnsupported marks an encode failure that should be skipped rather
// than surfaced: the backend cannot produce this format for this image.
var ErrCodecUnsupported = errors.New("media: codec does not support format")

// Encoder produces one target format at a fixed quality. Encoders are ranked
// in preference order; an unsupported format is skipped, and when every
// encoder fails the pipeline falls back to the original bytes.
type Encoder interface {
	Format() string
	Encode(img image.Image) ([]byte, error)
}

// NewEncoders builds the ranked encoder list for the configured format names.
// Unknown names are dropped.
func NewEncoders(formats []string, quality int) []Encoder {
	var encoders []Encoder
	for _, f := range formats {
		switch f {
		case "webp":
			encoders = append(encoders, &webpEncoder{quality: float32(quality)})
		case "jpeg", "jpg":
			encoders = append(encoders, &jpegEncoder{quality: quality})
		}
	}
	return encoders
}

type webpEncoder struct {
	quality float32
}

func (e *webpEncoder) Format() string { return "webp" }

func (e *webpEncoder) Encode(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: e.quality}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCodecUnsupported, err)
	}
	return buf.Bytes(), nil
}

type jpegEncoder struct {
	quality int
}

func (e *jpegEncoder) Format() string { return "jpeg" }

func (e *jpegEncoder) Encode(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: e.quality}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCodecUnsupported, err)
	}
	return buf.Bytes(), nil
}
