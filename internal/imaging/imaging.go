// Package imaging turns uploaded item photos into card thumbnails.
package imaging

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"net/http"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/image/draw"
)

// Thumbnail dimensions match the card's 4:3 photo slot.
const (
	ThumbWidth  = 480
	ThumbHeight = 360
)

// JPEGQuality is the compression quality for thumbnails.
const JPEGQuality = 80

// MaxUpload is the largest accepted upload in bytes.
const MaxUpload = 5 << 20

// Decoded images are bounded before any pixel buffer is allocated.
const (
	MaxSide   = 8192
	MaxPixels = 40_000_000
)

// ErrTooLarge is returned for images whose dimensions exceed MaxSide or
// MaxPixels.
var ErrTooLarge = errors.New("image dimensions too large")

// AllowedMIME lists the accepted input MIME types.
var AllowedMIME = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
}

// Photo is an encoded thumbnail.
type Photo struct {
	Data []byte
	MIME string
}

// Thumbnail reads an uploaded image, validates the format by sniffing bytes,
// crops it to the middle 4:3 region and scales it to ThumbWidth×ThumbHeight.
// The result is always JPEG.
func Thumbnail(r io.Reader) (*Photo, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading image data: %w", err)
	}

	detected := http.DetectContentType(data)
	if !AllowedMIME[detected] {
		return nil, fmt.Errorf("unsupported image format: %s (only JPEG and PNG accepted)", detected)
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding image header: %w", err)
	}
	if cfg.Width > MaxSide || cfg.Height > MaxSide || cfg.Width*cfg.Height > MaxPixels {
		return nil, fmt.Errorf("%w: %dx%d", ErrTooLarge, cfg.Width, cfg.Height)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}

	dst := image.NewRGBA(image.Rect(0, 0, ThumbWidth, ThumbHeight))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, coverRect(img.Bounds(), ThumbWidth, ThumbHeight), draw.Src, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: JPEGQuality}); err != nil {
		return nil, fmt.Errorf("encoding JPEG: %w", err)
	}

	return &Photo{Data: buf.Bytes(), MIME: "image/jpeg"}, nil
}

// coverRect returns the largest centered region of b with aspect w:h.
func coverRect(b image.Rectangle, w, h int) image.Rectangle {
	srcW, srcH := b.Dx(), b.Dy()
	if srcW*h > srcH*w {
		cropW := max(srcH*w/h, 1)
		x0 := b.Min.X + (srcW-cropW)/2
		return image.Rect(x0, b.Min.Y, x0+cropW, b.Max.Y)
	}
	cropH := max(srcW*h/w, 1)
	y0 := b.Min.Y + (srcH-cropH)/2
	return image.Rect(b.Min.X, y0, b.Max.X, y0+cropH)
}

// ETag returns a strong entity tag for photo bytes.
func ETag(data []byte) string {
	sum := blake2b.Sum256(data)
	return `"` + hex.EncodeToString(sum[:16]) + `"`
}

func init() {
	image.RegisterFormat("jpeg", "\xff\xd8", jpeg.Decode, jpeg.DecodeConfig)
	image.RegisterFormat("png", "\x89PNG", png.Decode, png.DecodeConfig)
}
