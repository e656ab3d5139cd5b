// Package imageproc 生成图片的派生版本。
package imageproc

import (
	"bytes"
	"fmt"
	"image"
	"io"

	"github.com/disintegration/imaging"
)

// ResizeToLimit 等比缩放到 maxWidth x maxHeight 以内，不放大，按扩展名对应的格式重新编码。
func ResizeToLimit(r io.Reader, filename string, maxWidth, maxHeight int) ([]byte, error) {
	format, err := imaging.FormatFromFilename(filename)
	if err != nil {
		return nil, fmt.Errorf("unsupported image format: %w", err)
	}

	src, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	var dst image.Image = src
	b := src.Bounds()
	if b.Dx() > maxWidth || b.Dy() > maxHeight {
		dst = imaging.Fit(src, maxWidth, maxHeight, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, dst, format, imaging.JPEGQuality(90)); err != nil {
		return nil, fmt.Errorf("encode image: %w", err)
	}
	return buf.Bytes(), nil
}
