// Package exifmeta 从图片字节中读取拍摄参数。
package exifmeta

import (
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/rwcarlsen/goexif/exif"
	"github.com/rwcarlsen/goexif/tiff"
)

// Metadata 每个字段独立可选，读取不到时为 nil
type Metadata struct {
	CameraModel  *string
	FocalLength  *float64
	ISO          *int
	Aperture     *float64
	ExposureTime *float64
}

// Extractor 元数据提取能力
type Extractor interface {
	Extract(r io.Reader) (*Metadata, error)
}

type GoExifExtractor struct{}

func NewExtractor() *GoExifExtractor {
	return &GoExifExtractor{}
}

// Extract 解析 EXIF。没有 EXIF 段时返回错误，单个字段缺失不算错误。
func (GoExifExtractor) Extract(r io.Reader) (*Metadata, error) {
	x, err := exif.Decode(r)
	if err != nil {
		return nil, err
	}

	md := &Metadata{}
	if tag, err := x.Get(exif.Model); err == nil {
		if model, err := tag.StringVal(); err == nil {
			model = strings.TrimSpace(strings.TrimRight(model, "\x00"))
			if model != "" {
				md.CameraModel = &model
			}
		}
	}
	if v, ok := ratValue(x, exif.FocalLength); ok {
		md.FocalLength = &v
	}
	if tag, err := x.Get(exif.ISOSpeedRatings); err == nil {
		if iso, err := tag.Int(0); err == nil {
			md.ISO = &iso
		}
	}
	if v, ok := ratValue(x, exif.FNumber); ok {
		md.Aperture = &v
	}
	if v, ok := ratValue(x, exif.ExposureTime); ok {
		md.ExposureTime = &v
	}
	return md, nil
}

func ratValue(x *exif.Exif, name exif.FieldName) (float64, bool) {
	tag, err := x.Get(name)
	if err != nil || tag.Format() != tiff.RatVal {
		return 0, false
	}
	rat, err := tag.Rat(0)
	if err != nil {
		return 0, false
	}
	v, _ := rat.Float64()
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// FormatShutterSpeed 小于 1 秒保留原始精度，1 秒及以上保留一位小数
func FormatShutterSpeed(seconds float64) string {
	if seconds < 1 {
		return strconv.FormatFloat(seconds, 'f', -1, 64)
	}
	return strconv.FormatFloat(seconds, 'f', 1, 64)
}

// RoundFocalLength 焦距四舍五入到整数
func RoundFocalLength(mm float64) int {
	return int(math.Round(mm))
}
