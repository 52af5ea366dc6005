package vglite

import (
	"fmt"
	"strings"
)

// Feature identifies an optional capability of the drawing engine.
type Feature uint8

const (
	FeatureIndexFormat Feature = iota
	FeatureScissor
	FeatureBorderCulling
	FeatureRGBA2Format
	FeatureFastClear
	FeatureGlobalAlpha
	FeatureColorKey
	Feature24Bit
	FeatureDither
	FeatureUseDst
	FeatureLVGLBlend
	FeatureAlign16
	FeatureDoubleImage
	featureCount
)

var featureNames = [featureCount]string{
	FeatureIndexFormat:   "index-format",
	FeatureScissor:       "scissor",
	FeatureBorderCulling: "border-culling",
	FeatureRGBA2Format:   "rgba2-format",
	FeatureFastClear:     "fast-clear",
	FeatureGlobalAlpha:   "global-alpha",
	FeatureColorKey:      "color-key",
	Feature24Bit:         "24bit",
	FeatureDither:        "dither",
	FeatureUseDst:        "use-dst",
	FeatureLVGLBlend:     "lvgl-blend",
	FeatureAlign16:       "16pixels-align",
	FeatureDoubleImage:   "double-image",
}

// String returns the feature name.
func (f Feature) String() string {
	if f >= featureCount {
		return fmt.Sprintf("Feature(%d)", uint8(f))
	}
	return featureNames[f]
}

// Features is a set of enabled features.
type Features uint32

// DefaultFeatures are the capabilities reported when no feature set is
// configured. 16-pixel alignment, LVGL blending and double-image blits are
// off by default.
const DefaultFeatures = Features(1<<FeatureIndexFormat |
	1<<FeatureScissor |
	1<<FeatureBorderCulling |
	1<<FeatureRGBA2Format |
	1<<FeatureFastClear |
	1<<FeatureGlobalAlpha |
	1<<FeatureColorKey |
	1<<Feature24Bit |
	1<<FeatureDither |
	1<<FeatureUseDst)

// Has reports whether f is in the set.
func (s Features) Has(f Feature) bool {
	return f < featureCount && s&(1<<f) != 0
}

// With returns the set with fs added.
func (s Features) With(fs ...Feature) Features {
	for _, f := range fs {
		if f < featureCount {
			s |= 1 << f
		}
	}
	return s
}

// Without returns the set with fs removed.
func (s Features) Without(fs ...Feature) Features {
	for _, f := range fs {
		if f < featureCount {
			s &^= 1 << f
		}
	}
	return s
}

// String lists the enabled features separated by commas.
func (s Features) String() string {
	var names []string
	for f := Feature(0); f < featureCount; f++ {
		if s.Has(f) {
			names = append(names, f.String())
		}
	}
	return strings.Join(names, ",")
}

// ParseFeature looks up a feature by name.
func ParseFeature(name string) (Feature, error) {
	for f := Feature(0); f < featureCount; f++ {
		if featureNames[f] == name {
			return f, nil
		}
	}
	return 0, fmt.Errorf("vglite: unknown feature %q: %w", name, ErrInvalidArgument)
}
