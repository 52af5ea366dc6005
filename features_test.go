package vglite

import (
	"errors"
	"testing"
)

func TestDefaultFeatures(t *testing.T) {
	on := []Feature{
		FeatureIndexFormat, FeatureScissor, FeatureBorderCulling, FeatureRGBA2Format,
		FeatureFastClear, FeatureGlobalAlpha, FeatureColorKey, Feature24Bit,
		FeatureDither, FeatureUseDst,
	}
	for _, f := range on {
		if !DefaultFeatures.Has(f) {
			t.Errorf("DefaultFeatures missing %v", f)
		}
	}
	for _, f := range []Feature{FeatureLVGLBlend, FeatureAlign16, FeatureDoubleImage} {
		if DefaultFeatures.Has(f) {
			t.Errorf("DefaultFeatures has %v", f)
		}
	}
}

func TestFeaturesWithWithout(t *testing.T) {
	s := Features(0).With(FeatureDither, FeatureAlign16)
	if !s.Has(FeatureDither) || !s.Has(FeatureAlign16) {
		t.Fatalf("With() = %v", s)
	}
	s = s.Without(FeatureDither)
	if s.Has(FeatureDither) || !s.Has(FeatureAlign16) {
		t.Errorf("Without() = %v", s)
	}
	if s.Has(Feature(200)) || s.With(Feature(200)) != s {
		t.Error("out of range feature changed the set")
	}
	if got := s.String(); got != "16pixels-align" {
		t.Errorf("String() = %q", got)
	}
}

func TestParseFeature(t *testing.T) {
	for f := Feature(0); f < featureCount; f++ {
		got, err := ParseFeature(f.String())
		if err != nil || got != f {
			t.Errorf("ParseFeature(%q) = %v, %v", f.String(), got, err)
		}
	}
	if _, err := ParseFeature("warp-drive"); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("ParseFeature(unknown) error = %v", err)
	}
}
