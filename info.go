package vglite

import "fmt"

// MakeVersion packs a version as major<<16 | minor<<8 | patch.
func MakeVersion(major, minor, patch uint8) uint32 {
	return uint32(major)<<16 | uint32(minor)<<8 | uint32(patch)
}

// Version numbers reported by Info.
var (
	APIVersion     = MakeVersion(3, 0, 0)
	HeaderVersion  = MakeVersion(1, 0, 0)
	ReleaseVersion = MakeVersion(0, 1, 0)
)

// Product identification reported by ProductInfo.
const (
	ProductName         = "GCNanoLiteV"
	ProductChipID       = 0x265
	ProductChipRevision = 0x2000
)

// Info describes the implemented API.
type Info struct {
	APIVersion     uint32
	HeaderVersion  uint32
	ReleaseVersion uint32
}

// Info returns the API, header and release versions.
func (c *Context) Info() Info {
	return Info{
		APIVersion:     APIVersion,
		HeaderVersion:  HeaderVersion,
		ReleaseVersion: ReleaseVersion,
	}
}

// ProductInfo returns the emulated product name, chip id and revision.
func (c *Context) ProductInfo() (name string, chipID, chipRevision uint32) {
	return ProductName, ProductChipID, ProductChipRevision
}

// GlobalAlpha selects how a global alpha value combines with pixel alpha.
type GlobalAlpha uint8

const (
	GlobalAlphaOff GlobalAlpha = iota
	GlobalAlphaOn
	GlobalAlphaMultiply
)

// ColorKey describes one color key range.
type ColorKey struct {
	Enable     bool
	Alpha      uint8
	R, G, B    uint8
	Hr, Hg, Hb uint8
}

// SetScissor is not supported.
func (c *Context) SetScissor(x, y, right, bottom int) error {
	return fmt.Errorf("vglite: set scissor: %w", ErrNotSupported)
}

// EnableScissor is not supported.
func (c *Context) EnableScissor() error {
	return fmt.Errorf("vglite: enable scissor: %w", ErrNotSupported)
}

// DisableScissor is not supported.
func (c *Context) DisableScissor() error {
	return fmt.Errorf("vglite: disable scissor: %w", ErrNotSupported)
}

// SetSourceGlobalAlpha is not supported.
func (c *Context) SetSourceGlobalAlpha(GlobalAlpha, uint8) error {
	return fmt.Errorf("vglite: source global alpha: %w", ErrNotSupported)
}

// SetDestGlobalAlpha is not supported.
func (c *Context) SetDestGlobalAlpha(GlobalAlpha, uint8) error {
	return fmt.Errorf("vglite: dest global alpha: %w", ErrNotSupported)
}

// SetColorKey is not supported.
func (c *Context) SetColorKey([4]ColorKey) error {
	return fmt.Errorf("vglite: set color key: %w", ErrNotSupported)
}

// MapBuffer is not supported; buffers are always CPU memory.
func (c *Context) MapBuffer(*Buffer, int) error {
	return fmt.Errorf("vglite: map buffer: %w", ErrNotSupported)
}

// UnmapBuffer is not supported.
func (c *Context) UnmapBuffer(*Buffer) error {
	return fmt.Errorf("vglite: unmap buffer: %w", ErrNotSupported)
}

// UploadBuffer is not supported.
func (c *Context) UploadBuffer(*Buffer, [3][]byte, [3]int) error {
	return fmt.Errorf("vglite: upload buffer: %w", ErrNotSupported)
}

// UploadPath is not supported.
func (c *Context) UploadPath(*Path) error {
	return fmt.Errorf("vglite: upload path: %w", ErrNotSupported)
}

// NewArcPath is not supported; arc opcodes cannot be decoded.
func NewArcPath(DataFormat, Quality, []byte, float32, float32, float32, float32) (*Path, error) {
	return nil, fmt.Errorf("vglite: new arc path: %w", ErrNotSupported)
}
