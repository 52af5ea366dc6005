package vglite

import "errors"

// Errors returned by vglite operations.
//
// Every failure is reported through one of these sentinels, possibly wrapped
// with additional context. Use errors.Is to classify a returned error.
var (
	// ErrInvalidArgument is returned when the caller violates an API contract:
	// zero-length gradient vectors, non-positive radii, mismatched stop and
	// color slices, bad dimensions or an unknown path data format.
	ErrInvalidArgument = errors.New("vglite: invalid argument")

	// ErrOutOfMemory is returned when a buffer allocation cannot be satisfied.
	ErrOutOfMemory = errors.New("vglite: out of memory")

	// ErrOutOfResources is returned when the renderer has no target or lacks
	// the state required to execute a command.
	ErrOutOfResources = errors.New("vglite: out of resources")

	// ErrNotSupported is returned for capabilities that this implementation
	// does not provide (GPU mapping, scissoring, arc paths, radial draws...).
	// It is never fatal; callers can query features up front.
	ErrNotSupported = errors.New("vglite: not supported")

	// ErrUnsupportedFormat is returned when a pixel buffer uses an encoding
	// the unpacker cannot decode. Unlike ErrNotSupported this signals a
	// caller contract violation: the buffer cannot be drawn at all.
	ErrUnsupportedFormat = errors.New("vglite: unsupported pixel format")

	// ErrMalformedPath is returned by strict path decoding when the opcode
	// stream contains unknown opcodes or a truncated record.
	ErrMalformedPath = errors.New("vglite: malformed path data")
)
