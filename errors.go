package rav1e

import "github.com/pkg/errors"

// Sentinel errors the encoder's public API can return (spec §7: "the
// range coder, quantizer, transforms, and predictors are infallible by
// contract ... all validation happens at component boundaries"). They
// are returned wrapped with errors.Wrap, so errors.Is still matches the
// sentinel while the message names which check rejected the input.
// Errors from internal/tiling (tiling.ErrOutOfBounds) do not reach the
// public API: rdo.NewFrameState panics if its tile views cannot be
// built.
var (
	// ErrInvalidInput is returned when a caller-supplied frame or config
	// violates a precondition the encoder does not internally recover
	// from (e.g. a frame size that does not match the configured
	// dimensions).
	ErrInvalidInput = errors.New("rav1e: invalid input")

	// ErrMalformed reports an internal invariant violation (e.g. a
	// partition, plane, or block-grid index assertion failing inside
	// internal/tiling or internal/context). The range coder, quantizer,
	// transforms, and predictors are infallible by contract: they accept
	// only pre-validated inputs, so a Malformed error can only mean a
	// bug in this encoder, not a bad caller input. Unlike ErrInvalidInput
	// it is not expected to be recoverable; a caller observing it should
	// discard the frame's output rather than retry.
	ErrMalformed = errors.New("rav1e: malformed internal state")

	// ErrEndOfStream is returned by a frame source to signal it has no
	// more frames; a driver loop calling EncodeFrame in sequence treats
	// it as normal termination, not a failure. No such loop exists in
	// this package yet (EncodeFrame takes one caller-supplied *Frame per
	// call, with sequencing left to the caller), so this sentinel has no
	// current producer; it is defined now so a future multi-frame driver
	// can surface it without an incompatible error-kind change.
	ErrEndOfStream = errors.New("rav1e: end of stream")

	// ErrEncoderClosed is returned by any Encoder method called after
	// Close.
	ErrEncoderClosed = errors.New("rav1e: encoder closed")
)
