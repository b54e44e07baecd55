package rav1e

import (
	"bytes"

	"github.com/icza/bitio"

	"github.com/ycho/rav1e/internal/rdo"
)

// WriteUncompressedHeader emits the AV1 uncompressed frame header: frame
// type, profile, dimensions, quantizer, and the fixed set of disabled
// tool flags this intra-only/4x4-only/single-tile core always sets
// (CDEF, loop restoration, segmentation, delta-q, tile columns beyond
// one). Grounded verbatim on lib.rs's write_uncompressed_header and its
// bit-field ordering.
func WriteUncompressedHeader(seq rdo.Sequence, fi *rdo.FrameInvariants) ([]byte, error) {
	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)

	var firstErr error
	bits := func(n byte, v uint64) {
		if firstErr != nil {
			return
		}
		firstErr = w.WriteBits(v, n)
	}
	bit := func(b bool) {
		if firstErr != nil {
			return
		}
		firstErr = w.WriteBool(b)
	}

	bits(2, 2) // frame type
	bits(2, uint64(seq.Profile))

	if fi.ShowExistingFrame {
		bit(true) // show_existing_frame
		bits(3, 0) // show last frame
		if firstErr != nil {
			return nil, firstErr
		}
		if _, err := w.Align(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}

	bit(false) // show_existing_frame
	bit(false) // keyframe
	bit(true)  // show frame
	bit(true)  // error resilient
	bits(1, 0) // don't use frame ids
	bits(3, 0) // colorspace
	bits(1, 0) // color range
	bits(16, uint64(fi.SBWidth*64-1))
	bits(16, uint64(fi.SBHeight*64-1))
	bit(false) // scaling active
	bit(false) // screen content tools
	bits(3, 0) // frame context
	bits(6, 0) // loop filter level
	bits(3, 0) // loop filter sharpness
	bit(false) // loop filter deltas enabled
	bits(8, uint64(fi.QIndex))
	bit(false) // y dc delta q
	bit(false) // uv dc delta q
	bit(false) // uv ac delta q
	bit(false) // segmentation off
	bits(2, 0) // cdef clpf damping
	bits(2, 0) // cdef bits
	bits(7, 0) // cdef y strength
	bits(7, 0) // cdef uv strength
	bit(false) // no delta q
	bits(6, 0) // no y, u or v loop restoration
	bit(false) // tx mode select
	bits(2, 0) // only 4x4 transforms
	bit(true)  // reduced tx
	if fi.SBWidth*64-1 > 256 {
		bits(1, 0) // tile cols
	}
	bits(1, 0) // tile rows
	bit(true)  // loop filter across tiles
	bits(2, 0) // tile_size_bytes

	if firstErr != nil {
		return nil, firstErr
	}
	if _, err := w.Align(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
