// Package rav1e provides a pure Go implementation of the core of an AV1
// video encoder: the per-frame compression pipeline that turns a raw
// YUV input frame into a conformant AV1 bitstream payload.
//
// This is an intra-only, single-tile, 4x4-transform-only core: every
// frame is a key frame, every block is split down to at most 4x4
// transforms, and the bitstream never describes more than one tile.
// Within that scope the package implements the real thing: recursive
// superblock partitioning with rate-distortion search, the DCT/ADST
// transform and uniform-deadzone quantizer pair, a 15-bit adaptive
// binary range coder, and the block-context bookkeeping the range
// coder's symbol models depend on.
//
// Basic usage:
//
//	cfg := rav1e.DefaultConfig(width, height)
//	enc, err := rav1e.NewEncoder(cfg)
//	payload, err := enc.EncodeFrame(frame)
//	err = enc.Close()
package rav1e
