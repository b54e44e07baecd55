package rav1e

import (
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/ycho/rav1e/internal/rdo"
	"github.com/ycho/rav1e/internal/tiling"
)

// Frame is the caller-facing input: three 8-bit sample planes, luma at
// full resolution and chroma subsampled 4:2:0, matching the layout
// rdo.Frame expects internally.
type Frame struct {
	Y, U, V []uint8

	// YStride, UVStride are the row strides of the respective slices.
	YStride, UVStride int
}

// Encoder drives the whole per-frame pipeline for frames sharing one
// EncoderConfig: allocate frame state, run the partition/mode search,
// and wrap the emitted tile payload in its uncompressed header (spec
// §4.9: "the complete encode path, frame invariants through emitted
// bitstream").
type Encoder struct {
	cfg EncoderConfig
	seq rdo.Sequence
	log *zap.Logger

	mu      sync.Mutex
	closed  bool
	frameNo uint64
}

// NewEncoder validates cfg and builds an Encoder ready for EncodeFrame
// calls.
func NewEncoder(cfg EncoderConfig) (*Encoder, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log, err := newLogger(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "rav1e: building logger")
	}
	return &Encoder{
		cfg: cfg,
		seq: rdo.Sequence{Profile: 0},
		log: log,
	}, nil
}

// EncodeFrame runs the search/emit pipeline over one input frame and
// returns a standalone AV1 temporal unit: uncompressed header followed
// by the tile payload (spec §4.9).
func (e *Encoder) EncodeFrame(frame *Frame) ([]byte, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return nil, ErrEncoderClosed
	}
	if frame == nil {
		return nil, errors.Wrap(ErrInvalidInput, "nil frame")
	}

	fi := rdo.NewFrameInvariants(e.cfg.Width, e.cfg.Height, e.cfg.QIndex)
	if e.cfg.MinSplitableBsize != 0 {
		fi.MinSplitableBsize = e.cfg.MinSplitableBsize
	}
	fi.Number = e.frameNo

	fs := rdo.NewFrameState(fi)
	if err := copyIntoFrame(fs.Input, frame, e.cfg.Width, e.cfg.Height); err != nil {
		return nil, err
	}

	header, err := WriteUncompressedHeader(e.seq, fi)
	if err != nil {
		return nil, errors.Wrap(err, "rav1e: writing uncompressed header")
	}

	expectedSize := e.cfg.Width * e.cfg.Height / 2
	payload := rdo.EncodeTile(fi, fs, expectedSize)

	e.log.Info("encoded frame",
		zap.Uint64("frame", fi.Number),
		zap.Int("qindex", fi.QIndex),
		zap.Int("header_bytes", len(header)),
		zap.Int("payload_bytes", len(payload)),
	)

	e.frameNo++
	return append(header, payload...), nil
}

// Close releases the encoder's logger. Further EncodeFrame calls return
// ErrEncoderClosed.
func (e *Encoder) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return nil
	}
	e.closed = true
	return e.log.Sync()
}

// copyIntoFrame validates frame against width/height and copies its
// sample planes into fs's input planes, which are padded to whole
// superblocks (spec §4.1: the encoder operates on the padded extent,
// not the caller's raw dimensions).
func copyIntoFrame(dst *rdo.Frame, src *Frame, width, height int) error {
	if len(src.Y) < src.YStride*height {
		return errors.Wrap(ErrInvalidInput, "luma plane shorter than stride*height")
	}
	cw, ch := (width+1)/2, (height+1)/2
	if len(src.U) < src.UVStride*ch || len(src.V) < src.UVStride*ch {
		return errors.Wrap(ErrInvalidInput, "chroma plane shorter than stride*height")
	}

	copyPlane(dst.Planes[0], src.Y, src.YStride, width, height)
	copyPlane(dst.Planes[1], src.U, src.UVStride, cw, ch)
	copyPlane(dst.Planes[2], src.V, src.UVStride, cw, ch)
	return nil
}

func copyPlane(dst *tiling.Plane, src []uint8, stride, width, height int) {
	for y := 0; y < height; y++ {
		row := src[y*stride : y*stride+width]
		for x, v := range row {
			dst.Set(x, y, uint16(v))
		}
	}
}
