package rav1e

import (
	"github.com/pkg/errors"

	"github.com/ycho/rav1e/internal/context"
)

// EncoderConfig holds the frame invariants and tuning knobs a caller
// supplies up front (spec §6: "Frame invariants provided by the
// driver"). There is no CLI flag parser here (spec Non-goals exclude
// the outer container/CLI surface); callers construct this directly or
// via DefaultConfig.
type EncoderConfig struct {
	// Width and Height are the visible frame dimensions in samples.
	Width, Height int

	// QIndex is the quantizer strength, 0-255 (spec §4.4).
	QIndex int

	// MinSplitableBsize is the smallest square block SearchPartition may
	// still recurse below (spec §9 Open Questions). Zero means "use the
	// production default", BLOCK_8X8.
	MinSplitableBsize context.BlockSize

	// LogPath, when non-empty, directs encoder logs to a rotating file
	// instead of stderr (see logging.go).
	LogPath string
}

// DefaultConfig returns an EncoderConfig with the production defaults:
// BLOCK_8X8 as the minimum splittable size, qindex 100, stderr logging.
func DefaultConfig(width, height int) EncoderConfig {
	return EncoderConfig{
		Width:             width,
		Height:            height,
		QIndex:            100,
		MinSplitableBsize: context.BLOCK_8X8,
	}
}

// Validate checks the config for values the encoder cannot act on.
func (c EncoderConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Wrapf(ErrInvalidInput, "width/height must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.QIndex < 0 || c.QIndex > 255 {
		return errors.Wrapf(ErrInvalidInput, "qindex must be in [0,255], got %d", c.QIndex)
	}
	if c.MinSplitableBsize < context.BLOCK_4X4 || c.MinSplitableBsize > context.BLOCK_64X64 {
		return errors.Wrapf(ErrInvalidInput, "min splittable block size out of range: %d", c.MinSplitableBsize)
	}
	return nil
}
