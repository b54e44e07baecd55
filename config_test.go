package rav1e

import (
	"testing"

	"github.com/ycho/rav1e/internal/context"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig(176, 144)
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v, want nil", err)
	}
	if cfg.QIndex != 100 {
		t.Errorf("DefaultConfig QIndex = %d, want 100", cfg.QIndex)
	}
	if cfg.MinSplitableBsize != context.BLOCK_8X8 {
		t.Errorf("DefaultConfig MinSplitableBsize = %v, want BLOCK_8X8", cfg.MinSplitableBsize)
	}
}

func TestValidateRejectsNonPositiveDimensions(t *testing.T) {
	cfg := DefaultConfig(0, 144)
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() with width=0 unexpectedly succeeded")
	}
	cfg = DefaultConfig(176, -1)
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() with negative height unexpectedly succeeded")
	}
}

func TestValidateRejectsOutOfRangeQIndex(t *testing.T) {
	cfg := DefaultConfig(176, 144)
	cfg.QIndex = 256
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() with qindex=256 unexpectedly succeeded")
	}
	cfg.QIndex = -1
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() with qindex=-1 unexpectedly succeeded")
	}
}

func TestValidateRejectsOutOfRangeMinSplitableBsize(t *testing.T) {
	cfg := DefaultConfig(176, 144)
	cfg.MinSplitableBsize = context.BlockSize(-1)
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() with negative MinSplitableBsize unexpectedly succeeded")
	}
	cfg.MinSplitableBsize = context.BLOCK_64X64 + 1
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() with MinSplitableBsize past BLOCK_64X64 unexpectedly succeeded")
	}
}
