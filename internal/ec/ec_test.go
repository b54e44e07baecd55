package ec

import "testing"

func TestNewCDFLayoutIsEquiprobable(t *testing.T) {
	cdf := NewCDF(4)
	if len(cdf) != 4 {
		t.Fatalf("len(NewCDF(4)) = %d, want 4 (3 boundaries + 1 count slot)", len(cdf))
	}
	want := []uint16{CDFSize / 4, CDFSize / 2, 3 * CDFSize / 4}
	for i, w := range want {
		if cdf[i] != w {
			t.Errorf("cdf[%d] = %d, want %d", i, cdf[i], w)
		}
	}
	if cdf[3] != 0 {
		t.Errorf("cdf[3] (count slot) = %d, want 0", cdf[3])
	}
}

// Regression test for the adaptation loop bound that ran to nsyms-1
// instead of nsyms: a 2-symbol CDF has exactly one real boundary
// (cdf[0]), with nsyms := len(cdf)-1 == 1, so the buggy "for i := 0; i
// < nsyms-1; i++" never executed a single iteration and cdf[0] was
// frozen at its initial value forever. This asserts the boundary
// actually moves.
func TestUpdateCdfAdaptsTwoSymbolBoundary(t *testing.T) {
	cdf := NewCDF(2)
	initial := cdf[0]
	// Observing symbol 1 pushes cdf[0] (P(X<=0)) toward 0, since index 0
	// is below val.
	UpdateCdf(cdf, 1)
	if cdf[0] == initial {
		t.Fatalf("cdf[0] unchanged after UpdateCdf(cdf, 1): got %d, want moved from %d", cdf[0], initial)
	}
	if cdf[0] >= initial {
		t.Errorf("cdf[0] = %d after observing val=1, want < %d (boundary should fall toward 0)", cdf[0], initial)
	}
}

// On a larger CDF the bug instead skipped adapting the last real
// boundary (index nsyms-2), since the loop stopped one short of
// nsyms-1 real entries.
func TestUpdateCdfAdaptsLastBoundary(t *testing.T) {
	cdf := NewCDF(4)
	last := len(cdf) - 2 // index of the last real cumulative entry
	initial := cdf[last]
	UpdateCdf(cdf, 0)
	if cdf[last] == initial {
		t.Fatalf("cdf[%d] (last real boundary) unchanged after UpdateCdf(cdf, 0): got %d", last, cdf[last])
	}
}

func TestUpdateCdfIncrementsCountUpToCap(t *testing.T) {
	cdf := NewCDF(2)
	for i := 0; i < 40; i++ {
		UpdateCdf(cdf, 0)
	}
	if cdf[len(cdf)-1] != 32 {
		t.Errorf("count slot = %d after 40 updates, want capped at 32", cdf[len(cdf)-1])
	}
}

func TestWriteBoolProducesNonEmptyOutput(t *testing.T) {
	w := NewWriter(16)
	for i := 0; i < 8; i++ {
		w.WriteBool(i%2 == 0, 1<<14)
	}
	out := w.Done()
	if len(out) == 0 {
		t.Fatal("Done() returned no bytes after writing symbols")
	}
}

func TestWriteSymbolAdaptsSharedCdf(t *testing.T) {
	w := NewWriter(16)
	cdf := NewCDF(4)
	before := append([]uint16(nil), cdf...)
	w.WriteSymbol(cdf, 2)
	same := true
	for i := range before {
		if cdf[i] != before[i] {
			same = false
		}
	}
	if same {
		t.Error("WriteSymbol left cdf unchanged; expected UpdateCdf to adapt it")
	}
}

func TestTellFracIncreasesAsSymbolsAreWritten(t *testing.T) {
	w := NewWriter(16)
	start := w.TellFrac()
	cdf := NewCDF(4)
	for i := 0; i < 20; i++ {
		w.WriteSymbol(cdf, i%4)
	}
	end := w.TellFrac()
	if end <= start {
		t.Errorf("TellFrac() = %d after writing 20 symbols, want > start %d", end, start)
	}
}

// Checkpoint/Rollback must exactly restore both the coder's register
// state and the emitted buffer length, so a speculative RDO trial
// leaves no trace (spec §4.6/§4.7's checkpoint-per-candidate search).
func TestCheckpointRollbackRestoresTellFracAndLength(t *testing.T) {
	w := NewWriter(16)
	cdf := NewCDF(4)
	for i := 0; i < 5; i++ {
		w.WriteSymbol(cdf, i%4)
	}
	cp := w.Checkpoint()
	tellBefore := w.TellFrac()

	for i := 0; i < 30; i++ {
		w.WriteSymbol(cdf, (i*3)%4)
	}

	w.Rollback(cp)
	if got := w.TellFrac(); got != tellBefore {
		t.Errorf("TellFrac() after rollback = %d, want %d", got, tellBefore)
	}
}

func TestRollbackTruncatesEmittedBuffer(t *testing.T) {
	a := NewWriter(16)
	for i := 0; i < 50; i++ {
		a.WriteBool(i%2 == 0, 1<<14)
	}
	want := a.Done()

	b := NewWriter(16)
	for i := 0; i < 50; i++ {
		b.WriteBool(i%2 == 0, 1<<14)
	}
	cp := b.Checkpoint()
	cdf := NewCDF(2)
	for i := 0; i < 50; i++ {
		b.WriteSymbol(cdf, i%2)
	}
	b.Rollback(cp)
	got := b.Done()

	if len(got) != len(want) {
		t.Errorf("Done() after rolling back 50 speculative symbols has length %d, want %d (same as never writing them)", len(got), len(want))
	}
}
