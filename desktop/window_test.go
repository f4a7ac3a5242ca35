package desktop

import "testing"

func TestQuantizedSizeRoundsDownToWholeCells(t *testing.T) {
	w := &window{charWidth: 8, charHeight: 16}
	qw, qh := w.quantizedSize(100, 205)
	if qw != 96 {
		t.Errorf("width = %d, want 96 (12 cells)", qw)
	}
	if qh != 192 {
		t.Errorf("height = %d, want 192 (12 cells)", qh)
	}
}

func TestQuantizedSizeFloorsAtOneCell(t *testing.T) {
	w := &window{charWidth: 8, charHeight: 16}
	qw, qh := w.quantizedSize(3, 5)
	if qw != 8 || qh != 16 {
		t.Errorf("got (%d,%d), want one full cell in each dimension", qw, qh)
	}
}

func TestQuantizedSizePassesThroughWithoutCellMetrics(t *testing.T) {
	w := &window{}
	qw, qh := w.quantizedSize(123, 456)
	if qw != 123 || qh != 456 {
		t.Errorf("got (%d,%d), want unmodified input", qw, qh)
	}
}
