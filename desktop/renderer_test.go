package desktop

import "testing"

func TestPixelRectFlipsOriginToBottomLeft(t *testing.T) {
	m := cellMetrics{charWidth: 8, charHeight: 16, fontAscent: 12}
	// A 24-row grid, cell (0,0) (top-left in grid space) should get the
	// largest pixel y, the top of a bottom-left-origin pixel space; cell
	// (23,0) (grid bottom) should sit at pixel y=0, per spec.md's
	// pixel_y = (rows-row-1)*char_height.
	x1, y1, _, y2 := pixelRect(m, 0, 0, 1, 1, 24)
	if x1 != 0 {
		t.Errorf("x1 = %v, want 0", x1)
	}
	wantY2 := float32(23*16 + 16)
	if y2 != wantY2 {
		t.Errorf("y2 = %v, want %v", y2, wantY2)
	}
	if y1 != y2-16 {
		t.Errorf("y1 = %v, want %v", y1, y2-16)
	}
}

func TestPixelRectBottomRowMapsToPixelOrigin(t *testing.T) {
	m := cellMetrics{charWidth: 8, charHeight: 16}
	_, y1, _, _ := pixelRect(m, 23, 0, 1, 1, 24)
	if y1 != 0 {
		t.Errorf("last grid row should map to pixel y=0, got %v", y1)
	}
}

func TestPixelRectAppliesOffsets(t *testing.T) {
	m := cellMetrics{charWidth: 10, charHeight: 20, offsetX: 3, offsetY: 5}
	x1, _, _, y2 := pixelRect(m, 0, 2, 1, 1, 1)
	if x1 != float32(2*10+3) {
		t.Errorf("x1 = %v, want offset applied", x1)
	}
	if y2 != float32(0*20+5+20) {
		t.Errorf("y2 = %v, want offset applied", y2)
	}
}
