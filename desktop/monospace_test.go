package desktop

import (
	"errors"
	"testing"

	"golang.org/x/image/math/fixed"

	"github.com/ttk-go/ttk/ttkerr"
)

func TestVerifyMonospaceAcceptsUniformAdvances(t *testing.T) {
	face := newMonospaceFace(fixed.I(8))
	if err := verifyMonospace(face); err != nil {
		t.Errorf("expected a uniform-advance font to pass, got %v", err)
	}
}

func TestVerifyMonospaceAcceptsHalfPixelTolerance(t *testing.T) {
	face := &fakeFace{advances: map[rune]fixed.Int26_6{
		'i': fixed.I(8), 'W': fixed.I(8) + 32, 'M': fixed.I(8), '1': fixed.I(8), ' ': fixed.I(8),
	}}
	if err := verifyMonospace(face); err != nil {
		t.Errorf("exactly half a pixel of drift should still pass, got %v", err)
	}
}

func TestVerifyMonospaceRejectsProportionalFont(t *testing.T) {
	face := &fakeFace{advances: map[rune]fixed.Int26_6{
		'i': fixed.I(4), 'W': fixed.I(12), 'M': fixed.I(13), '1': fixed.I(8), ' ': fixed.I(6),
	}}
	err := verifyMonospace(face)
	if !errors.Is(err, ttkerr.FontNotMonospace) {
		t.Errorf("expected FontNotMonospace, got %v", err)
	}
}
