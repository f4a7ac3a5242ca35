package grid

import "testing"

func TestRuneWidthAscii(t *testing.T) {
	if RuneWidth('a') != 1 {
		t.Errorf("got %d, want 1", RuneWidth('a'))
	}
}

func TestRuneWidthWideCJK(t *testing.T) {
	if RuneWidth('あ') != 2 {
		t.Errorf("got %d, want 2", RuneWidth('あ'))
	}
}

func TestRuneWidthCombiningMarkIsZero(t *testing.T) {
	if RuneWidth('́') != 0 {
		t.Errorf("got %d, want 0", RuneWidth('́'))
	}
}

func TestRuneWidthNull(t *testing.T) {
	if RuneWidth('\x00') != 0 {
		t.Errorf("got %d, want 0", RuneWidth('\x00'))
	}
}

func TestGraphemesSplitsCombiningSequenceAsOneCluster(t *testing.T) {
	// "e" + combining acute accent is one grapheme cluster.
	s := "é"
	clusters := Graphemes(s)
	if len(clusters) != 1 {
		t.Fatalf("got %d clusters, want 1: %v", len(clusters), clusters)
	}
	if clusters[0] != s {
		t.Errorf("got %q, want %q", clusters[0], s)
	}
}

func TestGraphemeWidthTakesWidestRune(t *testing.T) {
	cluster := "あ́"
	if GraphemeWidth(cluster) != 2 {
		t.Errorf("got %d, want 2", GraphemeWidth(cluster))
	}
}

func TestStringWidthSumsGraphemes(t *testing.T) {
	if StringWidth("abc") != 3 {
		t.Errorf("got %d, want 3", StringWidth("abc"))
	}
	if StringWidth("あいう") != 6 {
		t.Errorf("got %d, want 6", StringWidth("あいう"))
	}
	if StringWidth("éf") != 2 {
		t.Errorf("got %d, want 2", StringWidth("éf"))
	}
}
