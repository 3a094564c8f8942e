package util

import "testing"

func TestTruncateRuneBoundary(t *testing.T) {
	s := "कानूनी सलाह चाहिए"
	out := Truncate(s, 7)
	if len([]rune(out)) > 7 {
		t.Fatalf("truncate exceeded cap: %q", out)
	}
	if Truncate("short", 100) != "short" {
		t.Fatalf("truncate must not pad short input")
	}
	if Truncate("anything", 0) != "anything" {
		t.Fatalf("zero cap means no cap")
	}
}

func TestSanitizeTextDropsControls(t *testing.T) {
	in := "legal\x00 notice\x01 text\n"
	out := SanitizeText(in)
	if out != "legal notice text" {
		t.Fatalf("unexpected sanitize result: %q", out)
	}
}

func TestNormalizeWhitespace(t *testing.T) {
	in := "  a\n\n\tb   c "
	if got := NormalizeWhitespace(in); got != "a b c" {
		t.Fatalf("unexpected normalize result: %q", got)
	}
}
