package common

import "testing"

func TestTruncate(t *testing.T) {
	if got := Truncate("hello world", 20); got != "hello world" {
		t.Fatalf("short text should be unchanged: %q", got)
	}
	if got := Truncate("hello world", 6); got != "hello…" {
		t.Fatalf("unexpected truncation: %q", got)
	}
	if got := Truncate("line one\nline two", 40); got != "line one line two" {
		t.Fatalf("newlines should collapse: %q", got)
	}
	if got := Truncate("anything", 0); got != "" {
		t.Fatalf("zero width should be empty: %q", got)
	}
}

func TestInitials(t *testing.T) {
	cases := map[string]string{
		"alice":     "AL",
		"_b.o.b":    "BO",
		"x":         "X",
		"":          "US",
		"__":        "US",
		"9lives_ok": "9L",
	}
	for in, want := range cases {
		if got := Initials(in); got != want {
			t.Fatalf("Initials(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestDisplayName(t *testing.T) {
	if got := DisplayName("alice"); got != "@alice" {
		t.Fatalf("unexpected name: %q", got)
	}
	if got := DisplayName("@bob"); got != "@bob" {
		t.Fatalf("should not double the @: %q", got)
	}
	if got := DisplayName("  "); got != "@user" {
		t.Fatalf("blank should fall back to user: %q", got)
	}
}
