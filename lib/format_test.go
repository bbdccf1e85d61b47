package lib

import "testing"

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		amount string
		want   string
	}{
		{"1234.5", "$1,234.50"},
		{"99", "$99.00"},
		{"0", "$0.00"},
		{"1250000", "$1,250,000.00"},
		{"-42.1", "-$42.10"},
		{"garbage", "$0.00"},
		{"", "$0.00"},
	}

	for _, tt := range tests {
		if got := FormatPrice(tt.amount); got != tt.want {
			t.Errorf("FormatPrice(%q) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Vista Closet Tower", "vista-closet-tower"},
		{"  White / Oak!  ", "white-oak"},
		{"already-a-slug", "already-a-slug"},
	}

	for _, tt := range tests {
		if got := Slugify(tt.in); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestStripHTML(t *testing.T) {
	in := "<p>Solid <strong>wood</strong> construction.</p>\n<p>Ships flat.</p>"
	want := "Solid wood construction. Ships flat."
	if got := StripHTML(in); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestTruncateText(t *testing.T) {
	if got := TruncateText("short", 20); got != "short" {
		t.Errorf("under limit should pass through, got %q", got)
	}

	got := TruncateText("a reasonably long product description here", 20)
	if got != "a reasonably long..." {
		t.Errorf("got %q", got)
	}

	if got := TruncateText("anything", 0); got != "anything" {
		t.Errorf("zero max should pass through, got %q", got)
	}
}

func TestFormatHandle(t *testing.T) {
	if got := FormatHandle("vista-closet-parts"); got != "Vista Closet Parts" {
		t.Errorf("got %q", got)
	}
}

func TestShortProductTitle(t *testing.T) {
	if got := ShortProductTitle("Vista Walk-In Closet"); got != "Walk-In Closet" {
		t.Errorf("got %q", got)
	}
	if got := ShortProductTitle("Alto Wardrobe"); got != "Alto Wardrobe" {
		t.Errorf("non-prefixed title changed: %q", got)
	}
}
