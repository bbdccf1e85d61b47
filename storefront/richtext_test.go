package storefront

import "testing"

func TestRenderRichTextParagraphWithMarks(t *testing.T) {
	raw := `{"type":"root","children":[{"type":"paragraph","children":[{"type":"text","value":"Ships in "},{"type":"text","value":"3 days","bold":true}]}]}`

	got := RenderRichText(raw)
	want := "<p>Ships in <strong>3 days</strong></p>"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderRichTextLink(t *testing.T) {
	raw := `{"type":"root","children":[{"type":"paragraph","children":[{"type":"link","url":"/pages/faq","target":"_blank","children":[{"type":"text","value":"FAQ"}]}]}]}`

	got := RenderRichText(raw)
	want := `<p><a href="/pages/faq" target="_blank">FAQ</a></p>`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderRichTextOrderedList(t *testing.T) {
	raw := `{"type":"root","children":[{"type":"list","listType":"ordered","children":[{"type":"list-item","children":[{"type":"text","value":"One"}]},{"type":"list-item","children":[{"type":"text","value":"Two"}]}]}]}`

	got := RenderRichText(raw)
	want := "<ol><li>One</li><li>Two</li></ol>"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderRichTextHeadingDefaultsToH2(t *testing.T) {
	raw := `{"type":"root","children":[{"type":"heading","children":[{"type":"text","value":"Returns"}]}]}`

	got := RenderRichText(raw)
	want := "<h2>Returns</h2>"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderRichTextPlainStringPassesThrough(t *testing.T) {
	raw := "Just a plain answer."
	if got := RenderRichText(raw); got != raw {
		t.Errorf("plain string should pass through, got %q", got)
	}
}
