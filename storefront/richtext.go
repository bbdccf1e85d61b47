package storefront

import (
	"encoding/json"
	"fmt"
	"strings"
)

// richTextNode is the platform's rich-text AST, as stored in metaobject
// fields like FAQ answers.
type richTextNode struct {
	Type     string         `json:"type"`
	Value    string         `json:"value,omitempty"`
	URL      string         `json:"url,omitempty"`
	Title    string         `json:"title,omitempty"`
	Target   string         `json:"target,omitempty"`
	Children []richTextNode `json:"children,omitempty"`
	ListType string         `json:"listType,omitempty"`
	Level    int            `json:"level,omitempty"`
	Bold     bool           `json:"bold,omitempty"`
	Italic   bool           `json:"italic,omitempty"`
}

// RenderRichText converts a rich-text JSON document to HTML. Input that
// does not parse as rich text is returned unchanged, since some fields
// hold plain strings.
func RenderRichText(raw string) string {
	var root richTextNode
	if err := json.Unmarshal([]byte(raw), &root); err != nil {
		return raw
	}
	return renderRichTextNode(root)
}

func renderRichTextNode(node richTextNode) string {
	switch node.Type {
	case "root":
		return renderRichTextChildren(node)

	case "paragraph":
		return "<p>" + renderRichTextChildren(node) + "</p>"

	case "text":
		text := node.Value
		if node.Bold {
			text = "<strong>" + text + "</strong>"
		}
		if node.Italic {
			text = "<em>" + text + "</em>"
		}
		return text

	case "link":
		var attrs strings.Builder
		attrs.WriteString(fmt.Sprintf(` href=%q`, node.URL))
		if node.Target != "" {
			attrs.WriteString(fmt.Sprintf(` target=%q`, node.Target))
		}
		if node.Title != "" {
			attrs.WriteString(fmt.Sprintf(` title=%q`, node.Title))
		}
		return "<a" + attrs.String() + ">" + renderRichTextChildren(node) + "</a>"

	case "list":
		tag := "ul"
		if node.ListType == "ordered" {
			tag = "ol"
		}
		return "<" + tag + ">" + renderRichTextChildren(node) + "</" + tag + ">"

	case "list-item":
		return "<li>" + renderRichTextChildren(node) + "</li>"

	case "heading":
		level := node.Level
		if level == 0 {
			level = 2
		}
		return fmt.Sprintf("<h%d>%s</h%d>", level, renderRichTextChildren(node), level)

	default:
		return renderRichTextChildren(node)
	}
}

func renderRichTextChildren(node richTextNode) string {
	if len(node.Children) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, child := range node.Children {
		sb.WriteString(renderRichTextNode(child))
	}
	return sb.String()
}
