package catalog

import (
	"strings"

	"modularcloset_server/structs"
)

// VarImagesTag marks products whose gallery images are associated to
// option values through alt-text tokens (policy B) rather than the
// variant image's alt text (policy A).
const VarImagesTag = "var_images"

// SelectDisplayImages picks the gallery image set for the current
// selection. Products tagged var_images go through the token policy;
// everything else uses alt-text matching. Both policies derive from
// alt-text conventions maintained by content editors — the platform
// schema has no image-to-option relation — so this is heuristic by
// nature, but deterministic for a given input.
func SelectDisplayImages(product *structs.Product, variant *structs.Variant, selected SelectedOptions) []structs.Image {
	if product.HasTag(VarImagesTag) {
		return SelectImagesByOptionTokens(product, variant, selected)
	}
	return SelectImagesByAltText(product.Images, variant)
}

// SelectImagesByAltText is policy A: keep images whose alt text equals
// the selected variant's image alt text (case-insensitive), excluding
// ab_test and swatch assets, with the variant's own image first. Without
// usable alt text the full list is returned, variant image pinned first
// when it can be identified.
func SelectImagesByAltText(images []structs.Image, variant *structs.Variant) []structs.Image {
	if variant == nil || variant.Image == nil {
		return images
	}

	variantAlt := variant.Image.AltText
	if variantAlt == "" {
		return pinFirst(images, variant.Image.ID)
	}

	var matching []structs.Image
	for _, img := range images {
		if img.AltText == "" {
			continue
		}
		lowered := strings.ToLower(img.AltText)
		if strings.Contains(lowered, "ab_test") || strings.Contains(lowered, "swatch") {
			continue
		}
		if lowered == strings.ToLower(variantAlt) {
			matching = append(matching, img)
		}
	}

	if len(matching) > 0 {
		return pinFirst(matching, variant.Image.ID)
	}

	return pinFirst(images, variant.Image.ID)
}

// SelectImagesByOptionTokens is policy B: an image qualifies when every
// token of its alt text overlaps some token of a selected option value,
// or its alt text equals the normalized product title. Swatch assets are
// excluded outright. When nothing qualifies the policy falls back to
// pinning the variant image on the full list, like policy A without alt
// text.
func SelectImagesByOptionTokens(product *structs.Product, variant *structs.Variant, selected SelectedOptions) []structs.Image {
	normalizedTitle := normalizeTokensJoined(product.Title)

	var optionTokens []string
	for _, value := range selected {
		optionTokens = append(optionTokens, tokenize(value)...)
	}

	var matching []structs.Image
	for _, img := range product.Images {
		if img.AltText == "" {
			continue
		}
		if strings.Contains(strings.ToLower(img.AltText), "swatch") {
			continue
		}
		if normalizeTokensJoined(img.AltText) == normalizedTitle {
			matching = append(matching, img)
			continue
		}
		if altTokensCovered(tokenize(img.AltText), optionTokens) {
			matching = append(matching, img)
		}
	}

	if len(matching) == 0 {
		if variant != nil && variant.Image != nil {
			return pinFirst(product.Images, variant.Image.ID)
		}
		return product.Images
	}

	if variant != nil && variant.Image != nil {
		return pinFirst(matching, variant.Image.ID)
	}
	return matching
}

// altTokensCovered reports whether every alt-text token overlaps at
// least one selected-option token by substring in either direction.
func altTokensCovered(altTokens, optionTokens []string) bool {
	if len(altTokens) == 0 || len(optionTokens) == 0 {
		return false
	}
	for _, alt := range altTokens {
		covered := false
		for _, opt := range optionTokens {
			if strings.Contains(alt, opt) || strings.Contains(opt, alt) {
				covered = true
				break
			}
		}
		if !covered {
			return false
		}
	}
	return true
}

// tokenize uppercases and splits on every non-alphanumeric rune.
func tokenize(s string) []string {
	upper := strings.ToUpper(s)
	mapped := strings.Map(func(r rune) rune {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			return r
		}
		return ' '
	}, upper)
	return strings.Fields(mapped)
}

func normalizeTokensJoined(s string) string {
	return strings.Join(tokenize(s), " ")
}

// pinFirst moves the image with the given id to the front, preserving the
// relative order of the rest. Unknown ids leave the list untouched.
func pinFirst(images []structs.Image, id string) []structs.Image {
	if id == "" {
		return images
	}
	idx := -1
	for i := range images {
		if images[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return images
	}

	reordered := make([]structs.Image, 0, len(images))
	reordered = append(reordered, images[idx])
	reordered = append(reordered, images[:idx]...)
	reordered = append(reordered, images[idx+1:]...)
	return reordered
}
