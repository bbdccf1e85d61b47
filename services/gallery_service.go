package services

import (
	"context"
	"sort"
	"strings"

	"modularcloset_server/storefront"
	"modularcloset_server/structs"

	"github.com/MonkyMars/gecho"
)

const (
	galleryMetaobjectType = "gallery_images"
	galleryPageSize       = 200
)

// GalleryService loads the customer gallery: image metaobjects tagged by
// room type, newest first. The metaobject list is paginated upstream, so
// loading walks every page before caching the combined result.
type GalleryService struct {
	client storefront.Doer
	cache  contentStore
	logger *gecho.Logger
}

func NewGalleryService(client storefront.Doer, cache contentStore, logger *gecho.Logger) *GalleryService {
	return &GalleryService{
		client: client,
		cache:  cache,
		logger: logger,
	}
}

// Gallery returns every gallery image plus the distinct tag list used to
// build the filter bar.
func (s *GalleryService) Gallery(ctx context.Context) (*structs.GalleryResult, error) {
	if cached, err := GetContent[structs.GalleryResult](s.cache, "gallery"); err == nil && cached != nil {
		return cached, nil
	}

	images, err := s.loadAllPages(ctx)
	if err != nil {
		return nil, err
	}

	result := &structs.GalleryResult{
		Images: images,
		Tags:   collectTags(images),
	}

	if err := SetContent(s.cache, "gallery", *result); err != nil {
		s.logger.Warn("Failed to cache gallery", gecho.Field("error", err))
	}

	return result, nil
}

type galleryWireNode struct {
	ID     string                       `json:"id"`
	Fields []storefront.MetaobjectField `json:"fields"`
}

func (s *GalleryService) loadAllPages(ctx context.Context) ([]structs.GalleryImage, error) {
	var images []structs.GalleryImage
	after := ""

	for {
		var resp struct {
			Metaobjects struct {
				Edges []struct {
					Cursor string          `json:"cursor"`
					Node   galleryWireNode `json:"node"`
				} `json:"edges"`
				PageInfo struct {
					HasNextPage bool `json:"hasNextPage"`
				} `json:"pageInfo"`
			} `json:"metaobjects"`
		}

		vars := map[string]any{
			"type":  galleryMetaobjectType,
			"first": galleryPageSize,
		}
		if after != "" {
			vars["after"] = after
		}

		if err := s.client.Do(ctx, storefront.QueryGalleryImages, vars, &resp); err != nil {
			return nil, err
		}

		for _, edge := range resp.Metaobjects.Edges {
			if image, ok := galleryImageFromNode(edge.Node); ok {
				images = append(images, image)
			}
			after = edge.Cursor
		}

		if !resp.Metaobjects.PageInfo.HasNextPage || len(resp.Metaobjects.Edges) == 0 {
			break
		}
	}

	return images, nil
}

func galleryImageFromNode(node galleryWireNode) (structs.GalleryImage, bool) {
	fields := storefront.NewFieldMap(node.Fields)

	ref := fields.Reference("image")
	if ref == nil || ref.Image == nil {
		return structs.GalleryImage{}, false
	}

	small := ref.Image.Small
	full := ref.Image.Full
	if small == "" {
		small = ref.Image.URL
	}
	if full == "" {
		full = ref.Image.URL
	}
	if small == "" && full == "" {
		return structs.GalleryImage{}, false
	}

	return structs.GalleryImage{
		ID:      node.ID,
		Small:   small,
		Full:    full,
		AltText: ref.Image.AltText,
		Width:   ref.Image.Width,
		Height:  ref.Image.Height,
		Tags:    parseTags(fields.GetOr("tags", "")),
	}, true
}

// parseTags splits a free-form tag field on commas and newlines,
// lowercasing and trimming each entry.
func parseTags(raw string) []string {
	split := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == '\n'
	})

	tags := make([]string, 0, len(split))
	for _, tag := range split {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// collectTags returns the distinct tags across all images, ordered for the
// filter bar: bedroom first, other last, the rest alphabetical.
func collectTags(images []structs.GalleryImage) []string {
	seen := make(map[string]bool)
	var tags []string
	for _, image := range images {
		for _, tag := range image.Tags {
			if !seen[tag] {
				seen[tag] = true
				tags = append(tags, tag)
			}
		}
	}

	sort.Slice(tags, func(i, j int) bool {
		return tagRank(tags[i]) < tagRank(tags[j]) ||
			(tagRank(tags[i]) == tagRank(tags[j]) && tags[i] < tags[j])
	})

	return tags
}

func tagRank(tag string) int {
	switch tag {
	case "bedroom":
		return 0
	case "other":
		return 2
	default:
		return 1
	}
}
