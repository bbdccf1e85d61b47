package services

import (
	"context"
	"sort"
	"time"

	"modularcloset_server/storefront"
	"modularcloset_server/structs"

	"github.com/MonkyMars/gecho"
)

// TrustpilotService loads the review wall content: a heading metaobject
// plus the individual review metaobjects synced from the review platform.
type TrustpilotService struct {
	client storefront.Doer
	cache  contentStore
	logger *gecho.Logger
}

func NewTrustpilotService(client storefront.Doer, cache contentStore, logger *gecho.Logger) *TrustpilotService {
	return &TrustpilotService{
		client: client,
		cache:  cache,
		logger: logger,
	}
}

// Reviews returns the heading and the usable reviews, newest experience
// first. Reviews missing a title or body are dropped; a missing heading
// metaobject or a failed load falls back to the last known live values
// so the section still renders.
func (s *TrustpilotService) Reviews(ctx context.Context) (*structs.TrustpilotResult, error) {
	if cached, err := GetContent[structs.TrustpilotResult](s.cache, "trustpilot"); err == nil && cached != nil {
		return cached, nil
	}

	var resp struct {
		Heading *storefront.Metaobject `json:"heading"`
		Reviews struct {
			Nodes []storefront.Metaobject `json:"nodes"`
		} `json:"reviews"`
	}
	if err := s.client.Do(ctx, storefront.QueryTrustpilotReviews, nil, &resp); err != nil {
		s.logger.Warn("Failed to load reviews, falling back to the last known live values", gecho.Field("error", err))
		return &structs.TrustpilotResult{
			Heading: headingFrom(nil),
			Reviews: []structs.TrustpilotReview{},
		}, nil
	}

	result := &structs.TrustpilotResult{
		Heading: headingFrom(resp.Heading),
		Reviews: reviewsFrom(resp.Reviews.Nodes),
	}

	if err := SetContent(s.cache, "trustpilot", *result); err != nil {
		s.logger.Warn("Failed to cache trustpilot reviews", gecho.Field("error", err))
	}

	return result, nil
}

func headingFrom(node *storefront.Metaobject) structs.TrustpilotHeading {
	heading := structs.TrustpilotHeading{
		RatingName:      "Excellent",
		AmountOfStars:   "4.7",
		AmountOfReviews: "3,744",
		Heading:         "What our customers say",
		ButtonLink:      "https://www.trustpilot.com/review/modularclosets.com",
		ButtonText:      "Read our reviews",
	}
	if node == nil {
		return heading
	}

	fields := storefront.NewFieldMap(node.Fields)
	heading.RatingName = fields.GetOr("rating_name", heading.RatingName)
	heading.AmountOfStars = fields.GetOr("amount_of_stars", heading.AmountOfStars)
	heading.AmountOfReviews = fields.GetOr("amount_of_reviews", heading.AmountOfReviews)
	heading.Heading = fields.GetOr("heading", heading.Heading)
	heading.ButtonLink = fields.GetOr("button_link", heading.ButtonLink)
	heading.ButtonText = fields.GetOr("button_text", heading.ButtonText)
	return heading
}

func reviewsFrom(nodes []storefront.Metaobject) []structs.TrustpilotReview {
	reviews := make([]structs.TrustpilotReview, 0, len(nodes))
	for _, node := range nodes {
		fields := storefront.NewFieldMap(node.Fields)

		title, hasTitle := fields.Get("title")
		text, hasText := fields.Get("text")
		if !hasTitle || !hasText || title == "" || text == "" {
			continue
		}

		reviews = append(reviews, structs.TrustpilotReview{
			DisplayName:   fields.GetOr("display_name", "Verified customer"),
			ExperiencedAt: fields.GetOr("experienced_at", ""),
			Stars:         fields.Int("stars", 5),
			Title:         title,
			Text:          text,
		})
	}

	sort.SliceStable(reviews, func(i, j int) bool {
		return parseReviewDate(reviews[i].ExperiencedAt).After(parseReviewDate(reviews[j].ExperiencedAt))
	})

	for i := range reviews {
		reviews[i].ExperiencedAt = formatReviewDate(reviews[i].ExperiencedAt)
	}

	return reviews
}

func parseReviewDate(raw string) time.Time {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return time.Time{}
}

// formatReviewDate renders the stored date as "January 2, 2006". Raw
// values that do not parse pass through unchanged.
func formatReviewDate(raw string) string {
	t := parseReviewDate(raw)
	if t.IsZero() {
		return raw
	}
	return t.Format("January 2, 2006")
}
