package handling

import (
	"net/http"
	"strconv"

	"modularcloset_server/services"
)

// SearchOptions are the parsed parameters of the typeahead endpoint.
type SearchOptions struct {
	Query string
	Limit int
}

// ParseSearchOptions parses the typeahead query parameters. Limit
// defaults to 4 suggestions per type; invalid values fall back rather
// than erroring, since a broken limit should not break search.
func ParseSearchOptions(r *http.Request) *SearchOptions {
	query := r.URL.Query()

	opts := &SearchOptions{
		Query: query.Get("q"),
		Limit: 4,
	}

	if limit := query.Get("limit"); limit != "" {
		if val, err := strconv.Atoi(limit); err == nil && val > 0 {
			opts.Limit = val
		}
	}

	return opts
}

// ParseCollectionOptions parses pagination and sort parameters for
// collection pages.
func ParseCollectionOptions(r *http.Request) (*services.CollectionOptions, error) {
	query := r.URL.Query()

	opts := &services.CollectionOptions{
		First:   24,
		After:   query.Get("after"),
		SortKey: query.Get("sort"),
	}

	if first := query.Get("first"); first != "" {
		val, err := strconv.Atoi(first)
		if err != nil {
			return nil, err
		}
		opts.First = val
	}

	return opts, nil
}
