package lib

import (
	"strings"

	"modularcloset_server/config"

	"github.com/MonkyMars/gecho"
)

// Routes is the centralized registry of internal paths: every link,
// redirect and breadcrumb resolves through it, so a moved page changes in
// one place.
var Routes = map[string]any{
	"home":    "/",
	"account": "/account",
	"cart":    "/cart",
	"search":  "/search",

	"designQuiz":     "/pages/closet-design-quiz",
	"designTool":     "/pages/closet-design-tool",
	"chooseCategory": "/pages/choose-category",

	"collections": map[string]any{
		"vista":              "/collections/vista",
		"alto":               "/collections/alto-closet-system",
		"milanoInternal":     "/collections/milano-internal",
		"preDesignedClosets": "/collections/pre-designed-closets",
		"accessories":        "/collections/accessories",
		"vistaParts":         "/collections/vista-closet-parts",
		"altoParts":          "/collections/alto-shopping-collection",
		"wardrobes":          "/collections/wardrobe-closet",
		"otherSpaces":        "/collections/other-spaces",
	},

	"pages": map[string]any{
		"garages":              "/pages/garages",
		"mudrooms":             "/pages/mudrooms",
		"contractors":          "/pages/contractors",
		"gallery":              "/pages/gallery",
		"assemblyInstructions": "/pages/assembly-and-install",
		"faqs":                 "/pages/frequently-asked-questions",
		"shippingReturns":      "/pages/shipping-returns-warranty",
		"warranty":             "/pages/shipping-returns-warranty#warranty",
		"buyNowShipLater":      "/pages/buy-now-ship-later",
		"safetyGuidelines":     "/pages/safety-and-assembly-guidelines",
		"contactUs":            "/pages/contact-us",
		"privacyPolicy":        "/pages/privacy-policy",
	},

	"policies": map[string]any{
		"termsOfService": "/policies/terms-of-service",
	},
}

// ResolveRoute resolves a dotted key like "collections.vista" to its
// path. Unknown keys resolve to "/" with a warning, never an error: a
// broken link beats a broken page.
func ResolveRoute(key string) string {
	var current any = Routes
	for _, part := range strings.Split(key, ".") {
		table, ok := current.(map[string]any)
		if !ok {
			config.GetLogger().Warn("Route key descends past a leaf", gecho.Field("key", key))
			return "/"
		}
		current, ok = table[part]
		if !ok {
			config.GetLogger().Warn("Route not found", gecho.Field("key", key))
			return "/"
		}
	}

	path, ok := current.(string)
	if !ok {
		config.GetLogger().Warn("Route key does not resolve to a path", gecho.Field("key", key))
		return "/"
	}
	return path
}

// IsExternalURL reports whether a URL points off-origin.
func IsExternalURL(url string) bool {
	return strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://")
}
