package lib

import (
	"os"
	"testing"

	"modularcloset_server/config"
)

func TestMain(m *testing.M) {
	config.InitializeLogger()
	os.Exit(m.Run())
}

func TestResolveRoute(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"home", "/"},
		{"collections.vista", "/collections/vista"},
		{"pages.contractors", "/pages/contractors"},
		{"policies.termsOfService", "/policies/terms-of-service"},
	}

	for _, tt := range tests {
		if got := ResolveRoute(tt.key); got != tt.want {
			t.Errorf("ResolveRoute(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestResolveRouteUnknownFallsBackToHome(t *testing.T) {
	for _, key := range []string{"nope", "collections.nope", "home.too.deep", "collections"} {
		if got := ResolveRoute(key); got != "/" {
			t.Errorf("ResolveRoute(%q) = %q, want /", key, got)
		}
	}
}

func TestIsExternalURL(t *testing.T) {
	if !IsExternalURL("https://example.com/x") {
		t.Error("https URL should be external")
	}
	if IsExternalURL("/collections/vista") {
		t.Error("relative path should not be external")
	}
}
