package debug

import (
	"net/http"

	"github.com/MonkyMars/gecho"
)

func (drm *DebugRoutesManager) ClearCache(w http.ResponseWriter, r *http.Request) {
	err := drm.cacheService.ClearAll()
	if err != nil {
		gecho.InternalServerError(w,
			gecho.WithMessage("error.cache.clearFailed"),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("success.cache.cleared"),
		gecho.Send(),
	)
}

func (drm *DebugRoutesManager) ClearProductCache(w http.ResponseWriter, r *http.Request) {
	if err := drm.cacheService.InvalidateProductCaches(); err != nil {
		gecho.InternalServerError(w,
			gecho.WithMessage("error.cache.clearFailed"),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("success.cache.productsCleared"),
		gecho.Send(),
	)
}

func (drm *DebugRoutesManager) ClearContentCache(w http.ResponseWriter, r *http.Request) {
	if err := drm.cacheService.InvalidateContentCaches(); err != nil {
		gecho.InternalServerError(w,
			gecho.WithMessage("error.cache.clearFailed"),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("success.cache.contentCleared"),
		gecho.Send(),
	)
}

func (drm *DebugRoutesManager) CacheStats(w http.ResponseWriter, r *http.Request) {
	gecho.Success(w,
		gecho.WithData(drm.cacheService.GetConnectionStats()),
		gecho.Send(),
	)
}
