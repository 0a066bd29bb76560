package interfaces

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"job-board/domain"
)

// CachedListing short-circuits the request with the cached listing snapshot
// when one exists. On a miss the downstream handler runs and is responsible
// for repopulating the cache. Any cache failure, including a corrupt payload,
// degrades to a miss: the read path must keep working when Redis is down.
func CachedListing(cache domain.ListingCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		payload, found, err := cache.GetListing(c.Request.Context())
		if err != nil {
			logrus.Warnf("redis cache middleware error: %v", err)
			c.Next()
			return
		}
		if !found {
			logrus.Info("💾 Cache miss")
			c.Next()
			return
		}
		if !json.Valid(payload) {
			logrus.Warn("redis cache middleware error: stored payload is not valid JSON")
			c.Next()
			return
		}

		logrus.Info("📦 Cache hit")
		c.Data(http.StatusOK, "application/json; charset=utf-8", payload)
		c.Abort()
	}
}
