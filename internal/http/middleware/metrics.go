package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sigc-piloto/sigc-backend/internal/observability"
)

// unmatchedRoute labels requests gin could not route, so arbitrary paths
// never become label values.
const unmatchedRoute = "unmatched"

var probePaths = map[string]struct{}{
	"/metrics":     {},
	"/healthcheck": {},
	"/health":      {},
}

// IsProbePath reports whether path is a scrape or liveness endpoint.
// Those are excluded from request metrics and tracing.
func IsProbePath(path string) bool {
	if path != "/" {
		path = strings.TrimSuffix(path, "/")
	}
	_, ok := probePaths[path]
	return ok
}

// Metrics records count and latency per method, route template and status.
// A nil m disables instrumentation.
func Metrics(m *observability.Metrics) gin.HandlerFunc {
	if m == nil {
		return func(c *gin.Context) { c.Next() }
	}
	return func(c *gin.Context) {
		if IsProbePath(c.Request.URL.Path) {
			c.Next()
			return
		}
		start := time.Now()
		m.ApiInflightInc()
		defer m.ApiInflightDec()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = unmatchedRoute
		}
		status := c.Writer.Status()
		if status == 0 {
			status = http.StatusOK
		}
		m.ObserveAPI(c.Request.Method, route, strconv.Itoa(status), time.Since(start))
	}
}
