package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// UsageTracker receives product usage events.
type UsageTracker interface {
	Enqueue(distinctID, event string, properties map[string]any)
}

// UsageTracking reports every successful, identified API call to tracker.
// The event name is derived from the route, e.g. "/api/v1/journal-entries/:entryID" -> "api_v1_journal-entries_entryID".
func UsageTracking(tracker UsageTracker) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if tracker == nil || len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}
		userID, ok := GetUserIDFromContext(c)
		if !ok {
			return
		}
		event := usageEventName(c.FullPath())
		if event == "" {
			return
		}

		props := map[string]any{
			"method":      c.Request.Method,
			"status_code": c.Writer.Status(),
		}
		if companyID, ok := GetCompanyIDFromContext(c); ok {
			props["company_id"] = companyID
		}
		if id := RequestIDFromCtx(c.Request.Context()); id != "" {
			props["request_id"] = id
		}
		tracker.Enqueue(userID, event, props)
	}
}

func usageEventName(route string) string {
	route = strings.Trim(route, "/")
	route = strings.ReplaceAll(route, ":", "")
	return strings.ReplaceAll(route, "/", "_")
}
