package middleware

import (
	"strings"

	"treatment_planner/internal/domain/entities"
	"treatment_planner/internal/infrastructure/notify"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	HeaderCapabilities = "X-Plan-Capabilities"
	HeaderRequestID    = "X-Request-ID"

	capabilitiesKey = "plan_capabilities"
	requestIDKey    = "request_id"
)

// ParseCapabilities reads a comma-separated capability list. Unknown names are
// ignored.
func ParseCapabilities(header string) entities.Capabilities {
	var caps entities.Capabilities
	for _, raw := range strings.Split(header, ",") {
		switch strings.ToLower(strings.TrimSpace(raw)) {
		case "edit":
			caps.Edit = true
		case "approve":
			caps.Approve = true
		case "edit_pricing", "edit-pricing", "pricing":
			caps.EditPricing = true
		case "book":
			caps.Book = true
		}
	}
	return caps
}

// Capabilities stores the caller's capabilities on the gin context.
func Capabilities() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(capabilitiesKey, ParseCapabilities(c.GetHeader(HeaderCapabilities)))
		c.Next()
	}
}

// CapabilitiesFrom returns the capabilities set by Capabilities, or none.
func CapabilitiesFrom(c *gin.Context) entities.Capabilities {
	if v, ok := c.Get(capabilitiesKey); ok {
		if caps, ok := v.(entities.Capabilities); ok {
			return caps
		}
	}
	return entities.Capabilities{}
}

// RequestContext tags the request with an id and the plan code of the route, so
// notifications raised downstream can be correlated.
func RequestContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(HeaderRequestID))
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(HeaderRequestID, id)

		ctx := notify.WithRequestID(c.Request.Context(), id)
		if code := strings.TrimSpace(c.Param("code")); code != "" {
			ctx = notify.WithPlanCode(ctx, code)
		}
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func RequestIDFrom(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
