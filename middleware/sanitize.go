package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"

	"github.com/gin-gonic/gin"
)

// SanitizeJSON strips Mongo operator keys ($-prefixed or dotted) out of JSON
// request bodies before they reach any handler.
func SanitizeJSON() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body == nil || !strings.Contains(c.ContentType(), "application/json") {
			c.Next()
			return
		}

		body, err := io.ReadAll(c.Request.Body)
		if err != nil || len(bytes.TrimSpace(body)) == 0 {
			c.Request.Body = io.NopCloser(bytes.NewReader(body))
			c.Next()
			return
		}

		var doc interface{}
		if err := json.Unmarshal(body, &doc); err != nil {
			// Leave malformed bodies to the handler's own binding error.
			c.Request.Body = io.NopCloser(bytes.NewReader(body))
			c.Next()
			return
		}

		clean, err := json.Marshal(sanitizeValue(doc))
		if err != nil {
			c.Request.Body = io.NopCloser(bytes.NewReader(body))
			c.Next()
			return
		}

		c.Request.Body = io.NopCloser(bytes.NewReader(clean))
		c.Request.ContentLength = int64(len(clean))
		c.Next()
	}
}

func sanitizeValue(v interface{}) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(val))
		for k, inner := range val {
			if strings.HasPrefix(k, "$") || strings.Contains(k, ".") {
				continue
			}
			out[k] = sanitizeValue(inner)
		}
		return out
	case []interface{}:
		out := make([]interface{}, 0, len(val))
		for _, inner := range val {
			out = append(out, sanitizeValue(inner))
		}
		return out
	default:
		return v
	}
}
