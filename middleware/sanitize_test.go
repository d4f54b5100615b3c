package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func sanitizedBody(t *testing.T, contentType, body string) string {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var seen []byte
	r := gin.New()
	r.Use(SanitizeJSON())
	r.POST("/", func(c *gin.Context) {
		seen, _ = io.ReadAll(c.Request.Body)
		c.Status(http.StatusOK)
	})

	req, _ := http.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return string(seen)
}

func TestSanitizeJSON(t *testing.T) {
	t.Run("strips operator keys", func(t *testing.T) {
		out := sanitizedBody(t, "application/json",
			`{"email":{"$gt":""},"name":"Nour"}`)

		var doc map[string]interface{}
		assert.NoError(t, json.Unmarshal([]byte(out), &doc))
		assert.Equal(t, "Nour", doc["name"])
		assert.NotContains(t, out, "$gt")
	})

	t.Run("strips dotted keys", func(t *testing.T) {
		out := sanitizedBody(t, "application/json",
			`{"profile.role":"admin","name":"Nour"}`)

		assert.NotContains(t, out, "profile.role")
		assert.Contains(t, out, "Nour")
	})

	t.Run("sanitizes nested arrays", func(t *testing.T) {
		out := sanitizedBody(t, "application/json",
			`{"items":[{"$where":"1==1","name":"Hoodie"}]}`)

		assert.NotContains(t, out, "$where")
		assert.Contains(t, out, "Hoodie")
	})

	t.Run("malformed body passes through", func(t *testing.T) {
		out := sanitizedBody(t, "application/json", `{not json`)
		assert.Equal(t, `{not json`, out)
	})

	t.Run("non-json body untouched", func(t *testing.T) {
		out := sanitizedBody(t, "text/plain", `$gt`)
		assert.Equal(t, `$gt`, out)
	})
}
