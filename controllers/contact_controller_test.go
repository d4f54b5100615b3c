package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/take-two/storefront/contact"
	"github.com/take-two/storefront/models"
)

type stubChannel struct {
	ack string
	err error
}

func (s *stubChannel) Send(ctx context.Context, msg models.ContactMessage) (string, error) {
	return s.ack, s.err
}

func newContactRouter(ch contact.Channel) *gin.Engine {
	cc := NewContactController(contact.NewForm(ch, zap.NewNop()))
	r := gin.New()
	r.POST("/api/contact", cc.Submit)
	r.GET("/api/contact/state", cc.State)
	return r
}

func postContact(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodPost, "/api/contact", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestContactSubmit(t *testing.T) {
	t.Run("Success - 200 OK", func(t *testing.T) {
		router := newContactRouter(&stubChannel{ack: "OK"})
		rec := postContact(router, `{"name":"Nour","email":"nour@example.com","message":"Hi"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		var body map[string]string
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "OK", body["ack_ref"])

		rec2 := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/api/contact/state", nil)
		router.ServeHTTP(rec2, req)
		assert.Contains(t, rec2.Body.String(), "sent")
	})

	t.Run("missing field - 400", func(t *testing.T) {
		router := newContactRouter(&stubChannel{ack: "OK"})
		rec := postContact(router, `{"name":"Nour","message":"Hi"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "email")
	})

	t.Run("bad email - 400", func(t *testing.T) {
		router := newContactRouter(&stubChannel{ack: "OK"})
		rec := postContact(router, `{"name":"Nour","email":"not-an-email","message":"Hi"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed payload - 400", func(t *testing.T) {
		router := newContactRouter(&stubChannel{ack: "OK"})
		rec := postContact(router, `{`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("delivery failure - 502", func(t *testing.T) {
		router := newContactRouter(&stubChannel{
			err: &contact.DeliveryError{Status: 401, Cause: errors.New("unauthorized")},
		})
		rec := postContact(router, `{"name":"Nour","email":"nour@example.com","message":"Hi"}`)

		assert.Equal(t, http.StatusBadGateway, rec.Code)
		assert.Contains(t, rec.Body.String(), "authentication")
	})
}
