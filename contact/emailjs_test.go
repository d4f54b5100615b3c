package contact

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/take-two/storefront/models"
)

func TestEmailJSChannelSendPayload(t *testing.T) {
	var got emailJSRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1.0/email/send", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte("OK"))
	}))
	defer srv.Close()

	channel := NewEmailJSChannel(srv.URL, "service_id0xdsc", "template_4xon396", "public-key")
	ack, err := channel.Send(context.Background(), models.ContactMessage{
		Name:    "Sara",
		Email:   "sara@example.com",
		Message: "Hello",
	})

	assert.NoError(t, err)
	assert.Equal(t, "OK", ack)
	assert.Equal(t, "service_id0xdsc", got.ServiceID)
	assert.Equal(t, "template_4xon396", got.TemplateID)
	assert.Equal(t, "public-key", got.UserID)
	assert.Equal(t, map[string]string{
		"from_name":  "Sara",
		"from_email": "sara@example.com",
		"message":    "Hello",
		"reply_to":   "sara@example.com",
	}, got.TemplateParams)
}

func TestEmailJSChannelStatusErrors(t *testing.T) {
	for _, status := range []int{400, 401, 500} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "nope", status)
		}))

		channel := NewEmailJSChannel(srv.URL, "svc", "tpl", "key")
		_, err := channel.Send(context.Background(), models.ContactMessage{
			Name: "A", Email: "a@b.co", Message: "m",
		})

		var de *DeliveryError
		assert.ErrorAs(t, err, &de)
		assert.Equal(t, status, de.Status)
		srv.Close()
	}
}

func TestEmailJSChannelNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused

	channel := NewEmailJSChannel(srv.URL, "svc", "tpl", "key")
	_, err := channel.Send(context.Background(), models.ContactMessage{
		Name: "A", Email: "a@b.co", Message: "m",
	})

	var de *DeliveryError
	assert.ErrorAs(t, err, &de)
	assert.Equal(t, 0, de.Status)
}
