package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/take-two/storefront/models"
)

// EmailJSChannel sends contact messages through an EmailJS-compatible HTTP
// endpoint, identified by a service ID, a template ID and a public key.
type EmailJSChannel struct {
	baseURL    string
	serviceID  string
	templateID string
	publicKey  string
	httpClient *http.Client
}

func NewEmailJSChannel(baseURL, serviceID, templateID, publicKey string) *EmailJSChannel {
	return &EmailJSChannel{
		baseURL:    strings.TrimRight(baseURL, "/"),
		serviceID:  serviceID,
		templateID: templateID,
		publicKey:  publicKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

type emailJSRequest struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	TemplateParams map[string]string `json:"template_params"`
}

func (c *EmailJSChannel) Send(ctx context.Context, msg models.ContactMessage) (string, error) {
	body, err := json.Marshal(emailJSRequest{
		ServiceID:  c.serviceID,
		TemplateID: c.templateID,
		UserID:     c.publicKey,
		TemplateParams: map[string]string{
			"from_name":  msg.Name,
			"from_email": msg.Email,
			"message":    msg.Message,
			"reply_to":   msg.Email,
		},
	})
	if err != nil {
		return "", err
	}

	url := c.baseURL + "/api/v1.0/email/send"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &DeliveryError{Status: 0, Cause: err}
	}
	defer resp.Body.Close()

	payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &DeliveryError{
			Status: resp.StatusCode,
			Cause:  fmt.Errorf("%s", strings.TrimSpace(string(payload))),
		}
	}

	ack := strings.TrimSpace(string(payload))
	if ack == "" {
		ack = fmt.Sprintf("emailjs-%d", time.Now().UnixNano())
	}
	return ack, nil
}
