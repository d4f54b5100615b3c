package models

import "time"

const (
	DeliveryStatusSent   = "sent"
	DeliveryStatusFailed = "failed"
)

// DeliveryLog records one server-side contact delivery attempt.
type DeliveryLog struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	FromName  string    `json:"from_name"`
	FromEmail string    `json:"from_email"`
	Status    string    `json:"status"`
	AckRef    string    `json:"ack_ref,omitempty"`
	Error     string    `json:"error,omitempty"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

type DeliveryLogFilter struct {
	Status   string
	Page     int
	PageSize int
}
