package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	OrderStatusCreated        = "created"
	OrderStatusPaymentPending = "payment_pending"
	OrderStatusPaid           = "paid"
)

type Order struct {
	ID              primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	SessionID       string             `json:"session_id" bson:"session_id"`
	Items           []LineItem         `json:"items" bson:"items"`
	Total           float64            `json:"total" bson:"total"`
	Status          string             `json:"status" bson:"status"`
	PaymentIntentID string             `json:"payment_intent_id,omitempty" bson:"payment_intent_id,omitempty"`
	CreatedAt       time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at,omitempty" bson:"updated_at,omitempty"`
}
