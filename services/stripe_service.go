package services

import (
	"github.com/stripe/stripe-go/v80"
	"github.com/stripe/stripe-go/v80/paymentintent"
)

type StripeService struct {
	SecretKey string
}

func NewStripeService(secretKey string) *StripeService {
	stripe.Key = secretKey
	return &StripeService{SecretKey: secretKey}
}

// CreatePaymentIntent creates an intent for the given amount in the smallest
// currency unit and tags it with the order ID.
func (s *StripeService) CreatePaymentIntent(amount int64, currency, orderID string) (*stripe.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(currency),
	}
	params.AddMetadata("order_id", orderID)
	return paymentintent.New(params)
}
