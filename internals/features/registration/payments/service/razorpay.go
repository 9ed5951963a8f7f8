package service

import (
	"errors"
	"fmt"
	"strconv"

	razorpay "github.com/razorpay/razorpay-go"
)

/* =========================================================
   Razorpay Client
========================================================= */

// RegistrationFeePaise is the fixed registration fee: ₹450 in paise.
const RegistrationFeePaise = 45000

const Currency = "INR"

// OrderCreator is what the order controller depends on; tests swap in
// a fake, production uses RazorpayService.
type OrderCreator interface {
	CreateOrder(amountPaise int64, currency string) (orderID string, amount string, err error)
}

type RazorpayService struct {
	client *razorpay.Client
}

// NewRazorpayService builds the SDK client once at bootstrap.
// The 10s timeout keeps a slow gateway from holding requests forever.
func NewRazorpayService(keyID, keySecret string) *RazorpayService {
	client := razorpay.NewClient(keyID, keySecret)
	client.SetTimeout(10)
	return &RazorpayService{client: client}
}

func (s *RazorpayService) CreateOrder(amountPaise int64, currency string) (string, string, error) {
	data := map[string]interface{}{
		"amount":   amountPaise,
		"currency": currency,
	}

	body, err := s.client.Order.Create(data, nil)
	if err != nil {
		return "", "", err
	}

	orderID, ok := body["id"].(string)
	if !ok || orderID == "" {
		return "", "", errors.New("razorpay response missing order id")
	}

	return orderID, amountAsString(body["amount"], amountPaise), nil
}

// amountAsString renders the gateway-reported amount as text, the way
// the order record stores it. Falls back to the requested amount.
func amountAsString(v interface{}, requested int64) string {
	switch a := v.(type) {
	case float64:
		return strconv.FormatInt(int64(a), 10)
	case int64:
		return strconv.FormatInt(a, 10)
	case int:
		return strconv.Itoa(a)
	case string:
		if a != "" {
			return a
		}
	case fmt.Stringer:
		return a.String()
	}
	return strconv.FormatInt(requested, 10)
}
