package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"medicare-plus/config"

	razorpay "github.com/razorpay/razorpay-go"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// ErrInvalidSignature is returned when a gateway callback signature does not
// match the order/payment pair.
var ErrInvalidSignature = errors.New("invalid payment signature")

// PaymentOrder is the gateway order handed back to the client so it can open
// the checkout flow.
type PaymentOrder struct {
	OrderID  string          `json:"order_id"`
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
	Receipt  string          `json:"receipt"`
}

// PaymentService is the online payment collaborator. Booking itself never
// talks to the gateway: signature verification happens here, before the
// booking request is submitted with paymentMethod=Razorpay.
type PaymentService interface {
	CreateOrder(amount decimal.Decimal) (*PaymentOrder, error)
	VerifySignature(orderID, paymentID, signature string) error
}

type razorpayService struct {
	client *razorpay.Client
	cfg    config.RazorpayConfig
	log    *logrus.Logger
	curr   string
}

func NewPaymentService(cfg config.RazorpayConfig, currency string, log *logrus.Logger) PaymentService {
	return &razorpayService{
		client: razorpay.NewClient(cfg.KeyID, cfg.KeySecret),
		cfg:    cfg,
		log:    log,
		curr:   currency,
	}
}

func (s *razorpayService) CreateOrder(amount decimal.Decimal) (*PaymentOrder, error) {
	receipt := fmt.Sprintf("receipt_%d", time.Now().UnixMilli())

	// Gateway expects the amount in the currency's smallest unit (paise)
	data := map[string]interface{}{
		"amount":   amount.Mul(decimal.NewFromInt(100)).IntPart(),
		"currency": s.curr,
		"receipt":  receipt,
	}

	body, err := s.client.Order.Create(data, nil)
	if err != nil {
		s.log.Warnf("Failed to create payment order: %+v", err)
		return nil, fmt.Errorf("create payment order: %w", err)
	}

	orderID, ok := body["id"].(string)
	if !ok {
		return nil, errors.New("payment order response missing id")
	}

	return &PaymentOrder{
		OrderID:  orderID,
		Amount:   amount,
		Currency: s.curr,
		Receipt:  receipt,
	}, nil
}

// VerifySignature checks the HMAC-SHA256 of "orderID|paymentID" against the
// signature returned by the gateway checkout.
func (s *razorpayService) VerifySignature(orderID, paymentID, signature string) error {
	mac := hmac.New(sha256.New, []byte(s.cfg.KeySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return ErrInvalidSignature
	}
	return nil
}
