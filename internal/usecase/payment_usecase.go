package usecase

import (
	"context"

	"medicare-plus/config"
	"medicare-plus/internal/delivery/dto"
	"medicare-plus/internal/service"

	"github.com/sirupsen/logrus"
)

type PaymentUsecase interface {
	CreateOrder(ctx context.Context) (*dto.PaymentOrderResponse, error)
	VerifyPayment(ctx context.Context, req *dto.VerifyPaymentRequest) error
}

type paymentUsecase struct {
	log            *logrus.Logger
	cfg            config.BookingConfig
	paymentService service.PaymentService
}

func NewPaymentUsecase(log *logrus.Logger, cfg config.BookingConfig, paymentService service.PaymentService) PaymentUsecase {
	return &paymentUsecase{
		log:            log,
		cfg:            cfg,
		paymentService: paymentService,
	}
}

// CreateOrder opens a gateway order for the flat consultation fee. The
// client completes checkout against it and then books with
// paymentMethod=Razorpay.
func (u *paymentUsecase) CreateOrder(ctx context.Context) (*dto.PaymentOrderResponse, error) {
	order, err := u.paymentService.CreateOrder(u.cfg.ConsultationFee)
	if err != nil {
		return nil, err
	}

	return &dto.PaymentOrderResponse{
		OrderID:  order.OrderID,
		Amount:   order.Amount,
		Currency: order.Currency,
		Receipt:  order.Receipt,
	}, nil
}

func (u *paymentUsecase) VerifyPayment(ctx context.Context, req *dto.VerifyPaymentRequest) error {
	if err := u.paymentService.VerifySignature(req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature); err != nil {
		u.log.Warnf("Payment verification failed for order %s: %+v", req.RazorpayOrderID, err)
		return err
	}

	u.log.Infof("Payment verified: order=%s, payment=%s", req.RazorpayOrderID, req.RazorpayPaymentID)
	return nil
}
