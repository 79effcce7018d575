package payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/charge"
	"github.com/stripe/stripe-go/v76/oauth"
	"github.com/stripe/stripe-go/v76/refund"
	"go.uber.org/zap"
)

// ErrChargeFailed is returned when Stripe accepts the request but the charge does not succeed.
var ErrChargeFailed = errors.New("failed to create charge with Stripe")

// ApplicationFeePercent is the platform cut taken on every charge.
const ApplicationFeePercent = 5

// PaymentService moves money through Stripe Connect.
type PaymentService interface {
	// Charge bills source for amount cents on behalf of the host's connected account.
	Charge(ctx context.Context, amount int64, source, walletID string) (string, error)
	// Refund reverses a charge made on the connected account.
	Refund(ctx context.Context, chargeID, walletID string) error
	// Connect exchanges an OAuth code for the host's connected account ID.
	Connect(ctx context.Context, code string) (string, error)
	// Disconnect revokes the platform's access to a connected account.
	Disconnect(ctx context.Context, walletID string) error
}

// StripePaymentService implements PaymentService with stripe-go.
// stripe.Key must be set before use.
type StripePaymentService struct {
	clientID string
	logger   *zap.Logger
}

// NewStripePaymentService creates a Stripe-backed PaymentService.
func NewStripePaymentService(clientID string, logger *zap.Logger) *StripePaymentService {
	return &StripePaymentService{clientID: clientID, logger: logger}
}

// ApplicationFee returns the platform fee for amount, rounded to the nearest cent.
func ApplicationFee(amount int64) int64 {
	return (amount*ApplicationFeePercent + 50) / 100
}

func (s *StripePaymentService) Charge(ctx context.Context, amount int64, source, walletID string) (string, error) {
	params := &stripe.ChargeParams{
		Amount:               stripe.Int64(amount),
		Currency:             stripe.String(string(stripe.CurrencyUSD)),
		ApplicationFeeAmount: stripe.Int64(ApplicationFee(amount)),
	}
	params.Context = ctx
	if err := params.SetSource(source); err != nil {
		return "", fmt.Errorf("invalid payment source: %w", err)
	}
	params.SetStripeAccount(walletID)

	ch, err := charge.New(params)
	if err != nil {
		s.logger.Error("stripe charge failed", zap.Error(err), zap.Int64("amount", amount))
		return "", fmt.Errorf("%w: %v", ErrChargeFailed, err)
	}
	if ch.Status != stripe.ChargeStatusSucceeded {
		return "", fmt.Errorf("%w: status %s", ErrChargeFailed, ch.Status)
	}
	s.logger.Info("stripe charge succeeded", zap.String("chargeId", ch.ID), zap.Int64("amount", amount))
	return ch.ID, nil
}

func (s *StripePaymentService) Refund(ctx context.Context, chargeID, walletID string) error {
	params := &stripe.RefundParams{Charge: stripe.String(chargeID)}
	params.Context = ctx
	params.SetStripeAccount(walletID)

	if _, err := refund.New(params); err != nil {
		return fmt.Errorf("failed to refund charge %s: %w", chargeID, err)
	}
	s.logger.Info("stripe charge refunded", zap.String("chargeId", chargeID))
	return nil
}

func (s *StripePaymentService) Connect(ctx context.Context, code string) (string, error) {
	params := &stripe.OAuthTokenParams{
		GrantType: stripe.String("authorization_code"),
		Code:      stripe.String(code),
	}
	params.Context = ctx

	token, err := oauth.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to connect with Stripe: %w", err)
	}
	if token.StripeUserID == "" {
		return "", fmt.Errorf("failed to connect with Stripe: no account returned")
	}
	return token.StripeUserID, nil
}

func (s *StripePaymentService) Disconnect(ctx context.Context, walletID string) error {
	params := &stripe.DeauthorizeParams{
		ClientID:     stripe.String(s.clientID),
		StripeUserID: stripe.String(walletID),
	}
	params.Context = ctx

	if _, err := oauth.Del(params); err != nil {
		return fmt.Errorf("failed to disconnect from Stripe: %w", err)
	}
	return nil
}
