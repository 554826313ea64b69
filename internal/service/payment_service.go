package service

import (
	"context"
	"fmt"
	"time"

	"github.com/faisal5177/bistro-boss-restaurant-server/internal/dto"
	"github.com/faisal5177/bistro-boss-restaurant-server/internal/infra"
	"github.com/faisal5177/bistro-boss-restaurant-server/internal/model"
	"github.com/faisal5177/bistro-boss-restaurant-server/internal/repository"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CardGateway is the external card processor boundary.
type CardGateway interface {
	CreateIntent(ctx context.Context, amountCents int64) (*infra.IntentResponse, error)
}

// ReceiptDispatcher enqueues the async receipt job after settlement.
type ReceiptDispatcher interface {
	EnqueueReceipt(ctx context.Context, paymentID string) error
}

type PaymentService interface {
	CreateIntent(ctx context.Context, price float64) (*dto.CreateIntentResponse, error)
	Settle(ctx context.Context, req dto.SettlePaymentRequest) (*dto.SettlePaymentResponse, error)
	ListByEmail(ctx context.Context, email string) ([]model.Payment, error)
}

type paymentService struct {
	payments   repository.PaymentRepository
	carts      repository.CartRepository
	gateway    CardGateway
	cb         *infra.CircuitBreaker
	dispatcher ReceiptDispatcher
}

func NewPaymentService(
	payments repository.PaymentRepository,
	carts repository.CartRepository,
	gateway CardGateway,
	cb *infra.CircuitBreaker,
	dispatcher ReceiptDispatcher,
) PaymentService {
	return &paymentService{
		payments:   payments,
		carts:      carts,
		gateway:    gateway,
		cb:         cb,
		dispatcher: dispatcher,
	}
}

// CreateIntent validates the price, converts it to the smallest
// currency unit (rounded to the nearest integer) and asks the card
// processor for a client secret. Network failures are surfaced, not
// retried.
func (s *paymentService) CreateIntent(ctx context.Context, price float64) (*dto.CreateIntentResponse, error) {
	if price <= 0 {
		return nil, ErrInvalidPrice
	}

	cents := decimal.NewFromFloat(price).
		Mul(decimal.NewFromInt(100)).
		Round(0).
		IntPart()

	var resp *infra.IntentResponse
	call := func() error {
		var err error
		resp, err = s.gateway.CreateIntent(ctx, cents)
		return err
	}

	var err error
	if s.cb != nil {
		err = s.cb.Execute(call)
	} else {
		err = call()
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	return &dto.CreateIntentResponse{ClientSecret: resp.ClientSecret}, nil
}

// Settle records the payment document and retires the cart items it
// paid for.
//
// Step order matters: the payment insert is the durability point.
// Once it succeeds the payment is settled even if the cart delete
// fails afterwards — the document stays flagged cartsCleared=false and
// the reconciler re-runs the idempotent delete-by-id-set later. The
// two steps are not atomic as a pair; this window is accepted by
// design because the payment record is the source of truth and stale
// cart rows are harmless leftovers.
func (s *paymentService) Settle(ctx context.Context, req dto.SettlePaymentRequest) (*dto.SettlePaymentResponse, error) {
	menuItemIDs, err := parseObjectIDs(req.MenuItemIDs)
	if err != nil {
		return nil, ErrInvalidID
	}
	cartIDs, err := parseObjectIDs(req.CartIDs)
	if err != nil {
		return nil, ErrInvalidID
	}

	payment := &model.Payment{
		Email:         req.Email,
		Price:         req.Price,
		TransactionID: req.TransactionID,
		Date:          parseDate(req.Date),
		Status:        req.Status,
		MenuItemIDs:   menuItemIDs,
		CartIDs:       cartIDs,
		CartsCleared:  false,
	}

	paymentID, err := s.payments.Insert(ctx, payment)
	if err != nil {
		// Nothing was deleted; the caller sees a plain store failure.
		return nil, fmt.Errorf("insert payment: %w", err)
	}
	payment.ID = paymentID

	deleted, err := s.carts.DeleteByIDs(ctx, cartIDs)
	if err != nil {
		// Payment is durable; cleanup is owed. Surface the failure and
		// leave the reconciler to retire the stale cart items.
		log.Error().
			Str("payment_id", paymentID.Hex()).
			Int("cart_ids", len(cartIDs)).
			Err(err).
			Msg("settlement: cart cleanup failed after payment insert")
		return nil, fmt.Errorf("delete cart items: %w", err)
	}

	if err := s.payments.MarkCartsCleared(ctx, paymentID); err != nil {
		// Cleanup actually happened; re-running it later is a no-op.
		log.Warn().Str("payment_id", paymentID.Hex()).Err(err).
			Msg("settlement: failed to flag carts cleared")
	}

	if s.dispatcher != nil {
		if err := s.dispatcher.EnqueueReceipt(ctx, paymentID.Hex()); err != nil {
			log.Warn().Str("payment_id", paymentID.Hex()).Err(err).
				Msg("settlement: failed to enqueue receipt job")
		}
	}

	return &dto.SettlePaymentResponse{
		PaymentResult: dto.InsertResult{InsertedID: paymentID.Hex()},
		DeleteResult:  dto.DeleteResult{DeletedCount: deleted},
	}, nil
}

func (s *paymentService) ListByEmail(ctx context.Context, email string) ([]model.Payment, error) {
	return s.payments.ListByEmail(ctx, email)
}

func parseObjectIDs(hexes []string) ([]primitive.ObjectID, error) {
	ids := make([]primitive.ObjectID, 0, len(hexes))
	for _, h := range hexes {
		oid, err := primitive.ObjectIDFromHex(h)
		if err != nil {
			return nil, err
		}
		ids = append(ids, oid)
	}
	return ids, nil
}

func parseDate(s string) time.Time {
	if s != "" {
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			return t
		}
	}
	return time.Now().UTC()
}
