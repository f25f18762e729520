package usecase

import (
	"context"
	"log/slog"
	"math"

	domainErrors "github.com/polyforge/printdesk/internal/domain/errors"
	"github.com/polyforge/printdesk/internal/domain/model"
	"github.com/polyforge/printdesk/internal/domain/repository"
	"github.com/polyforge/printdesk/internal/estimator"
)

// SupportRemovalFee is the flat fee charged when support removal is requested.
const SupportRemovalFee = 5.00

// Notifier dispatches an order summary to the shop owner. Implementations must
// not be relied on for order creation success.
type Notifier interface {
	Notify(ctx context.Context, order *model.Order, upload *model.Upload) error
}

// OrderUseCase encapsulates order intake: validation, pricing, persistence and
// best-effort notification.
type OrderUseCase struct {
	orders         repository.OrderRepository
	notifier       Notifier
	maxUploadBytes int64
	logger         *slog.Logger
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository, notifier Notifier, maxUploadBytes int64, logger *slog.Logger) *OrderUseCase {
	return &OrderUseCase{
		orders:         orders,
		notifier:       notifier,
		maxUploadBytes: maxUploadBytes,
		logger:         logger,
	}
}

// Submit validates the draft, prices it, persists it and triggers
// notification. Notification failure is logged and never propagated: once the
// store accepted the order, the customer gets a success response.
//
// Pricing is authoritative on the server: when a file is uploaded the estimate
// is always recomputed from its size, and any client-supplied figures are
// ignored. Client figures are used only as a fallback when no file accompanies
// the order.
func (u *OrderUseCase) Submit(ctx context.Context, draft model.OrderDraft, upload *model.Upload) (*model.Order, error) {
	if err := ValidateDraft(draft); err != nil {
		return nil, err
	}

	if upload != nil {
		if err := ValidateUpload(*upload, u.maxUploadBytes); err != nil {
			return nil, err
		}
		name := upload.FileName
		draft.ModelFileName = &name

		est, err := estimator.Estimate(upload.Size)
		if err != nil {
			return nil, err
		}
		draft.WeightGrams = est.WeightGrams
		draft.PrintTime = est.PrintTime
		draft.BaseCost = est.BaseCost
	}

	draft.SupportCost = 0
	if draft.SupportRemoval {
		draft.SupportCost = SupportRemovalFee
	}
	draft.TotalCost = roundCents(draft.BaseCost + draft.SupportCost)

	order, err := u.orders.Create(ctx, draft)
	if err != nil {
		return nil, err
	}

	if err := u.notifier.Notify(ctx, order, upload); err != nil {
		u.logger.Error("order notification failed",
			slog.String("order_id", order.ID),
			slog.String("error", err.Error()),
		)
	}

	return order, nil
}

// Analyze exposes the estimator for client-side preview. No side effects.
func (u *OrderUseCase) Analyze(upload model.Upload) (model.Estimate, error) {
	if err := ValidateUpload(upload, u.maxUploadBytes); err != nil {
		return model.Estimate{}, err
	}
	return estimator.Estimate(upload.Size)
}

// Get returns the order with the given identifier.
func (u *OrderUseCase) Get(ctx context.Context, id string) (*model.Order, error) {
	return u.orders.Get(ctx, id)
}

// Update merges a partial patch over an existing order. Toggling support
// removal recomputes the support fee and total from the stored base cost. An
// empty patch is a plain read: the stored order comes back untouched.
func (u *OrderUseCase) Update(ctx context.Context, id string, patch model.OrderPatch) (*model.Order, error) {
	if err := validatePatch(patch); err != nil {
		return nil, err
	}

	if patch.Empty() {
		return u.orders.Get(ctx, id)
	}

	if patch.SupportRemoval != nil {
		existing, err := u.orders.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		fee := 0.0
		if *patch.SupportRemoval {
			fee = SupportRemovalFee
		}
		total := roundCents(existing.BaseCost + fee)
		patch.SupportCost = &fee
		patch.TotalCost = &total
	}

	return u.orders.Update(ctx, id, patch)
}

// List returns all stored orders.
func (u *OrderUseCase) List(ctx context.Context) ([]model.Order, error) {
	return u.orders.List(ctx)
}

func validatePatch(patch model.OrderPatch) error {
	ve := &domainErrors.ValidationError{}
	if patch.Status != nil && !patch.Status.Valid() {
		ve.Add("status", "unknown status value")
	}
	if patch.DeliveryMethod != nil && !patch.DeliveryMethod.Valid() {
		ve.Add("deliveryMethod", "delivery method must be delivery or meetup")
	}
	if ve.HasErrors() {
		return ve
	}
	return nil
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
