// Package notifier delivers order summaries to the shop owner by email.
// Delivery is best effort: callers log failures and carry on.
package notifier

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/polyforge/printdesk/internal/domain/model"
)

// Noop is used when SMTP is not configured. It logs the order instead of
// sending anything.
type Noop struct {
	logger *slog.Logger
}

// NewNoop constructs a logging-only notifier.
func NewNoop(logger *slog.Logger) *Noop {
	return &Noop{logger: logger}
}

// Notify logs the order summary and reports success.
func (n *Noop) Notify(_ context.Context, order *model.Order, _ *model.Upload) error {
	n.logger.Info("email notifications disabled, skipping order notification",
		slog.String("order_id", order.ID),
	)
	return nil
}

// Subject renders the notification subject line.
func Subject(order *model.Order) string {
	return fmt.Sprintf("New print order from %s (%s)", order.Name, order.ID)
}

// Body renders a plain-text summary of every order field. Address lines are
// included only for delivery orders.
func Body(order *model.Order) string {
	var b strings.Builder

	fmt.Fprintf(&b, "A new print order has been received.\n\n")
	fmt.Fprintf(&b, "Order ID: %s\n", order.ID)
	fmt.Fprintf(&b, "Status: %s\n", order.Status)
	fmt.Fprintf(&b, "Created: %s\n\n", order.CreatedAt.Format("2006-01-02 15:04:05 MST"))

	fmt.Fprintf(&b, "Customer: %s\n", order.Name)
	fmt.Fprintf(&b, "Phone: %s\n", order.Phone)
	fmt.Fprintf(&b, "Delivery method: %s\n", order.DeliveryMethod)

	if order.DeliveryMethod == model.DeliveryMethodDelivery {
		fmt.Fprintf(&b, "Address: %s\n", strValue(order.StreetAddress))
		fmt.Fprintf(&b, "City: %s\n", strValue(order.City))
		fmt.Fprintf(&b, "State: %s\n", strValue(order.State))
		fmt.Fprintf(&b, "Zip: %s\n", strValue(order.Zip))
	}

	fmt.Fprintf(&b, "\nModel file: %s\n", strValue(order.ModelFileName))
	fmt.Fprintf(&b, "Estimated weight: %.2f g\n", order.WeightGrams)
	fmt.Fprintf(&b, "Estimated print time: %s\n", order.PrintTime)
	fmt.Fprintf(&b, "Base cost: $%.2f\n", order.BaseCost)
	if order.SupportRemoval {
		fmt.Fprintf(&b, "Support removal: yes ($%.2f)\n", order.SupportCost)
	} else {
		fmt.Fprintf(&b, "Support removal: no\n")
	}
	fmt.Fprintf(&b, "Total cost: $%.2f\n", order.TotalCost)

	return b.String()
}

// DetectContentType sniffs the attachment content type from its bytes, falling
// back to a generic binary type.
func DetectContentType(data []byte) string {
	if len(data) == 0 {
		return "application/octet-stream"
	}
	return mimetype.Detect(data).String()
}

func strValue(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}
