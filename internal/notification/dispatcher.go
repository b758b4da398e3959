package notification

import (
	"context"
	"fmt"
	"log"

	"app/internal/domain/model"
)

// OrderDispatcher sends the order-received SMS. It is strictly best
// effort: every failure is logged and absorbed here, so the order
// creation that triggered it cannot be affected.
type OrderDispatcher struct {
	sender   Sender
	currency string
}

func NewOrderDispatcher(sender Sender, currency string) *OrderDispatcher {
	return &OrderDispatcher{sender: sender, currency: currency}
}

func (d *OrderDispatcher) OrderCreated(ctx context.Context, o model.OrderWithCustomer) {
	if o.CustomerPhone == "" || o.CustomerName == "" || o.Item == "" {
		log.Printf("notification: missing order data, skipping SMS for order %s", o.ID)
		return
	}

	message := fmt.Sprintf(
		"Hello %s! Your order for %s worth %s %s has been received. Thank you!",
		o.CustomerName, o.Item, d.currency, o.Amount.StringFixed(2),
	)

	if err := d.sender.Send(ctx, o.CustomerPhone, message); err != nil {
		log.Printf("notification: failed to send SMS to %s: %v", o.CustomerPhone, err)
		return
	}
	log.Printf("notification: SMS sent to %s for order %s", o.CustomerPhone, o.ID)
}
