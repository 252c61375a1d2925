// Package notify pushes new-order notifications to the storefront admins
// over Telegram. The notifier is optional: without a token it stays disabled
// and nothing references it.
package notify

import (
	"fmt"
	"log"

	"roll-point/models"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type Notifier struct {
	api    *tgbotapi.BotAPI
	chatID int64
}

// New returns nil (disabled) when token or chatID is unset.
func New(token string, chatID int64) (*Notifier, error) {
	if token == "" || chatID == 0 {
		return nil, nil
	}
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram notifier: %w", err)
	}
	return &Notifier{api: api, chatID: chatID}, nil
}

// OrderPlaced sends a short order summary to the admin chat. Send failures
// are logged, never surfaced to the customer.
func (n *Notifier) OrderPlaced(o *models.Order) {
	lines := 0
	for _, it := range o.Items {
		lines += it.Quantity
	}
	text := fmt.Sprintf(
		"New order %s\nCustomer: %s\nItems: %d\nTotal: %d\nDeliver by: %s",
		o.OrderID, o.UserName, lines, o.Total,
		o.EstimatedDelivery.Format("15:04"),
	)
	if _, err := n.api.Send(tgbotapi.NewMessage(n.chatID, text)); err != nil {
		log.Printf("notify order %s: %v", o.OrderID, err)
	}
}
