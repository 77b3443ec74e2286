package utils

import (
	"log"
	"os"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/mazin-goub/Hameed/models"
)

// NotifyOrderCreated posts a short summary of a new order to the webhook
// configured in ORDER_WEBHOOK_URL. Fire-and-forget: failures are logged
// and never affect the order itself.
func NotifyOrderCreated(order models.Order) {
	webhookURL := os.Getenv("ORDER_WEBHOOK_URL")
	if webhookURL == "" {
		return
	}

	payload := map[string]any{
		"orderId":      order.ID,
		"orderType":    order.OrderType,
		"customerName": order.CustomerName,
		"totalAmount":  order.TotalAmount,
		"status":       order.Status,
	}

	resp, err := resty.New().SetTimeout(10 * time.Second).
		R().
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post(webhookURL)

	if err != nil {
		log.Printf("Order webhook failed for order %d: %v", order.ID, err)
		return
	}
	if resp.StatusCode() >= 300 {
		log.Printf("Order webhook for order %d returned status %d", order.ID, resp.StatusCode())
	}
}
