package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/AkumaMonarch/NekoEats/internal/model"
)

// Client delivers the full order payload to the confirmation webhook
// configured in store settings. Delivery is best-effort: a failure is logged
// and never propagated, because the order has already been committed.
type Client struct {
	client *http.Client
}

func NewClient() *Client {
	return &Client{
		client: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

// NotifyOrderCreated POSTs the order (customer, items, totals) as JSON.
func (c *Client) NotifyOrderCreated(url string, order *model.Order) {
	b, err := json.Marshal(order)
	if err != nil {
		log.Printf("webhook: marshal order %s: %v", order.ID, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(b))
	if err != nil {
		log.Printf("webhook: build request for order %s: %v", order.ID, err)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		log.Printf("webhook: deliver order %s: %v", order.ID, err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		log.Printf("webhook: deliver order %s: status %s", order.ID, resp.Status)
	}
}
