// Package notifier delivers best-effort status notifications to parties over
// an HTTP webhook. Delivery runs after the transition has committed; a failed
// delivery is logged by the caller and never reverses the transition.
package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"time"

	"linkmarket/internal/core/domain/model/kernel"
	"linkmarket/internal/core/domain/model/order"
)

// WebhookNotifier implements ports.Notifier via an HTTP endpoint.
// Each notification is a single POST to <base>/notifications carrying the
// recipient, the order, and the status the order just entered.
type WebhookNotifier struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

// payload mirrors the JSON body sent to the webhook endpoint.
type payload struct {
	RecipientID string `json:"recipientId"`
	OrderID     string `json:"orderId"`
	NewStatus   string `json:"newStatus"`
}

// NewWebhookNotifier creates a webhook notifier with a default timeout.
func NewWebhookNotifier(baseURL string, logger *slog.Logger) (*WebhookNotifier, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse notification url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("notification url must be absolute")
	}
	return &WebhookNotifier{
		baseURL: parsed,
		logger:  logger.With("component", "webhook_notifier"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// Notify posts a status notification for one recipient.
func (n *WebhookNotifier) Notify(
	ctx context.Context,
	recipientID kernel.UUID,
	orderID kernel.UUID,
	newStatus order.Status,
) error {
	endpoint := *n.baseURL
	endpoint.Path = path.Join(endpoint.Path, "/notifications")

	body, err := json.Marshal(payload{
		RecipientID: recipientID.String(),
		OrderID:     orderID.String(),
		NewStatus:   newStatus.String(),
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	default:
		respBody, _ := io.ReadAll(resp.Body)
		n.logger.Error("notification request failed",
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(respBody)))
		return fmt.Errorf("notification error: %s", resp.Status)
	}
}
