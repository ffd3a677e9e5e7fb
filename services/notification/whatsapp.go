package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"sanocare/config"
	"sanocare/utils"

	"go.uber.org/zap"
)

// WhatsAppNotifier produces a WhatsApp compose deep link for the recipient
// and hands it to an optional outbound gateway. Without a gateway the link
// is logged, which keeps dispatch usable in development.
type WhatsAppNotifier struct {
	GatewayURL string
	Client     *http.Client
}

// NewWhatsAppNotifier builds a notifier against the configured gateway.
func NewWhatsAppNotifier() *WhatsAppNotifier {
	return &WhatsAppNotifier{
		GatewayURL: config.AppConfig.NotifyGatewayURL,
		Client:     &http.Client{Timeout: 10 * time.Second},
	}
}

// ComposeLink builds the wa.me deep link for a recipient and message.
func ComposeLink(recipientPhone, message string) string {
	phone := strings.ReplaceAll(recipientPhone, " ", "")
	phone = strings.TrimPrefix(phone, "+")
	return fmt.Sprintf("https://wa.me/%s?text=%s", phone, url.QueryEscape(message))
}

type gatewayPayload struct {
	Phone   string `json:"phone"`
	Message string `json:"message"`
	Link    string `json:"link"`
}

// Notify delivers the message. Gateway errors are returned so the caller
// can surface a warning and the queue can retry.
func (n *WhatsAppNotifier) Notify(ctx context.Context, recipientPhone, message string) error {
	link := ComposeLink(recipientPhone, message)

	if n.GatewayURL == "" {
		utils.GetLogger().Info("dispatch notice composed",
			zap.String("phone", recipientPhone), zap.String("link", link))
		return nil
	}

	body, err := json.Marshal(gatewayPayload{Phone: recipientPhone, Message: message, Link: link})
	if err != nil {
		return fmt.Errorf("failed to marshal notify payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.GatewayURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build notify request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.Client.Do(req)
	if err != nil {
		return fmt.Errorf("notify gateway request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("notify gateway returned status %d", resp.StatusCode)
	}
	return nil
}
