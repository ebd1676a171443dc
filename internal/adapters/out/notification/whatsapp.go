// Package notification dispatches recipient-facing WhatsApp template
// messages through the Meta Graph API. Dispatch is best-effort by contract:
// every failure is logged and swallowed, a delivery proceeds whether or not
// the recipient could be messaged.
package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"deliverylink/internal/core/ports"
)

const (
	defaultBaseURL    = "https://graph.facebook.com"
	defaultAPIVersion = "v22.0"

	// trackingTemplate carries five text parameters: recipient name,
	// machine status, human phrase, route summary, tracking URL.
	trackingTemplate = "deliverytracking"
)

// WhatsAppConfig configures the Graph API client.
type WhatsAppConfig struct {
	// BaseURL overrides the Graph API host, used by tests.
	BaseURL    string
	APIVersion string
	PhoneID    string
	Token      string
	// TrackingBaseURL is the public site prefix for tracking links,
	// e.g. "https://deliverylink.example". The order number is appended.
	TrackingBaseURL string
}

// WhatsAppNotifier implements ports.Notifier over WhatsApp template messages.
type WhatsAppNotifier struct {
	cfg    WhatsAppConfig
	client *http.Client
	logger *slog.Logger
}

// NewWhatsAppNotifier creates a notifier with a short request timeout so a
// slow Graph API never stalls the caller's goroutine for long.
func NewWhatsAppNotifier(cfg WhatsAppConfig, logger *slog.Logger) *WhatsAppNotifier {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.APIVersion == "" {
		cfg.APIVersion = defaultAPIVersion
	}

	return &WhatsAppNotifier{
		cfg:    cfg,
		client: &http.Client{Timeout: 10 * time.Second},
		logger: logger.With("component", "whatsapp_notifier"),
	}
}

// NotifyStatusUpdate sends the recipient a lifecycle update.
func (n *WhatsAppNotifier) NotifyStatusUpdate(ctx context.Context, notification ports.StatusNotification) {
	trackingURL := fmt.Sprintf("%s/track/%s", n.cfg.TrackingBaseURL, notification.OrderNumber)

	n.sendTemplate(ctx, notification.RecipientPhone, trackingTemplate, []templateParameter{
		textParam(notification.RecipientName),
		textParam(notification.StatusLabel),
		textParam(notification.Headline),
		textParam(notification.RouteSummary),
		textParam(trackingURL),
	})
}

// NotifyDeliveryCode sends the recipient their one-time confirmation code.
func (n *WhatsAppNotifier) NotifyDeliveryCode(ctx context.Context, notification ports.CodeNotification) {
	n.sendTemplate(ctx, notification.RecipientPhone, trackingTemplate, []templateParameter{
		textParam(notification.RecipientName),
		textParam("arriving_soon"),
		textParam("awaiting otp"),
		textParam(fmt.Sprintf("Your OTP is %s, kindly give this to the driver", notification.Code)),
		textParam(notification.Code),
	})
}

type templateParameter struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

func textParam(text string) templateParameter {
	return templateParameter{Type: "text", Text: text}
}

type templateMessage struct {
	MessagingProduct string   `json:"messaging_product"`
	To               string   `json:"to"`
	Type             string   `json:"type"`
	Template         template `json:"template"`
}

type template struct {
	Name       string      `json:"name"`
	Language   language    `json:"language"`
	Components []component `json:"components"`
}

type language struct {
	Code string `json:"code"`
}

type component struct {
	Type       string              `json:"type"`
	Parameters []templateParameter `json:"parameters"`
}

func (n *WhatsAppNotifier) sendTemplate(ctx context.Context, phone, templateName string, params []templateParameter) {
	to := NormalizeKenyanPhone(phone)

	payload := templateMessage{
		MessagingProduct: "whatsapp",
		To:               to,
		Type:             "template",
		Template: template{
			Name:       templateName,
			Language:   language{Code: "en"},
			Components: []component{{Type: "body", Parameters: params}},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		n.logger.Error("marshal template message", "error", err)
		return
	}

	url := fmt.Sprintf("%s/%s/%s/messages", n.cfg.BaseURL, n.cfg.APIVersion, n.cfg.PhoneID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		n.logger.Error("build template request", "error", err)
		return
	}
	req.Header.Set("Authorization", "Bearer "+n.cfg.Token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		n.logger.Warn("whatsapp dispatch failed", "template", templateName, "error", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		n.logger.Warn("whatsapp dispatch rejected",
			"template", templateName,
			"status", resp.StatusCode,
			"response", string(detail),
		)
	}
}
