package notification

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	portssvc "github.com/gurukosh/guru_finance_app/internal/core/ports/services"
	"github.com/panjf2000/ants/v2"
)

const sendTimeout = 10 * time.Second

// SMSNotifier delivers member notifications through an HTTP SMS gateway.
// Sends run on a bounded worker pool so a slow gateway never blocks the
// request path; delivery failures are logged and dropped.
type SMSNotifier struct {
	gatewayURL string
	senderID   string
	pool       *ants.Pool
	client     *http.Client
	logger     *slog.Logger
}

var _ portssvc.Notifier = (*SMSNotifier)(nil)

// NewSMSNotifier creates a notifier backed by a worker pool of the given size.
func NewSMSNotifier(gatewayURL, senderID string, workers int, logger *slog.Logger) (*SMSNotifier, error) {
	pool, err := ants.NewPool(workers)
	if err != nil {
		return nil, err
	}
	return &SMSNotifier{
		gatewayURL: gatewayURL,
		senderID:   senderID,
		pool:       pool,
		client:     &http.Client{Timeout: sendTimeout},
		logger:     logger,
	}, nil
}

// NotifySMS queues a text message for delivery. The mobile number may be
// empty, in which case the send is skipped.
func (n *SMSNotifier) NotifySMS(ctx context.Context, mobile string, message string) {
	if mobile == "" {
		return
	}

	err := n.pool.Submit(func() {
		n.send(mobile, message)
	})
	if err != nil {
		n.logger.Warn("SMS send dropped, worker pool unavailable",
			slog.String("mobile", mobile), slog.String("error", err.Error()))
	}
}

func (n *SMSNotifier) send(mobile, message string) {
	ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
	defer cancel()

	form := url.Values{}
	form.Set("sender", n.senderID)
	form.Set("mobile", mobile)
	form.Set("message", message)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.gatewayURL, strings.NewReader(form.Encode()))
	if err != nil {
		n.logger.Error("Failed to build SMS request", slog.String("error", err.Error()))
		return
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := n.client.Do(req)
	if err != nil {
		n.logger.Warn("SMS delivery failed", slog.String("mobile", mobile), slog.String("error", err.Error()))
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		n.logger.Warn("SMS gateway rejected message",
			slog.String("mobile", mobile), slog.Int("status", resp.StatusCode))
		return
	}
	n.logger.Debug("SMS delivered", slog.String("mobile", mobile))
}

// Close drains queued sends and releases the worker pool.
func (n *SMSNotifier) Close() {
	n.pool.Release()
}

// NoopNotifier discards all notifications. Used when SMS is disabled.
type NoopNotifier struct{}

var _ portssvc.Notifier = (*NoopNotifier)(nil)

func (NoopNotifier) NotifySMS(ctx context.Context, mobile string, message string) {}

func (NoopNotifier) Close() {}
