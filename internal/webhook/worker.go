package webhook

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/safety_reporting_system/internal/config"
	"github.com/sirupsen/logrus"
)

const (
	headerEvent     = "X-Safety-Event"
	headerDelivery  = "X-Safety-Delivery"
	headerTimestamp = "X-Safety-Timestamp"
	headerSignature = "X-Safety-Signature-256"
)

// errPermanent - получатель отверг событие, повтор не поможет
var errPermanent = errors.New("webhook rejected by receiver")

type deliveryResult int

const (
	delivered deliveryResult = iota
	// skipped - доставка не настроена, событие не считается потерянным
	skipped
	failed
)

// WebhookWorker читает очередь и доставляет события на WEBHOOK_URL
type WebhookWorker struct {
	redisClient *redis.Client
	logger      *logrus.Logger
	cfg         *config.Config
	httpClient  *http.Client
	now         func() time.Time
	// store сохраняет недоставленное событие
	store func(ctx context.Context, event WebhookEvent, payload string)
	// wait ждёт d или отмены ctx; false означает, что ctx отменён
	wait func(ctx context.Context, d time.Duration) bool
}

func NewWebhookWorker(redisClient *redis.Client, logger *logrus.Logger, cfg *config.Config) *WebhookWorker {
	w := &WebhookWorker{
		redisClient: redisClient,
		logger:      logger,
		cfg:         cfg,
		httpClient:  &http.Client{Timeout: cfg.WebhookTimeout},
		now:         time.Now,
		wait:        waitContext,
	}
	w.store = w.deadLetter
	return w
}

func waitContext(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

// Start запускает горутину обработки очереди до отмены ctx
func (w *WebhookWorker) Start(ctx context.Context) {
	w.logger.WithField("queue", queueKey).Info("Starting webhook worker...")
	go w.run(ctx)
}

func (w *WebhookWorker) run(ctx context.Context) {
	for ctx.Err() == nil {
		payload, err := w.pop(ctx)
		if err != nil {
			if ctx.Err() != nil {
				break
			}
			w.logger.WithError(err).Error("Failed to pop webhook event from Redis")
			w.wait(ctx, w.cfg.WebhookTimeout)
			continue
		}

		w.handle(ctx, payload)
	}
	w.logger.Info("Stopping webhook worker.")
}

// handle доставляет одно событие из очереди; в dead-letter попадают только отказы получателя
func (w *WebhookWorker) handle(ctx context.Context, payload string) {
	var event WebhookEvent
	if err := json.Unmarshal([]byte(payload), &event); err != nil {
		w.logger.WithError(err).Error("Dropping malformed webhook event")
		return
	}

	if w.deliver(ctx, event, payload) == failed && ctx.Err() == nil {
		w.store(ctx, event, payload)
	}
}

// pop блокируется на BRPOP без таймаута: ответ - пара [ключ, значение]
func (w *WebhookWorker) pop(ctx context.Context) (string, error) {
	result, err := w.redisClient.BRPop(ctx, 0, queueKey).Result()
	if err != nil {
		return "", err
	}
	return result[1], nil
}

// deadLetter сохраняет недоставленное событие для ручного разбора
func (w *WebhookWorker) deadLetter(ctx context.Context, event WebhookEvent, payload string) {
	if err := w.redisClient.LPush(ctx, deadLetterKey, payload).Err(); err != nil {
		w.logger.WithError(err).WithField("delivery_id", event.DeliveryID).Error("Failed to store undelivered webhook event")
	}
}

// deliver отправляет событие, повторяя временные ошибки с удвоением задержки
func (w *WebhookWorker) deliver(ctx context.Context, event WebhookEvent, payload string) deliveryResult {
	log := w.logger.WithFields(logrus.Fields{
		"event_type":  event.Type,
		"delivery_id": event.DeliveryID,
	})
	if event.Incident != nil {
		log = log.WithField("incident_id", event.Incident.ID)
	}

	if w.cfg.WebhookURL == "" {
		log.Debug("Webhook URL is not configured, skipping delivery")
		return skipped
	}

	attempts := max(w.cfg.WebhookMaxRetries, 1)
	delay := w.cfg.WebhookBaseDelay

	for attempt := 1; attempt <= attempts; attempt++ {
		err := w.send(ctx, event, payload)
		if err == nil {
			log.WithField("attempt", attempt).Info("Webhook delivered")
			return delivered
		}
		if errors.Is(err, errPermanent) {
			log.WithError(err).Error("Webhook rejected, not retrying")
			return failed
		}
		if attempt == attempts {
			log.WithError(err).Errorf("Webhook delivery failed after %d attempts", attempts)
			return failed
		}
		log.WithError(err).Warnf("Webhook delivery failed, retrying in %v", delay)
		if !w.wait(ctx, delay) {
			return failed
		}
		delay *= 2
	}
	return failed
}

func (w *WebhookWorker) send(ctx context.Context, event WebhookEvent, payload string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.cfg.WebhookURL, bytes.NewBufferString(payload))
	if err != nil {
		return fmt.Errorf("%w: %v", errPermanent, err)
	}

	timestamp := strconv.FormatInt(w.now().Unix(), 10)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(headerEvent, event.Type)
	req.Header.Set(headerDelivery, event.DeliveryID.String())
	req.Header.Set(headerTimestamp, timestamp)
	if w.cfg.WebhookSecret != "" {
		req.Header.Set(headerSignature, "sha256="+sign(timestamp+"."+payload, w.cfg.WebhookSecret))
	}

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return fmt.Errorf("receiver responded %d", resp.StatusCode)
	default:
		return fmt.Errorf("%w: status %d", errPermanent, resp.StatusCode)
	}
}

// sign - HMAC-SHA256 в hex; подписывается "timestamp.payload"
func sign(data, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}
