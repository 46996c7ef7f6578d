package notifier

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"TechSentinel/internal/logger"
)

// TelegramNotifier sends messages via the Telegram Bot API.
type TelegramNotifier struct {
	api     *tgbotapi.BotAPI
	chatID  int64
	limiter *rate.Limiter
	log     *logger.Logger
}

// NewTelegramNotifier authorizes the bot and returns a notifier bound to chatID.
func NewTelegramNotifier(botToken string, chatID int64, proxyURL string, log *logger.Logger) (*TelegramNotifier, error) {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	client := &http.Client{
		Timeout:   90 * time.Second,
		Transport: transport,
	}

	api, err := tgbotapi.NewBotAPIWithClient(botToken, tgbotapi.APIEndpoint, client)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	l := log.Named("telegram")
	l.Info("authorized telegram bot", zap.String("account", api.Self.UserName))

	// Telegram allows roughly one message per second into a single chat.
	return &TelegramNotifier{
		api:     api,
		chatID:  chatID,
		limiter: rate.NewLimiter(rate.Every(time.Second), 3),
		log:     l,
	}, nil
}

// Send sends a message to the configured chat.
func (t *TelegramNotifier) Send(ctx context.Context, text string) error {
	if err := t.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter wait: %w", err)
	}
	msg := tgbotapi.NewMessage(t.chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.DisableWebPagePreview = true
	if _, err := t.api.Send(msg); err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	return nil
}

// SendWithRetry sends a message with exponential backoff retry.
func (t *TelegramNotifier) SendWithRetry(ctx context.Context, text string, maxRetries int) error {
	return withRetry(ctx, maxRetries, time.Second, t.log, func(ctx context.Context) error {
		return t.Send(ctx, text)
	})
}

// withRetry calls send up to maxRetries+1 times, sleeping base, 2*base, ...
// between attempts. There is no sleep after the final attempt.
func withRetry(ctx context.Context, maxRetries int, base time.Duration, log *logger.Logger, send func(context.Context) error) error {
	var lastErr error
	for i := 0; i <= maxRetries; i++ {
		err := send(ctx)
		if err == nil {
			return nil
		}
		lastErr = err
		if i == maxRetries {
			break
		}
		backoff := base << uint(i)
		log.Warn("telegram send failed",
			zap.Int("attempt", i+1),
			zap.Int("max_attempts", maxRetries+1),
			zap.Duration("backoff", backoff),
			zap.Error(err))
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
	}
	return fmt.Errorf("all %d retries exhausted: %w", maxRetries+1, lastErr)
}
