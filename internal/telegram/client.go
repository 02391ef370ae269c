// Package telegram delivers generated predictions via the Telegram Bot API.
// It formats a prediction result into a human-readable MarkdownV2 message and
// handles delivery with retry logic for reliability.
package telegram

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/lotto-oracle/lotto-oracle/internal/models"
)

// Client handles Telegram notifications
type Client struct {
	bot            *tgbotapi.BotAPI
	chatID         int64
	maxRetries     int
	retryDelayBase time.Duration
}

// NewClient creates a new Telegram client
func NewClient(botToken, chatID string, maxRetries int, retryDelayBase time.Duration) (*Client, error) {
	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create Telegram bot: %w", err)
	}

	chatIDInt, err := strconv.ParseInt(chatID, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid chat ID: %w", err)
	}

	if maxRetries <= 0 {
		maxRetries = 3
	}
	if retryDelayBase <= 0 {
		retryDelayBase = time.Second
	}

	return &Client{
		bot:            bot,
		chatID:         chatIDInt,
		maxRetries:     maxRetries,
		retryDelayBase: retryDelayBase,
	}, nil
}

// Send delivers a prediction result to the configured chat
func (c *Client) Send(result *models.PredictionResult) error {
	message := formatMessage(result)

	msg := tgbotapi.NewMessage(c.chatID, message)
	msg.ParseMode = "MarkdownV2" // Use MarkdownV2 for better escaping support

	// Send with retry
	var lastErr error

	for i := 0; i < c.maxRetries; i++ {
		_, err := c.bot.Send(msg)
		if err == nil {
			return nil
		}
		lastErr = err
		time.Sleep(c.retryDelayBase * time.Duration(i+1))
	}

	return fmt.Errorf("failed to send message after %d retries: %w", c.maxRetries, lastErr)
}

// formatMessage formats a prediction result into a Telegram message
func formatMessage(result *models.PredictionResult) string {
	message := "🎱 *Lottery Prediction*\n\n"

	dateStr := escapeMarkdownV2(result.GeneratedAt.Format("2006-01-02 15:04:05"))
	message += fmt.Sprintf("📅 Generated: %s\n", dateStr)
	message += fmt.Sprintf("🎯 Numbers: *%s*\n", escapeMarkdownV2(joinNumbers(result.Numbers)))
	message += fmt.Sprintf("⭐ Bonus: *%d*\n", result.Bonus)
	message += fmt.Sprintf("📊 Confidence: %s\n\n", escapeMarkdownV2(fmt.Sprintf("%.1f%%", result.Confidence)))

	if len(result.Reasoning) > 0 {
		message += "💡 *Reasoning*\n"
		for i, reason := range result.Reasoning {
			message += fmt.Sprintf("%d\\. %s\n", i+1, escapeMarkdownV2(reason))
		}
		message += "\n"
	}

	if len(result.Alternatives) > 0 {
		message += "🔁 *Alternative Sets*\n"
		for _, alt := range result.Alternatives {
			message += fmt.Sprintf("   %s: %s\n",
				escapeMarkdownV2(alt.Strategy), escapeMarkdownV2(joinNumbers(alt.Numbers)))
		}
	}

	return message
}

// escapeMarkdownV2 escapes special characters for Telegram MarkdownV2
func escapeMarkdownV2(text string) string {
	// Characters that need escaping in MarkdownV2:
	// _ * [ ] ( ) ~ ` > # + - = | { } . !
	result := ""
	for _, char := range text {
		switch char {
		case '_', '*', '[', ']', '(', ')', '~', '`', '>', '#', '+', '-', '=', '|', '{', '}', '.', '!':
			result += "\\" + string(char)
		default:
			result += string(char)
		}
	}
	return result
}

// joinNumbers renders a number set as a comma-separated list
func joinNumbers(numbers models.NumberSet) string {
	parts := make([]string, len(numbers))
	for i, n := range numbers {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ", ")
}
