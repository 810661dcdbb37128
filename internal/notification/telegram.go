package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/meetyhq/MeetyBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// TelegramNotifier pushes booking events to the operator chat that works
// the approval queue.
type TelegramNotifier struct {
	bot            *tgbotapi.BotAPI
	operatorChatID int64
	logger         logger.Logger
}

func NewTelegramNotifier(token string, operatorChatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, operatorChatID: operatorChatID, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, operatorChatID: operatorChatID, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyMeetingRequested(ctx context.Context, m *domain.Meeting) {
	text := fmt.Sprintf(
		"*New meeting request*\n\nAttendee: %s\nDate: %s\nTime: %s to %s",
		m.AttendeeName, m.Date, m.StartTime, m.EndTime,
	)
	if m.IsConflict {
		text += "\n\nThis slot overlaps an approved meeting."
	}
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyStatusChanged(ctx context.Context, m *domain.Meeting) {
	text := fmt.Sprintf(
		"*Meeting %s*\n\nAttendee: %s\nDate: %s\nTime: %s to %s",
		m.Status, m.AttendeeName, m.Date, m.StartTime, m.EndTime,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyPendingBacklog(ctx context.Context, count int) {
	text := fmt.Sprintf("*Approval queue*\n\n%d meeting request(s) are waiting for review.", count)
	n.send(ctx, text)
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if n.operatorChatID == 0 {
		n.logger.Debug("notification skipped (no operator chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", n.operatorChatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(n.operatorChatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", n.operatorChatID),
			logger.String("error", err.Error()),
		)
	}
}
