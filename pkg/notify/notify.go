package notify

import (
	"context"
	"time"

	pkgLog "personal-task-sync/pkg/log"
	"personal-task-sync/pkg/telegram"
)

// Level classifies a notification for display.
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Notification is an informational message for the user. Losing one has no
// effect on task state.
type Notification struct {
	Level   Level  `json:"level"`
	Message string `json:"message"`
}

// INotifier delivers notifications without blocking the caller.
type INotifier interface {
	Notify(ctx context.Context, n Notification)
}

// Success builds a success notification.
func Success(msg string) Notification { return Notification{Level: LevelSuccess, Message: msg} }

// Failure builds an error notification.
func Failure(msg string) Notification { return Notification{Level: LevelError, Message: msg} }

type logNotifier struct {
	l pkgLog.Logger
}

// NewLogNotifier writes notifications to the service log.
func NewLogNotifier(l pkgLog.Logger) INotifier {
	return &logNotifier{l: l}
}

func (n *logNotifier) Notify(ctx context.Context, msg Notification) {
	if msg.Level == LevelError {
		n.l.Warnf(ctx, "notify: %s", msg.Message)
		return
	}
	n.l.Infof(ctx, "notify: %s", msg.Message)
}

type telegramNotifier struct {
	bot     *telegram.Bot
	chatID  int64
	timeout time.Duration
	l       pkgLog.Logger
}

// NewTelegramNotifier forwards notifications to a Telegram chat in the background.
func NewTelegramNotifier(bot *telegram.Bot, chatID int64, l pkgLog.Logger) INotifier {
	return &telegramNotifier{bot: bot, chatID: chatID, timeout: 30 * time.Second, l: l}
}

func (n *telegramNotifier) Notify(ctx context.Context, msg Notification) {
	go func(m Notification) {
		bgCtx, cancel := context.WithTimeout(context.Background(), n.timeout)
		defer cancel()

		if err := n.bot.SendMessage(bgCtx, n.chatID, prefix(m.Level)+m.Message); err != nil {
			n.l.Warnf(bgCtx, "notify: telegram delivery failed: %v", err)
		}
	}(msg)
}

func prefix(level Level) string {
	switch level {
	case LevelSuccess:
		return "✅ "
	case LevelError:
		return "❌ "
	default:
		return ""
	}
}

type multiNotifier []INotifier

// NewMulti fans a notification out to every non-nil notifier.
func NewMulti(notifiers ...INotifier) INotifier {
	m := make(multiNotifier, 0, len(notifiers))
	for _, n := range notifiers {
		if n != nil {
			m = append(m, n)
		}
	}
	return m
}

func (m multiNotifier) Notify(ctx context.Context, msg Notification) {
	for _, n := range m {
		n.Notify(ctx, msg)
	}
}
