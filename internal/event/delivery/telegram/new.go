package telegram

import (
	"sync"

	"github.com/gin-gonic/gin"

	"quick-event/internal/event"
	pkgLog "quick-event/pkg/log"
	pkgTelegram "quick-event/pkg/telegram"
)

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

type handler struct {
	l   pkgLog.Logger
	uc  event.UseCase
	bot *pkgTelegram.Bot

	// Per-chat active profile, defaulting to personal. Kept in memory; a
	// restart resets everyone, which is acceptable for a single-user bot.
	mu       sync.Mutex
	profiles map[int64]event.Profile
}

// New creates a new Telegram delivery handler.
func New(l pkgLog.Logger, uc event.UseCase, bot *pkgTelegram.Bot) Handler {
	return &handler{
		l:        l,
		uc:       uc,
		bot:      bot,
		profiles: make(map[int64]event.Profile),
	}
}

func (h *handler) chatProfile(chatID int64) event.Profile {
	h.mu.Lock()
	defer h.mu.Unlock()
	if p, ok := h.profiles[chatID]; ok {
		return p
	}
	return event.ProfilePersonal
}

func (h *handler) setChatProfile(chatID int64, p event.Profile) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.profiles[chatID] = p
}
