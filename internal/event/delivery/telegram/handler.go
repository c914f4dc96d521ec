package telegram

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"quick-event/internal/event"
	pkgResponse "quick-event/pkg/response"
	pkgTelegram "quick-event/pkg/telegram"
)

const startMessage = "👋 Welcome to *Quick Event*!\n\n" +
	"Type an event in plain words and I reply with a pre-filled calendar link:\n" +
	"`Dinner tomorrow at 7 with Mom for 2h in Backyard`\n\n" +
	"Commands:\n" +
	"• /personal, /work, /other — switch the target calendar\n" +
	"• /create <query> — insert straight through the Calendar API\n" +
	"• /help — syntax reference"

const helpMessage = "*Syntax:*\n\n" +
	"`<title> [on <date>] [at <time>] [from <start> to <end>] [with <guests>] [for <duration>] [in <place>] [note <text>]`\n\n" +
	"Dates: `tomorrow`, `next fri`, `12.15`, `may 1st`\n" +
	"Times: `7`, `4:30p`, `1 to 3`, `10p to 2a`\n" +
	"Durations: `2h`, `90`, `1h30m`"

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It responds with HTTP 200 immediately and processes the message in a
// background goroutine so slow Calendar API inserts never trip Telegram's
// webhook timeout.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err)
		return
	}

	// Ignore non-message updates (polls, channel_post, etc.)
	if update.Message == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	// Snapshot the message before spawning goroutine to avoid data races on
	// the gin context.
	msg := update.Message

	go func() {
		// Detach from the HTTP request context, it gets cancelled right
		// after the response below.
		bgCtx := context.Background()
		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "telegram handler: background processMessage failed: %v", err)
			_ = h.bot.SendMessage(msg.Chat.ID, "Something went wrong handling that, please try again.")
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// processMessage handles a single Telegram message.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return nil
	}

	switch text {
	case "/start":
		return h.bot.SendMessageWithMode(msg.Chat.ID, startMessage, "Markdown")
	case "/help":
		return h.bot.SendMessageWithMode(msg.Chat.ID, helpMessage, "Markdown")
	case "/personal", "/work", "/other":
		profile := event.Profile(strings.TrimPrefix(text, "/"))
		h.setChatProfile(msg.Chat.ID, profile)
		return h.bot.SendMessage(msg.Chat.ID, fmt.Sprintf("Switched to the %s calendar.", profile))
	}

	if query, ok := strings.CutPrefix(text, "/create "); ok {
		return h.createEvent(ctx, msg.Chat.ID, query)
	}

	return h.parseQuery(ctx, msg.Chat.ID, text)
}

func (h *handler) parseQuery(ctx context.Context, chatID int64, query string) error {
	out, err := h.uc.Parse(ctx, event.ParseInput{
		Query:   query,
		Profile: h.chatProfile(chatID),
	})
	if err != nil {
		h.l.Errorf(ctx, "telegram handler: uc.Parse failed: %v", err)
		return h.bot.SendMessage(chatID, "Could not read that as an event, try /help for the syntax.")
	}

	reply := fmt.Sprintf("%s\n%s\n\n[Open in Calendar](%s)", out.Summary, out.Description, out.URL)
	return h.bot.SendMessageWithMode(chatID, reply, "Markdown")
}

func (h *handler) createEvent(ctx context.Context, chatID int64, query string) error {
	out, err := h.uc.Create(ctx, event.ParseInput{
		Query:   query,
		Profile: h.chatProfile(chatID),
	})
	if err != nil {
		if errors.Is(err, event.ErrCalendarUnavailable) {
			return h.bot.SendMessage(chatID, "The Calendar API is not configured; use the link flow instead.")
		}
		h.l.Errorf(ctx, "telegram handler: uc.Create failed: %v", err)
		return h.bot.SendMessage(chatID, fmt.Sprintf("Could not create the event: %v", err))
	}

	reply := fmt.Sprintf("✅ Created!\n%s\n\n[View event](%s)", out.Parsed.Summary, out.Link)
	return h.bot.SendMessageWithMode(chatID, reply, "Markdown")
}
