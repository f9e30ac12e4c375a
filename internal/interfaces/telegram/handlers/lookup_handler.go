package handlers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog/log"

	"dictcc-go/internal/application/usecases"
	"dictcc-go/internal/domain/dictionary"
	"dictcc-go/internal/infrastructure/telegram"
)

// maxResults caps the number of translations per reply so that popular
// terms do not exceed Telegram's message size limit.
const maxResults = 25

// errEnough stops the result stream once the reply is full
var errEnough = errors.New("enough results")

// LookupHandler answers each text message with the ranked translations of
// that text.
type LookupHandler struct {
	bot        *telegram.Bot
	translator *usecases.TranslationUseCase
	dbPath     string

	// reversed tracks per-chat lookup direction toggles. Updates are
	// consumed from a single goroutine, so no locking is needed.
	reversed map[int64]bool
}

// NewLookupHandler creates a new lookup handler
func NewLookupHandler(bot *telegram.Bot, translator *usecases.TranslationUseCase, dbPath string) *LookupHandler {
	return &LookupHandler{
		bot:        bot,
		translator: translator,
		dbPath:     dbPath,
		reversed:   make(map[int64]bool),
	}
}

// Start consumes updates until the context is cancelled
func (h *LookupHandler) Start(ctx context.Context) error {
	updates := h.bot.GetUpdatesChan()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update := <-updates:
			if update.Message == nil || update.Message.Text == "" {
				continue
			}
			if err := h.handleMessage(ctx, update.Message); err != nil {
				log.Error().Err(err).Int64("chat", update.Message.Chat.ID).Msg("failed to handle message")
			}
		}
	}
}

func (h *LookupHandler) handleMessage(ctx context.Context, msg *tgbotapi.Message) error {
	chatID := msg.Chat.ID

	switch msg.Command() {
	case "start":
		return h.bot.SendMessage(chatID, "Send me a word or phrase and I will look it up in the dictionary. Use /reverse to switch the lookup direction.")
	case "help":
		return h.bot.SendMessage(chatID, "Any text message is treated as a search phrase. Replies are ordered by grammatical category and usage frequency. /reverse toggles between the two lookup directions for this chat.")
	case "reverse":
		h.reversed[chatID] = !h.reversed[chatID]
		if h.reversed[chatID] {
			return h.bot.SendMessage(chatID, "Now mapping from language 2 to language 1.")
		}
		return h.bot.SendMessage(chatID, "Now mapping from language 1 to language 2.")
	case "":
		return h.lookup(ctx, chatID, msg.Text)
	default:
		return h.bot.SendMessage(chatID, "Unknown command. Try /help.")
	}
}

func (h *LookupHandler) lookup(ctx context.Context, chatID int64, term string) error {
	direction := dictionary.Lang1ToLang2
	if h.reversed[chatID] {
		direction = dictionary.Lang2ToLang1
	}

	var lines []string
	consumer := func(t dictionary.Translation) error {
		if len(lines) >= maxResults {
			return errEnough
		}
		lines = append(lines, fmt.Sprintf("%s (%s): %s", t.Source, t.Category, t.Target))
		return nil
	}

	err := h.translator.Translate(ctx, h.dbPath, term, direction, consumer)
	if err != nil && !errors.Is(err, errEnough) {
		return err
	}

	if len(lines) == 0 {
		return h.bot.SendMessage(chatID, "No translations found.")
	}
	return h.bot.SendMessage(chatID, strings.Join(lines, "\n"))
}
