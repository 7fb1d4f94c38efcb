package telegram

import "gopkg.in/telebot.v3"

// Client sends messages through the Telegram bot. The core computes target
// sets and message bodies; this narrow interface keeps it decoupled from the
// bot library.
type Client interface {
	SendMessage(recipientChatID int64, text string, options *telebot.SendOptions) error
}
