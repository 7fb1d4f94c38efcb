// internal/infra/telegram/bot_commands_handler.go
package telegram

import (
	"context"
	"fmt"
	"strings"

	"schedule_notification_bot/internal/app"
	"schedule_notification_bot/internal/infra/config"

	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"
)

// Role keyboard values, kept as the source workbook's audience knows them.
const (
	roleButtonTeacher = "Oqıtıwshı"
	roleButtonStudent = "Student"
)

func roleKeyboard() *telebot.ReplyMarkup {
	markup := &telebot.ReplyMarkup{ResizeKeyboard: true}
	markup.Reply(markup.Row(markup.Text(roleButtonTeacher), markup.Text(roleButtonStudent)))
	return markup
}

func RegisterBotCommands(
	ctx context.Context,
	b *telebot.Bot,
	cfg *config.AppConfig,
	profileService *app.ProfileService,
	baseLogger *logrus.Entry,
) {
	commandsLogger := baseLogger.WithField("handler_group", "commands")

	b.Handle("/start", func(c telebot.Context) error {
		senderID := c.Sender().ID
		logCtx := commandsLogger.WithField("command", "/start").WithField("sender_id", senderID)
		logCtx.Info("Processing /start command")

		if _, err := profileService.EnsureProfile(ctx, senderID); err != nil {
			logCtx.WithError(err).Error("Failed to ensure profile")
			return c.Send("Something went wrong, please try again later.")
		}

		greeting := fmt.Sprintf("Salem, %s! I track the university timetable and message you when your schedule changes.\n\nWho are you?", c.Sender().FirstName)
		return c.Send(greeting, &telebot.SendOptions{ReplyMarkup: roleKeyboard()})
	})

	b.Handle("/help", func(c telebot.Context) error {
		senderID := c.Sender().ID
		logCtx := commandsLogger.WithField("command", "/help").WithField("sender_id", senderID)
		logCtx.Info("Processing /help command")

		var helpText strings.Builder
		helpText.WriteString("What I can do:\n\n")
		helpText.WriteString("`/start` - pick your role (teacher or student) and identity.\n")
		helpText.WriteString("`/notify_on` - receive messages when the schedule changes.\n")
		helpText.WriteString("`/notify_off` - stop receiving change messages.\n")
		helpText.WriteString("Send a day name (DUYSEMBI .. SHEMBI) or `bugin` to see your schedule.\n")
		if _, admin := cfg.AdminTelegramIDs[senderID]; admin {
			helpText.WriteString("\nAdmin: send an .xlsx timetable file to publish a new schedule version.")
		}
		return c.Send(helpText.String(), &telebot.SendOptions{ParseMode: telebot.ModeMarkdown})
	})

	b.Handle("/notify_on", func(c telebot.Context) error {
		senderID := c.Sender().ID
		logCtx := commandsLogger.WithField("command", "/notify_on").WithField("sender_id", senderID)
		if err := profileService.SetSubscribed(ctx, senderID, true); err != nil {
			logCtx.WithError(err).Error("Failed to enable subscription")
			return c.Send("Something went wrong, please try again later.")
		}
		logCtx.Info("Subscription enabled")
		return c.Send("Notifications are on. You will hear from me when the schedule changes.")
	})

	b.Handle("/notify_off", func(c telebot.Context) error {
		senderID := c.Sender().ID
		logCtx := commandsLogger.WithField("command", "/notify_off").WithField("sender_id", senderID)
		if err := profileService.SetSubscribed(ctx, senderID, false); err != nil {
			logCtx.WithError(err).Error("Failed to disable subscription")
			return c.Send("Something went wrong, please try again later.")
		}
		logCtx.Info("Subscription disabled")
		return c.Send("Notifications are off. Use /notify_on to enable them again.")
	})
}
