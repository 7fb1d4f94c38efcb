// internal/infra/telegram/profile_handlers.go
package telegram

import (
	"context"
	"fmt"
	"strings"
	"time"

	"schedule_notification_bot/internal/app"
	"schedule_notification_bot/internal/domain/recipient"
	idb "schedule_notification_bot/internal/infra/database"

	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"
)

// RegisterTextHandlers wires the free-text flow: role keyboard presses,
// identity capture for a half-filled profile, and day queries.
func RegisterTextHandlers(
	ctx context.Context,
	b *telebot.Bot,
	profileService *app.ProfileService,
	scheduleService *app.ScheduleService,
	baseLogger *logrus.Entry,
) {
	textLogger := baseLogger.WithField("handler_group", "text")

	b.Handle(telebot.OnText, func(c telebot.Context) error {
		senderID := c.Sender().ID
		text := strings.TrimSpace(c.Text())
		logCtx := textLogger.WithFields(logrus.Fields{"sender_id": senderID, "text": text})

		switch text {
		case roleButtonTeacher:
			if err := profileService.SetRole(ctx, senderID, recipient.RoleTeacher); err != nil {
				logCtx.WithError(err).Error("Failed to set teacher role")
				return c.Send("Something went wrong, please try again later.")
			}
			logCtx.Info("Role set to teacher")
			return c.Send("Send me your name as it appears in the timetable, e.g. \"Tajieva A\".")
		case roleButtonStudent:
			if err := profileService.SetRole(ctx, senderID, recipient.RoleStudent); err != nil {
				logCtx.WithError(err).Error("Failed to set student role")
				return c.Send("Something went wrong, please try again later.")
			}
			logCtx.Info("Role set to student")
			return c.Send(fmt.Sprintf("Send me your group. Known groups: %s.", strings.Join(profileService.Groups(), ", ")))
		}

		profile, err := profileService.EnsureProfile(ctx, senderID)
		if err != nil {
			logCtx.WithError(err).Error("Failed to load profile")
			return c.Send("Something went wrong, please try again later.")
		}

		// A role without an identity means the next message is the identity.
		if profile.Role == recipient.RoleTeacher && profile.TeacherName == "" {
			canonical, err := profileService.SetTeacherIdentity(ctx, senderID, text)
			if err == app.ErrUnknownTeacher {
				logCtx.Info("Unknown teacher identity")
				return c.Send("I do not know that name. Send it exactly as it appears in the timetable.")
			}
			if err != nil {
				logCtx.WithError(err).Error("Failed to set teacher identity")
				return c.Send("Something went wrong, please try again later.")
			}
			logCtx.WithField("teacher_name", canonical).Info("Teacher identity set")
			return c.Send(fmt.Sprintf("Registered as %s. Send a day name or \"bugin\" to see your schedule.", canonical))
		}
		if profile.Role == recipient.RoleStudent && profile.Group == "" {
			if err := profileService.SetGroup(ctx, senderID, text); err != nil {
				if err == app.ErrUnknownGroup {
					logCtx.Info("Unknown group identity")
					return c.Send(fmt.Sprintf("I do not know that group. Known groups: %s.", strings.Join(profileService.Groups(), ", ")))
				}
				logCtx.WithError(err).Error("Failed to set group identity")
				return c.Send("Something went wrong, please try again later.")
			}
			logCtx.WithField("group", text).Info("Group identity set")
			return c.Send(fmt.Sprintf("Registered in group %s. Send a day name or \"bugin\" to see your schedule.", text))
		}

		if day, ok := app.ParseDayQuery(text, time.Now()); ok {
			message, err := scheduleService.ScheduleFor(ctx, senderID, day)
			switch err {
			case nil:
				return c.Send(message)
			case app.ErrIncompleteProfile:
				return c.Send("Pick your role first.", &telebot.SendOptions{ReplyMarkup: roleKeyboard()})
			case idb.ErrRecipientNotFound:
				return c.Send("Use /start first.")
			default:
				logCtx.WithError(err).Error("Failed to render schedule")
				return c.Send("Something went wrong, please try again later.")
			}
		}

		return c.Send("I did not understand that. Send a day name (DUYSEMBI .. SHEMBI), \"bugin\", or /help.")
	})
}
