// internal/infra/telegram/upload_handlers.go
package telegram

import (
	"context"
	"fmt"
	"io"
	"strings"

	"schedule_notification_bot/internal/app"
	"schedule_notification_bot/internal/infra/config"

	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"
)

// RegisterUploadHandlers wires the admin-only document upload that publishes
// a new timetable version.
func RegisterUploadHandlers(
	ctx context.Context,
	b *telebot.Bot,
	cfg *config.AppConfig,
	scheduleService *app.ScheduleService,
	baseLogger *logrus.Entry,
) {
	uploadLogger := baseLogger.WithField("handler_group", "upload")

	b.Handle(telebot.OnDocument, func(c telebot.Context) error {
		senderID := c.Sender().ID
		doc := c.Message().Document
		logCtx := uploadLogger.WithFields(logrus.Fields{
			"sender_id": senderID,
			"file_name": doc.FileName,
			"file_size": doc.FileSize,
		})
		logCtx.Info("Document received")

		if _, admin := cfg.AdminTelegramIDs[senderID]; !admin {
			logCtx.Warn("Unauthorized upload attempt")
			return c.Send("Only administrators can publish a new schedule.")
		}
		if !strings.HasSuffix(strings.ToLower(doc.FileName), ".xlsx") {
			logCtx.Warn("Rejected non-xlsx upload")
			return c.Send("Please send the timetable as an .xlsx file.")
		}
		if cfg.MaxUploadBytes > 0 && doc.FileSize > cfg.MaxUploadBytes {
			logCtx.Warn("Rejected oversized upload")
			return c.Send(fmt.Sprintf("The file is too large. The limit is %d MB.", cfg.MaxUploadBytes/(1024*1024)))
		}

		rc, err := b.File(&doc.File)
		if err != nil {
			logCtx.WithError(err).Error("Failed to download document")
			return c.Send("Could not download the file, please try again.")
		}
		defer rc.Close()

		data, err := io.ReadAll(rc)
		if err != nil {
			logCtx.WithError(err).Error("Failed to read document")
			return c.Send("Could not read the file, please try again.")
		}

		summary, err := scheduleService.ProcessUpload(ctx, senderID, doc.FileName, data)
		if err != nil {
			logWithError := logCtx.WithError(err)
			switch err {
			case app.ErrEmptySchedule:
				logWithError.Warn("Upload rejected: empty or invalid content")
				return c.Send("File rejected: empty or invalid content.")
			case app.ErrNotPrivileged:
				logWithError.Warn("Upload rejected: not privileged")
				return c.Send("Only administrators can publish a new schedule.")
			case app.ErrUploadTooLarge:
				logWithError.Warn("Upload rejected: too large")
				return c.Send("The file is too large.")
			default:
				logWithError.Error("Upload processing failed")
				return c.Send("Processing the file failed, please try again later.")
			}
		}

		logCtx.WithFields(logrus.Fields{
			"records":      summary.Records,
			"notified":     summary.Notified,
			"first_upload": summary.FirstUpload,
		}).Info("Upload processed")

		if summary.FirstUpload {
			return c.Send(fmt.Sprintf("Schedule published: %d records extracted, %d users notified.", summary.Records, summary.Notified))
		}
		if summary.Notified == 0 {
			return c.Send(fmt.Sprintf("Schedule updated: %d records extracted, no changes detected.", summary.Records))
		}
		return c.Send(fmt.Sprintf("Schedule updated: %d records extracted, %d affected users notified.", summary.Records, summary.Notified))
	})
}
