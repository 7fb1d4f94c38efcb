package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"schedule_notification_bot/internal/domain/notify"
	"schedule_notification_bot/internal/domain/recipient"
	"schedule_notification_bot/internal/domain/schedule"
	domainTelegram "schedule_notification_bot/internal/domain/telegram"
	"schedule_notification_bot/internal/infra/config"

	"github.com/sirupsen/logrus"
)

var (
	// ErrEmptySchedule marks an upload whose extraction yielded zero records.
	ErrEmptySchedule = errors.New("schedule file is empty or invalid")
	// ErrUploadTooLarge marks an upload over the configured size cap.
	ErrUploadTooLarge = errors.New("uploaded file is too large")
	// ErrNotPrivileged marks an upload from a non-admin user.
	ErrNotPrivileged = errors.New("uploader is not privileged")
)

// SheetOpener decodes uploaded workbook bytes into a worksheet view.
type SheetOpener interface {
	Open(data []byte) (schedule.Sheet, error)
}

// BlobArchive stores the raw uploaded workbooks.
type BlobArchive interface {
	Upload(ctx context.Context, objectName string, data []byte) error
}

// UploadSummary reports the outcome of one processed upload to the caller.
type UploadSummary struct {
	Records     int
	Notified    int
	FirstUpload bool
}

// ScheduleService runs the upload pipeline: decode, extract, archive,
// capture the prior snapshot, persist, diff, target and dispatch.
type ScheduleService struct {
	snapshots  schedule.SnapshotRepository
	recipients recipient.Repository
	archive    BlobArchive
	opener     SheetOpener
	tg         domainTelegram.Client
	profile    *config.TimetableProfile
	adminIDs   map[int64]struct{}
	maxBytes   int64
	logger     *logrus.Entry
}

func NewScheduleService(
	snapshots schedule.SnapshotRepository,
	recipients recipient.Repository,
	archive BlobArchive,
	opener SheetOpener,
	tg domainTelegram.Client,
	profile *config.TimetableProfile,
	adminIDs map[int64]struct{},
	maxBytes int64,
	logger *logrus.Entry,
) *ScheduleService {
	return &ScheduleService{
		snapshots:  snapshots,
		recipients: recipients,
		archive:    archive,
		opener:     opener,
		tg:         tg,
		profile:    profile,
		adminIDs:   adminIDs,
		maxBytes:   maxBytes,
		logger:     logger,
	}
}

// ProcessUpload handles one uploaded timetable workbook end to end.
//
// The prior "original" snapshot is captured before any write. The new record
// set is stored under "changes", diffed against the prior snapshot and then
// promoted to "original", so the next upload diffs against the latest
// published version. A first-ever upload skips the diff and broadcasts a
// "new schedule published" notice to every subscribed user.
func (s *ScheduleService) ProcessUpload(ctx context.Context, uploaderID int64, fileName string, data []byte) (*UploadSummary, error) {
	logCtx := s.logger.WithFields(logrus.Fields{
		"uploader_id": uploaderID,
		"file_name":   fileName,
		"size_bytes":  len(data),
	})

	if _, admin := s.adminIDs[uploaderID]; !admin {
		logCtx.Warn("Upload refused: uploader is not an admin")
		return nil, ErrNotPrivileged
	}
	if s.maxBytes > 0 && int64(len(data)) > s.maxBytes {
		logCtx.Warn("Upload refused: file too large")
		return nil, ErrUploadTooLarge
	}

	sheet, err := s.opener.Open(data)
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded workbook: %w", err)
	}

	records := schedule.Extract(sheet, s.profile.Roster, s.profile.Layout, s.profile.Unions)
	if len(records) == 0 {
		logCtx.Warn("Extraction yielded zero records, rejecting upload")
		return nil, ErrEmptySchedule
	}
	logCtx = logCtx.WithField("records", len(records))
	logCtx.Info("Schedule extracted")

	// Archive the raw workbook. A storage failure must not block the
	// notification pipeline.
	objectName := fmt.Sprintf("%s_%s", time.Now().Format("20060102T150405"), fileName)
	if err := s.archive.Upload(ctx, objectName, data); err != nil {
		logCtx.WithError(err).Error("Failed to archive uploaded workbook")
	}

	prior, err := s.snapshots.Load(ctx, schedule.SnapshotOriginal)
	if err != nil {
		return nil, fmt.Errorf("failed to load prior snapshot: %w", err)
	}

	directory, err := s.recipients.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load recipient directory: %w", err)
	}

	if len(prior) == 0 {
		if err := s.snapshots.Replace(ctx, schedule.SnapshotOriginal, records); err != nil {
			return nil, fmt.Errorf("failed to store first snapshot: %w", err)
		}
		targets := notify.BroadcastTargets(directory, s.adminIDs, uploaderID)
		notified := s.dispatch(targets, "Jańa sabaq kestesi júklendi! Send a day name to see your schedule.")
		logCtx.WithField("notified", notified).Info("First schedule published, broadcast sent")
		return &UploadSummary{Records: len(records), Notified: notified, FirstUpload: true}, nil
	}

	if err := s.snapshots.Replace(ctx, schedule.SnapshotChanges, records); err != nil {
		return nil, fmt.Errorf("failed to store changes snapshot: %w", err)
	}

	affected := schedule.Diff(prior, records, s.profile.Unions)

	if err := s.snapshots.Replace(ctx, schedule.SnapshotOriginal, records); err != nil {
		return nil, fmt.Errorf("failed to promote new snapshot: %w", err)
	}

	if affected.Empty() {
		logCtx.Info("No changes detected between snapshots")
		return &UploadSummary{Records: len(records)}, nil
	}

	targets := notify.ChangeTargets(affected, directory, s.profile.Unions, s.adminIDs, uploaderID)
	notified := s.dispatch(targets, "Sabaq kestesi ózgerdi! Your schedule has changed. Send a day name to see the update.")
	logCtx.WithFields(logrus.Fields{
		"affected_teachers": len(affected.Teachers),
		"affected_groups":   len(affected.Groups),
		"notified":          notified,
	}).Info("Change notifications dispatched")

	return &UploadSummary{Records: len(records), Notified: notified}, nil
}

// dispatch sends the message to each target once and returns the number of
// successful sends. Send failures are logged and skipped, never retried.
func (s *ScheduleService) dispatch(targets []int64, text string) int {
	sent := 0
	for _, id := range targets {
		if err := s.tg.SendMessage(id, text, nil); err != nil {
			s.logger.WithError(err).WithField("user_id", id).Error("Failed to send notification")
			continue
		}
		sent++
	}
	return sent
}

// ScheduleFor renders the stored timetable for one user and day.
func (s *ScheduleService) ScheduleFor(ctx context.Context, userID int64, day schedule.Day) (string, error) {
	profile, err := s.recipients.Get(ctx, userID)
	if err != nil {
		return "", err
	}
	if !profile.Complete() {
		return "", ErrIncompleteProfile
	}

	records, err := s.snapshots.Load(ctx, schedule.SnapshotOriginal)
	if err != nil {
		return "", fmt.Errorf("failed to load schedule: %w", err)
	}

	relevant := recordsFor(profile, records, s.profile.Unions)
	return FormatDaySchedule(day, relevant), nil
}

// SendDailyDigest sends today's schedule to every subscribed user with a
// complete profile. Invoked by the morning cron job.
func (s *ScheduleService) SendDailyDigest(ctx context.Context) error {
	day, ok := DayOf(time.Now())
	if !ok {
		s.logger.Debug("No teaching day today, skipping digest")
		return nil
	}

	records, err := s.snapshots.Load(ctx, schedule.SnapshotOriginal)
	if err != nil {
		return fmt.Errorf("failed to load schedule for digest: %w", err)
	}
	if len(records) == 0 {
		s.logger.Info("No schedule published yet, skipping digest")
		return nil
	}

	directory, err := s.recipients.LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to load recipient directory for digest: %w", err)
	}

	sent := 0
	for _, profile := range directory {
		if !profile.Subscribed || !profile.Complete() {
			continue
		}
		text := FormatDaySchedule(day, recordsFor(profile, records, s.profile.Unions))
		if err := s.tg.SendMessage(profile.UserID, text, nil); err != nil {
			s.logger.WithError(err).WithField("user_id", profile.UserID).Error("Failed to send digest")
			continue
		}
		sent++
	}
	s.logger.WithFields(logrus.Fields{"day": day, "sent": sent}).Info("Morning digest dispatched")
	return nil
}

// recordsFor filters the snapshot down to the records relevant to a profile:
// a teacher's own lessons, or every lesson whose group union intersects the
// student's group.
func recordsFor(profile *recipient.Profile, records []schedule.Record, unions schedule.UnionTable) []schedule.Record {
	var out []schedule.Record
	switch profile.Role {
	case recipient.RoleTeacher:
		for _, rec := range records {
			if rec.Teacher == profile.TeacherName {
				out = append(out, rec)
			}
		}
	case recipient.RoleStudent:
		own := make(map[string]struct{})
		for _, label := range unions.Expand(profile.Group) {
			own[label] = struct{}{}
		}
		for _, rec := range records {
			for _, label := range unions.Expand(rec.Group) {
				if _, ok := own[label]; ok {
					out = append(out, rec)
					break
				}
			}
		}
	}
	return out
}
