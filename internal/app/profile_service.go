package app

import (
	"context"
	"errors"
	"fmt"

	"schedule_notification_bot/internal/domain/recipient"
	"schedule_notification_bot/internal/domain/schedule"
	"schedule_notification_bot/internal/infra/config"
	idb "schedule_notification_bot/internal/infra/database"

	"github.com/sirupsen/logrus"
)

var (
	// ErrUnknownTeacher marks a teacher identity that matches no roster entry.
	ErrUnknownTeacher = errors.New("teacher name not found in roster")
	// ErrUnknownGroup marks a group identity that is no union-table key.
	ErrUnknownGroup = errors.New("group is not known")
	// ErrIncompleteProfile marks a profile without role or identity.
	ErrIncompleteProfile = errors.New("profile is incomplete")
)

// ProfileService manages recipient profiles: creation on first contact, role
// and identity selection, and the subscription toggle.
type ProfileService struct {
	recipients recipient.Repository
	profile    *config.TimetableProfile
	logger     *logrus.Entry
}

func NewProfileService(recipients recipient.Repository, profile *config.TimetableProfile, logger *logrus.Entry) *ProfileService {
	return &ProfileService{recipients: recipients, profile: profile, logger: logger}
}

// EnsureProfile returns the user's profile, creating it with the default
// subscription on first contact.
func (s *ProfileService) EnsureProfile(ctx context.Context, userID int64) (*recipient.Profile, error) {
	profile, err := s.recipients.Get(ctx, userID)
	if err == nil {
		return profile, nil
	}
	if err != idb.ErrRecipientNotFound {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	profile = recipient.NewProfile(userID)
	if err := s.recipients.Save(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}
	s.logger.WithField("user_id", userID).Info("New recipient profile created")
	return profile, nil
}

// SetRole records the user's role choice. Choosing a role clears the other
// role's identity so a stale identity can never match.
func (s *ProfileService) SetRole(ctx context.Context, userID int64, role recipient.Role) error {
	profile, err := s.EnsureProfile(ctx, userID)
	if err != nil {
		return err
	}
	profile.Role = role
	switch role {
	case recipient.RoleTeacher:
		profile.Group = ""
	case recipient.RoleStudent:
		profile.TeacherName = ""
	}
	return s.recipients.Save(ctx, profile)
}

// SetTeacherIdentity matches the given name against the roster using the
// same normalization the extractor applies, and stores the roster's
// canonical spelling. Returns the canonical name.
func (s *ProfileService) SetTeacherIdentity(ctx context.Context, userID int64, name string) (string, error) {
	needle := schedule.NormalizeName(name)
	if needle == "" {
		return "", ErrUnknownTeacher
	}
	canonical := ""
	for _, entry := range s.profile.Roster {
		if schedule.NormalizeName(entry) == needle {
			canonical = entry
			break
		}
	}
	if canonical == "" {
		return "", ErrUnknownTeacher
	}

	profile, err := s.EnsureProfile(ctx, userID)
	if err != nil {
		return "", err
	}
	profile.Role = recipient.RoleTeacher
	profile.TeacherName = canonical
	profile.Group = ""
	if err := s.recipients.Save(ctx, profile); err != nil {
		return "", err
	}
	return canonical, nil
}

// SetGroup stores the user's group identity. The group must be a canonical
// name of the union table.
func (s *ProfileService) SetGroup(ctx context.Context, userID int64, group string) error {
	if !s.profile.Unions.HasName(group) {
		return ErrUnknownGroup
	}
	profile, err := s.EnsureProfile(ctx, userID)
	if err != nil {
		return err
	}
	profile.Role = recipient.RoleStudent
	profile.Group = group
	profile.TeacherName = ""
	return s.recipients.Save(ctx, profile)
}

// SetSubscribed toggles the notification subscription.
func (s *ProfileService) SetSubscribed(ctx context.Context, userID int64, on bool) error {
	profile, err := s.EnsureProfile(ctx, userID)
	if err != nil {
		return err
	}
	profile.Subscribed = on
	return s.recipients.Save(ctx, profile)
}

// Groups lists the canonical group names a student can pick from.
func (s *ProfileService) Groups() []string {
	return s.profile.Unions.Names()
}
