package app

import (
	"context"
	"errors"
	"testing"

	"schedule_notification_bot/internal/domain/recipient"
)

func newTestProfileService(t *testing.T, recipients *memRecipients) *ProfileService {
	t.Helper()
	return NewProfileService(recipients, testTimetableProfile(t), quietLogger())
}

func TestEnsureProfileCreatesSubscribed(t *testing.T) {
	recipients := newMemRecipients()
	svc := newTestProfileService(t, recipients)

	profile, err := svc.EnsureProfile(context.Background(), 7)
	if err != nil {
		t.Fatalf("EnsureProfile failed: %v", err)
	}
	if !profile.Subscribed {
		t.Error("a fresh profile must start subscribed")
	}
	if profile.Complete() {
		t.Error("a fresh profile has no role yet")
	}
	if _, ok := recipients.profiles[7]; !ok {
		t.Error("the new profile must be persisted")
	}
}

func TestEnsureProfileReturnsExisting(t *testing.T) {
	existing := &recipient.Profile{UserID: 7, Role: recipient.RoleStudent, Group: "101", Subscribed: false}
	recipients := newMemRecipients(existing)
	svc := newTestProfileService(t, recipients)

	profile, err := svc.EnsureProfile(context.Background(), 7)
	if err != nil {
		t.Fatalf("EnsureProfile failed: %v", err)
	}
	if profile.Group != "101" || profile.Subscribed {
		t.Errorf("existing profile must be returned untouched, got %+v", profile)
	}
}

func TestSetTeacherIdentityNormalizes(t *testing.T) {
	recipients := newMemRecipients()
	svc := newTestProfileService(t, recipients)

	// Punctuation and case differ from the roster spelling.
	canonical, err := svc.SetTeacherIdentity(context.Background(), 7, "  tajieva a. ")
	if err != nil {
		t.Fatalf("SetTeacherIdentity failed: %v", err)
	}
	if canonical != "Tajieva A" {
		t.Errorf("expected the roster spelling back, got %q", canonical)
	}
	saved := recipients.profiles[7]
	if saved.Role != recipient.RoleTeacher || saved.TeacherName != "Tajieva A" {
		t.Errorf("profile must carry the canonical identity, got %+v", saved)
	}
}

func TestSetTeacherIdentityUnknown(t *testing.T) {
	svc := newTestProfileService(t, newMemRecipients())

	if _, err := svc.SetTeacherIdentity(context.Background(), 7, "Nobody Q."); !errors.Is(err, ErrUnknownTeacher) {
		t.Fatalf("expected ErrUnknownTeacher, got %v", err)
	}
}

func TestSetGroupRejectsUnknown(t *testing.T) {
	svc := newTestProfileService(t, newMemRecipients())

	if err := svc.SetGroup(context.Background(), 7, "999"); !errors.Is(err, ErrUnknownGroup) {
		t.Fatalf("expected ErrUnknownGroup, got %v", err)
	}
}

func TestSetGroupClearsTeacherIdentity(t *testing.T) {
	existing := &recipient.Profile{UserID: 7, Role: recipient.RoleTeacher, TeacherName: "Tajieva A", Subscribed: true}
	recipients := newMemRecipients(existing)
	svc := newTestProfileService(t, recipients)

	if err := svc.SetGroup(context.Background(), 7, "101-102"); err != nil {
		t.Fatalf("SetGroup failed: %v", err)
	}
	saved := recipients.profiles[7]
	if saved.Role != recipient.RoleStudent || saved.Group != "101-102" || saved.TeacherName != "" {
		t.Errorf("switching to student must clear the teacher identity, got %+v", saved)
	}
}

func TestSetSubscribed(t *testing.T) {
	recipients := newMemRecipients(&recipient.Profile{UserID: 7, Role: recipient.RoleStudent, Group: "101", Subscribed: true})
	svc := newTestProfileService(t, recipients)

	if err := svc.SetSubscribed(context.Background(), 7, false); err != nil {
		t.Fatalf("SetSubscribed failed: %v", err)
	}
	if recipients.profiles[7].Subscribed {
		t.Error("unsubscribe must persist")
	}
	if err := svc.SetSubscribed(context.Background(), 7, true); err != nil {
		t.Fatalf("SetSubscribed failed: %v", err)
	}
	if !recipients.profiles[7].Subscribed {
		t.Error("resubscribe must persist")
	}
}
