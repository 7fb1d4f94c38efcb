// Package notify computes notification target sets. It is pure with respect
// to its inputs; dispatching the actual messages is the bot layer's job.
package notify

import (
	"sort"

	"schedule_notification_bot/internal/domain/recipient"
	"schedule_notification_bot/internal/domain/schedule"
)

// ChangeTargets computes the users to notify about a schedule change.
//
// A user is targeted iff they are subscribed (or an admin), their role's
// identity intersects the affected set, and they have not been targeted yet
// in this call. Each user id appears at most once regardless of how many
// affected teachers or groups match. The uploader, when privileged and not
// already included, is appended last. Ids are emitted in ascending order so
// the result is deterministic.
func ChangeTargets(
	affected schedule.Affected,
	directory map[int64]*recipient.Profile,
	unions schedule.UnionTable,
	adminIDs map[int64]struct{},
	uploaderID int64,
) []int64 {
	targets := make([]int64, 0, len(directory))
	seen := make(map[int64]struct{}, len(directory))
	for _, id := range sortedIDs(directory) {
		profile := directory[id]
		if profile == nil {
			continue
		}
		if !eligible(profile, adminIDs) {
			continue
		}
		if !matches(profile, affected, unions) {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		targets = append(targets, id)
	}
	return appendPrivilegedUploader(targets, seen, adminIDs, uploaderID)
}

// BroadcastTargets computes the recipients of a "new schedule published"
// notice: every subscribed user unconditionally, plus the uploader when
// privileged, independent of any diffing.
func BroadcastTargets(
	directory map[int64]*recipient.Profile,
	adminIDs map[int64]struct{},
	uploaderID int64,
) []int64 {
	targets := make([]int64, 0, len(directory))
	seen := make(map[int64]struct{}, len(directory))
	for _, id := range sortedIDs(directory) {
		profile := directory[id]
		if profile == nil || !profile.Subscribed {
			continue
		}
		seen[id] = struct{}{}
		targets = append(targets, id)
	}
	return appendPrivilegedUploader(targets, seen, adminIDs, uploaderID)
}

func eligible(p *recipient.Profile, adminIDs map[int64]struct{}) bool {
	if p.Subscribed {
		return true
	}
	_, admin := adminIDs[p.UserID]
	return admin
}

func matches(p *recipient.Profile, affected schedule.Affected, unions schedule.UnionTable) bool {
	switch p.Role {
	case recipient.RoleTeacher:
		if p.TeacherName == "" {
			return false
		}
		_, ok := affected.Teachers[p.TeacherName]
		return ok
	case recipient.RoleStudent:
		if p.Group == "" {
			return false
		}
		for _, label := range unions.Expand(p.Group) {
			if _, ok := affected.Groups[label]; ok {
				return true
			}
		}
		return false
	default:
		// Role not chosen yet: silently excluded, never a match.
		return false
	}
}

func appendPrivilegedUploader(targets []int64, seen map[int64]struct{}, adminIDs map[int64]struct{}, uploaderID int64) []int64 {
	if _, admin := adminIDs[uploaderID]; !admin {
		return targets
	}
	if _, dup := seen[uploaderID]; dup {
		return targets
	}
	return append(targets, uploaderID)
}

func sortedIDs(directory map[int64]*recipient.Profile) []int64 {
	ids := make([]int64, 0, len(directory))
	for id := range directory {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
