package recipient

// Role is the self-declared role of a chat user.
type Role string

const (
	RoleTeacher Role = "teacher"
	RoleStudent Role = "student"
)

// Profile holds one chat user's notification preferences. A profile is
// created on first contact with subscription enabled and is never deleted;
// role and identity are filled in by preference commands.
type Profile struct {
	UserID      int64
	Role        Role   // empty until the user picks one
	TeacherName string // set only when Role is RoleTeacher
	Group       string // canonical union name, set only when Role is RoleStudent
	Subscribed  bool
}

// NewProfile returns a fresh profile with the default subscription on.
func NewProfile(userID int64) *Profile {
	return &Profile{UserID: userID, Subscribed: true}
}

// Complete reports whether the profile carries both a role and the matching
// identity. Incomplete profiles never match change targeting.
func (p *Profile) Complete() bool {
	switch p.Role {
	case RoleTeacher:
		return p.TeacherName != ""
	case RoleStudent:
		return p.Group != ""
	default:
		return false
	}
}
