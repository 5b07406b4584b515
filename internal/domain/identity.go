package domain

// Identity is the authenticated actor, resolved at the HTTP boundary and
// passed explicitly into every service call. Name holds only the first
// whitespace-delimited token of the user's name, used for greeting display.
type Identity struct {
	UserID int64
	Name   string
	Email  string
	Role   string
}

// CanModify reports whether the identity may complete or delete the task.
// This is the single source of truth for task authorization; Complete and
// Delete must both go through it.
func CanModify(identity Identity, task *Task) bool {
	return identity.UserID == task.UserID || identity.Role == RoleAdmin
}
