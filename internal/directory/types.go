package directory

// GroupRef identifies a group that has been resolved through the directory
// API. A GroupRef is only ever obtained from a successful ResolveGroup call.
type GroupRef struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName,omitempty"`
	Mail        string `json:"mail,omitempty"`
}

// UserRef identifies a user mailbox that has been resolved through the
// directory API. A UserRef is only ever obtained from a successful
// ResolveUser call.
type UserRef struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName,omitempty"`
	Mail        string `json:"mail,omitempty"`
}

// Label returns the most human-friendly identifier available for the group.
func (g GroupRef) Label() string {
	if g.DisplayName != "" {
		return g.DisplayName
	}
	if g.Mail != "" {
		return g.Mail
	}
	return g.ID
}

// Label returns the most human-friendly identifier available for the user.
func (u UserRef) Label() string {
	if u.Mail != "" {
		return u.Mail
	}
	if u.DisplayName != "" {
		return u.DisplayName
	}
	return u.ID
}
