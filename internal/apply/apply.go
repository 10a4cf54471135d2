// Package apply grants group membership (and optionally ownership) to a
// validated batch of users, one grant at a time. A failed grant for one user
// never aborts the rest of the batch.
package apply

import (
	"errors"
	"fmt"

	"github.com/rollcall/cli/internal/directory"
)

// Role is the link type granted to each user in the batch.
type Role string

const (
	RoleMember Role = "member"
	RoleOwner  Role = "owner"
)

// IsValid returns true if the role is a recognized link type.
func (r Role) IsValid() bool {
	switch r {
	case RoleMember, RoleOwner:
		return true
	default:
		return false
	}
}

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// Granter issues membership links against the directory. Grants are
// idempotent on the service side: linking an already-linked user succeeds.
type Granter interface {
	AddMember(group directory.GroupRef, user directory.UserRef) error
	AddOwner(group directory.GroupRef, user directory.UserRef) error
}

// Request describes one apply operation: every user in Users receives Role
// on Group. Owner implies member, so RoleOwner issues the member grant first
// and the owner grant second for each user.
type Request struct {
	Group directory.GroupRef
	Users []directory.UserRef
	Role  Role
}

// Validate checks if the request is well formed.
func (r *Request) Validate() error {
	if r.Group.ID == "" {
		return fmt.Errorf("group is required")
	}
	if !r.Role.IsValid() {
		return fmt.Errorf("invalid role %q", r.Role)
	}
	for _, u := range r.Users {
		if u.ID == "" {
			return fmt.Errorf("batch contains an unresolved user")
		}
	}
	return nil
}

// Failure records a grant that failed for one user.
type Failure struct {
	User directory.UserRef
	Err  error
}

// Summary is the outcome of one apply operation.
type Summary struct {
	Attempted int
	Succeeded int
	Failures  []Failure
}

// Reporter receives per-user apply events.
type Reporter interface {
	Granted(user directory.UserRef, role Role)
	GrantFailed(user directory.UserRef, err error)
	Progress(done, total int)
}

// Apply grants the requested role to every user in order. Per-user failures
// are recorded in the summary and the batch continues. The one exception is
// ErrSessionRequired: once the session is gone no further grant can succeed,
// so Apply stops and returns the error alongside the summary so far.
func Apply(g Granter, req Request, rep Reporter) (Summary, error) {
	var summary Summary
	if err := req.Validate(); err != nil {
		return summary, err
	}

	total := len(req.Users)
	for _, user := range req.Users {
		summary.Attempted++

		err := g.AddMember(req.Group, user)
		if err == nil && req.Role == RoleOwner {
			err = g.AddOwner(req.Group, user)
		}

		if err != nil {
			if errors.Is(err, directory.ErrSessionRequired) {
				return summary, err
			}
			summary.Failures = append(summary.Failures, Failure{User: user, Err: err})
			rep.GrantFailed(user, err)
		} else {
			summary.Succeeded++
			rep.Granted(user, req.Role)
		}
		rep.Progress(summary.Attempted, total)
	}
	return summary, nil
}
