// Package batch collects a validated, ordered list of directory users for a
// single membership run. Entries only enter a batch after they have resolved
// against the directory; raw strings never do.
package batch

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rollcall/cli/internal/directory"
)

// DefaultSentinel ends manual collection.
const DefaultSentinel = "done"

// UserBatch is the ordered list of resolved users targeted by one apply
// operation. Insertion order is grant order. Duplicates in the source are
// kept; each resolution yields an independent entry.
type UserBatch []directory.UserRef

// Resolver resolves free-form identifiers against the directory.
type Resolver interface {
	ResolveUser(identifier string) (directory.UserRef, error)
}

// Reporter receives collection events. Rendering is up to the caller; the
// collectors never write to the terminal themselves.
type Reporter interface {
	UserResolved(user directory.UserRef)
	UserNotFound(identifier string)
}

// UnresolvedEntryError reports the bulk entry that caused the pass to be
// abandoned. The partially collected batch is discarded with it.
type UnresolvedEntryError struct {
	Identifier string
	Line       int
	Err        error
}

func (e *UnresolvedEntryError) Error() string {
	return fmt.Sprintf("line %d: user %q did not resolve", e.Line, e.Identifier)
}

func (e *UnresolvedEntryError) Unwrap() error {
	return e.Err
}

// CollectBulk resolves every non-blank line into a batch. The whole pass is
// abandoned on the first entry that does not resolve: no partial batch is
// ever returned, so the caller can have the source corrected and run a clean
// pass. Errors other than ErrNotFound (e.g. ErrSessionRequired) propagate
// unchanged.
func CollectBulk(res Resolver, lines []string, rep Reporter) (UserBatch, error) {
	var users UserBatch
	for i, line := range lines {
		entry := strings.TrimSpace(line)
		if entry == "" {
			continue
		}

		user, err := res.ResolveUser(entry)
		if err != nil {
			if errors.Is(err, directory.ErrNotFound) {
				rep.UserNotFound(entry)
				return nil, &UnresolvedEntryError{Identifier: entry, Line: i + 1, Err: err}
			}
			return nil, err
		}

		users = append(users, user)
		rep.UserResolved(user)
	}
	return users, nil
}

// LineSource yields the next raw entry for manual collection. Returning
// io.EOF ends collection the same way the sentinel does.
type LineSource func() (string, error)

// CollectManual accepts one raw entry at a time until the sentinel (or EOF).
// Entries that do not resolve are reported and skipped; collection continues.
// Blank entries are ignored. Errors other than ErrNotFound propagate and end
// collection.
func CollectManual(res Resolver, next LineSource, rep Reporter, sentinel string) (UserBatch, error) {
	if sentinel == "" {
		sentinel = DefaultSentinel
	}

	var users UserBatch
	for {
		line, err := next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return users, nil
			}
			return nil, err
		}

		entry := strings.TrimSpace(line)
		if entry == "" {
			continue
		}
		if strings.EqualFold(entry, sentinel) {
			return users, nil
		}

		user, err := res.ResolveUser(entry)
		if err != nil {
			if errors.Is(err, directory.ErrNotFound) {
				rep.UserNotFound(entry)
				continue
			}
			return nil, err
		}

		users = append(users, user)
		rep.UserResolved(user)
	}
}

// ReadLines slurps a bulk source into its raw lines, preserving order.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return lines, nil
}
