package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rollcall/cli/internal/apply"
	"github.com/rollcall/cli/internal/batch"
	"github.com/rollcall/cli/internal/directory"
	"github.com/rollcall/cli/internal/prompt"
)

var (
	addGroup  string
	addFile   string
	addRole   string
	addDryRun bool
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Bulk-add users to a group as members or owners",
	Long: `Add a batch of users to a directory group.

The group and every user are resolved against the directory before any
grant is issued; raw identifiers never reach the grant step. Users come
either from a file (one name or email per line, blank lines ignored)
or from manual entry. A grant that fails for one user does not stop
the rest of the batch.

When the owner role is chosen, each user is granted membership first
and ownership second, since the directory requires owners to also be
members.

Any of --group, --file and --role may be omitted; rollcall prompts for
whatever is missing. With all three set the run is fully
non-interactive.

Examples:
  rollcall add
  rollcall add --group sales@example.com --file users.txt --role member
  rollcall add -g "Sales Team" -r owner
  rollcall add -g sales@example.com -f users.txt -r member --dry-run`,
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringVarP(&addGroup, "group", "g", "", "Group name or email to add users to")
	addCmd.Flags().StringVarP(&addFile, "file", "f", "", "File with one user per line (bulk source)")
	addCmd.Flags().StringVarP(&addRole, "role", "r", "", "Role to grant: member or owner")
	addCmd.Flags().BoolVar(&addDryRun, "dry-run", false, "Resolve everything but report grants instead of issuing them")
}

func runAdd(cmd *cobra.Command, args []string) error {
	client, err := newDirectoryClient(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	p := prompt.New(cmd.InOrStdin(), out)
	rep := &consoleReporter{out: out}

	group, err := resolveGroupInteractive(client, p, out, addGroup)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Found group: %s\n", group.Label())

	users, err := collectUsers(client, p, rep, out)
	if err != nil {
		return err
	}
	if len(users) == 0 {
		fmt.Fprintln(out, "No users to add.")
		return nil
	}

	role, err := chooseRole(p, addRole)
	if err != nil {
		return err
	}

	var granter apply.Granter = client
	if addDryRun {
		granter = dryRunGranter{out: out}
	}

	fmt.Fprintf(out, "Adding %d user(s) to %s as %s...\n", len(users), group.Label(), role)
	summary, applyErr := apply.Apply(granter, apply.Request{
		Group: group,
		Users: users,
		Role:  role,
	}, rep)

	fmt.Fprintf(out, "\nDone: %d of %d user(s) added successfully.\n", summary.Succeeded, summary.Attempted)
	for _, f := range summary.Failures {
		fmt.Fprintf(out, "  failed: %s: %v\n", f.User.Label(), f.Err)
	}

	// A lost session aborts the batch; everything up to that point has
	// already been summarized above.
	return applyErr
}

// resolveGroupInteractive resolves the group, re-prompting on every
// NotFound/Ambiguous answer until one identifier resolves uniquely. A seed
// from the --group flag is tried first.
func resolveGroupInteractive(client *directory.Client, p *prompt.Prompter, out io.Writer, seed string) (directory.GroupRef, error) {
	identifier := seed
	for {
		if identifier == "" {
			var err error
			identifier, err = p.Ask("Group name or email")
			if err != nil {
				return directory.GroupRef{}, err
			}
			if identifier == "" {
				continue
			}
		}

		group, err := client.ResolveGroup(identifier)
		switch {
		case err == nil:
			return group, nil
		case errors.Is(err, directory.ErrNotFound), errors.Is(err, directory.ErrAmbiguous):
			fmt.Fprintf(out, "%v\n", err)
			identifier = ""
		default:
			return directory.GroupRef{}, err
		}
	}
}

func collectUsers(client *directory.Client, p *prompt.Prompter, rep *consoleReporter, out io.Writer) (batch.UserBatch, error) {
	if addFile != "" {
		return collectFromFile(client, p, rep, out, addFile)
	}

	choice, err := p.Select("How do you want to provide the users?", []string{
		"Bulk from a file (one user per line)",
		"Manual entry (type users one at a time)",
	})
	if err != nil {
		return nil, err
	}

	if choice == 0 {
		path, err := p.AskUntil("Path to user file", func(answer string) error {
			if answer == "" {
				return fmt.Errorf("enter a file path")
			}
			if _, err := os.Stat(answer); err != nil {
				return fmt.Errorf("cannot read %q", answer)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
		return collectFromFile(client, p, rep, out, path)
	}

	fmt.Fprintf(out, "Enter one user per line. Type %q to finish.\n", batch.DefaultSentinel)
	return batch.CollectManual(client, func() (string, error) {
		return p.Ask("User name or email")
	}, rep, batch.DefaultSentinel)
}

// collectFromFile runs bulk passes over the file until one pass is fully
// clean. An unresolved entry abandons the whole pass; the operator corrects
// the file and restarts, or aborts the run.
func collectFromFile(client *directory.Client, p *prompt.Prompter, rep *consoleReporter, out io.Writer, path string) (batch.UserBatch, error) {
	for {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open user file: %w", err)
		}
		lines, err := batch.ReadLines(f)
		f.Close()
		if err != nil {
			return nil, err
		}

		users, err := batch.CollectBulk(client, lines, rep)
		var unresolved *batch.UnresolvedEntryError
		if errors.As(err, &unresolved) {
			fmt.Fprintf(out, "Abandoning this pass: %v. Nothing from it is kept.\n", unresolved)
			retry, cerr := p.Confirm(fmt.Sprintf("Correct %s and restart the bulk pass?", path))
			if cerr != nil {
				return nil, cerr
			}
			if !retry {
				return nil, fmt.Errorf("bulk collection aborted: %w", err)
			}
			continue
		}
		if err != nil {
			return nil, err
		}
		return users, nil
	}
}

func chooseRole(p *prompt.Prompter, seed string) (apply.Role, error) {
	if seed != "" {
		role := apply.Role(strings.ToLower(seed))
		if !role.IsValid() {
			return "", fmt.Errorf("invalid role %q (use member or owner)", seed)
		}
		return role, nil
	}

	choice, err := p.Select("Which role should the users receive?", []string{
		"Member",
		"Owner (membership is granted as well)",
	})
	if err != nil {
		return "", err
	}
	if choice == 1 {
		return apply.RoleOwner, nil
	}
	return apply.RoleMember, nil
}

// consoleReporter renders collection and apply events as plain text.
type consoleReporter struct {
	out io.Writer
}

func (r *consoleReporter) UserResolved(user directory.UserRef) {
	fmt.Fprintf(r.out, "  resolved %s\n", user.Label())
}

func (r *consoleReporter) UserNotFound(identifier string) {
	fmt.Fprintf(r.out, "  warning: no mailbox found for %q\n", identifier)
}

func (r *consoleReporter) Granted(user directory.UserRef, role apply.Role) {
	fmt.Fprintf(r.out, "  granted %s to %s\n", role, user.Label())
}

func (r *consoleReporter) GrantFailed(user directory.UserRef, err error) {
	fmt.Fprintf(r.out, "  warning: could not add %s: %v\n", user.Label(), err)
}

func (r *consoleReporter) Progress(done, total int) {
	slog.Debug("batch progress", "done", done, "total", total)
}

// dryRunGranter reports the grants a real run would issue.
type dryRunGranter struct {
	out io.Writer
}

func (g dryRunGranter) AddMember(group directory.GroupRef, user directory.UserRef) error {
	fmt.Fprintf(g.out, "  would add %s as member of %s\n", user.Label(), group.Label())
	return nil
}

func (g dryRunGranter) AddOwner(group directory.GroupRef, user directory.UserRef) error {
	fmt.Fprintf(g.out, "  would add %s as owner of %s\n", user.Label(), group.Label())
	return nil
}
