package cmd

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rollcall/cli/internal/directory"
)

func TestLookupCmd_Initialized(t *testing.T) {
	if lookupCmd == nil {
		t.Fatal("lookupCmd is nil")
	}

	if lookupCmd.Use != "lookup" {
		t.Errorf("lookupCmd.Use = %q, want %q", lookupCmd.Use, "lookup")
	}

	if lookupCmd.Short == "" {
		t.Error("lookupCmd.Short should not be empty")
	}
}

func TestLookupCmd_HasSubcommands(t *testing.T) {
	subcommands := lookupCmd.Commands()

	if len(subcommands) != 2 {
		t.Errorf("lookupCmd has %d subcommands, want 2", len(subcommands))
	}

	subcommandNames := make(map[string]bool)
	for _, cmd := range subcommands {
		subcommandNames[cmd.Name()] = true
	}

	for _, name := range []string{"group", "user"} {
		if !subcommandNames[name] {
			t.Errorf("lookupCmd missing subcommand %q", name)
		}
	}
}

func TestLookupGroup_Found(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("ROLLCALL_API_KEY", "test-key")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"matches": []directory.GroupRef{{ID: "g-sales", DisplayName: "Sales"}},
		})
	}))
	defer server.Close()

	output, err := runRollcall(t, "", "lookup", "group", "sales@example.com", "--server", server.URL)
	if err != nil {
		t.Fatalf("lookup group returned error: %v\noutput:\n%s", err, output)
	}
}

func TestLookupGroup_NotFound(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("ROLLCALL_API_KEY", "test-key")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"matches": []directory.GroupRef{}})
	}))
	defer server.Close()

	_, err := runRollcall(t, "", "lookup", "group", "nobody@example.com", "--server", server.URL)
	if err == nil {
		t.Fatal("lookup group should fail when nothing matches")
	}
}

func TestLookupUser_NotFound(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("ROLLCALL_API_KEY", "test-key")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := runRollcall(t, "", "lookup", "user", "unknown@example.com", "--server", server.URL)
	if err == nil {
		t.Fatal("lookup user should fail when nothing matches")
	}
}

func TestLookup_RequiresAuth(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("ROLLCALL_API_KEY", "")

	_, err := runRollcall(t, "", "lookup", "user", "alice@example.com", "--server", "http://localhost:1")
	if err == nil {
		t.Fatal("lookup should fail when no session or API key is available")
	}
}
