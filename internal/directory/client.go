package directory

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Client talks to the directory service's admin API. All calls are blocking
// remote round trips; the client performs no retries of its own.
type Client struct {
	host   string
	token  string
	client *http.Client
}

// NewClient creates a directory client for the given server and bearer token.
func NewClient(host, token string) *Client {
	return &Client{
		host:  host,
		token: token,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// ResolveGroup resolves a free-form identifier (name or email) to a group.
// Returns ErrNotFound when nothing matches and ErrAmbiguous when more than
// one group matches.
func (c *Client) ResolveGroup(identifier string) (GroupRef, error) {
	reqURL := fmt.Sprintf("%s/admin/groups/resolve?q=%s", c.host, url.QueryEscape(identifier))
	req, err := http.NewRequest("GET", reqURL, nil)
	if err != nil {
		return GroupRef{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.client.Do(req)
	if err != nil {
		return GroupRef{}, fmt.Errorf("failed to connect to directory: %w", err)
	}
	defer resp.Body.Close()

	if err := checkAuth(resp.StatusCode); err != nil {
		return GroupRef{}, err
	}
	if resp.StatusCode != http.StatusOK {
		return GroupRef{}, fmt.Errorf("unexpected response: %s", resp.Status)
	}

	var result struct {
		Matches []GroupRef `json:"matches"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return GroupRef{}, fmt.Errorf("failed to parse response: %w", err)
	}

	switch len(result.Matches) {
	case 0:
		return GroupRef{}, fmt.Errorf("group %q: %w", identifier, ErrNotFound)
	case 1:
		return result.Matches[0], nil
	default:
		return GroupRef{}, fmt.Errorf("group %q: %w", identifier, ErrAmbiguous)
	}
}

// ResolveUser resolves a free-form identifier (name or email) to a user
// mailbox. Returns ErrNotFound when nothing matches. The directory
// guarantees at most one match for mailbox lookups.
func (c *Client) ResolveUser(identifier string) (UserRef, error) {
	reqURL := fmt.Sprintf("%s/admin/users/resolve?q=%s", c.host, url.QueryEscape(identifier))
	req, err := http.NewRequest("GET", reqURL, nil)
	if err != nil {
		return UserRef{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.client.Do(req)
	if err != nil {
		return UserRef{}, fmt.Errorf("failed to connect to directory: %w", err)
	}
	defer resp.Body.Close()

	if err := checkAuth(resp.StatusCode); err != nil {
		return UserRef{}, err
	}
	if resp.StatusCode == http.StatusNotFound {
		return UserRef{}, fmt.Errorf("user %q: %w", identifier, ErrNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		return UserRef{}, fmt.Errorf("unexpected response: %s", resp.Status)
	}

	var user UserRef
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return UserRef{}, fmt.Errorf("failed to parse response: %w", err)
	}
	return user, nil
}

// AddMember links the user to the group with the Member role. Linking a user
// who is already a member is a no-op on the service side and is reported as
// success here.
func (c *Client) AddMember(group GroupRef, user UserRef) error {
	return c.grant(group, user, "members")
}

// AddOwner links the user to the group with the Owner role. Same idempotence
// rule as AddMember.
func (c *Client) AddOwner(group GroupRef, user UserRef) error {
	return c.grant(group, user, "owners")
}

func (c *Client) grant(group GroupRef, user UserRef, link string) error {
	body, err := json.Marshal(map[string]string{"userId": user.ID})
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	reqURL := fmt.Sprintf("%s/admin/groups/%s/%s", c.host, url.PathEscape(group.ID), link)
	req, err := http.NewRequest("POST", reqURL, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to connect to directory: %w", err)
	}
	defer resp.Body.Close()

	if err := checkAuth(resp.StatusCode); err != nil {
		return err
	}

	switch resp.StatusCode {
	case http.StatusCreated, http.StatusOK:
		return nil
	case http.StatusConflict:
		// Already linked. The grant is idempotent, not an error.
		return nil
	case http.StatusNotFound:
		return fmt.Errorf("group or user no longer exists: %s", resp.Status)
	case http.StatusBadRequest:
		var errResp struct {
			Detail string `json:"detail"`
		}
		json.NewDecoder(resp.Body).Decode(&errResp)
		return fmt.Errorf("invalid request: %s", errResp.Detail)
	default:
		return fmt.Errorf("unexpected response: %s", resp.Status)
	}
}

func checkAuth(status int) error {
	switch status {
	case http.StatusUnauthorized:
		return ErrSessionRequired
	case http.StatusForbidden:
		return fmt.Errorf("insufficient permissions for directory administration")
	default:
		return nil
	}
}
