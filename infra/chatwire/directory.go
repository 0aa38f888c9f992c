package chatwire

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mmrchat/murmur/domain"
)

// Directory is an in-memory snapshot of the workspace user directory.
// It satisfies app.ProfileDirectory: Lookup is synchronous and never
// blocks. Hydrate is called once at startup; a failed hydration leaves
// an empty snapshot, which degrades rendering but is never fatal.
type Directory struct {
	client *Client
	byID   map[string]domain.UserProfile
	selfID string
}

// NewDirectory creates an empty directory snapshot.
func NewDirectory(client *Client) *Directory {
	return &Directory{
		client: client,
		byID:   make(map[string]domain.UserProfile),
	}
}

type wireDirectory struct {
	Self  wireUser   `json:"self"`
	Users []wireUser `json:"users"`
}

// Hydrate fetches the directory snapshot from the backend.
func (d *Directory) Hydrate(ctx context.Context) error {
	data, err := d.client.Get(ctx, "/api/v1/users")
	if err != nil {
		return fmt.Errorf("fetching directory: %w", err)
	}

	var wd wireDirectory
	if err := json.Unmarshal(data, &wd); err != nil {
		return fmt.Errorf("parsing directory: %w", err)
	}

	byID := make(map[string]domain.UserProfile, len(wd.Users))
	for _, u := range wd.Users {
		if u.ID == "" {
			continue
		}
		byID[u.ID] = domain.UserProfile{
			ID:          u.ID,
			Username:    u.Username,
			DisplayName: u.DisplayName,
		}
	}
	d.byID = byID
	d.selfID = wd.Self.ID
	return nil
}

// Lookup returns the profile for a user id from the current snapshot.
func (d *Directory) Lookup(userID string) (domain.UserProfile, bool) {
	p, ok := d.byID[userID]
	return p, ok
}

// SelfID returns the authenticated user's id, empty before Hydrate.
func (d *Directory) SelfID() string {
	return d.selfID
}
