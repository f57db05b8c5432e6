package state

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/jay4webdev/Bill-Tracker/internal/models"
)

// Users returns a copy of every user, password hashes included.
func (c *Controller) Users() []models.User {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.snap.Users)
}

// UserByID returns a user by ID.
func (c *Controller) UserByID(id string) (*models.User, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	i := c.userIndex(id)
	if i < 0 {
		return nil, notFoundf("user %s", id)
	}
	u := c.snap.Users[i]
	return &u, nil
}

// GetUserByUsername returns (nil, nil) when no user has that username.
func (c *Controller) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, u := range c.snap.Users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, nil
}

// CreateUser stores a new user. An ID is assigned when empty.
func (c *Controller) CreateUser(ctx context.Context, user *models.User) error {
	if err := validateUser(user); err != nil {
		return err
	}

	c.mu.Lock()
	if c.usernameTaken(user.Username, "") {
		c.mu.Unlock()
		return fmt.Errorf("%w: username %q", ErrConflict, user.Username)
	}
	if user.ID == "" {
		user.ID = c.newID()
	}
	if err := c.store.SaveUser(ctx, user); err != nil {
		c.mu.Unlock()
		return syncFailed(err)
	}
	c.snap.Users = append(c.snap.Users, *user)
	c.mu.Unlock()

	c.notify(Event{Kind: EventUsersChanged})
	return nil
}

// UpdateUser overwrites an existing user. An empty PasswordHash keeps the
// current one; CreatedAt is never changed.
func (c *Controller) UpdateUser(ctx context.Context, user models.User) (models.User, error) {
	user.Username = strings.TrimSpace(user.Username)
	user.FullName = strings.TrimSpace(user.FullName)

	c.mu.Lock()
	i := c.userIndex(user.ID)
	if i < 0 {
		c.mu.Unlock()
		return models.User{}, notFoundf("user %s", user.ID)
	}
	current := c.snap.Users[i]
	if user.PasswordHash == "" {
		user.PasswordHash = current.PasswordHash
	}
	user.CreatedAt = current.CreatedAt

	if err := validateUser(&user); err != nil {
		c.mu.Unlock()
		return models.User{}, err
	}
	if c.usernameTaken(user.Username, user.ID) {
		c.mu.Unlock()
		return models.User{}, fmt.Errorf("%w: username %q", ErrConflict, user.Username)
	}
	if err := c.store.SaveUser(ctx, &user); err != nil {
		c.mu.Unlock()
		return models.User{}, syncFailed(err)
	}
	c.snap.Users[i] = user
	c.mu.Unlock()

	c.notify(Event{Kind: EventUsersChanged})
	return user, nil
}

// DeleteUser removes a user on behalf of actorID. Nobody can delete their
// own account.
func (c *Controller) DeleteUser(ctx context.Context, actorID, id string) error {
	if actorID == id {
		return ErrSelfDelete
	}

	c.mu.Lock()
	i := c.userIndex(id)
	if i < 0 {
		c.mu.Unlock()
		return notFoundf("user %s", id)
	}
	if err := c.store.DeleteUser(ctx, id); err != nil {
		c.mu.Unlock()
		return syncFailed(err)
	}
	c.snap.Users = slices.Delete(c.snap.Users, i, i+1)
	c.mu.Unlock()

	c.notify(Event{Kind: EventUsersChanged})
	return nil
}

func validateUser(u *models.User) error {
	if u.Username == "" {
		return invalidf("username is required")
	}
	if u.FullName == "" {
		return invalidf("full name is required")
	}
	if !u.Role.Valid() {
		return invalidf("unknown role %q", u.Role)
	}
	if u.PasswordHash == "" {
		return invalidf("password is required")
	}
	return nil
}

func (c *Controller) userIndex(id string) int {
	return slices.IndexFunc(c.snap.Users, func(u models.User) bool { return u.ID == id })
}

func (c *Controller) usernameTaken(username, exceptID string) bool {
	return slices.ContainsFunc(c.snap.Users, func(u models.User) bool {
		return u.Username == username && u.ID != exceptID
	})
}
