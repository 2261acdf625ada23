package users

import "context"

var ErrNotFound = errNotFound{}

type errNotFound struct{}

func (errNotFound) Error() string { return "user not found" }

// Repo persists users.
type Repo interface {
	// UpsertLogin creates the user for email if needed and stamps the login time.
	UpsertLogin(ctx context.Context, id, email string) (User, error)
	GetByID(ctx context.Context, userID string) (User, error)
}
