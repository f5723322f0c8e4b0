package internal

import (
	"context"
	"time"
)

// Account roles as stored in the users table.
const (
	RoleBusinessAdmin = "business_admin"
	RoleEmployee      = "employee"
)

// AccountContext is the resolved identity attached to a request after the
// authorization guard re-reads the account from the store. Downstream
// handlers trust it instead of the client-visible profile cookie.
type AccountContext struct {
	ID                  int64
	Name                string
	Email               string
	Role                string
	JobTitle            string
	EmployeeRole        string
	IsActive            bool
	IsPasswordTemporary bool
}

func (a *AccountContext) IsAdmin() bool {
	return a.Role == RoleBusinessAdmin
}

func (a *AccountContext) IsEmployee() bool {
	return a.Role == RoleEmployee
}

type ctxKey string

const ContextAccountKey ctxKey = "account"

func AccountFromContext(ctx context.Context) (*AccountContext, bool) {
	if ctx == nil {
		return nil, false
	}
	account, ok := ctx.Value(ContextAccountKey).(*AccountContext)
	return account, ok
}

func ContextWithAccount(ctx context.Context, account *AccountContext) context.Context {
	return context.WithValue(ctx, ContextAccountKey, account)
}

// WithTimeout returns a context with timeout, defaulting to 5 seconds if duration is zero or negative.
func WithTimeout(ctx context.Context, duration time.Duration) (context.Context, context.CancelFunc) {
	if duration <= 0 {
		duration = 5 * time.Second
	}
	return context.WithTimeout(ctx, duration)
}
