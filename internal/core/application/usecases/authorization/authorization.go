// Package authorization wraps use case execution with the caller checks shared by every
// staff operation.
package authorization

import (
	"context"

	"bakery/internal/core/domain/model/user"
)

// HandleFunc is the body of a use case once the caller has been accepted.
type HandleFunc[C, R any] func(ctx context.Context, cmd C) (R, error)

// RequireAdmin runs handle only when caller holds the ADMIN role. A nil caller is rejected.
// The rejection happens before handle is entered, so no unit of work is created and no
// repository is called for an unauthorized caller.
func RequireAdmin[C, R any](ctx context.Context, caller *user.User, cmd C, handle HandleFunc[C, R]) (R, error) {
	if !caller.IsAdmin() {
		var zero R
		return zero, user.NewNotAdminError()
	}
	return handle(ctx, cmd)
}

// RequireAdminExec is RequireAdmin for use cases without a result.
func RequireAdminExec[C any](ctx context.Context, caller *user.User, cmd C, handle func(context.Context, C) error) error {
	_, err := RequireAdmin(ctx, caller, cmd, func(ctx context.Context, cmd C) (struct{}, error) {
		return struct{}{}, handle(ctx, cmd)
	})
	return err
}
