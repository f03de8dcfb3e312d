package napps

import "context"

// Manager owns the on-disk state of NApps.
type Manager interface {
	// Enable links an installed NApp into the enabled directory.
	// Fails with ErrNotInstalled or ErrAlreadyEnabled.
	Enable(ctx context.Context, napp NApp) error
	// Disable removes the enabled link of a NApp. Fails with ErrNotEnabled.
	Disable(ctx context.Context, napp NApp) error
	// ListEnabled returns the enabled NApps.
	ListEnabled(ctx context.Context) ([]NApp, error)
	// ListDisabled returns the installed NApps that are not enabled.
	ListDisabled(ctx context.Context) ([]NApp, error)
}

// List returns the enabled and the disabled NApps reported by m.
func List(ctx context.Context, m Manager) ([]NApp, []NApp, error) {
	enabled, err := m.ListEnabled(ctx)
	if err != nil {
		return nil, nil, err
	}
	disabled, err := m.ListDisabled(ctx)
	if err != nil {
		return nil, nil, err
	}
	return enabled, disabled, nil
}
