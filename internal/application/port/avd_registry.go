package port

import (
	"context"

	"github.com/bnema/avdedit/internal/domain/entity"
)

// AvdRegistry discovers the Android Virtual Devices installed locally.
type AvdRegistry interface {
	// ListAvds returns the immediate subdirectories of root, sorted by name.
	// A missing root yields an empty slice and no error.
	ListAvds(ctx context.Context, root string) ([]entity.AvdDescriptor, error)

	// DefaultAvdRoot returns ~/.android/avd for the current user.
	DefaultAvdRoot() (string, error)
}
