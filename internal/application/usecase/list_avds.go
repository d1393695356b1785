package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/avdedit/internal/application/port"
	"github.com/bnema/avdedit/internal/domain/entity"
	"github.com/bnema/avdedit/internal/logging"
)

// ListAvdsUseCase enumerates the AVDs under a root directory.
type ListAvdsUseCase struct {
	registry port.AvdRegistry
}

// NewListAvdsUseCase creates a new ListAvdsUseCase.
func NewListAvdsUseCase(registry port.AvdRegistry) *ListAvdsUseCase {
	return &ListAvdsUseCase{registry: registry}
}

// ListAvdsInput contains parameters for listing AVDs.
type ListAvdsInput struct {
	// Root overrides the AVD root. Empty means ~/.android/avd.
	Root string
}

// ListAvdsOutput contains the discovered AVDs.
type ListAvdsOutput struct {
	Root string
	Avds []entity.AvdDescriptor
}

// Execute lists the AVDs under the requested or default root.
func (uc *ListAvdsUseCase) Execute(ctx context.Context, input ListAvdsInput) (*ListAvdsOutput, error) {
	log := logging.FromContext(ctx)

	root, err := uc.root(input.Root)
	if err != nil {
		return nil, err
	}

	avds, err := uc.registry.ListAvds(ctx, root)
	if err != nil {
		log.Error().Err(err).Str("root", root).Msg("failed to list avds")
		return nil, err
	}

	log.Debug().Str("root", root).Int("count", len(avds)).Msg("listed avds")
	return &ListAvdsOutput{Root: root, Avds: avds}, nil
}

// Resolve finds the AVD whose label or directory name equals name.
func (uc *ListAvdsUseCase) Resolve(ctx context.Context, root, name string) (entity.AvdDescriptor, error) {
	out, err := uc.Execute(ctx, ListAvdsInput{Root: root})
	if err != nil {
		return entity.AvdDescriptor{}, err
	}
	for _, avd := range out.Avds {
		if avd.Matches(name) {
			return avd, nil
		}
	}
	return entity.AvdDescriptor{}, fmt.Errorf("%w: %q in %s", entity.ErrAvdNotFound, name, out.Root)
}

func (uc *ListAvdsUseCase) root(override string) (string, error) {
	if override != "" {
		return override, nil
	}
	root, err := uc.registry.DefaultAvdRoot()
	if err != nil {
		return "", fmt.Errorf("default avd root: %w", err)
	}
	return root, nil
}
