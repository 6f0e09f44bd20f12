package service

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/crewshift/internal/app"
	"github.com/alexanderramin/crewshift/internal/repository"
)

// mapRepoErr lifts repository.ErrNotFound to app.ErrNotFound, keeping the
// original chain intact.
func mapRepoErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("%w: %w", app.ErrNotFound, err)
	}
	return err
}

func invalid(err error) error {
	return fmt.Errorf("%w: %w", app.ErrInvalidInput, err)
}
