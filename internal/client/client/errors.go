package client

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/atelier/internal/common"
)

var (
	ErrUnavailable     = errors.New("server unavailable")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrNotFound        = errors.New("not found")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrAlreadyExists   = errors.New("already exists")
	ErrNotLoggedIn     = errors.New("not logged in")
)

// PartialFailureError reports an upload whose image was stored at Path while
// its gallery row was not. It matches common.ErrPersistedPartialFailure.
type PartialFailureError struct {
	Path string
}

func (e *PartialFailureError) Error() string {
	return fmt.Sprintf("image stored at %s but its record was not saved", e.Path)
}

func (e *PartialFailureError) Is(target error) bool {
	return target == common.ErrPersistedPartialFailure
}
