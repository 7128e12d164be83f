package cli

import (
	"errors"

	"github.com/dmitrijs2005/atelier/internal/client/client"
	"github.com/dmitrijs2005/atelier/internal/common"
)

var errUsage = errors.New("usage")

// usageError carries the usage line of a command invoked with bad arguments.
type usageError struct {
	usage string
}

func (e usageError) Error() string { return "usage: " + e.usage }

func (e usageError) Is(target error) bool { return target == errUsage }

// describeError turns an error into the line shown to the user.
func describeError(err error) string {
	var partial *client.PartialFailureError
	switch {
	case errors.As(err, &partial):
		return "the image was stored but its record was not; it is listed under 'pending'"
	case errors.Is(err, common.ErrUploadRejected):
		return "the server could not store the image, nothing was saved; try again"
	case errors.Is(err, common.ErrDeletionBlocked):
		return "the image could not be removed, so the artwork was kept; try again later"
	case errors.Is(err, client.ErrUnavailable):
		return "server unavailable"
	case errors.Is(err, client.ErrUnauthorized):
		return "not authorized, please login again"
	case errors.Is(err, client.ErrNotFound), errors.Is(err, common.ErrorNotFound):
		return "not found"
	case errors.Is(err, client.ErrAlreadyExists):
		return "already exists"
	}
	return err.Error()
}
