package proto

import (
	"strings"

	"github.com/dmitrijs2005/atelier/internal/common"
)

var partialFailurePrefix = common.ErrPersistedPartialFailure.Error() + ": pending "

// PartialFailureMessage is the codes.Aborted status message sent when an
// artwork blob was stored but its row was not. It carries the blob path the
// client needs for RetryArtworkRow.
func PartialFailureMessage(path string) string {
	return partialFailurePrefix + path
}

// PendingPathFromMessage extracts the blob path from a PartialFailureMessage.
func PendingPathFromMessage(msg string) (string, bool) {
	path, ok := strings.CutPrefix(msg, partialFailurePrefix)
	if !ok || path == "" {
		return "", false
	}
	return path, true
}
