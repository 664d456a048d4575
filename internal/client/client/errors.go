package client

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/reportkeeper/internal/common"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotLoggedIn  = errors.New("not logged in")
)

// serverErrors are the sentinels the server reports verbatim as status
// messages. Matching them back lets callers use errors.Is across the wire.
var serverErrors = []error{
	common.ErrorDuplicatePhone,
	common.ErrorDuplicateMember,
	common.ErrorNotFound,
	common.ErrorBadCredentials,
	common.ErrorInvalidInput,
	common.ErrorCannotRemovePrimary,
	common.ErrorArtifactMissing,
	common.ErrorUnsupported,
	common.ErrorRecoveryIDExhausted,
	common.ErrTokenExpired,
}

func mapError(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	for _, e := range serverErrors {
		if st.Message() == e.Error() {
			return e
		}
	}

	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return ErrUnauthorized
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
