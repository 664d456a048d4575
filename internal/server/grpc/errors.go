package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/reportkeeper/internal/common"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var errorCodes = []struct {
	err  error
	code codes.Code
}{
	{common.ErrorDuplicatePhone, codes.AlreadyExists},
	{common.ErrorDuplicateMember, codes.AlreadyExists},
	{common.ErrorNotFound, codes.NotFound},
	{common.ErrorBadCredentials, codes.Unauthenticated},
	{common.ErrorUnauthorized, codes.Unauthenticated},
	{common.ErrInvalidToken, codes.Unauthenticated},
	{common.ErrTokenExpired, codes.Unauthenticated},
	{common.ErrorInvalidInput, codes.InvalidArgument},
	{common.ErrorCannotRemovePrimary, codes.FailedPrecondition},
	{common.ErrorArtifactMissing, codes.DataLoss},
	{common.ErrorUnsupported, codes.Unimplemented},
	{common.ErrorRecoveryIDExhausted, codes.ResourceExhausted},
}

// toStatus maps a service error onto a gRPC status. Unknown errors are
// logged and reported as Internal without leaking details.
func (s *GRPCServer) toStatus(ctx context.Context, err error) error {
	for _, e := range errorCodes {
		if errors.Is(err, e.err) {
			return status.Error(e.code, e.err.Error())
		}
	}
	s.logger.Error(ctx, "request failed", "error", err)
	return status.Error(codes.Internal, common.ErrorInternal.Error())
}
