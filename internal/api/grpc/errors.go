package grpc

import (
	"errors"

	"rentwheels-backend/internal/domain"
	"rentwheels-backend/internal/logger"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var kindCodes = map[domain.ErrorKind]codes.Code{
	domain.KindNotFound:          codes.NotFound,
	domain.KindForbidden:         codes.PermissionDenied,
	domain.KindConflict:          codes.AlreadyExists,
	domain.KindInvalidTransition: codes.FailedPrecondition,
	domain.KindUnavailable:       codes.FailedPrecondition,
	domain.KindValidation:        codes.InvalidArgument,
}

// toStatus converts a service error into a gRPC status. Internal failures are
// logged and reported without detail.
func toStatus(method string, err error) error {
	if err == nil {
		return nil
	}

	var de *domain.Error
	if errors.As(err, &de) {
		if code, ok := kindCodes[de.Kind]; ok {
			return status.Error(code, de.Reason)
		}
	} else if _, ok := status.FromError(err); ok {
		return err
	}

	logger.Error("Internal error", "method", method, "error", err)
	return status.Error(codes.Internal, "internal error")
}
