package grpc

import (
	"context"
	"strconv"

	"rentwheels-backend/internal/api/grpc/interceptor"
	"rentwheels-backend/internal/domain"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// GetUserIDFromContext extracts the user ID from the gRPC metadata.
// It expects a header named "user-id".
func GetUserIDFromContext(ctx context.Context) (int32, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return 0, status.Errorf(codes.Unauthenticated, "metadata is not provided")
	}

	userIDs := md.Get(interceptor.MetadataUserID)
	if len(userIDs) == 0 {
		return 0, status.Errorf(codes.Unauthenticated, "user_id is not provided in metadata")
	}

	userID, err := strconv.ParseInt(userIDs[0], 10, 32)
	if err != nil {
		return 0, status.Errorf(codes.InvalidArgument, "invalid user_id format: %v", err)
	}

	return int32(userID), nil
}

// GetActorFromContext builds the calling actor from the metadata injected by
// the auth interceptor.
func GetActorFromContext(ctx context.Context) (domain.Actor, error) {
	userID, err := GetUserIDFromContext(ctx)
	if err != nil {
		return domain.Actor{}, err
	}

	md, _ := metadata.FromIncomingContext(ctx)
	roles := md.Get(interceptor.MetadataUserRole)
	if len(roles) == 0 {
		return domain.Actor{}, status.Errorf(codes.Unauthenticated, "user role is not provided in metadata")
	}
	role, err := domain.ParseRole(roles[0])
	if err != nil {
		return domain.Actor{}, status.Errorf(codes.Unauthenticated, "invalid user role: %q", roles[0])
	}

	actor := domain.Actor{ID: userID, Role: role}
	if ps := md.Get(interceptor.MetadataProviderStatus); len(ps) > 0 {
		providerStatus, err := domain.ParseProviderStatus(ps[0])
		if err != nil {
			return domain.Actor{}, status.Errorf(codes.Unauthenticated, "invalid provider status: %q", ps[0])
		}
		actor.ProviderStatus = providerStatus
	}
	return actor, nil
}
