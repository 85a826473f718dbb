package interceptor

import (
	"context"
	"strconv"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"rentwheels-backend/internal/config"
	"rentwheels-backend/internal/domain"
	"rentwheels-backend/internal/logger"
	"rentwheels-backend/internal/security"
)

// Metadata keys set by the interceptor for handlers. Client-supplied values
// under these keys are always overwritten.
const (
	MetadataUserID         = "user-id"
	MetadataUserRole       = "user-role"
	MetadataProviderStatus = "provider-status"
)

type AuthInterceptor struct {
	tokenManager security.TokenManager
}

func NewAuthInterceptor(tm security.TokenManager) *AuthInterceptor {
	return &AuthInterceptor{tokenManager: tm}
}

// Unary returns a server interceptor function to authenticate and authorize unary RPCs
func (i *AuthInterceptor) Unary() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		level := config.GetSecurityLevel(info.FullMethod)

		// Public endpoint - skip auth, but never let client metadata pose as an actor
		if level == config.SecurityPublic {
			return handler(stripActor(ctx), req)
		}

		token, err := i.extractToken(ctx)
		if err != nil {
			return nil, err
		}

		claims, err := i.tokenManager.ValidateToken(token)
		if err != nil {
			return nil, status.Errorf(codes.Unauthenticated, "invalid token: %v", err)
		}

		if err := i.checkSecurityLevel(level, claims); err != nil {
			logger.Warn("Rejected call", "method", info.FullMethod, "userID", claims.UserID, "error", err)
			return nil, err
		}

		md, ok := metadata.FromIncomingContext(ctx)
		if !ok {
			md = metadata.New(nil)
		} else {
			md = md.Copy()
		}
		md.Set(MetadataUserID, strconv.Itoa(int(claims.UserID)))
		md.Set(MetadataUserRole, string(claims.Role))
		if claims.ProviderStatus != "" {
			md.Set(MetadataProviderStatus, string(claims.ProviderStatus))
		} else {
			md.Delete(MetadataProviderStatus)
		}

		return handler(metadata.NewIncomingContext(ctx, md), req)
	}
}

func stripActor(ctx context.Context) context.Context {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ctx
	}
	md = md.Copy()
	md.Delete(MetadataUserID)
	md.Delete(MetadataUserRole)
	md.Delete(MetadataProviderStatus)
	return metadata.NewIncomingContext(ctx, md)
}

func (i *AuthInterceptor) extractToken(ctx context.Context) (string, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return "", status.Error(codes.Unauthenticated, "metadata is not provided")
	}

	authHeader := md["authorization"]
	if len(authHeader) == 0 {
		return "", status.Error(codes.Unauthenticated, "authorization token is not provided")
	}

	token := authHeader[0]
	// Remove Bearer prefix if present
	if len(token) > 7 && strings.ToUpper(token[0:7]) == "BEARER " {
		token = token[7:]
	}

	return token, nil
}

func (i *AuthInterceptor) checkSecurityLevel(level config.SecurityLevel, claims *security.UserClaims) error {
	if claims.Type != security.TokenTypeAccess {
		return status.Error(codes.PermissionDenied, security.ErrWrongTokenType.Error())
	}
	if level == config.SecurityAdmin && claims.Role != domain.RoleAdmin {
		return status.Error(codes.PermissionDenied, "admin role required")
	}
	return nil
}
