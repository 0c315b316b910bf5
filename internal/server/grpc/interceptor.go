package grpc

import (
	"context"
	"errors"

	"github.com/fgclabs/combovault/internal/common"
	"github.com/fgclabs/combovault/internal/server/auth"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	pb "github.com/fgclabs/combovault/internal/proto"
)

type ctxKey string

// UserIDKey is the context key under which the interceptor stores the
// authenticated user ID for protected methods.
const UserIDKey ctxKey = "userID"

// protectedMethods require a valid access token. Reads (GetCombo, GetSalt)
// and the auth endpoints themselves stay open.
var protectedMethods = map[string]struct{}{
	pb.ComboVaultService_CreateCombo_FullMethodName:          {},
	pb.ComboVaultService_VerifyCombo_FullMethodName:          {},
	pb.ComboVaultService_CloseCombo_FullMethodName:           {},
	pb.ComboVaultService_GetReplayUploadUrl_FullMethodName:   {},
	pb.ComboVaultService_GetReplayDownloadUrl_FullMethodName: {},
}

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	if _, ok := protectedMethods[info.FullMethod]; ok {

		var accessToken string
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			values := md.Get(common.AccessTokenHeaderName)
			if len(values) > 0 {
				accessToken = values[0]
			}
		}
		if len(accessToken) == 0 {
			return nil, status.Error(codes.Unauthenticated, "missing token")
		}

		userID, err := auth.GetUserIDFromToken(accessToken, s.jwtSecret)
		if err != nil {
			// The expired case keeps its sentinel message so clients can
			// refresh and retry instead of forcing a new login.
			if errors.Is(err, common.ErrTokenExpired) {
				return nil, status.Error(codes.Unauthenticated, common.ErrTokenExpired.Error())
			}
			return nil, status.Error(codes.Unauthenticated, "invalid token")
		}

		ctx = context.WithValue(ctx, UserIDKey, userID)

	}

	return handler(ctx, req)
}

// userIDFromContext extracts the user ID stored by the interceptor.
func userIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDKey).(string)
	return userID, ok && userID != ""
}
