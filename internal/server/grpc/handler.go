package grpc

import (
	"context"
	"errors"

	"github.com/fgclabs/combovault/internal/common"
	pb "github.com/fgclabs/combovault/internal/proto"
	"github.com/fgclabs/combovault/internal/server/models"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}

func (s *GRPCServer) RegisterUser(ctx context.Context, req *pb.RegisterUserRequest) (*pb.RegisterUserResponse, error) {

	s.logger.Info(ctx, "Registration request")

	result, err := s.users.Register(ctx, req.Username, req.Salt, req.Verifier)

	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, err.Error())
	}

	s.logger.Info(ctx, "Registered", "username", req.Username)
	return &pb.RegisterUserResponse{UserId: result.ID}, nil
}

func (s *GRPCServer) GetSalt(ctx context.Context, req *pb.GetSaltRequest) (*pb.GetSaltResponse, error) {

	result, err := s.users.GetSalt(ctx, req.Username)

	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	return &pb.GetSaltResponse{Salt: result}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {

	tokens, err := s.users.Login(ctx, req.Username, req.VerifierCandidate)

	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			return nil, status.Error(codes.Unauthenticated, "unauthorized")
		}
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &pb.LoginResponse{AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken}, nil
}

func (s *GRPCServer) RefreshToken(ctx context.Context, req *pb.RefreshTokenRequest) (*pb.RefreshTokenResponse, error) {

	tokens, err := s.users.RefreshToken(ctx, req.RefreshToken)

	if err != nil {
		if errors.Is(err, common.ErrRefreshTokenExpired) {
			return nil, status.Error(codes.Unauthenticated, "refresh token expired")
		}
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &pb.RefreshTokenResponse{AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken}, nil
}

// comboToPb maps a stored record to its wire shape.
func comboToPb(c *models.Combo) *pb.Combo {
	out := &pb.Combo{
		Address:           c.Address,
		Owner:             c.Owner,
		CharacterId:       uint32(c.CharacterID),
		Name:              c.Name,
		Damage:            c.Damage,
		MeterGain:         c.MeterGain,
		MoveCount:         uint32(c.MoveCount),
		Fingerprint:       c.Fingerprint,
		CreatedAt:         c.CreatedAt.Unix(),
		VerificationCount: c.VerificationCount,
		Deposit:           c.Deposit,
		Bump:              uint32(c.Bump),
	}
	if c.LastVerifiedAt != nil {
		out.LastVerifiedAt = c.LastVerifiedAt.Unix()
	}
	return out
}

// comboErrToStatus maps service errors to gRPC status codes. The validation
// taxonomy surfaces as InvalidArgument with the sentinel's message so clients
// can tell the reasons apart.
func comboErrToStatus(err error) error {
	switch {
	case errors.Is(err, common.ErrNameTooLong),
		errors.Is(err, common.ErrInvalidDamage),
		errors.Is(err, common.ErrInvalidMeterGain),
		errors.Is(err, common.ErrInvalidMoveCount),
		errors.Is(err, common.ErrTooManyMoves):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrComboAlreadyExists):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, common.ErrDestinationNotFound):
		return status.Error(codes.FailedPrecondition, "destination account not found")
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, "combo not found")
	case errors.Is(err, common.ErrorUnauthorized):
		return status.Error(codes.PermissionDenied, "not the record owner")
	default:
		return status.Error(codes.Internal, "internal error")
	}
}

func (s *GRPCServer) CreateCombo(ctx context.Context, req *pb.CreateComboRequest) (*pb.CreateComboResponse, error) {

	userID, ok := userIDFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "missing user")
	}

	if req.CharacterId > 255 || req.MoveCount > 255 {
		return nil, status.Error(codes.InvalidArgument, "value out of range")
	}

	combo, err := s.combos.Create(ctx, userID, uint8(req.CharacterId), req.Name, req.Damage, req.MeterGain, uint8(req.MoveCount))
	if err != nil {
		s.logger.Error(ctx, "create combo failed", "error", err.Error())
		return nil, comboErrToStatus(err)
	}

	s.logger.Info(ctx, "combo created", "address", combo.Address)
	return &pb.CreateComboResponse{Combo: comboToPb(combo)}, nil
}

func (s *GRPCServer) VerifyCombo(ctx context.Context, req *pb.VerifyComboRequest) (*pb.VerifyComboResponse, error) {

	userID, ok := userIDFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "missing user")
	}

	count, at, err := s.combos.Verify(ctx, userID, req.Address, req.Moves, req.ReplayKey)
	if err != nil {
		s.logger.Error(ctx, "verify combo failed", "error", err.Error())
		return nil, comboErrToStatus(err)
	}

	return &pb.VerifyComboResponse{VerificationCount: count, LastVerifiedAt: at.Unix()}, nil
}

func (s *GRPCServer) CloseCombo(ctx context.Context, req *pb.CloseComboRequest) (*pb.CloseComboResponse, error) {

	userID, ok := userIDFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "missing user")
	}

	if err := s.combos.Close(ctx, userID, req.Address, req.Destination); err != nil {
		s.logger.Error(ctx, "close combo failed", "error", err.Error())
		return nil, comboErrToStatus(err)
	}

	s.logger.Info(ctx, "combo closed", "address", req.Address)
	return &pb.CloseComboResponse{}, nil
}

func (s *GRPCServer) GetCombo(ctx context.Context, req *pb.GetComboRequest) (*pb.GetComboResponse, error) {

	combo, err := s.combos.Get(ctx, req.Address)
	if err != nil {
		return nil, comboErrToStatus(err)
	}

	return &pb.GetComboResponse{Combo: comboToPb(combo)}, nil
}

func (s *GRPCServer) GetReplayUploadUrl(ctx context.Context, req *pb.GetReplayUploadUrlRequest) (*pb.GetReplayUploadUrlResponse, error) {

	key, url, err := s.replays.GetPresignedPutUrl(ctx)
	if err != nil {
		s.logger.Error(ctx, "presign upload failed", "error", err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &pb.GetReplayUploadUrlResponse{Key: key, Url: url}, nil
}

func (s *GRPCServer) GetReplayDownloadUrl(ctx context.Context, req *pb.GetReplayDownloadUrlRequest) (*pb.GetReplayDownloadUrlResponse, error) {

	url, err := s.replays.GetPresignedGetUrl(ctx, req.Key)
	if err != nil {
		s.logger.Error(ctx, "presign download failed", "error", err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &pb.GetReplayDownloadUrlResponse{Url: url}, nil
}
