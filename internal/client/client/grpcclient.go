package client

import (
	"context"
	"fmt"
	"time"

	"github.com/fgclabs/combovault/internal/client/models"
	"github.com/fgclabs/combovault/internal/common"
	pb "github.com/fgclabs/combovault/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	endpointURL  string
	conn         *grpc.ClientConn
	client       pb.ComboVaultServiceClient
	accessToken  string
	refreshToken string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {

	ctx = withAccessToken(ctx, s.accessToken)

	err := invoker(ctx, method, req, reply, cc, opts...)

	if err != nil {

		st, ok := status.FromError(err)
		if !ok {
			return err
		}

		if st.Code() != codes.Unauthenticated {
			return err
		}
		if st.Message() != common.ErrTokenExpired.Error() {
			return err
		}

		if s.refreshToken == "" {
			return err
		}

		refreshTokenResponse, err := s.client.RefreshToken(ctx, &pb.RefreshTokenRequest{RefreshToken: s.refreshToken})
		if err != nil {
			return err
		}

		s.accessToken = refreshTokenResponse.AccessToken
		s.refreshToken = refreshTokenResponse.RefreshToken

		// TOKENS REFRESHED, creating context with new Access Token
		ctx = withAccessToken(ctx, s.accessToken)
		return invoker(ctx, method, req, reply, cc, opts...)

	}

	return err
}

func NewComboVaultClientService(endpointURL string) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}
	err := c.InitGRPCClient()
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient() error {

	conn, err := grpc.NewClient(s.endpointURL, grpc.WithTransportCredentials(insecure.NewCredentials()), grpc.WithUnaryInterceptor(s.accessTokenInterceptor))
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewComboVaultServiceClient(conn)
	return nil
}

func (s *GRPCClient) Register(ctx context.Context, userName string, salt []byte, verifier []byte) error {

	req := &pb.RegisterUserRequest{Username: userName, Salt: salt, Verifier: verifier}

	_, err := s.client.RegisterUser(ctx, req)

	if err != nil {
		return s.mapError(err)
	}

	return nil

}

func (s *GRPCClient) GetSalt(ctx context.Context, userName string) ([]byte, error) {

	ctx, cancel := context.WithTimeout(ctx, 12*time.Second)
	defer cancel()

	req := &pb.GetSaltRequest{Username: userName}

	resp, err := s.client.GetSalt(ctx, req)

	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Salt, nil
}

func (s *GRPCClient) Login(ctx context.Context, userName string, verifier []byte) error {

	req := &pb.LoginRequest{Username: userName, VerifierCandidate: verifier}

	resp, err := s.client.Login(ctx, req)

	if err != nil {
		return s.mapError(err)
	}

	s.accessToken = resp.AccessToken
	s.refreshToken = resp.RefreshToken

	return nil

}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) Ping(ctx context.Context) error {

	req := &pb.PingRequest{}

	resp, err := s.client.Ping(ctx, req)
	if err != nil {
		return s.mapError(err)
	}

	if resp.Status != "OK" {
		return ErrUnavailable
	}

	return nil

}

// comboFromPb converts the wire representation to the client-side view.
func comboFromPb(c *pb.Combo) *models.Combo {
	out := &models.Combo{
		Address:           c.Address,
		Owner:             c.Owner,
		CharacterID:       uint8(c.CharacterId),
		Name:              c.Name,
		Damage:            c.Damage,
		MeterGain:         c.MeterGain,
		MoveCount:         uint8(c.MoveCount),
		Fingerprint:       c.Fingerprint,
		CreatedAt:         time.Unix(c.CreatedAt, 0).UTC(),
		VerificationCount: c.VerificationCount,
		Deposit:           c.Deposit,
		Bump:              uint8(c.Bump),
	}
	// The wire carries last_verified_at as plain seconds, so 0 is ambiguous
	// between "never" and the epoch. The verification counter disambiguates:
	// a record with zero verifications has no verification time.
	if c.VerificationCount > 0 {
		out.LastVerifiedAt = time.Unix(c.LastVerifiedAt, 0).UTC()
	}
	return out
}

func (s *GRPCClient) CreateCombo(ctx context.Context, characterID uint8, name string, damage uint32, meterGain uint32, moveCount uint8) (*models.Combo, error) {

	req := &pb.CreateComboRequest{
		Name:        name,
		Damage:      damage,
		MeterGain:   meterGain,
		MoveCount:   uint32(moveCount),
		CharacterId: uint32(characterID),
	}

	resp, err := s.client.CreateCombo(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}

	return comboFromPb(resp.Combo), nil
}

func (s *GRPCClient) VerifyCombo(ctx context.Context, address string, moves []uint32, replayKey string) (uint32, int64, error) {

	req := &pb.VerifyComboRequest{Address: address, Moves: moves, ReplayKey: replayKey}

	resp, err := s.client.VerifyCombo(ctx, req)
	if err != nil {
		return 0, 0, s.mapError(err)
	}

	return resp.VerificationCount, resp.LastVerifiedAt, nil
}

func (s *GRPCClient) CloseCombo(ctx context.Context, address string, destination string) error {

	req := &pb.CloseComboRequest{Address: address, Destination: destination}

	_, err := s.client.CloseCombo(ctx, req)
	if err != nil {
		return s.mapError(err)
	}

	return nil
}

func (s *GRPCClient) GetCombo(ctx context.Context, address string) (*models.Combo, error) {

	req := &pb.GetComboRequest{Address: address}

	resp, err := s.client.GetCombo(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}

	return comboFromPb(resp.Combo), nil
}

func (s *GRPCClient) GetReplayUploadURL(ctx context.Context) (string, string, error) {

	resp, err := s.client.GetReplayUploadUrl(ctx, &pb.GetReplayUploadUrlRequest{})
	if err != nil {
		return "", "", s.mapError(err)
	}

	return resp.Key, resp.Url, nil
}

func (s *GRPCClient) GetReplayDownloadURL(ctx context.Context, key string) (string, error) {

	resp, err := s.client.GetReplayDownloadUrl(ctx, &pb.GetReplayDownloadUrlRequest{Key: key})
	if err != nil {
		return "", s.mapError(err)
	}

	return resp.Url, nil
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated:
		return ErrUnauthorized
	case codes.PermissionDenied:
		return ErrNotOwner
	case codes.NotFound:
		return ErrNotFound
	case codes.AlreadyExists:
		return ErrAlreadyExists
	case codes.InvalidArgument, codes.FailedPrecondition:
		return fmt.Errorf("rejected: %s", st.Message())
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
