// Package grpc exposes the combo vault over gRPC: authentication, the combo
// record lifecycle, and presigned replay URLs.
package grpc

import (
	"context"
	"net"
	"time"

	"github.com/fgclabs/combovault/internal/logging"
	pb "github.com/fgclabs/combovault/internal/proto"
	"github.com/fgclabs/combovault/internal/server/models"
	"github.com/fgclabs/combovault/internal/server/services"
	"google.golang.org/grpc"
)

// userSvc is the slice of UserService the transport needs.
type userSvc interface {
	Register(ctx context.Context, username string, salt, verifier []byte) (*models.User, error)
	GetSalt(ctx context.Context, userName string) ([]byte, error)
	Login(ctx context.Context, userName string, verifierCandidate []byte) (*services.TokenPair, error)
	RefreshToken(ctx context.Context, refreshToken string) (*services.TokenPair, error)
}

// comboSvc is the slice of ComboService the transport needs.
type comboSvc interface {
	Create(ctx context.Context, owner string, characterID uint8, name string, damage uint32, meterGain uint32, moveCount uint8) (*models.Combo, error)
	Verify(ctx context.Context, verifier string, address string, moves []uint32, replayKey string) (uint32, time.Time, error)
	Close(ctx context.Context, userID string, address string, destination string) error
	Get(ctx context.Context, address string) (*models.Combo, error)
}

// replaySvc is the slice of ReplayService the transport needs.
type replaySvc interface {
	GetPresignedPutUrl(ctx context.Context) (string, string, error)
	GetPresignedGetUrl(ctx context.Context, key string) (string, error)
}

type GRPCServer struct {
	pb.UnimplementedComboVaultServiceServer
	address   string
	users     userSvc
	combos    comboSvc
	replays   replaySvc
	logger    logging.Logger
	jwtSecret []byte
}

func NewGRPCServer(a string, l logging.Logger, us userSvc, cs comboSvc, rs replaySvc, secretKey string) (*GRPCServer, error) {
	return &GRPCServer{
		address:   a,
		logger:    l.With("module", "grpc_server"),
		users:     us,
		combos:    cs,
		replays:   rs,
		jwtSecret: []byte(secretKey),
	}, nil
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	// creates gRPC-server
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.accessTokenInterceptor))

	// registers service
	pb.RegisterComboVaultServiceServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gPRC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
