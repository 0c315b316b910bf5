package client

import (
	"context"

	"github.com/fgclabs/combovault/internal/client/models"
)

type Client interface {
	Close() error
	Register(ctx context.Context, username string, salt []byte, verifier []byte) error
	GetSalt(ctx context.Context, username string) ([]byte, error)
	Login(ctx context.Context, username string, verifier []byte) error
	Ping(ctx context.Context) error
	CreateCombo(ctx context.Context, characterID uint8, name string, damage uint32, meterGain uint32, moveCount uint8) (*models.Combo, error)
	VerifyCombo(ctx context.Context, address string, moves []uint32, replayKey string) (uint32, int64, error)
	CloseCombo(ctx context.Context, address string, destination string) error
	GetCombo(ctx context.Context, address string) (*models.Combo, error)
	GetReplayUploadURL(ctx context.Context) (string, string, error)
	GetReplayDownloadURL(ctx context.Context, key string) (string, error)
}
