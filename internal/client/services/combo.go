package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fgclabs/combovault/internal/client/client"
	"github.com/fgclabs/combovault/internal/client/models"
	"github.com/fgclabs/combovault/internal/filex"
	"github.com/fgclabs/combovault/internal/netx"
)

// Seams for file and network side effects, replaced in tests.
var (
	readFile       = os.ReadFile
	writeFile      = os.WriteFile
	ensureSubDir   = filex.EnsureSubDir
	uploadReplay   = netx.UploadToS3PresignedURL
	downloadReplay = netx.DownloadFromS3PresignedURL
)

// ComboService defines combo record operations for the CLI.
//
// Contract:
//   - Create: publish a new combo record owned by the logged-in user.
//   - Verify: attest a combo, optionally attaching a local replay file.
//   - Close: destroy an owned record and send its deposit to another user.
//   - Get: fetch a record by address.
//   - DownloadReplay: fetch a replay by storage key into a local directory.
type ComboService interface {
	Create(ctx context.Context, characterID uint8, name string, damage uint32, meterGain uint32, moveCount uint8) (*models.Combo, error)
	Verify(ctx context.Context, address string, moves []uint32, replayPath string) (uint32, int64, error)
	Close(ctx context.Context, address string, destination string) error
	Get(ctx context.Context, address string) (*models.Combo, error)
	DownloadReplay(ctx context.Context, key string) (string, error)
}

type comboService struct {
	client client.Client
}

// NewComboService constructs a ComboService bound to the given API client.
func NewComboService(client client.Client) ComboService {
	return &comboService{client: client}
}

func (s *comboService) Create(ctx context.Context, characterID uint8, name string, damage uint32, meterGain uint32, moveCount uint8) (*models.Combo, error) {
	combo, err := s.client.CreateCombo(ctx, characterID, name, damage, meterGain, moveCount)
	if err != nil {
		return nil, fmt.Errorf("create error: %w", err)
	}
	return combo, nil
}

// Verify attests the combo at address. When replayPath is non-empty the local
// file is uploaded through a presigned URL first and its storage key is
// attached to the attestation.
func (s *comboService) Verify(ctx context.Context, address string, moves []uint32, replayPath string) (uint32, int64, error) {

	replayKey := ""
	if replayPath != "" {
		data, err := readFile(replayPath)
		if err != nil {
			return 0, 0, fmt.Errorf("read replay: %w", err)
		}

		key, url, err := s.client.GetReplayUploadURL(ctx)
		if err != nil {
			return 0, 0, fmt.Errorf("presign replay upload: %w", err)
		}

		if err := uploadReplay(url, data); err != nil {
			return 0, 0, fmt.Errorf("upload replay: %w", err)
		}
		replayKey = key
	}

	count, at, err := s.client.VerifyCombo(ctx, address, moves, replayKey)
	if err != nil {
		return 0, 0, fmt.Errorf("verify error: %w", err)
	}
	return count, at, nil
}

func (s *comboService) Close(ctx context.Context, address string, destination string) error {
	if err := s.client.CloseCombo(ctx, address, destination); err != nil {
		return fmt.Errorf("close error: %w", err)
	}
	return nil
}

func (s *comboService) Get(ctx context.Context, address string) (*models.Combo, error) {
	combo, err := s.client.GetCombo(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("get error: %w", err)
	}
	return combo, nil
}

// DownloadReplay fetches the replay stored under key into ./replays and
// returns the local path.
func (s *comboService) DownloadReplay(ctx context.Context, key string) (string, error) {
	url, err := s.client.GetReplayDownloadURL(ctx, key)
	if err != nil {
		return "", fmt.Errorf("presign replay download: %w", err)
	}

	data, err := downloadReplay(url)
	if err != nil {
		return "", fmt.Errorf("download replay: %w", err)
	}

	dir, err := ensureSubDir("replays")
	if err != nil {
		return "", err
	}

	outputFile := filepath.Join(dir, filepath.Base(key))
	if err := writeFile(outputFile, data, 0o660); err != nil {
		return "", fmt.Errorf("save replay: %w", err)
	}

	return outputFile, nil
}
