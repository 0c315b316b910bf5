package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
)

// parseMoves converts a comma-separated list of move IDs ("1,5,12") into
// the numeric form the server expects. An empty input stands for an empty
// move sequence.
func parseMoves(s string) ([]uint32, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	parts := strings.Split(s, ",")
	moves := make([]uint32, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 32)
		if err != nil {
			return nil, fmt.Errorf("bad move %q: %w", p, err)
		}
		moves = append(moves, uint32(v))
	}
	return moves, nil
}

func (a *App) promptUint(prompt string, bits int) (uint64, error) {
	s, err := getSimpleText(a.reader, prompt, os.Stdout)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseUint(s, 10, bits)
	if err != nil {
		return 0, fmt.Errorf("bad number %q: %w", s, err)
	}
	return v, nil
}

// Create prompts for combo stats and publishes a new record.
func (a *App) Create(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter combo name", os.Stdout)
	if err != nil {
		return err
	}
	characterID, err := a.promptUint("Enter character id (0-255)", 8)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	damage, err := a.promptUint("Enter damage (1-1000)", 32)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	meterGain, err := a.promptUint("Enter meter gain (1-100)", 32)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	moveCount, err := a.promptUint("Enter move count (1-20)", 8)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	combo, err := a.comboService.Create(ctx, uint8(characterID), name, uint32(damage), uint32(meterGain), uint8(moveCount))
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	fmt.Printf("Created combo at %s (deposit %d)\n", combo.Address, combo.Deposit)
	return nil
}

// Verify prompts for an address and a move sequence, optionally uploads a
// local replay file, and attests the combo.
func (a *App) Verify(ctx context.Context) error {
	address, err := getSimpleText(a.reader, "Enter combo address", os.Stdout)
	if err != nil {
		return err
	}
	movesLine, err := getSimpleText(a.reader, "Enter moves, comma-separated (empty for none)", os.Stdout)
	if err != nil {
		return err
	}
	moves, err := parseMoves(movesLine)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	replayPath, err := getSimpleText(a.reader, "Enter replay file path (empty to skip)", os.Stdout)
	if err != nil {
		return err
	}

	count, at, err := a.comboService.Verify(ctx, address, moves, replayPath)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	fmt.Printf("Verified: count=%d last_verified_at=%d\n", count, at)
	return nil
}

// CloseCombo prompts for an address and a destination user and destroys the
// record, sending the deposit to the destination.
func (a *App) CloseCombo(ctx context.Context) error {
	address, err := getSimpleText(a.reader, "Enter combo address", os.Stdout)
	if err != nil {
		return err
	}
	destination, err := getSimpleText(a.reader, "Enter destination username for the deposit", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.comboService.Close(ctx, address, destination); err != nil {
		log.Printf("error: %v", err)
		return err
	}

	fmt.Println("Closed.")
	return nil
}

// Show fetches and displays a single combo record by address.
func (a *App) Show(ctx context.Context) error {
	address, err := getSimpleText(a.reader, "Enter combo address", os.Stdout)
	if err != nil {
		return err
	}

	combo, err := a.comboService.Get(ctx, address)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	fmt.Print(combo.String())
	return nil
}

// DownloadReplay fetches a replay by storage key into a local directory.
func (a *App) DownloadReplay(ctx context.Context) error {
	key, err := getSimpleText(a.reader, "Enter replay key", os.Stdout)
	if err != nil {
		return err
	}

	path, err := a.comboService.DownloadReplay(ctx, key)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	log.Printf("Replay saved to: %s", path)
	return nil
}
