package cli

import (
	"bufio"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/fgclabs/combovault/internal/client/models"
	"github.com/stretchr/testify/require"
)

// ------------ helpers ------------

func readerFromLines(lines ...string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(strings.Join(lines, "\n") + "\n"))
}

func newTestApp(cs *fakeCS, r *bufio.Reader) *App {
	return &App{
		comboService: cs,
		reader:       r,
		userName:     "alice",
	}
}

type fakeCS struct {
	createCharacterID uint8
	createName        string
	createDamage      uint32
	createMeterGain   uint32
	createMoveCount   uint8
	createOut         *models.Combo
	createErr         error

	verifyAddress string
	verifyMoves   []uint32
	verifyReplay  string
	verifyCount   uint32
	verifyAt      int64
	verifyErr     error

	closeAddress     string
	closeDestination string
	closeErr         error

	getAddress string
	getOut     *models.Combo
	getErr     error

	downloadKey  string
	downloadPath string
	downloadErr  error
}

func (f *fakeCS) Create(ctx context.Context, characterID uint8, name string, damage uint32, meterGain uint32, moveCount uint8) (*models.Combo, error) {
	f.createCharacterID = characterID
	f.createName = name
	f.createDamage = damage
	f.createMeterGain = meterGain
	f.createMoveCount = moveCount
	return f.createOut, f.createErr
}
func (f *fakeCS) Verify(ctx context.Context, address string, moves []uint32, replayPath string) (uint32, int64, error) {
	f.verifyAddress = address
	f.verifyMoves = append([]uint32(nil), moves...)
	f.verifyReplay = replayPath
	return f.verifyCount, f.verifyAt, f.verifyErr
}
func (f *fakeCS) Close(ctx context.Context, address string, destination string) error {
	f.closeAddress = address
	f.closeDestination = destination
	return f.closeErr
}
func (f *fakeCS) Get(ctx context.Context, address string) (*models.Combo, error) {
	f.getAddress = address
	return f.getOut, f.getErr
}
func (f *fakeCS) DownloadReplay(ctx context.Context, key string) (string, error) {
	f.downloadKey = key
	return f.downloadPath, f.downloadErr
}

// ------------ parseMoves ------------

func TestParseMoves(t *testing.T) {
	got, err := parseMoves("1, 5,12")
	require.NoError(t, err)
	require.Equal(t, []uint32{1, 5, 12}, got)

	got, err = parseMoves("")
	require.NoError(t, err)
	require.Nil(t, got)

	_, err = parseMoves("1,x")
	require.Error(t, err)
}

// ------------ command handlers ------------

func TestCreate_PromptsAndPublishes(t *testing.T) {
	cs := &fakeCS{createOut: &models.Combo{Address: "addr-1", Deposit: 2560}}
	app := newTestApp(cs, readerFromLines(
		"uppercut_combo", // name
		"7",              // character id
		"250",            // damage
		"30",             // meter gain
		"4",              // move count
	))

	require.NoError(t, app.Create(context.Background()))

	require.Equal(t, "uppercut_combo", cs.createName)
	require.EqualValues(t, 7, cs.createCharacterID)
	require.EqualValues(t, 250, cs.createDamage)
	require.EqualValues(t, 30, cs.createMeterGain)
	require.EqualValues(t, 4, cs.createMoveCount)
}

func TestCreate_BadNumberRejectedLocally(t *testing.T) {
	cs := &fakeCS{}
	app := newTestApp(cs, readerFromLines(
		"combo",
		"not-a-number",
	))

	require.Error(t, app.Create(context.Background()))
	require.Empty(t, cs.createName)
}

func TestCreate_ServiceErrorPropagates(t *testing.T) {
	cs := &fakeCS{createErr: errors.New("rejected: invalid damage value")}
	app := newTestApp(cs, readerFromLines("c", "1", "0", "1", "1"))

	require.ErrorContains(t, app.Create(context.Background()), "invalid damage value")
}

func TestVerify_PassesMovesAndReplayPath(t *testing.T) {
	cs := &fakeCS{verifyCount: 2, verifyAt: 1700000100}
	app := newTestApp(cs, readerFromLines(
		"addr-1",
		"1,2,3",
		"match.rep",
	))

	require.NoError(t, app.Verify(context.Background()))
	require.Equal(t, "addr-1", cs.verifyAddress)
	require.Equal(t, []uint32{1, 2, 3}, cs.verifyMoves)
	require.Equal(t, "match.rep", cs.verifyReplay)
}

func TestVerify_EmptyMovesAllowed(t *testing.T) {
	cs := &fakeCS{}
	app := newTestApp(cs, readerFromLines(
		"addr-1",
		"",
		"",
	))

	require.NoError(t, app.Verify(context.Background()))
	require.Equal(t, "addr-1", cs.verifyAddress)
	require.Empty(t, cs.verifyMoves)
	require.Empty(t, cs.verifyReplay)
}

func TestCloseCombo_PromptsAddressAndDestination(t *testing.T) {
	cs := &fakeCS{}
	app := newTestApp(cs, readerFromLines(
		"addr-1",
		"bob",
	))

	require.NoError(t, app.CloseCombo(context.Background()))
	require.Equal(t, "addr-1", cs.closeAddress)
	require.Equal(t, "bob", cs.closeDestination)
}

func TestShow_PrintsRecord(t *testing.T) {
	cs := &fakeCS{getOut: &models.Combo{Address: "addr-1", Name: "uppercut_combo"}}
	app := newTestApp(cs, readerFromLines("addr-1"))

	require.NoError(t, app.Show(context.Background()))
	require.Equal(t, "addr-1", cs.getAddress)
}

func TestShow_ErrorPropagates(t *testing.T) {
	cs := &fakeCS{getErr: errors.New("boom")}
	app := newTestApp(cs, readerFromLines("addr-err"))
	require.Error(t, app.Show(context.Background()))
}

func TestDownloadReplay_OK(t *testing.T) {
	cs := &fakeCS{downloadPath: "/tmp/replays/abc"}
	app := newTestApp(cs, readerFromLines("replays/2026/2/3/abc"))

	require.NoError(t, app.DownloadReplay(context.Background()))
	require.Equal(t, "replays/2026/2/3/abc", cs.downloadKey)
}
