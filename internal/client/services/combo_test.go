package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/fgclabs/combovault/internal/client/client"
	"github.com/fgclabs/combovault/internal/client/models"
	"github.com/stretchr/testify/require"
)

// stubComboSeams swaps the file/network seams for the duration of a test.
func stubComboSeams(t *testing.T) {
	t.Helper()

	origRead := readFile
	origWrite := writeFile
	origEnsure := ensureSubDir
	origUpload := uploadReplay
	origDownload := downloadReplay
	t.Cleanup(func() {
		readFile = origRead
		writeFile = origWrite
		ensureSubDir = origEnsure
		uploadReplay = origUpload
		downloadReplay = origDownload
	})
}

func TestComboCreate_Passthrough(t *testing.T) {
	want := &models.Combo{Address: "addr-1", Name: "uppercut_combo"}
	f := &fakeClient{CreateRet: want}
	s := NewComboService(f)

	got, err := s.Create(context.Background(), 7, "uppercut_combo", 250, 30, 4)
	require.NoError(t, err)
	require.Same(t, want, got)
	require.Equal(t, "uppercut_combo", f.LastCreateName)
}

func TestComboCreate_Error(t *testing.T) {
	f := &fakeClient{CreateErr: client.ErrAlreadyExists}
	s := NewComboService(f)

	_, err := s.Create(context.Background(), 1, "c", 1, 1, 1)
	require.ErrorIs(t, err, client.ErrAlreadyExists)
}

func TestComboVerify_WithoutReplay(t *testing.T) {
	stubComboSeams(t)
	readFile = func(string) ([]byte, error) {
		t.Fatal("no file should be read without a replay path")
		return nil, nil
	}

	f := &fakeClient{VerifyCountRet: 4, VerifyAtRet: 1700000100}
	s := NewComboService(f)

	count, at, err := s.Verify(context.Background(), "addr-1", []uint32{1, 2, 3}, "")
	require.NoError(t, err)
	require.EqualValues(t, 4, count)
	require.EqualValues(t, 1700000100, at)
	require.Equal(t, "addr-1", f.LastVerifyAddress)
	require.Equal(t, []uint32{1, 2, 3}, f.LastVerifyMoves)
	require.Empty(t, f.LastVerifyReplayKey)
}

func TestComboVerify_UploadsReplayFirst(t *testing.T) {
	stubComboSeams(t)

	replay := []byte("replay bytes")
	readFile = func(path string) ([]byte, error) {
		require.Equal(t, "match.rep", path)
		return replay, nil
	}

	var uploadedURL string
	var uploadedBody []byte
	uploadReplay = func(url string, file []byte) error {
		uploadedURL = url
		uploadedBody = file
		return nil
	}

	f := &fakeClient{UploadKeyRet: "replays/k", UploadURLRet: "https://up", VerifyCountRet: 1}
	s := NewComboService(f)

	count, _, err := s.Verify(context.Background(), "addr-1", nil, "match.rep")
	require.NoError(t, err)
	require.EqualValues(t, 1, count)
	require.Equal(t, "https://up", uploadedURL)
	require.Equal(t, replay, uploadedBody)
	require.Equal(t, "replays/k", f.LastVerifyReplayKey)
}

func TestComboVerify_UploadErrorAborts(t *testing.T) {
	stubComboSeams(t)
	readFile = func(string) ([]byte, error) { return []byte("x"), nil }
	uploadReplay = func(string, []byte) error { return errors.New("403") }

	f := &fakeClient{UploadKeyRet: "k", UploadURLRet: "u"}
	s := NewComboService(f)

	_, _, err := s.Verify(context.Background(), "addr-1", nil, "match.rep")
	require.ErrorContains(t, err, "upload replay")
	require.Empty(t, f.LastVerifyAddress)
}

func TestComboVerify_MissingReplayFile(t *testing.T) {
	stubComboSeams(t)
	readFile = func(string) ([]byte, error) { return nil, os.ErrNotExist }

	s := NewComboService(&fakeClient{})
	_, _, err := s.Verify(context.Background(), "addr-1", nil, "missing.rep")
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestComboClose_Passthrough(t *testing.T) {
	f := &fakeClient{}
	s := NewComboService(f)

	require.NoError(t, s.Close(context.Background(), "addr-1", "bob"))
	require.Equal(t, "addr-1", f.LastCloseAddress)
	require.Equal(t, "bob", f.LastCloseDestination)

	f2 := &fakeClient{CloseComboErr: client.ErrNotOwner}
	require.ErrorIs(t, NewComboService(f2).Close(context.Background(), "a", "b"), client.ErrNotOwner)
}

func TestComboGet_Passthrough(t *testing.T) {
	want := &models.Combo{Address: "addr-1"}
	f := &fakeClient{GetComboRet: want}
	s := NewComboService(f)

	got, err := s.Get(context.Background(), "addr-1")
	require.NoError(t, err)
	require.Same(t, want, got)
	require.Equal(t, "addr-1", f.LastGetAddress)
}

func TestComboDownloadReplay_SavesFile(t *testing.T) {
	stubComboSeams(t)

	replay := []byte("replay bytes")
	downloadReplay = func(url string) ([]byte, error) {
		require.Equal(t, "https://dl", url)
		return replay, nil
	}
	ensureSubDir = func(name string) (string, error) {
		require.Equal(t, "replays", name)
		return "/tmp/replays", nil
	}

	var wrotePath string
	var wroteData []byte
	writeFile = func(path string, data []byte, perm os.FileMode) error {
		wrotePath = path
		wroteData = data
		return nil
	}

	f := &fakeClient{DownloadURLRet: "https://dl"}
	s := NewComboService(f)

	path, err := s.DownloadReplay(context.Background(), "replays/2026/2/3/abc")
	require.NoError(t, err)
	require.Equal(t, filepath.Join("/tmp/replays", "abc"), path)
	require.Equal(t, path, wrotePath)
	require.Equal(t, replay, wroteData)
	require.Equal(t, "replays/2026/2/3/abc", f.LastDownloadKey)
}

func TestComboDownloadReplay_DownloadError(t *testing.T) {
	stubComboSeams(t)
	downloadReplay = func(string) ([]byte, error) { return nil, errors.New("403") }

	s := NewComboService(&fakeClient{DownloadURLRet: "https://dl"})
	_, err := s.DownloadReplay(context.Background(), "k")
	require.ErrorContains(t, err, "download replay")
}
