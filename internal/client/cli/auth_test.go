package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/fgclabs/combovault/internal/client/client"
)

func stubInputs(t *testing.T, username string, password []byte) func() {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) { return username, nil }
	getPassword = func(_ io.Writer) ([]byte, error) { return password, nil }
	return func() {
		getSimpleText = origST
		getPassword = origGP
	}
}

type fakeAuth struct {
	regUser string
	regPass []byte
	regErr  error

	loginUser string
	loginPass []byte
	loginErr  error

	pingErr error
}

func (f *fakeAuth) Register(_ context.Context, user string, pass []byte) error {
	f.regUser, f.regPass = user, append([]byte(nil), pass...)
	return f.regErr
}
func (f *fakeAuth) Login(_ context.Context, user string, pass []byte) error {
	f.loginUser, f.loginPass = user, append([]byte(nil), pass...)
	return f.loginErr
}
func (f *fakeAuth) Close(ctx context.Context) error { return nil }
func (f *fakeAuth) Ping(ctx context.Context) error  { return f.pingErr }

func TestRegister_Success(t *testing.T) {
	f := &fakeAuth{}
	a := &App{authService: f}

	restore := stubInputs(t, "alice", []byte("secret"))
	defer restore()

	if err := a.Register(context.Background()); err != nil {
		t.Fatalf("Register err: %v", err)
	}
	if f.regUser != "alice" {
		t.Fatalf("Register user mismatch: %q", f.regUser)
	}
	if string(f.regPass) != "secret" {
		t.Fatalf("Register pass mismatch: %q", string(f.regPass))
	}
}

func TestLogin_SetsSessionState(t *testing.T) {
	f := &fakeAuth{}
	a := &App{authService: f}

	restore := stubInputs(t, "alice", []byte("secret"))
	defer restore()

	if err := a.Login(context.Background()); err != nil {
		t.Fatalf("Login err: %v", err)
	}
	if a.userName != "alice" {
		t.Fatalf("userName not set: %q", a.userName)
	}
	if a.Mode != ModeOnline {
		t.Fatalf("mode not online: %q", a.Mode)
	}
	if !a.isLoggedIn() {
		t.Fatalf("expected logged in")
	}
}

func TestLogin_ServerUnavailable_SwitchesOffline(t *testing.T) {
	f := &fakeAuth{loginErr: client.ErrUnavailable}
	a := &App{authService: f}

	restore := stubInputs(t, "alice", []byte("secret"))
	defer restore()

	if err := a.Login(context.Background()); err == nil {
		t.Fatalf("want error")
	}
	if a.isLoggedIn() {
		t.Fatalf("should not be logged in")
	}
	if a.Mode != ModeOffline {
		t.Fatalf("mode not offline: %q", a.Mode)
	}
}

func TestLogin_BadCredentials(t *testing.T) {
	f := &fakeAuth{loginErr: errors.New("login error: unauthorized")}
	a := &App{authService: f}

	restore := stubInputs(t, "alice", []byte("wrong"))
	defer restore()

	if err := a.Login(context.Background()); err == nil {
		t.Fatalf("want error")
	}
	if a.isLoggedIn() {
		t.Fatalf("should not be logged in")
	}
}

func TestLogout(t *testing.T) {
	a := &App{userName: "alice"}
	if err := a.Logout(context.Background()); err != nil {
		t.Fatalf("Logout err: %v", err)
	}
	if a.isLoggedIn() {
		t.Fatalf("still logged in after logout")
	}
}
