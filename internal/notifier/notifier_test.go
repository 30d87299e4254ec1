package notifier

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	ps "github.com/mitchellh/go-ps"

	"github.com/julianstephens/agenda/internal/constants"
	"github.com/julianstephens/agenda/internal/ui"
)

type mockProcess struct {
	pid        int
	executable string
}

func (m *mockProcess) Pid() int           { return m.pid }
func (m *mockProcess) PPid() int          { return 0 }
func (m *mockProcess) Executable() string { return m.executable }

func stubConfigDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	old := userConfigDirFunc
	t.Cleanup(func() { userConfigDirFunc = old })
	userConfigDirFunc = func() (string, error) { return dir, nil }
	return dir
}

func stubProcess(t *testing.T, executable string) {
	t.Helper()
	old := findProcessFunc
	t.Cleanup(func() { findProcessFunc = old })
	findProcessFunc = func(pid int) (ps.Process, error) {
		if executable == "" {
			return nil, nil
		}
		return &mockProcess{pid: pid, executable: executable}, nil
	}
}

func TestTrayConfigDir(t *testing.T) {
	base := stubConfigDir(t)
	trayDir := filepath.Join(base, constants.TrayAppIdentifier)

	dir, err := TrayConfigDir()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dir != trayDir {
		t.Errorf("TrayConfigDir() = %s, want %s", dir, trayDir)
	}

	if err := os.MkdirAll(trayDir, 0755); err != nil {
		t.Fatal(err)
	}
	custom := filepath.Join(base, "elsewhere")
	settings := fmt.Sprintf(`{"settings": {"lockfile_dir": %q}}`, custom)
	if err := os.WriteFile(filepath.Join(trayDir, "settings.json"), []byte(settings), 0644); err != nil {
		t.Fatal(err)
	}

	dir, err = TrayConfigDir()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dir != custom {
		t.Errorf("TrayConfigDir() = %s, want %s", dir, custom)
	}
}

func TestReadLockfile(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		wantErr   string
		wantPort  int
		wantPID   int
		wantToken string
	}{
		{name: "old two-part format", content: "8080|12345", wantErr: "malformed"},
		{name: "garbage", content: "invalid", wantErr: "malformed"},
		{name: "empty secret", content: "8080|12345|", wantErr: "secret"},
		{name: "empty port", content: "|12345|s3cret", wantErr: "port"},
		{name: "port out of range", content: "99999|12345|s3cret", wantErr: "range"},
		{name: "bad pid", content: "8080|abc|s3cret", wantErr: "process ID"},
		{name: "valid with newline", content: "8080|12345|s3cret\n", wantPort: 8080, wantPID: 12345, wantToken: "s3cret"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), constants.NotifierLockfileName)
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}

			ep, err := readLockfile(path)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("readLockfile() error = %v, want it to mention %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("readLockfile() unexpected error: %v", err)
			}
			if ep.port != tt.wantPort || ep.pid != tt.wantPID || ep.secret != tt.wantToken {
				t.Errorf("readLockfile() = %+v", ep)
			}
		})
	}
}

func TestReadLockfileMissing(t *testing.T) {
	_, err := readLockfile(filepath.Join(t.TempDir(), "absent.lock"))
	if !errors.Is(err, ErrTrayNotRunning) {
		t.Errorf("readLockfile() error = %v, want ErrTrayNotRunning", err)
	}
}

func TestVerifyProcess(t *testing.T) {
	stubProcess(t, "")
	if err := verifyProcess(1); !errors.Is(err, ErrTrayNotRunning) {
		t.Errorf("verifyProcess() error = %v, want ErrTrayNotRunning", err)
	}

	stubProcess(t, "other-app")
	if err := verifyProcess(1); err == nil {
		t.Error("verifyProcess() expected error for wrong executable")
	}

	stubProcess(t, "agenda-tray")
	if err := verifyProcess(1); err != nil {
		t.Errorf("verifyProcess() unexpected error: %v", err)
	}
}

func newTrayServer(t *testing.T, received chan<- WebhookPayload) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		if r.Header.Get(constants.TraySecretHeader) != "test-secret" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte("Unauthorized"))
			return
		}
		var payload WebhookPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if payload.Text == "fail" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		if received != nil {
			received <- payload
		}
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(server.Close)
	return server
}

func TestSend(t *testing.T) {
	server := newTrayServer(t, nil)
	tray := New(time.Second)
	ctx := context.Background()

	if err := tray.send(ctx, server.URL, "test-secret", WebhookPayload{Text: "olá"}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := tray.send(ctx, server.URL, "wrong-secret", WebhookPayload{Text: "olá"}); err == nil {
		t.Error("expected error for wrong secret")
	}
	err := tray.send(ctx, server.URL, "test-secret", WebhookPayload{Text: "fail"})
	if err == nil || !strings.Contains(err.Error(), "500") {
		t.Errorf("expected status 500 error, got %v", err)
	}
}

func TestCreateNotificationEndToEnd(t *testing.T) {
	received := make(chan WebhookPayload, 1)
	server := newTrayServer(t, received)
	u, err := url.Parse(server.URL)
	if err != nil {
		t.Fatal(err)
	}

	base := stubConfigDir(t)
	stubProcess(t, "agenda-tray")
	trayDir := filepath.Join(base, constants.TrayAppIdentifier)
	if err := os.MkdirAll(trayDir, 0755); err != nil {
		t.Fatal(err)
	}
	lock := fmt.Sprintf("%s|4242|test-secret", u.Port())
	if err := os.WriteFile(filepath.Join(trayDir, constants.NotifierLockfileName), []byte(lock), 0600); err != nil {
		t.Fatal(err)
	}

	if err := Available(); err != nil {
		t.Fatalf("Available() error = %v", err)
	}

	tray := New(4 * time.Second)
	n := ui.Notification{ID: "n-1", Message: "CPF inválido", Kind: ui.KindError}
	if err := tray.CreateNotification(n); err != nil {
		t.Fatalf("CreateNotification() error = %v", err)
	}

	got := <-received
	want := WebhookPayload{ID: "n-1", Text: "CPF inválido", Kind: "error", DurationMs: 4000}
	if got != want {
		t.Errorf("payload = %+v, want %+v", got, want)
	}

	if err := tray.ExitNotification("n-1"); err != nil {
		t.Errorf("ExitNotification() error = %v", err)
	}
	if err := tray.RemoveNotification("n-1"); err != nil {
		t.Errorf("RemoveNotification() error = %v", err)
	}
}

func TestCreateNotificationWithoutTray(t *testing.T) {
	stubConfigDir(t)
	err := New(time.Second).CreateNotification(ui.Notification{ID: "x", Message: "y"})
	if !errors.Is(err, ErrTrayNotRunning) {
		t.Errorf("CreateNotification() error = %v, want ErrTrayNotRunning", err)
	}
	if err := Available(); !errors.Is(err, ErrTrayNotRunning) {
		t.Errorf("Available() error = %v, want ErrTrayNotRunning", err)
	}
}
