// Package notifier forwards notifications to the desktop tray companion app,
// which renders and times them on its own.
package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/mitchellh/go-ps"

	"github.com/julianstephens/agenda/internal/constants"
	"github.com/julianstephens/agenda/internal/ui"
)

var (
	userConfigDirFunc = os.UserConfigDir
	findProcessFunc   = ps.FindProcess

	// ErrTrayNotRunning means no live tray process owns the lockfile.
	ErrTrayNotRunning = errors.New("agenda-tray is not running")
)

// WebhookPayload is the body posted to the tray.
type WebhookPayload struct {
	ID         string `json:"id"`
	Text       string `json:"text"`
	Kind       string `json:"kind"`
	DurationMs uint32 `json:"duration_ms"`
}

type endpoint struct {
	port   int
	pid    int
	secret string
}

func (e endpoint) url() string {
	return fmt.Sprintf("http://127.0.0.1:%d", e.port)
}

// Tray is a ui.Surface backed by the tray app. The tray animates and removes
// its own banners, so ExitNotification and RemoveNotification do nothing.
type Tray struct {
	client  *http.Client
	display time.Duration
}

// New returns a Tray surface showing banners for display.
func New(display time.Duration) *Tray {
	return &Tray{
		client:  &http.Client{Timeout: 5 * time.Second},
		display: display,
	}
}

func (t *Tray) CreateNotification(n ui.Notification) error {
	return t.Notify(context.Background(), n)
}

func (t *Tray) ExitNotification(string) error   { return nil }
func (t *Tray) RemoveNotification(string) error { return nil }

// Notify locates the running tray and posts n to it.
func (t *Tray) Notify(ctx context.Context, n ui.Notification) error {
	ep, err := locate()
	if err != nil {
		return err
	}

	payload := WebhookPayload{
		ID:         n.ID,
		Text:       n.Message,
		Kind:       string(n.Kind),
		DurationMs: uint32(t.display.Milliseconds()),
	}
	return t.send(ctx, ep.url(), ep.secret, payload)
}

// Available reports why the tray cannot be reached, or nil if it can.
func Available() error {
	_, err := locate()
	return err
}

func locate() (endpoint, error) {
	dir, err := TrayConfigDir()
	if err != nil {
		return endpoint{}, err
	}
	ep, err := readLockfile(filepath.Join(dir, constants.NotifierLockfileName))
	if err != nil {
		return endpoint{}, err
	}
	if err := verifyProcess(ep.pid); err != nil {
		return endpoint{}, err
	}
	return ep, nil
}

// TrayConfigDir returns the directory holding the tray lockfile. The tray can
// move it with "lockfile_dir" in its settings.json.
func TrayConfigDir() (string, error) {
	configDir, err := userConfigDirFunc()
	if err != nil {
		return "", fmt.Errorf("failed to get user config dir: %w", err)
	}
	trayDir := filepath.Join(configDir, constants.TrayAppIdentifier)

	data, err := os.ReadFile(filepath.Join(trayDir, "settings.json"))
	if err != nil {
		return trayDir, nil
	}
	var store struct {
		Settings struct {
			LockfileDir string `json:"lockfile_dir"`
		} `json:"settings"`
	}
	if err := json.Unmarshal(data, &store); err == nil && store.Settings.LockfileDir != "" {
		return store.Settings.LockfileDir, nil
	}
	return trayDir, nil
}

// readLockfile parses "port|pid|secret".
func readLockfile(path string) (endpoint, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return endpoint{}, ErrTrayNotRunning
	}

	parts := strings.Split(strings.TrimSpace(string(content)), "|")
	if len(parts) != 3 {
		return endpoint{}, errors.New("lockfile is malformed")
	}

	port, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return endpoint{}, errors.New("invalid port number in lockfile")
	}
	if port < 1 || port > 65535 {
		return endpoint{}, fmt.Errorf("port number %d is outside valid range (1-65535)", port)
	}

	pid, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return endpoint{}, errors.New("invalid process ID in lockfile")
	}

	secret := strings.TrimSpace(parts[2])
	if secret == "" {
		return endpoint{}, errors.New("secret in lockfile is empty")
	}

	return endpoint{port: port, pid: pid, secret: secret}, nil
}

func verifyProcess(pid int) error {
	process, err := findProcessFunc(pid)
	if err != nil || process == nil {
		return ErrTrayNotRunning
	}
	if !strings.HasPrefix(process.Executable(), constants.TrayExecutablePrefix) {
		return fmt.Errorf("process with PID %d is not %s (is %s)", pid, constants.TrayExecutablePrefix, process.Executable())
	}
	return nil
}

func (t *Tray) send(ctx context.Context, url, secret string, payload WebhookPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(constants.TraySecretHeader, secret)

	res, err := t.client.Do(req)
	if err != nil {
		return fmt.Errorf("send notification: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusOK {
		return nil
	}
	msg, _ := io.ReadAll(res.Body)
	return fmt.Errorf("notification failed with status %d: %s", res.StatusCode, strings.TrimSpace(string(msg)))
}
