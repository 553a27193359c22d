// Package auth はローカル利用を想定した簡易認証とセッション管理を提供します。
package auth

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// ErrInvalidCredentials はユーザー名またはパスワードが一致しない場合のエラーです。
var ErrInvalidCredentials = errors.New("auth: invalid username or password")

// ErrNotLoggedIn はセッションが存在しない場合のエラーです。
var ErrNotLoggedIn = errors.New("auth: not logged in")

// Role はアカウントの役割を表します。
type Role string

const (
	RoleAdmin Role = "admin"
	RoleHR    Role = "hr"
)

// User は認証可能なアカウントです。
type User struct {
	Username    string
	Password    string
	DisplayName string
	Role        Role
}

// defaultUsers はビルトインのアカウント一覧です。外部の ID 基盤とは
// 連携せず、ローカルツールとしての利用のみを想定しています。
var defaultUsers = []User{
	{Username: "admin", Password: "admin123", DisplayName: "Admin User", Role: RoleAdmin},
	{Username: "hr", Password: "hr123", DisplayName: "HR Manager", Role: RoleHR},
}

// Session はログイン済みユーザーの状態です。
type Session struct {
	ID          string    `yaml:"id"`
	Username    string    `yaml:"username"`
	DisplayName string    `yaml:"displayName"`
	Role        Role      `yaml:"role"`
	CreatedAt   time.Time `yaml:"createdAt"`
}

// Clock は現在時刻を供給します。
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// Manager は認証とセッションファイルの読み書きを担当します。
type Manager struct {
	users []User
	path  string
	clock Clock
}

// Option は Manager の生成オプションです。
type Option func(*Manager)

// WithUsers はアカウント一覧を差し替えます。
func WithUsers(users []User) Option {
	return func(m *Manager) { m.users = users }
}

// WithClock は時刻供給を差し替えます。
func WithClock(clock Clock) Option {
	return func(m *Manager) { m.clock = clock }
}

// NewManager は Manager を生成します。path はセッションファイルの保存先です。
func NewManager(path string, opts ...Option) *Manager {
	m := &Manager{
		users: defaultUsers,
		path:  path,
		clock: realClock{},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Login は資格情報を検証し、成功した場合にセッションを永続化します。
// ユーザー名の大文字小文字は区別しません。
func (m *Manager) Login(username, password string) (*Session, error) {
	name := strings.ToLower(strings.TrimSpace(username))

	for _, u := range m.users {
		if strings.ToLower(u.Username) != name || u.Password != password {
			continue
		}
		session := &Session{
			ID:          uuid.NewString(),
			Username:    u.Username,
			DisplayName: u.DisplayName,
			Role:        u.Role,
			CreatedAt:   m.clock.Now(),
		}
		if err := m.save(session); err != nil {
			return nil, err
		}
		return session, nil
	}

	return nil, ErrInvalidCredentials
}

// Logout はセッションファイルを削除します。未ログインでもエラーにしません。
func (m *Manager) Logout() error {
	if err := os.Remove(m.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("auth: remove session: %w", err)
	}
	return nil
}

// Current は保存済みセッションを返します。存在しない場合は ErrNotLoggedIn です。
func (m *Manager) Current() (*Session, error) {
	raw, err := os.ReadFile(m.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotLoggedIn
		}
		return nil, fmt.Errorf("auth: read session: %w", err)
	}

	var session Session
	if err := yaml.Unmarshal(raw, &session); err != nil {
		return nil, fmt.Errorf("auth: decode session: %w", err)
	}
	if session.ID == "" || session.Username == "" {
		return nil, ErrNotLoggedIn
	}

	return &session, nil
}

func (m *Manager) save(session *Session) error {
	raw, err := yaml.Marshal(session)
	if err != nil {
		return fmt.Errorf("auth: encode session: %w", err)
	}
	if dir := filepath.Dir(m.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("auth: ensure session dir: %w", err)
		}
	}
	if err := os.WriteFile(m.path, raw, 0o600); err != nil {
		return fmt.Errorf("auth: write session: %w", err)
	}
	return nil
}
