package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"aurora-agency-site/app/server/constants"
	"aurora-agency-site/app/server/kv"
	"aurora-agency-site/app/server/models"

	"github.com/alexedwards/argon2id"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Store 持有用户列表、凭据映射和当前会话，是整个进程唯一的认证入口。
// 所有对底层存储键的写入都必须经过这里。
type Store struct {
	mu sync.Mutex

	l  *zap.Logger
	kv kv.Store

	users     []models.User
	passwords map[string]string // 用户 ID → argon2id 哈希，绝不对外暴露
	session   *models.User
}

// New 从存储中加载用户列表、凭据映射和会话。
// 首次运行（users / passwords 键不存在）时写入初始账号并立即持久化。
func New(store kv.Store, l *zap.Logger) (*Store, error) {
	s := &Store{
		l:         l,
		kv:        store,
		passwords: make(map[string]string),
	}

	// 加载用户列表
	seeded := false
	if raw, err := store.Get(constants.StorageKeyUsers); err != nil {
		if !errors.Is(err, kv.ErrKeyNotFound) {
			return nil, fmt.Errorf("failed to load users: %w", err)
		}
		seeded = true
	} else if err := json.Unmarshal(raw, &s.users); err != nil {
		return nil, fmt.Errorf("failed to parse users: %w", err)
	}

	// 加载凭据映射
	if raw, err := store.Get(constants.StorageKeyPasswords); err != nil {
		if !errors.Is(err, kv.ErrKeyNotFound) {
			return nil, fmt.Errorf("failed to load credentials: %w", err)
		}
		seeded = true
	} else {
		var pairs [][2]string
		if err := json.Unmarshal(raw, &pairs); err != nil {
			return nil, fmt.Errorf("failed to parse credentials: %w", err)
		}
		for _, pair := range pairs {
			s.passwords[pair[0]] = pair[1]
		}
	}

	// 任一项缺失则写入初始数据
	if seeded {
		if err := s.seed(); err != nil {
			return nil, err
		}
		l.Info("seeded default accounts",
			zap.String("admin", constants.SeedAdminEmail),
			zap.String("user", constants.SeedUserEmail),
		)
	}

	// 加载持久化的会话（没有则保持未登录）
	if raw, err := store.Get(constants.StorageKeySession); err != nil {
		if !errors.Is(err, kv.ErrKeyNotFound) {
			return nil, fmt.Errorf("failed to load session: %w", err)
		}
	} else {
		var user models.User
		if err := json.Unmarshal(raw, &user); err != nil {
			return nil, fmt.Errorf("failed to parse session: %w", err)
		}
		s.session = &user
	}

	return s, nil
}

func (s *Store) seed() error {
	now := time.Now()

	accounts := []struct {
		user     models.User
		password string
	}{
		{
			user: models.User{
				ID:        constants.SeedAdminID,
				Email:     constants.SeedAdminEmail,
				Name:      constants.SeedAdminName,
				IsAdmin:   true,
				CreatedAt: now,
			},
			password: constants.SeedAdminPassword,
		},
		{
			user: models.User{
				ID:        constants.SeedUserID,
				Email:     constants.SeedUserEmail,
				Name:      constants.SeedUserName,
				IsAdmin:   false,
				CreatedAt: now,
			},
			password: constants.SeedUserPassword,
		},
	}

	s.users = s.users[:0]
	for _, account := range accounts {
		hash, err := argon2id.CreateHash(account.password, argon2id.DefaultParams)
		if err != nil {
			return fmt.Errorf("failed to hash seed password: %w", err)
		}
		s.users = append(s.users, account.user)
		s.passwords[account.user.ID] = hash
	}

	if err := s.persistUsers(); err != nil {
		return err
	}
	return s.persistPasswords()
}

// Login 校验邮箱和密码，成功后替换当前会话并更新最近登录时间。
// 用户不存在和密码不匹配都返回 ErrInvalidCredentials 。
func (s *Store) Login(email, password string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	idx := s.findByEmail(email)
	if idx < 0 {
		return nil, ErrInvalidCredentials
	}

	match, err := argon2id.ComparePasswordAndHash(password, s.passwords[s.users[idx].ID])
	if err != nil {
		return nil, fmt.Errorf("failed to check password: %w", err)
	}
	if !match {
		return nil, ErrInvalidCredentials
	}

	now := time.Now()
	s.users[idx].LastLogin = &now
	if err := s.persistUsers(); err != nil {
		return nil, err
	}

	user := s.users[idx]
	s.session = &user
	if err := s.persistSession(); err != nil {
		return nil, err
	}

	result := user
	return &result, nil
}

// Signup 创建一个普通用户并将其设为当前会话。
// 邮箱和密码都不能为空。
func (s *Store) Signup(email, password, name string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	if s.findByEmail(email) >= 0 {
		return nil, ErrEmailInUse
	}

	hash, err := argon2id.CreateHash(password, argon2id.DefaultParams)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := models.User{
		ID:        uuid.NewString(),
		Email:     email,
		Name:      name,
		IsAdmin:   false,
		CreatedAt: now,
		LastLogin: &now,
	}

	s.users = append(s.users, user)
	s.passwords[user.ID] = hash
	if err := s.persistUsers(); err != nil {
		return nil, err
	}
	if err := s.persistPasswords(); err != nil {
		return nil, err
	}

	s.session = &user
	if err := s.persistSession(); err != nil {
		return nil, err
	}

	result := user
	return &result, nil
}

// Logout 无条件清除会话，重复调用没有副作用
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = nil
	if err := s.kv.Delete(constants.StorageKeySession); err != nil {
		s.l.Error("failed to clear persisted session", zap.Error(err))
	}
}

// AddUser 由管理员创建用户，isAdmin 取自输入，不影响当前会话
func (s *Store) AddUser(input models.NewUserInput, password string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil || !s.session.IsAdmin {
		return nil, ErrUnauthorized
	}

	if s.findByEmail(input.Email) >= 0 {
		return nil, ErrEmailInUse
	}

	hash, err := argon2id.CreateHash(password, argon2id.DefaultParams)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:        uuid.NewString(),
		Email:     input.Email,
		Name:      input.Name,
		IsAdmin:   input.IsAdmin,
		CreatedAt: time.Now(),
	}

	s.users = append(s.users, user)
	s.passwords[user.ID] = hash
	if err := s.persistUsers(); err != nil {
		return nil, err
	}
	if err := s.persistPasswords(); err != nil {
		return nil, err
	}

	result := user
	return &result, nil
}

// UpdateUser 合并部分更新。管理员可以更新任何人，普通用户只能更新自己，
// 且普通用户提交的 isAdmin 会被直接丢弃（不能自我提权）。
// 目标不存在时返回 (nil, nil) 而不是错误。
func (s *Store) UpdateUser(id string, patch models.UserPatch) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return nil, ErrUnauthorized
	}
	if !s.session.IsAdmin {
		if s.session.ID != id {
			return nil, ErrUnauthorized
		}
		patch.IsAdmin = nil
	}

	idx := s.findByID(id)
	if idx < 0 {
		return nil, nil
	}

	// 最后一名管理员不能被降级，系统里始终至少有一名管理员
	if patch.IsAdmin != nil && !*patch.IsAdmin && s.users[idx].IsAdmin && s.adminCount() == 1 {
		return nil, ErrCannotDemoteLastAdmin
	}

	if patch.Name != nil {
		s.users[idx].Name = *patch.Name
	}
	if patch.IsAdmin != nil {
		s.users[idx].IsAdmin = *patch.IsAdmin
	}

	if err := s.persistUsers(); err != nil {
		return nil, err
	}

	// 更新的是当前会话用户时，会话一并刷新
	if s.session.ID == id {
		user := s.users[idx]
		s.session = &user
		if err := s.persistSession(); err != nil {
			return nil, err
		}
	}

	result := s.users[idx]
	return &result, nil
}

// DeleteUser 删除普通用户及其凭据。管理员永远不能被删除，
// 这同时保证了系统里始终至少有一名管理员。
// 目标不存在时返回 (false, nil) 而不是错误。
func (s *Store) DeleteUser(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil || !s.session.IsAdmin {
		return false, ErrUnauthorized
	}

	idx := s.findByID(id)
	if idx < 0 {
		return false, nil
	}
	if s.users[idx].IsAdmin {
		return false, ErrCannotDeleteAdmin
	}

	s.users = append(s.users[:idx], s.users[idx+1:]...)
	delete(s.passwords, id)
	if err := s.persistUsers(); err != nil {
		return false, err
	}
	if err := s.persistPasswords(); err != nil {
		return false, err
	}

	return true, nil
}

// GetUser 按 ID 查询，任何调用方可用，不存在时返回 nil
func (s *Store) GetUser(id string) *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.findByID(id)
	if idx < 0 {
		return nil
	}

	user := s.users[idx]
	return &user
}

// GetAllUsers 只对管理员会话返回完整列表，其他调用方得到空列表
func (s *Store) GetAllUsers() []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil || !s.session.IsAdmin {
		return []models.User{}
	}

	result := make([]models.User, len(s.users))
	copy(result, s.users)
	return result
}

// CurrentUser 返回当前会话用户的副本，未登录时返回 nil
func (s *Store) CurrentUser() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return nil
	}

	user := *s.session
	return &user
}

func (s *Store) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.session != nil
}

func (s *Store) IsAdmin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.session != nil && s.session.IsAdmin
}

// --- 内部方法，调用前必须持有锁 ---

func (s *Store) findByEmail(email string) int {
	for i := range s.users {
		if strings.EqualFold(s.users[i].Email, email) {
			return i
		}
	}
	return -1
}

func (s *Store) findByID(id string) int {
	for i := range s.users {
		if s.users[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) adminCount() int {
	count := 0
	for i := range s.users {
		if s.users[i].IsAdmin {
			count++
		}
	}
	return count
}

func (s *Store) persistUsers() error {
	raw, err := json.Marshal(s.users)
	if err != nil {
		return fmt.Errorf("failed to marshal users: %w", err)
	}
	if err := s.kv.Set(constants.StorageKeyUsers, raw); err != nil {
		return fmt.Errorf("failed to persist users: %w", err)
	}
	return nil
}

func (s *Store) persistPasswords() error {
	pairs := make([][2]string, 0, len(s.passwords))
	for _, user := range s.users {
		if hash, ok := s.passwords[user.ID]; ok {
			pairs = append(pairs, [2]string{user.ID, hash})
		}
	}

	raw, err := json.Marshal(pairs)
	if err != nil {
		return fmt.Errorf("failed to marshal credentials: %w", err)
	}
	if err := s.kv.Set(constants.StorageKeyPasswords, raw); err != nil {
		return fmt.Errorf("failed to persist credentials: %w", err)
	}
	return nil
}

func (s *Store) persistSession() error {
	raw, err := json.Marshal(s.session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := s.kv.Set(constants.StorageKeySession, raw); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}
	return nil
}
