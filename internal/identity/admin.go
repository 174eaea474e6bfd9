package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/Leganyst/barber-booking/internal/model"
	"github.com/Leganyst/barber-booking/internal/repository"
)

// Seeder создаёт служебную учётку администратора при старте.
type Seeder struct {
	users repository.UserRepository
	log   *zap.Logger
	cost  int
}

func NewSeeder(users repository.UserRepository, log *zap.Logger) *Seeder {
	return &Seeder{users: users, log: log, cost: bcrypt.DefaultCost}
}

// EnsureAdmin создаёт админа или сбрасывает ему пароль и роль.
// Пароль перезаписывается при каждом старте, это ожидаемое поведение.
func (s *Seeder) EnsureAdmin(ctx context.Context, username, password string) (*model.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, errors.New("admin username and password are required")
	}

	u, err := s.users.FindByUsername(ctx, username)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		u = &model.User{Username: username}
	case err != nil:
		return nil, fmt.Errorf("find admin: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("hash admin password: %w", err)
	}
	u.PasswordHash = string(hash)
	u.Role = AdminRole

	if err := s.users.Save(ctx, u); err != nil {
		return nil, fmt.Errorf("save admin: %w", err)
	}

	s.log.Info("admin user seeded/reset", zap.String("username", username))
	return u, nil
}
