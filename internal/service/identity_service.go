package service

import (
	"context"
	"errors"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	identitypb "github.com/Leganyst/barber-booking/internal/api/identity/v1"
	"github.com/Leganyst/barber-booking/internal/identity"
	"github.com/Leganyst/barber-booking/internal/repository"
)

// IdentityService отдаёт роли пользователя шлюзу авторизации.
type IdentityService struct {
	identitypb.UnimplementedIdentityServiceServer

	userRepo repository.UserRepository
}

func NewIdentityService(userRepo repository.UserRepository) *IdentityService {
	return &IdentityService{userRepo: userRepo}
}

// GetUserRoles возвращает нормализованные роли (ROLE_*) по имени пользователя.
func (s *IdentityService) GetUserRoles(
	ctx context.Context,
	req *identitypb.GetUserRolesRequest,
) (*identitypb.GetUserRolesResponse, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" {
		return nil, status.Error(codes.InvalidArgument, "username is required")
	}

	u, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, status.Errorf(codes.NotFound, "user not found: %s", username)
		}
		return nil, status.Errorf(codes.Internal, "find user: %v", err)
	}

	roles := identity.NormalizeRoles(u.Role)
	resp := &identitypb.GetUserRolesResponse{
		Username: u.Username,
		Roles:    make([]string, 0, len(roles)),
	}
	for _, r := range roles {
		resp.Roles = append(resp.Roles, string(r))
	}
	return resp, nil
}
