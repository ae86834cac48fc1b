package service

import (
	"context"
	"errors"
	"time"

	"ucoportal/internal/auth"
	"ucoportal/internal/model"
	"ucoportal/internal/repository"
)

// RefreshResult is the payload of a successful token refresh.
type RefreshResult struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expiresIn"`
}

// AuthService covers login, token refresh, and self-service profile actions.
type AuthService interface {
	Login(ctx context.Context, in model.UserLogin) (*model.LoginResult, error)
	Refresh(ctx context.Context, refreshToken string) (*RefreshResult, error)
	ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error
	UpdateProfile(ctx context.Context, current *model.User, upd model.UserUpdate) (*model.User, error)
}

type authService struct {
	users    repository.UserRepository
	settings repository.SettingRepository
	tokens   *auth.TokenManager
}

func NewAuthService(users repository.UserRepository, settings repository.SettingRepository, tokens *auth.TokenManager) AuthService {
	return &authService{users: users, settings: settings, tokens: tokens}
}

func (s *authService) Login(ctx context.Context, in model.UserLogin) (*model.LoginResult, error) {
	user, err := s.users.FindByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, Unauthorized("Invalid credentials")
		}
		return nil, err
	}
	if !auth.CheckPassword(in.Password, user.PasswordHash) {
		return nil, Unauthorized("Invalid credentials")
	}
	if in.Role != "" && user.Role != in.Role {
		return nil, Unauthorized("Invalid role")
	}

	token, err := s.tokens.IssueAccess(user.UserID, user.Role)
	if err != nil {
		return nil, err
	}
	refresh, err := s.tokens.IssueRefresh(user.UserID, user.Role)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if err := s.users.Update(ctx, user.UserID, map[string]any{"lastLogin": now}); err != nil {
		return nil, err
	}
	user.LastLogin = &now

	return &model.LoginResult{
		User:         user,
		Token:        token,
		RefreshToken: refresh,
		ExpiresIn:    int(s.tokens.AccessTTL().Seconds()),
	}, nil
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (*RefreshResult, error) {
	claims, err := s.tokens.Verify(refreshToken, auth.TokenTypeRefresh)
	if err != nil {
		return nil, Unauthorized("Invalid refresh token")
	}
	user, err := s.users.FindByUserID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, Unauthorized("User not found")
		}
		return nil, err
	}
	token, err := s.tokens.IssueAccess(user.UserID, user.Role)
	if err != nil {
		return nil, err
	}
	return &RefreshResult{Token: token, ExpiresIn: int(s.tokens.AccessTTL().Seconds())}, nil
}

func (s *authService) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	user, err := s.users.FindByUserID(ctx, userID)
	if err != nil {
		return err
	}
	if !auth.CheckPassword(currentPassword, user.PasswordHash) {
		return BadRequest("Invalid current password")
	}

	values, err := s.settings.Values(ctx, []string{"passwordMinLength", "passwordRequireUppercase", "passwordRequireNumber"})
	if err != nil {
		return err
	}
	if err := auth.PolicyFromSettings(values).Validate(newPassword); err != nil {
		return BadRequest(err.Error())
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return err
	}
	return s.users.Update(ctx, userID, map[string]any{"password": hash})
}

func (s *authService) UpdateProfile(ctx context.Context, current *model.User, upd model.UserUpdate) (*model.User, error) {
	fields := map[string]any{}
	if upd.Name != nil {
		fields["name"] = *upd.Name
	}
	if upd.Phone != nil {
		fields["phone"] = *upd.Phone
	}
	if upd.ProfileImage != nil {
		fields["profileImage"] = *upd.ProfileImage
	}
	if upd.Email != nil && *upd.Email != current.Email {
		if _, err := s.users.FindByEmail(ctx, *upd.Email); err == nil {
			return nil, BadRequest("Email already registered")
		} else if !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		fields["email"] = *upd.Email
	}
	if len(fields) == 0 {
		return current, nil
	}
	fields["updatedAt"] = time.Now().UTC()

	if err := s.users.Update(ctx, current.UserID, fields); err != nil {
		return nil, err
	}
	return s.users.FindByUserID(ctx, current.UserID)
}
