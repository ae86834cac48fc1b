package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"ucoportal/internal/auth"
	"ucoportal/internal/model"
	"ucoportal/internal/repository"
)

// UserService covers admin user management and shared user lookups.
type UserService interface {
	Create(ctx context.Context, in model.UserCreate) (*model.User, error)
	List(ctx context.Context, f repository.UserFilter, page, limit int) (*model.Paginated[model.User], error)
	ListByRole(ctx context.Context, role model.Role) ([]model.User, error)
	Update(ctx context.Context, userID string, fields map[string]any) error
	Delete(ctx context.Context, userID string) error
}

type userService struct {
	users    repository.UserRepository
	fbos     repository.FBORepository
	settings repository.SettingRepository
}

func NewUserService(users repository.UserRepository, fbos repository.FBORepository, settings repository.SettingRepository) UserService {
	return &userService{users: users, fbos: fbos, settings: settings}
}

func (s *userService) Create(ctx context.Context, in model.UserCreate) (*model.User, error) {
	if _, err := s.users.FindByEmail(ctx, in.Email); err == nil {
		return nil, Conflict("Email already registered")
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	if err := s.validatePassword(ctx, in.Password); err != nil {
		return nil, err
	}

	employeeID := in.EmployeeID
	if employeeID == "" {
		var err error
		employeeID, err = s.nextEmployeeID(ctx)
		if err != nil {
			return nil, err
		}
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	status := in.Status
	if status == "" {
		status = model.StatusActive
	}
	metadata := in.Metadata
	if metadata == nil {
		metadata = map[string]any{}
	}

	now := time.Now().UTC()
	user := &model.User{
		UserID:       newID("USR"),
		Name:         in.Name,
		Email:        in.Email,
		Phone:        in.Phone,
		Role:         in.Role,
		Status:       status,
		EmployeeID:   employeeID,
		Permissions:  []string{},
		Metadata:     metadata,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// nextEmployeeID picks the next sequential EMP id by scanning existing ones.
func (s *userService) nextEmployeeID(ctx context.Context) (string, error) {
	existing, err := s.users.EmployeeIDs(ctx, "EMP")
	if err != nil {
		return "", err
	}
	max := 0
	for _, eid := range existing {
		digits := strings.Map(func(r rune) rune {
			if r >= '0' && r <= '9' {
				return r
			}
			return -1
		}, eid)
		if digits == "" {
			continue
		}
		if n, err := strconv.Atoi(digits); err == nil && n > max {
			max = n
		}
	}
	return fmt.Sprintf("EMP%03d", max+1), nil
}

func (s *userService) validatePassword(ctx context.Context, password string) error {
	values, err := s.settings.Values(ctx, []string{"passwordMinLength", "passwordRequireUppercase", "passwordRequireNumber"})
	if err != nil {
		return err
	}
	if err := auth.PolicyFromSettings(values).Validate(password); err != nil {
		return BadRequest(err.Error())
	}
	return nil
}

func (s *userService) List(ctx context.Context, f repository.UserFilter, page, limit int) (*model.Paginated[model.User], error) {
	res, err := s.users.List(ctx, f, pageQuery(page, limit))
	if err != nil {
		return nil, err
	}
	if err := s.attachAssignmentCounts(ctx, res.Items); err != nil {
		return nil, err
	}
	return &model.Paginated[model.User]{
		Data:       res.Items,
		Pagination: model.NewPagination(page, limit, res.Total),
	}, nil
}

func (s *userService) ListByRole(ctx context.Context, role model.Role) ([]model.User, error) {
	users, err := s.users.FindByRole(ctx, role)
	if err != nil {
		return nil, err
	}
	active := users[:0]
	for _, u := range users {
		if u.Status == model.StatusActive {
			active = append(active, u)
		}
	}
	if err := s.attachAssignmentCounts(ctx, active); err != nil {
		return nil, err
	}
	return active, nil
}

// attachAssignmentCounts adds the assigned FBO count to collector metadata.
func (s *userService) attachAssignmentCounts(ctx context.Context, users []model.User) error {
	for i := range users {
		if users[i].Role != model.RoleCollectionTeam {
			continue
		}
		count, err := s.fbos.CountAssigned(ctx, users[i].UserID)
		if err != nil {
			return err
		}
		if users[i].Metadata == nil {
			users[i].Metadata = map[string]any{}
		}
		users[i].Metadata["assignmentCount"] = count
	}
	return nil
}

func (s *userService) Update(ctx context.Context, userID string, fields map[string]any) error {
	delete(fields, "userId")
	if pw, ok := fields["password"].(string); ok {
		if err := s.validatePassword(ctx, pw); err != nil {
			return err
		}
		hash, err := auth.HashPassword(pw)
		if err != nil {
			return err
		}
		fields["password"] = hash
	}
	fields["updatedAt"] = time.Now().UTC()

	if err := s.users.Update(ctx, userID, fields); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return NotFound("User not found")
		}
		return err
	}
	return nil
}

func (s *userService) Delete(ctx context.Context, userID string) error {
	if err := s.users.Delete(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return NotFound("User not found")
		}
		return err
	}
	return nil
}

// pageQuery converts 1-based page/limit into a repository PageQuery.
func pageQuery(page, limit int) repository.PageQuery {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}
	return repository.PageQuery{Limit: limit, Offset: (page - 1) * limit}
}
