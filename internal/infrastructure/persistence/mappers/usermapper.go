package mappers

import (
	"fmt"

	"github.com/chamados/servicedesk/internal/domain/user"
	"github.com/chamados/servicedesk/internal/infrastructure/persistence/models"
	"github.com/chamados/servicedesk/internal/shared/authorization"
)

// UserMapper converts between the User aggregate and its stored record.
type UserMapper interface {
	ToModel(u *user.User) models.UserModel
	ToDomain(m models.UserModel) (*user.User, error)
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToModel(u *user.User) models.UserModel {
	active := u.IsActive()
	return models.UserModel{
		ID:        u.ID(),
		Name:      u.Name(),
		Login:     u.Login(),
		Password:  u.Password(),
		Role:      u.Role().String(),
		Active:    &active,
		CreatedAt: u.CreatedAt(),
		UpdatedAt: u.UpdatedAt(),
	}
}

func (m *UserMapperImpl) ToDomain(rec models.UserModel) (*user.User, error) {
	active := rec.Active == nil || *rec.Active
	u, err := user.ReconstructUser(rec.ID, rec.Name, rec.Login, rec.Password,
		authorization.NormalizeUserRole(rec.Role), active, rec.CreatedAt, rec.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("map user %d: %w", rec.ID, err)
	}
	return u, nil
}

// NormalizeUserModel fills in a missing active flag and replaces an unknown role with analyst.
// It reports whether the record changed.
func NormalizeUserModel(rec *models.UserModel) bool {
	changed := false
	if rec.Active == nil {
		active := true
		rec.Active = &active
		changed = true
	}
	if role := authorization.NormalizeUserRole(rec.Role).String(); role != rec.Role {
		rec.Role = role
		changed = true
	}
	return changed
}
