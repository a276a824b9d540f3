package repository

import (
	"context"
	"fmt"

	"github.com/chamados/servicedesk/internal/domain/user"
	"github.com/chamados/servicedesk/internal/infrastructure/persistence/mappers"
	"github.com/chamados/servicedesk/internal/infrastructure/persistence/models"
	"github.com/chamados/servicedesk/internal/infrastructure/persistence/seeds"
	"github.com/chamados/servicedesk/internal/infrastructure/storage"
	"github.com/chamados/servicedesk/internal/shared/clock"
	"github.com/chamados/servicedesk/internal/shared/config"
	"github.com/chamados/servicedesk/internal/shared/constants"
	"github.com/chamados/servicedesk/internal/shared/id"
	"github.com/chamados/servicedesk/internal/shared/logger"
)

// UserRepository keeps users in the users store, seeding the bootstrap administrator on first use.
type UserRepository struct {
	users  *collection[models.UserModel]
	mapper mappers.UserMapper
	clock  clock.Clock
	logger logger.Interface
}

func NewUserRepository(backend storage.Backend, bootstrap config.BootstrapConfig, clk clock.Clock, logger logger.Interface) user.Repository {
	users := newCollection[models.UserModel](backend, constants.StoreUsers)
	users.seed = func() []models.UserModel {
		logger.Infow("seeding bootstrap administrator", "login", bootstrap.AdminLogin)
		return seeds.AdminUsers(bootstrap, clk.Now())
	}
	users.normalize = func(items []models.UserModel) bool {
		changed := false
		for i := range items {
			if mappers.NormalizeUserModel(&items[i]) {
				logger.Warnw("normalized stored user record", "id", items[i].ID, "role", items[i].Role)
				changed = true
			}
		}
		return changed
	}

	return &UserRepository{
		users:  users,
		mapper: mappers.NewUserMapper(),
		clock:  clk,
		logger: logger,
	}
}

func (r *UserRepository) List(ctx context.Context) ([]*user.User, error) {
	items, err := r.users.read(ctx)
	if err != nil {
		r.logger.Errorw("failed to read users", "error", err)
		return nil, err
	}
	result := make([]*user.User, 0, len(items))
	for _, m := range items {
		u, err := r.mapper.ToDomain(m)
		if err != nil {
			return nil, err
		}
		result = append(result, u)
	}
	return result, nil
}

func (r *UserRepository) GetByID(ctx context.Context, userID int64) (*user.User, error) {
	items, err := r.users.read(ctx)
	if err != nil {
		return nil, err
	}
	i := indexOfUser(items, userID)
	if i < 0 {
		return nil, user.ErrUserNotFound()
	}
	return r.mapper.ToDomain(items[i])
}

func (r *UserRepository) GetByLogin(ctx context.Context, login string) (*user.User, error) {
	items, err := r.users.read(ctx)
	if err != nil {
		return nil, err
	}
	key := user.NormalizeLogin(login)
	if key == "" {
		return nil, nil
	}
	for _, m := range items {
		if user.NormalizeLogin(m.Login) == key {
			return r.mapper.ToDomain(m)
		}
	}
	return nil, nil
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	err := r.users.modify(ctx, func(items []models.UserModel) ([]models.UserModel, error) {
		var latest int64
		for _, m := range items {
			if user.NormalizeLogin(m.Login) == u.NormalizedLogin() {
				return nil, user.ErrLoginTaken(u.Login())
			}
			if m.ID > latest {
				latest = m.ID
			}
		}
		if err := u.SetID(id.NextInt(r.clock.Now(), latest)); err != nil {
			return nil, fmt.Errorf("failed to set user ID: %w", err)
		}
		return append(items, r.mapper.ToModel(u)), nil
	})
	if err != nil {
		return err
	}

	r.logger.Infow("user created", "id", u.ID(), "login", u.Login())
	return nil
}

func (r *UserRepository) Update(ctx context.Context, userID int64, fn func(*user.User) error) (*user.User, error) {
	var updated *user.User
	err := r.users.modify(ctx, func(items []models.UserModel) ([]models.UserModel, error) {
		i := indexOfUser(items, userID)
		if i < 0 {
			return nil, user.ErrUserNotFound()
		}
		u, err := r.mapper.ToDomain(items[i])
		if err != nil {
			return nil, err
		}
		if err := fn(u); err != nil {
			return nil, err
		}
		items[i] = r.mapper.ToModel(u)
		updated = u
		return items, nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *UserRepository) Delete(ctx context.Context, userID int64) (*user.User, error) {
	var removed *user.User
	err := r.users.modify(ctx, func(items []models.UserModel) ([]models.UserModel, error) {
		i := indexOfUser(items, userID)
		if i < 0 {
			return nil, user.ErrUserNotFound()
		}
		u, err := r.mapper.ToDomain(items[i])
		if err != nil {
			return nil, err
		}
		removed = u
		return append(items[:i], items[i+1:]...), nil
	})
	if err != nil {
		return nil, err
	}

	r.logger.Infow("user deleted", "id", removed.ID(), "login", removed.Login())
	return removed, nil
}

func indexOfUser(items []models.UserModel, userID int64) int {
	for i, m := range items {
		if m.ID == userID {
			return i
		}
	}
	return -1
}
