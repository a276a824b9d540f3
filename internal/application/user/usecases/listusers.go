package usecases

import (
	"context"
	"fmt"
	"sort"

	"github.com/chamados/servicedesk/internal/application/user/dto"
	"github.com/chamados/servicedesk/internal/domain/user"
	"github.com/chamados/servicedesk/internal/shared/collation"
	"github.com/chamados/servicedesk/internal/shared/logger"
)

type ListUsersUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewListUsersUseCase(userRepo user.Repository, logger logger.Interface) *ListUsersUseCase {
	return &ListUsersUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Execute returns every user sorted by name for Brazilian Portuguese readers.
func (uc *ListUsersUseCase) Execute(ctx context.Context) ([]*dto.UserDTO, error) {
	users, err := uc.userRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list users", "error", err)
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	sorter := collation.NewSorter()
	sort.SliceStable(users, func(i, j int) bool {
		return sorter.Compare(users[i].Name(), users[j].Name()) < 0
	})

	return dto.ToUserDTOList(users), nil
}
