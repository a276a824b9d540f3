package usecases

import (
	"context"
	"fmt"
	"sort"

	"github.com/chamados/servicedesk/internal/application/reference/dto"
	"github.com/chamados/servicedesk/internal/domain/reference"
	"github.com/chamados/servicedesk/internal/shared/authorization"
	"github.com/chamados/servicedesk/internal/shared/collation"
	"github.com/chamados/servicedesk/internal/shared/id"
	"github.com/chamados/servicedesk/internal/shared/logger"
)

type ListQuery struct {
	Actor authorization.Actor
	// ActiveOnly is honored for admins; analysts never see inactive records
	ActiveOnly bool
}

// ListUseCase lists one kind of reference record in its display order.
type ListUseCase[T reference.Record, D any] struct {
	repo   reference.Repository[T]
	kind   string
	less   func(s *collation.Sorter, a, b T) bool
	toDTO  func(T) D
	logger logger.Interface
}

// NewListClientsUseCase lists clients newest first.
func NewListClientsUseCase(repo reference.ClientRepository, logger logger.Interface) *ListUseCase[*reference.Client, dto.ClientDTO] {
	return &ListUseCase[*reference.Client, dto.ClientDTO]{
		repo: repo,
		kind: "client",
		less: func(_ *collation.Sorter, a, b *reference.Client) bool {
			return id.Less(b.ID, a.ID)
		},
		toDTO:  dto.ToClientDTO,
		logger: logger,
	}
}

// NewListCategoriesUseCase lists categories by group, then name.
func NewListCategoriesUseCase(repo reference.CategoryRepository, logger logger.Interface) *ListUseCase[*reference.Category, dto.CategoryDTO] {
	return &ListUseCase[*reference.Category, dto.CategoryDTO]{
		repo: repo,
		kind: "category",
		less: func(s *collation.Sorter, a, b *reference.Category) bool {
			if c := s.Compare(a.Group, b.Group); c != 0 {
				return c < 0
			}
			return s.Compare(a.Name, b.Name) < 0
		},
		toDTO:  dto.ToCategoryDTO,
		logger: logger,
	}
}

func NewListGroupsUseCase(repo reference.GroupRepository, logger logger.Interface) *ListUseCase[*reference.Group, dto.GroupDTO] {
	return &ListUseCase[*reference.Group, dto.GroupDTO]{
		repo: repo,
		kind: "group",
		less: func(s *collation.Sorter, a, b *reference.Group) bool {
			return s.Compare(a.Name, b.Name) < 0
		},
		toDTO:  dto.ToGroupDTO,
		logger: logger,
	}
}

func (uc *ListUseCase[T, D]) Execute(ctx context.Context, query ListQuery) ([]D, error) {
	records, err := uc.repo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list reference records", "kind", uc.kind, "error", err)
		return nil, fmt.Errorf("failed to list %s records: %w", uc.kind, err)
	}

	activeOnly := query.ActiveOnly || !query.Actor.IsAdmin()
	filtered := make([]T, 0, len(records))
	for _, r := range records {
		if activeOnly && !r.IsActive() {
			continue
		}
		filtered = append(filtered, r)
	}

	sorter := collation.NewSorter()
	sort.SliceStable(filtered, func(i, j int) bool {
		return uc.less(sorter, filtered[i], filtered[j])
	})

	result := make([]D, 0, len(filtered))
	for _, r := range filtered {
		result = append(result, uc.toDTO(r))
	}
	return result, nil
}
