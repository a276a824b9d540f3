package repository

import (
	"context"

	"github.com/chamados/servicedesk/internal/domain/reference"
	"github.com/chamados/servicedesk/internal/infrastructure/persistence/mappers"
	"github.com/chamados/servicedesk/internal/infrastructure/persistence/models"
	"github.com/chamados/servicedesk/internal/infrastructure/storage"
	"github.com/chamados/servicedesk/internal/shared/clock"
	"github.com/chamados/servicedesk/internal/shared/constants"
	"github.com/chamados/servicedesk/internal/shared/id"
	"github.com/chamados/servicedesk/internal/shared/logger"
)

// ReferenceRepository stores one kind of reference record. T is the domain type, M its stored form.
type ReferenceRepository[T reference.Record, M any] struct {
	items    *collection[M]
	kind     string
	toModel  func(T) M
	toDomain func(M) T
	clock    clock.Clock
	logger   logger.Interface
}

func NewClientRepository(backend storage.Backend, clk clock.Clock, logger logger.Interface) reference.ClientRepository {
	return &ReferenceRepository[*reference.Client, models.ClientModel]{
		items:    newCollection[models.ClientModel](backend, constants.StoreClients),
		kind:     "client",
		toModel:  mappers.ClientToModel,
		toDomain: mappers.ClientToDomain,
		clock:    clk,
		logger:   logger,
	}
}

func NewCategoryRepository(backend storage.Backend, clk clock.Clock, logger logger.Interface) reference.CategoryRepository {
	return &ReferenceRepository[*reference.Category, models.CategoryModel]{
		items:    newCollection[models.CategoryModel](backend, constants.StoreCategories),
		kind:     "category",
		toModel:  mappers.CategoryToModel,
		toDomain: mappers.CategoryToDomain,
		clock:    clk,
		logger:   logger,
	}
}

func NewGroupRepository(backend storage.Backend, clk clock.Clock, logger logger.Interface) reference.GroupRepository {
	return &ReferenceRepository[*reference.Group, models.GroupModel]{
		items:    newCollection[models.GroupModel](backend, constants.StoreGroups),
		kind:     "group",
		toModel:  mappers.GroupToModel,
		toDomain: mappers.GroupToDomain,
		clock:    clk,
		logger:   logger,
	}
}

func (r *ReferenceRepository[T, M]) List(ctx context.Context) ([]T, error) {
	items, err := r.items.read(ctx)
	if err != nil {
		r.logger.Errorw("failed to read reference store", "kind", r.kind, "error", err)
		return nil, err
	}
	result := make([]T, 0, len(items))
	for _, m := range items {
		result = append(result, r.toDomain(m))
	}
	return result, nil
}

func (r *ReferenceRepository[T, M]) GetByID(ctx context.Context, recordID string) (T, error) {
	var zero T
	items, err := r.items.read(ctx)
	if err != nil {
		return zero, err
	}
	recs := r.decode(items)
	i := indexOfRecord(recs, recordID)
	if i < 0 {
		return zero, reference.ErrNotFound(r.kind, recordID)
	}
	return recs[i], nil
}

func (r *ReferenceRepository[T, M]) Create(ctx context.Context, rec T) error {
	err := r.items.modify(ctx, func(items []M) ([]M, error) {
		recs := r.decode(items)
		if err := r.checkUnique(recs, rec, ""); err != nil {
			return nil, err
		}
		ids := make([]string, len(recs))
		for i, existing := range recs {
			ids[i] = existing.RecordID()
		}
		rec.SetRecordID(id.Next(r.clock.Now(), ids))
		return append(items, r.toModel(rec)), nil
	})
	if err != nil {
		return err
	}

	r.logger.Infow("reference record created", "kind", r.kind, "id", rec.RecordID(), "key", rec.UniqueKey())
	return nil
}

// Update applies fn to the stored record and re-checks uniqueness against every other record.
func (r *ReferenceRepository[T, M]) Update(ctx context.Context, recordID string, fn func(T) error) (T, error) {
	var updated T
	err := r.items.modify(ctx, func(items []M) ([]M, error) {
		recs := r.decode(items)
		i := indexOfRecord(recs, recordID)
		if i < 0 {
			return nil, reference.ErrNotFound(r.kind, recordID)
		}
		rec := recs[i]
		if err := fn(rec); err != nil {
			return nil, err
		}
		if err := r.checkUnique(recs, rec, recordID); err != nil {
			return nil, err
		}
		items[i] = r.toModel(rec)
		updated = rec
		return items, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return updated, nil
}

func (r *ReferenceRepository[T, M]) Delete(ctx context.Context, recordID string) error {
	err := r.items.modify(ctx, func(items []M) ([]M, error) {
		i := indexOfRecord(r.decode(items), recordID)
		if i < 0 {
			return nil, reference.ErrNotFound(r.kind, recordID)
		}
		return append(items[:i], items[i+1:]...), nil
	})
	if err != nil {
		return err
	}

	r.logger.Infow("reference record deleted", "kind", r.kind, "id", recordID)
	return nil
}

func (r *ReferenceRepository[T, M]) decode(items []M) []T {
	recs := make([]T, len(items))
	for i, m := range items {
		recs[i] = r.toDomain(m)
	}
	return recs
}

func (r *ReferenceRepository[T, M]) checkUnique(recs []T, candidate T, selfID string) error {
	for _, existing := range recs {
		if selfID != "" && existing.RecordID() == selfID {
			continue
		}
		if existing.UniqueKey() == candidate.UniqueKey() {
			return reference.ErrDuplicate(r.kind, candidate.UniqueKey())
		}
	}
	return nil
}

func indexOfRecord[T reference.Record](recs []T, recordID string) int {
	for i, rec := range recs {
		if rec.RecordID() == recordID {
			return i
		}
	}
	return -1
}
