package inmem

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/hcasse/ltgen/server/dao"
	"github.com/google/uuid"
)

func NewGrammarsRepository() *InMemoryGrammarsRepository {
	return &InMemoryGrammarsRepository{
		grammars:      make(map[uuid.UUID]dao.Grammar),
		byOwnerIDIndex: make(map[uuid.UUID][]uuid.UUID),
	}
}

type InMemoryGrammarsRepository struct {
	grammars       map[uuid.UUID]dao.Grammar
	byOwnerIDIndex map[uuid.UUID][]uuid.UUID
}

func (imgr *InMemoryGrammarsRepository) Close() error {
	return nil
}

func (imgr *InMemoryGrammarsRepository) Create(ctx context.Context, g dao.Grammar) (dao.Grammar, error) {
	newUUID, err := uuid.NewRandom()
	if err != nil {
		return dao.Grammar{}, fmt.Errorf("could not generate ID: %w", err)
	}

	g.ID = newUUID
	g.Created = time.Now()
	g.Modified = g.Created

	imgr.grammars[g.ID] = g
	imgr.byOwnerIDIndex[g.OwnerID] = append(imgr.byOwnerIDIndex[g.OwnerID], g.ID)

	return g, nil
}

func (imgr *InMemoryGrammarsRepository) GetByID(ctx context.Context, id uuid.UUID) (dao.Grammar, error) {
	g, ok := imgr.grammars[id]
	if !ok {
		return dao.Grammar{}, dao.ErrNotFound
	}

	return g, nil
}

func (imgr *InMemoryGrammarsRepository) GetAllByUser(ctx context.Context, ownerID uuid.UUID) ([]dao.Grammar, error) {
	byOwner := imgr.byOwnerIDIndex[ownerID]
	all := make([]dao.Grammar, len(byOwner))

	for i := range byOwner {
		all[i] = imgr.grammars[byOwner[i]]
	}

	sort.Slice(all, func(i, j int) bool {
		return all[i].Name < all[j].Name
	})

	return all, nil
}

func (imgr *InMemoryGrammarsRepository) Update(ctx context.Context, id uuid.UUID, g dao.Grammar) (dao.Grammar, error) {
	existing, ok := imgr.grammars[id]
	if !ok {
		return dao.Grammar{}, dao.ErrNotFound
	}

	g.ID = existing.ID
	g.OwnerID = existing.OwnerID
	g.Created = existing.Created
	g.Modified = time.Now()

	imgr.grammars[id] = g

	return g, nil
}

func (imgr *InMemoryGrammarsRepository) Delete(ctx context.Context, id uuid.UUID) (dao.Grammar, error) {
	g, ok := imgr.grammars[id]
	if !ok {
		return dao.Grammar{}, dao.ErrNotFound
	}

	byOwner := imgr.byOwnerIDIndex[g.OwnerID]
	for i := range byOwner {
		if byOwner[i] == id {
			byOwner = append(byOwner[:i], byOwner[i+1:]...)
			break
		}
	}
	if len(byOwner) < 1 {
		delete(imgr.byOwnerIDIndex, g.OwnerID)
	} else {
		imgr.byOwnerIDIndex[g.OwnerID] = byOwner
	}

	delete(imgr.grammars, id)

	return g, nil
}
