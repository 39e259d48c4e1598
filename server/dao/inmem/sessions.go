package inmem

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/hcasse/ltgen/server/dao"
	"github.com/google/uuid"
)

func NewSessionsRepository() *InMemorySessionsRepository {
	return &InMemorySessionsRepository{
		seshes:        make(map[uuid.UUID]dao.Session),
		byUserIDIndex: make(map[uuid.UUID][]uuid.UUID),
	}
}

type InMemorySessionsRepository struct {
	seshes        map[uuid.UUID]dao.Session
	byUserIDIndex map[uuid.UUID][]uuid.UUID
}

func (imsr *InMemorySessionsRepository) Close() error {
	return nil
}

func (imsr *InMemorySessionsRepository) Create(ctx context.Context, s dao.Session) (dao.Session, error) {
	newUUID, err := uuid.NewRandom()
	if err != nil {
		return dao.Session{}, fmt.Errorf("could not generate ID: %w", err)
	}

	s.ID = newUUID
	s.Created = time.Now()

	imsr.seshes[s.ID] = s
	imsr.byUserIDIndex[s.UserID] = append(imsr.byUserIDIndex[s.UserID], s.ID)

	return s, nil
}

func (imsr *InMemorySessionsRepository) GetByID(ctx context.Context, id uuid.UUID) (dao.Session, error) {
	s, ok := imsr.seshes[id]
	if !ok {
		return dao.Session{}, dao.ErrNotFound
	}

	return s, nil
}

func (imsr *InMemorySessionsRepository) GetAllByUser(ctx context.Context, id uuid.UUID) ([]dao.Session, error) {
	byUser := imsr.byUserIDIndex[id]
	all := make([]dao.Session, len(byUser))

	for i := range byUser {
		all[i] = imsr.seshes[byUser[i]]
	}

	sort.Slice(all, func(i, j int) bool {
		return all[i].ID.String() < all[j].ID.String()
	})

	return all, nil
}

func (imsr *InMemorySessionsRepository) Delete(ctx context.Context, id uuid.UUID) (dao.Session, error) {
	s, ok := imsr.seshes[id]
	if !ok {
		return dao.Session{}, dao.ErrNotFound
	}

	byUser := imsr.byUserIDIndex[s.UserID]
	for i := range byUser {
		if byUser[i] == id {
			byUser = append(byUser[:i], byUser[i+1:]...)
			break
		}
	}
	if len(byUser) < 1 {
		delete(imsr.byUserIDIndex, s.UserID)
	} else {
		imsr.byUserIDIndex[s.UserID] = byUser
	}

	delete(imsr.seshes, s.ID)

	return s, nil
}
