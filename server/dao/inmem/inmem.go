// Package inmem provides an in-memory, map-backed implementation of
// dao.Store, useful for tests and for running the server with no
// persistence configured.
package inmem

import (
	"fmt"

	"github.com/hcasse/ltgen/server/dao"
)

type store struct {
	users    *InMemoryUsersRepository
	seshes   *InMemorySessionsRepository
	grammars *InMemoryGrammarsRepository
}

func NewDatastore() dao.Store {
	return &store{
		users:    NewUsersRepository(),
		seshes:   NewSessionsRepository(),
		grammars: NewGrammarsRepository(),
	}
}

func (s *store) Users() dao.UserRepository {
	return s.users
}

func (s *store) Sessions() dao.SessionRepository {
	return s.seshes
}

func (s *store) Grammars() dao.GrammarRepository {
	return s.grammars
}

func (s *store) Close() error {
	var err error

	if nextErr := s.users.Close(); nextErr != nil {
		err = combineErr(err, nextErr)
	}
	if nextErr := s.seshes.Close(); nextErr != nil {
		err = combineErr(err, nextErr)
	}
	if nextErr := s.grammars.Close(); nextErr != nil {
		err = combineErr(err, nextErr)
	}

	return err
}

func combineErr(err, next error) error {
	if err == nil {
		return next
	}
	return fmt.Errorf("%s\nadditionally, %w", err, next)
}
