// Package sqlite provides a modernc.org/sqlite-backed implementation of
// dao.Store for persisting workbench accounts and saved grammars across
// server restarts.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"net/mail"
	"path/filepath"
	"time"

	"github.com/hcasse/ltgen/server/dao"
	"modernc.org/sqlite"
)

type store struct {
	dbFilename string
	db         *sql.DB

	users    *UsersDB
	seshes   *SessionsDB
	grammars *GrammarsDB
}

// NewDatastore opens (creating if necessary) a single sqlite file under
// storageDir holding the users, sessions, and grammars tables.
func NewDatastore(storageDir string) (dao.Store, error) {
	st := &store{dbFilename: "ltgen.db"}

	fileName := filepath.Join(storageDir, st.dbFilename)

	var err error
	st.db, err = sql.Open("sqlite", fileName)
	if err != nil {
		return nil, wrapDBError(err)
	}

	st.users = &UsersDB{db: st.db}
	if err := st.users.init(); err != nil {
		return nil, err
	}

	st.seshes = &SessionsDB{db: st.db}
	if err := st.seshes.init(); err != nil {
		return nil, err
	}

	st.grammars = &GrammarsDB{db: st.db}
	if err := st.grammars.init(); err != nil {
		return nil, err
	}

	return st, nil
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
	return s.db.Close()
}

// convertToDB_Email converts a *mail.Address to storage DB format. If the
// pointer is nil, it will return the zero value.
func convertToDB_Email(email *mail.Address) string {
	if email == nil {
		return ""
	}
	return email.Address
}

func convertFromDB_Email(s string, target **mail.Address) error {
	if s == "" {
		*target = nil
		return nil
	}

	email, err := mail.ParseAddress(s)
	if err != nil {
		return fmt.Errorf("%w: %s", dao.ErrDecodingFailure, err.Error())
	}

	*target = email
	return nil
}

func convertFromDB_Role(s string, target *dao.Role) error {
	r, err := dao.ParseRole(s)
	if err != nil {
		return fmt.Errorf("%w: %s", dao.ErrDecodingFailure, err.Error())
	}
	*target = r
	return nil
}

func unixOrZero(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.Unix()
}

func wrapDBError(err error) error {
	if err == nil {
		return nil
	}
	sqliteErr := &sqlite.Error{}
	if errors.As(err, &sqliteErr) {
		if sqliteErr.Code() == 19 {
			return dao.ErrConstraintViolation
		}
		return fmt.Errorf("%s", sqlite.ErrorCodeString[sqliteErr.Code()])
	} else if errors.Is(err, sql.ErrNoRows) {
		return dao.ErrNotFound
	}
	return err
}
