package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/hcasse/ltgen/server/dao"
	"github.com/google/uuid"
)

type SessionsDB struct {
	db *sql.DB
}

func (repo *SessionsDB) init() error {
	_, err := repo.db.Exec(`CREATE TABLE IF NOT EXISTS sessions (
		id TEXT NOT NULL PRIMARY KEY,
		user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE ON UPDATE CASCADE,
		created INTEGER NOT NULL,
		expires INTEGER NOT NULL
	);`)
	return wrapDBError(err)
}

func (repo *SessionsDB) Create(ctx context.Context, s dao.Session) (dao.Session, error) {
	newUUID, err := uuid.NewRandom()
	if err != nil {
		return dao.Session{}, fmt.Errorf("could not generate ID: %w", err)
	}

	now := time.Now()
	_, err = repo.db.ExecContext(ctx, `INSERT INTO sessions (id, user_id, created, expires) VALUES (?, ?, ?, ?)`,
		newUUID.String(), s.UserID.String(), now.Unix(), unixOrZero(s.Expires))
	if err != nil {
		return dao.Session{}, wrapDBError(err)
	}

	return repo.GetByID(ctx, newUUID)
}

func (repo *SessionsDB) GetByID(ctx context.Context, id uuid.UUID) (dao.Session, error) {
	row := repo.db.QueryRowContext(ctx, `SELECT id, user_id, created, expires FROM sessions WHERE id = ?;`, id.String())
	return scanSession(row.Scan)
}

func (repo *SessionsDB) GetAllByUser(ctx context.Context, userID uuid.UUID) ([]dao.Session, error) {
	rows, err := repo.db.QueryContext(ctx, `SELECT id, user_id, created, expires FROM sessions WHERE user_id = ? ORDER BY created;`, userID.String())
	if err != nil {
		return nil, wrapDBError(err)
	}
	defer rows.Close()

	var all []dao.Session
	for rows.Next() {
		s, err := scanSession(rows.Scan)
		if err != nil {
			return all, err
		}
		all = append(all, s)
	}

	return all, wrapDBError(rows.Err())
}

func (repo *SessionsDB) Delete(ctx context.Context, id uuid.UUID) (dao.Session, error) {
	curVal, err := repo.GetByID(ctx, id)
	if err != nil {
		return curVal, err
	}

	res, err := repo.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, id.String())
	if err != nil {
		return curVal, wrapDBError(err)
	}
	rowsAff, err := res.RowsAffected()
	if err != nil {
		return curVal, wrapDBError(err)
	}
	if rowsAff < 1 {
		return curVal, dao.ErrNotFound
	}

	return curVal, nil
}

func (repo *SessionsDB) Close() error {
	return nil
}

func scanSession(scan func(...interface{}) error) (dao.Session, error) {
	var s dao.Session
	var id, userID string
	var created, expires int64

	err := scan(&id, &userID, &created, &expires)
	if err != nil {
		return dao.Session{}, wrapDBError(err)
	}

	s.ID, err = uuid.Parse(id)
	if err != nil {
		return s, fmt.Errorf("stored UUID %q is invalid", id)
	}
	s.UserID, err = uuid.Parse(userID)
	if err != nil {
		return s, fmt.Errorf("stored user ID %q is invalid: %w", userID, err)
	}
	s.Created = time.Unix(created, 0)
	s.Expires = time.Unix(expires, 0)

	return s, nil
}
