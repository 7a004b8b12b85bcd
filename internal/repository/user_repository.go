package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/iliyamo/food-recipe-finder/internal/model"
)

// UserRepo is the account store: a thin parameterized-SQL layer over the
// 'users' table. Uniqueness of username and email is enforced by the
// database constraints, not by application-level locking.
type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

const userColumns = "id,username,email,password_hash,verification_token,is_verified,created_at,updated_at"

// Create inserts an unverified user with a pending verification token and
// returns its ID. Username and email are normalized before insert. A
// duplicate key error (MySQL 1062) is mapped to the column that caused it
// so the handler can report which value is taken; no row exists after a
// conflict.
func (r *UserRepo) Create(ctx context.Context, username, email, passwordHash, token string) (uint64, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	email = strings.ToLower(strings.TrimSpace(email))
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO users (username, email, password_hash, verification_token, is_verified) VALUES (?,?,?,?,0)",
		username, email, passwordHash, token)
	if err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "1062") {
			if strings.Contains(msg, "email") {
				return 0, ErrEmailExists
			}
			return 0, ErrUsernameExists
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByUsername fetches a user by normalized username.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (model.User, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	return r.scanOne(r.DB.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE username=? LIMIT 1", username))
}

// GetByID fetches a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id uint64) (model.User, error) {
	return r.scanOne(r.DB.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE id=? LIMIT 1", id))
}

// FindByToken fetches the account a pending verification token belongs to.
// Consumed tokens are NULLed out, so they can never match here again.
func (r *UserRepo) FindByToken(ctx context.Context, token string) (model.User, error) {
	return r.scanOne(r.DB.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE verification_token=? LIMIT 1", token))
}

// ConsumeToken verifies the account holding the given token and clears the
// token in one conditional UPDATE. The WHERE clause is the atomicity
// guarantee: of two requests racing on the same token exactly one update
// matches a row, the other sees zero rows affected and gets
// ErrTokenInvalid. The verified user is returned for the success path.
func (r *UserRepo) ConsumeToken(ctx context.Context, token string) (model.User, error) {
	u, err := r.FindByToken(ctx, token)
	if err != nil {
		if err == sql.ErrNoRows {
			return model.User{}, ErrTokenInvalid
		}
		return model.User{}, err
	}
	res, err := r.DB.ExecContext(ctx,
		"UPDATE users SET is_verified=1, verification_token=NULL WHERE id=? AND verification_token=?",
		u.ID, token)
	if err != nil {
		return model.User{}, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return model.User{}, err
	}
	if n == 0 {
		// Lost the race: someone consumed the token between lookup and update.
		return model.User{}, ErrTokenInvalid
	}
	u.IsVerified = true
	u.VerificationToken = nil
	return u, nil
}

// MarkVerified sets is_verified and clears any pending token. Idempotent:
// running it against an already verified row changes nothing.
func (r *UserRepo) MarkVerified(ctx context.Context, id uint64) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE users SET is_verified=1, verification_token=NULL WHERE id=?", id)
	return err
}

// scanOne maps a single users row into a model.User.
func (r *UserRepo) scanOne(row *sql.Row) (model.User, error) {
	var (
		u     model.User
		token sql.NullString
	)
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &token,
		&u.IsVerified, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return model.User{}, err
	}
	if token.Valid {
		u.VerificationToken = &token.String
	}
	return u, nil
}
