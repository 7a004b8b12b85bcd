package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

// --- helpers ---

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

func userRows(token *string, verified bool) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"id", "username", "email", "password_hash", "verification_token",
		"is_verified", "created_at", "updated_at",
	})
	var tok interface{}
	if token != nil {
		tok = *token
	}
	rows.AddRow(uint64(1), "alice", "a@x.com", "$2a$10$hash", tok, verified,
		time.Now(), time.Now())
	return rows
}

const insertUserSQL = "INSERT INTO users (username, email, password_hash, verification_token, is_verified) VALUES (?,?,?,?,0)"

func TestCreate_Success(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta(insertUserSQL)).
		WithArgs("alice", "a@x.com", "hash", "tok").
		WillReturnResult(sqlmock.NewResult(7, 1))

	r := NewUserRepo(db)
	id, err := r.Create(context.Background(), " Alice ", "A@X.com", "hash", "tok")
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if id != 7 {
		t.Fatalf("want id 7, got %d", id)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestCreate_DuplicateUsername(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta(insertUserSQL)).
		WillReturnError(errors.New("Error 1062 (23000): Duplicate entry 'alice' for key 'users.uq_users_username'"))

	r := NewUserRepo(db)
	_, err := r.Create(context.Background(), "alice", "other@x.com", "hash", "tok")
	if !errors.Is(err, ErrUsernameExists) {
		t.Fatalf("want ErrUsernameExists, got %v", err)
	}
}

func TestCreate_DuplicateEmail(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta(insertUserSQL)).
		WillReturnError(errors.New("Error 1062 (23000): Duplicate entry 'a@x.com' for key 'users.uq_users_email'"))

	r := NewUserRepo(db)
	_, err := r.Create(context.Background(), "bob", "a@x.com", "hash", "tok")
	if !errors.Is(err, ErrEmailExists) {
		t.Fatalf("want ErrEmailExists, got %v", err)
	}
}

func TestGetByUsername_UnverifiedHasToken(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()

	tok := "tok123"
	mock.ExpectQuery(regexp.QuoteMeta("SELECT " + userColumns + " FROM users WHERE username=? LIMIT 1")).
		WithArgs("alice").
		WillReturnRows(userRows(&tok, false))

	r := NewUserRepo(db)
	u, err := r.GetByUsername(context.Background(), "Alice")
	if err != nil {
		t.Fatalf("GetByUsername error: %v", err)
	}
	if u.IsVerified {
		t.Fatalf("fresh account must be unverified")
	}
	if u.VerificationToken == nil || *u.VerificationToken != "tok123" {
		t.Fatalf("fresh account must carry its token, got %v", u.VerificationToken)
	}
}

func TestGetByUsername_NotFound(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT " + userColumns + " FROM users WHERE username=? LIMIT 1")).
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	r := NewUserRepo(db)
	_, err := r.GetByUsername(context.Background(), "ghost")
	if !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("want sql.ErrNoRows, got %v", err)
	}
}

const consumeUpdateSQL = "UPDATE users SET is_verified=1, verification_token=NULL WHERE id=? AND verification_token=?"

func TestConsumeToken_Success(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()

	tok := "tok123"
	mock.ExpectQuery(regexp.QuoteMeta("SELECT " + userColumns + " FROM users WHERE verification_token=? LIMIT 1")).
		WithArgs("tok123").
		WillReturnRows(userRows(&tok, false))
	mock.ExpectExec(regexp.QuoteMeta(consumeUpdateSQL)).
		WithArgs(uint64(1), "tok123").
		WillReturnResult(sqlmock.NewResult(0, 1))

	r := NewUserRepo(db)
	u, err := r.ConsumeToken(context.Background(), "tok123")
	if err != nil {
		t.Fatalf("ConsumeToken error: %v", err)
	}
	if !u.IsVerified || u.VerificationToken != nil {
		t.Fatalf("consume must return a verified user without token, got %+v", u)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestConsumeToken_SecondConsumeFails(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()

	// Token already cleared: lookup finds nothing.
	mock.ExpectQuery(regexp.QuoteMeta("SELECT " + userColumns + " FROM users WHERE verification_token=? LIMIT 1")).
		WithArgs("tok123").
		WillReturnError(sql.ErrNoRows)

	r := NewUserRepo(db)
	_, err := r.ConsumeToken(context.Background(), "tok123")
	if !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("want ErrTokenInvalid, got %v", err)
	}
}

func TestConsumeToken_LostRace(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()

	// Lookup still sees the token but the conditional update matches no
	// row: a concurrent request consumed it first.
	tok := "tok123"
	mock.ExpectQuery(regexp.QuoteMeta("SELECT " + userColumns + " FROM users WHERE verification_token=? LIMIT 1")).
		WithArgs("tok123").
		WillReturnRows(userRows(&tok, false))
	mock.ExpectExec(regexp.QuoteMeta(consumeUpdateSQL)).
		WithArgs(uint64(1), "tok123").
		WillReturnResult(sqlmock.NewResult(0, 0))

	r := NewUserRepo(db)
	_, err := r.ConsumeToken(context.Background(), "tok123")
	if !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("want ErrTokenInvalid on lost race, got %v", err)
	}
}

func TestMarkVerified_Idempotent(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()

	// Two runs against the same id: the second matches the row but
	// changes nothing. Both succeed.
	for i := 0; i < 2; i++ {
		mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET is_verified=1, verification_token=NULL WHERE id=?")).
			WithArgs(uint64(1)).
			WillReturnResult(sqlmock.NewResult(0, int64(1-i)))
	}

	r := NewUserRepo(db)
	if err := r.MarkVerified(context.Background(), 1); err != nil {
		t.Fatalf("first MarkVerified: %v", err)
	}
	if err := r.MarkVerified(context.Background(), 1); err != nil {
		t.Fatalf("second MarkVerified: %v", err)
	}
}
