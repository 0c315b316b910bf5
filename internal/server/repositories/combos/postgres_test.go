package combos

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/fgclabs/combovault/internal/common"
	"github.com/fgclabs/combovault/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func sampleCombo() *models.Combo {
	return &models.Combo{
		Address:     "addr-1",
		Owner:       "u-1",
		CharacterID: 7,
		Name:        "uppercut_combo",
		Damage:      250,
		MeterGain:   30,
		MoveCount:   4,
		Fingerprint: []byte{0xc9, 0xc8},
		Deposit:     256,
		Bump:        255,
		CreatedAt:   time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

const insertQ = `(?s)^INSERT\s+INTO\s+combos\b.*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4,\s*\$5,\s*\$6,\s*\$7,\s*\$8,\s*\$9,\s*\$10,\s*\$11\)\s*ON\s+CONFLICT\s*\(address\)\s*DO\s+NOTHING;\s*$`

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	c := sampleCombo()
	mock.ExpectExec(insertQ).
		WithArgs(c.Address, c.Owner, int16(7), c.Name, int64(250), int64(30), int16(4), c.Fingerprint, int64(256), int16(255), c.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Create(context.Background(), c); err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreate_AddressOccupied(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	c := sampleCombo()
	mock.ExpectExec(insertQ).
		WithArgs(c.Address, c.Owner, int16(7), c.Name, int64(250), int64(30), int16(4), c.Fingerprint, int64(256), int16(255), c.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Create(context.Background(), c)
	if !errors.Is(err, common.ErrComboAlreadyExists) {
		t.Fatalf("want ErrComboAlreadyExists, got %v", err)
	}
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	c := sampleCombo()
	mock.ExpectExec(insertQ).
		WithArgs(c.Address, c.Owner, int16(7), c.Name, int64(250), int64(30), int16(4), c.Fingerprint, int64(256), int16(255), c.CreatedAt).
		WillReturnError(errors.New("db down"))

	err := repo.Create(context.Background(), c)
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

const selectQ = `(?s)^SELECT\s+address,\s*owner,\s*character_id,.*FROM\s+combos\s+WHERE\s+address\s*=\s*\$1\s*$`

func TestGetByAddress_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	verified := time.Date(2026, 1, 3, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{
		"address", "owner", "character_id", "name", "damage", "meter_gain", "move_count",
		"fingerprint", "deposit", "bump", "verification_count", "created_at", "last_verified_at",
	}).AddRow("addr-1", "u-1", int16(7), "uppercut_combo", int64(250), int64(30), int16(4),
		[]byte{0xc9}, int64(256), int16(255), int64(3), created, verified)

	mock.ExpectQuery(selectQ).WithArgs("addr-1").WillReturnRows(rows)

	got, err := repo.GetByAddress(context.Background(), "addr-1")
	if err != nil {
		t.Fatalf("GetByAddress error: %v", err)
	}
	if got.Owner != "u-1" || got.Damage != 250 || got.MoveCount != 4 || got.Bump != 255 {
		t.Fatalf("unexpected combo: %+v", got)
	}
	if got.VerificationCount != 3 || got.LastVerifiedAt == nil || !got.LastVerifiedAt.Equal(verified) {
		t.Fatalf("unexpected verification state: %+v", got)
	}
}

func TestGetByAddress_NeverVerified(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	rows := sqlmock.NewRows([]string{
		"address", "owner", "character_id", "name", "damage", "meter_gain", "move_count",
		"fingerprint", "deposit", "bump", "verification_count", "created_at", "last_verified_at",
	}).AddRow("addr-1", "u-1", int16(7), "uppercut_combo", int64(250), int64(30), int16(4),
		[]byte{0xc9}, int64(256), int16(255), int64(0), created, nil)

	mock.ExpectQuery(selectQ).WithArgs("addr-1").WillReturnRows(rows)

	got, err := repo.GetByAddress(context.Background(), "addr-1")
	if err != nil {
		t.Fatalf("GetByAddress error: %v", err)
	}
	if got.VerificationCount != 0 || got.LastVerifiedAt != nil {
		t.Fatalf("unexpected verification state: %+v", got)
	}
}

func TestGetByAddress_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(selectQ).WithArgs("ghost").WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByAddress(context.Background(), "ghost")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

const incrementQ = `(?s)^UPDATE\s+combos\s+SET\s+verification_count\s*=\s*verification_count\s*\+\s*1,\s*last_verified_at\s*=\s*\$2\s+WHERE\s+address\s*=\s*\$1\s+RETURNING\s+verification_count\s*$`

func TestIncrementVerification_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	at := time.Date(2026, 1, 3, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"verification_count"}).AddRow(int64(4))
	mock.ExpectQuery(incrementQ).WithArgs("addr-1", at).WillReturnRows(rows)

	got, err := repo.IncrementVerification(context.Background(), "addr-1", at)
	if err != nil {
		t.Fatalf("IncrementVerification error: %v", err)
	}
	if got != 4 {
		t.Fatalf("unexpected count: %d", got)
	}
}

func TestIncrementVerification_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	at := time.Date(2026, 1, 3, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(incrementQ).WithArgs("ghost", at).WillReturnError(sql.ErrNoRows)

	_, err := repo.IncrementVerification(context.Background(), "ghost", at)
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

const deleteQ = `(?s)^DELETE\s+FROM\s+combos\s+WHERE\s+address\s*=\s*\$1\s*$`

func TestDelete_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(deleteQ).WithArgs("addr-1").WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Delete(context.Background(), "addr-1"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
}

func TestDelete_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(deleteQ).WithArgs("ghost").WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), "ghost")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestDelete_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(deleteQ).WithArgs("addr-1").WillReturnError(errors.New("db err"))

	err := repo.Delete(context.Background(), "addr-1")
	if err == nil || !regexp.MustCompile(`db error: .*db err`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}
