package postgres

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"applause-ledger/internal/platform/kv"
)

func newMockStore(t *testing.T) (*KVStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewKVStore(db), mock
}

func TestKVStore_EnsureSchema(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS kv_store")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, s.EnsureSchema(context.Background()))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestKVStore_Get(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT value FROM kv_store WHERE key = $1")).
		WithArgs("person:1").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow([]byte(`{"id":"1"}`)))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT value FROM kv_store WHERE key = $1")).
		WithArgs("person:404").
		WillReturnError(sql.ErrNoRows)

	v, err := s.Get(context.Background(), "person:1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"1"}`, string(v))

	_, err = s.Get(context.Background(), "person:404")
	require.ErrorIs(t, err, kv.ErrNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestKVStore_MGet_OrderAndMissing(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT key, value FROM kv_store WHERE key IN ($1,$2,$3)")).
		WithArgs("person:1", "person:2", "person:3").
		WillReturnRows(sqlmock.NewRows([]string{"key", "value"}).
			AddRow("person:3", []byte(`3`)).
			AddRow("person:1", []byte(`1`)))

	vals, err := s.MGet(context.Background(), []string{"person:1", "person:2", "person:3"})
	require.NoError(t, err)
	require.Len(t, vals, 3)
	assert.Equal(t, "1", string(vals[0]))
	assert.Nil(t, vals[1])
	assert.Equal(t, "3", string(vals[2]))

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestKVStore_ScanPrefix_EscapesLike(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery("SELECT key, value\\s+FROM kv_store\\s+WHERE key LIKE").
		WithArgs(`hist\_ory:%`).
		WillReturnRows(sqlmock.NewRows([]string{"key", "value"}).
			AddRow("hist_ory:1", []byte(`{}`)))

	pairs, err := s.ScanPrefix(context.Background(), "hist_ory:")
	require.NoError(t, err)
	require.Len(t, pairs, 1)
	assert.Equal(t, "hist_ory:1", pairs[0].Key)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestKVStore_Commit_UpsertAndCreateOnly(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec("ON CONFLICT \\(key\\) DO UPDATE").
		WithArgs("person:1", `{"id":"1"}`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("ON CONFLICT \\(key\\) DO NOTHING").
		WithArgs("history:1-a", `{"id":"1-a"}`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := s.Commit(context.Background(), []kv.Op{
		{Key: "person:1", Value: []byte(`{"id":"1"}`)},
		{Key: "history:1-a", Value: []byte(`{"id":"1-a"}`), CreateOnly: true},
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestKVStore_Commit_RollsBackOnExistingKey(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec("ON CONFLICT \\(key\\) DO UPDATE").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("ON CONFLICT \\(key\\) DO NOTHING").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := s.Commit(context.Background(), []kv.Op{
		{Key: "person:1", Value: []byte(`{}`)},
		{Key: "history:dup", Value: []byte(`{}`), CreateOnly: true},
	})
	require.ErrorIs(t, err, kv.ErrKeyExists)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestKVStore_Commit_RollsBackOnExecError(t *testing.T) {
	s, mock := newMockStore(t)

	boom := errors.New("connection reset")
	mock.ExpectBegin()
	mock.ExpectExec("ON CONFLICT \\(key\\) DO UPDATE").WillReturnError(boom)
	mock.ExpectRollback()

	err := s.Commit(context.Background(), []kv.Op{{Key: "person:1", Value: []byte(`{}`)}})
	require.ErrorIs(t, err, boom)
	require.NoError(t, mock.ExpectationsWereMet())
}
