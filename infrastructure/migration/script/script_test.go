package main

import (
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/smartstore-sales-api/internal/domain"
	"github.com/vfg2006/smartstore-sales-api/pkg/utils"
)

func TestSeedStores_AreNormalized(t *testing.T) {
	ids := map[string]bool{}

	for _, s := range seedStores {
		normalized, err := utils.NormalizeStoreURL(s.URL, "smartstore.naver.com")
		require.NoError(t, err)
		assert.Equal(t, s.URL, normalized, "loja %s", s.ID)

		assert.False(t, ids[s.ID], "ID duplicado %s", s.ID)
		ids[s.ID] = true
	}

	assert.Len(t, seedStores, 4)
}

func beginMockTx(t *testing.T) (*sql.Tx, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	mock.ExpectBegin()
	tx, err := db.Begin()
	require.NoError(t, err)

	return tx, mock
}

func TestInsertStores(t *testing.T) {
	tx, mock := beginMockTx(t)

	prep := mock.ExpectPrepare(`INSERT INTO stores \(id, name, url\) VALUES \(\$1, \$2, \$3\) ON CONFLICT \(id\) DO NOTHING`)
	prep.ExpectExec().WithArgs("honey_mk", "꿀달달", "https://smartstore.naver.com/honey_mk").
		WillReturnResult(sqlmock.NewResult(0, 1))
	prep.ExpectExec().WithArgs("codewiner", "코드위너", "https://smartstore.naver.com/codewiner").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := insertStores(tx, []domain.Store{seedStores[0], seedStores[3]})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertAdmin_SkipsWhenNotConfigured(t *testing.T) {
	tx, mock := beginMockTx(t)

	assert.NoError(t, upsertAdmin(tx, "", ""))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertAdmin(t *testing.T) {
	tx, mock := beginMockTx(t)

	mock.ExpectExec(`INSERT INTO users`).
		WithArgs("admin", sqlmock.AnyArg(), "admin").
		WillReturnResult(sqlmock.NewResult(1, 1))

	assert.NoError(t, upsertAdmin(tx, " Admin ", "segredo123"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
