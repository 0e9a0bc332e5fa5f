package database

import (
	"testing"

	"nextassist/internal/domain"

	"github.com/stretchr/testify/require"
)

// A memory store must be visible from every pooled connection, not
// just the one that ran the migration. Holding a transaction pins one
// connection, so the follow-up query is forced onto a second one.
func TestConnect_MemoryStoreSharedAcrossPool(t *testing.T) {
	db, err := Connect(":memory:")
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&domain.User{}))
	require.NoError(t, db.Create(&domain.User{ID: "1", Email: "a@example.com", Role: domain.RoleAssistant}).Error)
	require.NoError(t, db.Create(&domain.User{ID: "2", Email: "b@example.com", Role: domain.RoleManager}).Error)

	tx := db.Begin()
	require.NoError(t, tx.Error)
	defer tx.Rollback()

	var inTx int64
	require.NoError(t, tx.Model(&domain.User{}).Count(&inTx).Error)
	require.EqualValues(t, 2, inTx)

	var onSecondConn int64
	require.NoError(t, db.Model(&domain.User{}).Count(&onSecondConn).Error)
	require.EqualValues(t, 2, onSecondConn)
}

// Two memory stores opened in the same process stay independent.
func TestConnect_MemoryStoresDoNotAlias(t *testing.T) {
	first, err := Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, first.AutoMigrate(&domain.User{}))
	require.NoError(t, first.Create(&domain.User{ID: "1", Email: "a@example.com", Role: domain.RoleAssistant}).Error)

	second, err := Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, second.AutoMigrate(&domain.User{}))

	var count int64
	require.NoError(t, second.Model(&domain.User{}).Count(&count).Error)
	require.EqualValues(t, 0, count)
}
