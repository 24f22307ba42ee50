package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBackupOrderCoversEveryCollection(t *testing.T) {
	order := BackupOrder()
	assert.Len(t, order, 10)

	seen := make(map[Collection]bool)
	for _, c := range order {
		assert.True(t, c.Valid(), "collection %q must be valid", c)
		assert.False(t, seen[c], "collection %q listed twice", c)
		seen[c] = true
	}
}

func TestBackupOrderIsStable(t *testing.T) {
	assert.Equal(t, BackupOrder(), BackupOrder())
	assert.Equal(t, CollectionStationery, BackupOrder()[0])
	assert.Equal(t, CollectionProfiles, BackupOrder()[len(BackupOrder())-1])
}

func TestCollectionValid(t *testing.T) {
	assert.True(t, CollectionGiftStore.Valid())
	assert.False(t, Collection("unknown_table").Valid())
	assert.False(t, Collection("").Valid())
}

func TestInventoryCollections(t *testing.T) {
	for _, c := range InventoryCollections() {
		assert.True(t, c.Valid())
	}
	assert.Contains(t, InventoryCollections(), CollectionStationery)
	assert.NotContains(t, InventoryCollections(), CollectionCustomers)
}
