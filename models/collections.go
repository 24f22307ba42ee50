package models

// Collection identifies one of the known record collections covered by
// backup and restore. Keeping the set closed makes adding or removing a
// collection a compile-time change instead of a string-typo risk.
type Collection string

const (
	CollectionStationery      Collection = "stationery"
	CollectionGiftStore       Collection = "gift_store"
	CollectionEmbroidery      Collection = "embroidery"
	CollectionMachines        Collection = "machines"
	CollectionArtServices     Collection = "art_services"
	CollectionStationerySales Collection = "stationery_sales"
	CollectionGiftDailySales  Collection = "gift_daily_sales"
	CollectionCustomers       Collection = "customers"
	CollectionInvoices        Collection = "invoices"
	CollectionProfiles        Collection = "profiles"
)

// BackupOrder is the canonical collection order. Export writes it to
// metadata.tables and restore iterates it, so both sides of a round trip
// agree on a single ordering.
func BackupOrder() []Collection {
	return []Collection{
		CollectionStationery,
		CollectionGiftStore,
		CollectionEmbroidery,
		CollectionMachines,
		CollectionArtServices,
		CollectionStationerySales,
		CollectionGiftDailySales,
		CollectionCustomers,
		CollectionInvoices,
		CollectionProfiles,
	}
}

// InventoryCollections lists the collections that hold stock and are
// subject to low-stock evaluation.
func InventoryCollections() []Collection {
	return []Collection{
		CollectionStationery,
		CollectionGiftStore,
		CollectionEmbroidery,
		CollectionMachines,
		CollectionArtServices,
	}
}

func (c Collection) String() string {
	return string(c)
}

// Valid reports whether c is one of the known collections.
func (c Collection) Valid() bool {
	for _, known := range BackupOrder() {
		if c == known {
			return true
		}
	}
	return false
}
