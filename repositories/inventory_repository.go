package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"pointarthub/models"
)

// StockLevel is the uniform shape low-stock evaluation reads across all
// inventory categories.
type StockLevel struct {
	Collection models.Collection
	ItemID     uint
	Name       string
	Quantity   int
}

// InventoryRepository defines inventory operations across the five retail
// categories.
type InventoryRepository interface {
	ListStationery() ([]models.StationeryItem, error)
	GetStationery(id uint) (*models.StationeryItem, error)
	CreateStationery(item *models.StationeryItem) error
	UpdateStationery(item *models.StationeryItem) error
	DeleteStationery(id uint) error

	ListGiftStore() ([]models.GiftStoreItem, error)
	GetGiftStore(id uint) (*models.GiftStoreItem, error)
	CreateGiftStore(item *models.GiftStoreItem) error
	UpdateGiftStore(item *models.GiftStoreItem) error
	DeleteGiftStore(id uint) error

	ListEmbroidery() ([]models.EmbroideryOrder, error)
	CreateEmbroidery(order *models.EmbroideryOrder) error
	ListMachines() ([]models.MachineItem, error)
	CreateMachine(item *models.MachineItem) error
	ListArtServices() ([]models.ArtServiceJob, error)
	CreateArtService(job *models.ArtServiceJob) error

	ListStockLevels() ([]StockLevel, error)
	AdjustQuantity(c models.Collection, id uint, delta int) error
}

type inventoryRepositoryImpl struct {
	db *gorm.DB
}

// NewInventoryRepository creates a new InventoryRepository instance.
func NewInventoryRepository(db *gorm.DB) InventoryRepository {
	return &inventoryRepositoryImpl{db: db}
}

func (r *inventoryRepositoryImpl) ListStationery() ([]models.StationeryItem, error) {
	var items []models.StationeryItem
	err := r.db.Order("item").Find(&items).Error
	return items, err
}

func (r *inventoryRepositoryImpl) GetStationery(id uint) (*models.StationeryItem, error) {
	var item models.StationeryItem
	if err := r.db.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *inventoryRepositoryImpl) CreateStationery(item *models.StationeryItem) error {
	return r.db.Create(item).Error
}

func (r *inventoryRepositoryImpl) UpdateStationery(item *models.StationeryItem) error {
	return r.db.Save(item).Error
}

func (r *inventoryRepositoryImpl) DeleteStationery(id uint) error {
	return r.db.Delete(&models.StationeryItem{}, id).Error
}

func (r *inventoryRepositoryImpl) ListGiftStore() ([]models.GiftStoreItem, error) {
	var items []models.GiftStoreItem
	err := r.db.Order("item").Find(&items).Error
	return items, err
}

func (r *inventoryRepositoryImpl) GetGiftStore(id uint) (*models.GiftStoreItem, error) {
	var item models.GiftStoreItem
	if err := r.db.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *inventoryRepositoryImpl) CreateGiftStore(item *models.GiftStoreItem) error {
	return r.db.Create(item).Error
}

func (r *inventoryRepositoryImpl) UpdateGiftStore(item *models.GiftStoreItem) error {
	return r.db.Save(item).Error
}

func (r *inventoryRepositoryImpl) DeleteGiftStore(id uint) error {
	return r.db.Delete(&models.GiftStoreItem{}, id).Error
}

func (r *inventoryRepositoryImpl) ListEmbroidery() ([]models.EmbroideryOrder, error) {
	var orders []models.EmbroideryOrder
	err := r.db.Find(&orders).Error
	return orders, err
}

func (r *inventoryRepositoryImpl) CreateEmbroidery(order *models.EmbroideryOrder) error {
	return r.db.Create(order).Error
}

func (r *inventoryRepositoryImpl) ListMachines() ([]models.MachineItem, error) {
	var items []models.MachineItem
	err := r.db.Find(&items).Error
	return items, err
}

func (r *inventoryRepositoryImpl) CreateMachine(item *models.MachineItem) error {
	return r.db.Create(item).Error
}

func (r *inventoryRepositoryImpl) ListArtServices() ([]models.ArtServiceJob, error) {
	var jobs []models.ArtServiceJob
	err := r.db.Find(&jobs).Error
	return jobs, err
}

func (r *inventoryRepositoryImpl) CreateArtService(job *models.ArtServiceJob) error {
	return r.db.Create(job).Error
}

func (r *inventoryRepositoryImpl) ListStockLevels() ([]StockLevel, error) {
	var levels []StockLevel

	var stationery []models.StationeryItem
	if err := r.db.Find(&stationery).Error; err != nil {
		return nil, err
	}
	for _, it := range stationery {
		levels = append(levels, StockLevel{models.CollectionStationery, it.ID, it.Item, it.Quantity})
	}

	var gifts []models.GiftStoreItem
	if err := r.db.Find(&gifts).Error; err != nil {
		return nil, err
	}
	for _, it := range gifts {
		levels = append(levels, StockLevel{models.CollectionGiftStore, it.ID, it.Item, it.Quantity})
	}

	var embroidery []models.EmbroideryOrder
	if err := r.db.Find(&embroidery).Error; err != nil {
		return nil, err
	}
	for _, it := range embroidery {
		levels = append(levels, StockLevel{models.CollectionEmbroidery, it.ID, it.Description, it.Quantity})
	}

	var machines []models.MachineItem
	if err := r.db.Find(&machines).Error; err != nil {
		return nil, err
	}
	for _, it := range machines {
		levels = append(levels, StockLevel{models.CollectionMachines, it.ID, it.Machine, it.Quantity})
	}

	var art []models.ArtServiceJob
	if err := r.db.Find(&art).Error; err != nil {
		return nil, err
	}
	for _, it := range art {
		levels = append(levels, StockLevel{models.CollectionArtServices, it.ID, it.Service, it.Quantity})
	}

	return levels, nil
}

func (r *inventoryRepositoryImpl) AdjustQuantity(c models.Collection, id uint, delta int) error {
	switch c {
	case models.CollectionStationery:
		return r.adjust(&models.StationeryItem{}, id, delta)
	case models.CollectionGiftStore:
		return r.adjust(&models.GiftStoreItem{}, id, delta)
	case models.CollectionEmbroidery:
		return r.adjust(&models.EmbroideryOrder{}, id, delta)
	case models.CollectionMachines:
		return r.adjust(&models.MachineItem{}, id, delta)
	case models.CollectionArtServices:
		return r.adjust(&models.ArtServiceJob{}, id, delta)
	default:
		return fmt.Errorf("collection %q does not hold stock", c)
	}
}

func (r *inventoryRepositoryImpl) adjust(model any, id uint, delta int) error {
	return r.db.Model(model).
		Where("id = ?", id).
		UpdateColumn("quantity", gorm.Expr("quantity + ?", delta)).
		Error
}
