package store

import (
	"github.com/hraghav/tally-mirror/internal/logger"
	"github.com/hraghav/tally-mirror/models"
)

// Storages aggregates every repository the service layer depends on: one
// typed master store per entity kind plus the user and sync-cursor
// repositories. All stores share the same database connection.
type Storages struct {
	Users       UserRepository
	SyncCursors SyncCursorRepository

	Groups          *MasterStore[*models.Group]
	Ledgers         *MasterStore[*models.Ledger]
	StockItems      *MasterStore[*models.StockItem]
	StockGroups     *MasterStore[*models.StockGroup]
	StockCategories *MasterStore[*models.StockCategory]
	CostCategories  *MasterStore[*models.CostCategory]
	CostCenters     *MasterStore[*models.CostCenter]
	Currencies      *MasterStore[*models.Currency]
	Godowns         *MasterStore[*models.Godown]
	TaxUnits        *MasterStore[*models.TaxUnit]
	Units           *MasterStore[*models.Unit]
	VoucherTypes    *MasterStore[*models.VoucherType]
}

// NewStorages wires all repositories over the shared connection.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	log.Debug().Msg("creating storages")

	return &Storages{
		Users:       NewUserRepository(db, log),
		SyncCursors: NewSyncCursorRepository(db, log),

		Groups:          NewMasterStore(db, SpecFor(models.KindGroup), func() *models.Group { return &models.Group{} }, log),
		Ledgers:         NewMasterStore(db, SpecFor(models.KindLedger), func() *models.Ledger { return &models.Ledger{} }, log),
		StockItems:      NewMasterStore(db, SpecFor(models.KindStockItem), func() *models.StockItem { return &models.StockItem{} }, log),
		StockGroups:     NewMasterStore(db, SpecFor(models.KindStockGroup), func() *models.StockGroup { return &models.StockGroup{} }, log),
		StockCategories: NewMasterStore(db, SpecFor(models.KindStockCategory), func() *models.StockCategory { return &models.StockCategory{} }, log),
		CostCategories:  NewMasterStore(db, SpecFor(models.KindCostCategory), func() *models.CostCategory { return &models.CostCategory{} }, log),
		CostCenters:     NewMasterStore(db, SpecFor(models.KindCostCenter), func() *models.CostCenter { return &models.CostCenter{} }, log),
		Currencies:      NewMasterStore(db, SpecFor(models.KindCurrency), func() *models.Currency { return &models.Currency{} }, log),
		Godowns:         NewMasterStore(db, SpecFor(models.KindGodown), func() *models.Godown { return &models.Godown{} }, log),
		TaxUnits:        NewMasterStore(db, SpecFor(models.KindTaxUnit), func() *models.TaxUnit { return &models.TaxUnit{} }, log),
		Units:           NewMasterStore(db, SpecFor(models.KindUnit), func() *models.Unit { return &models.Unit{} }, log),
		VoucherTypes:    NewMasterStore(db, SpecFor(models.KindVoucherType), func() *models.VoucherType { return &models.VoucherType{} }, log),
	}
}

// Registry exposes every master store as a [RevisionSource] keyed by kind.
// The sync-status service iterates it to derive the true maximum revision
// across all kinds for one tenant.
func (s *Storages) Registry() map[models.EntityKind]RevisionSource {
	return map[models.EntityKind]RevisionSource{
		models.KindGroup:         s.Groups,
		models.KindLedger:        s.Ledgers,
		models.KindStockItem:     s.StockItems,
		models.KindStockGroup:    s.StockGroups,
		models.KindStockCategory: s.StockCategories,
		models.KindCostCategory:  s.CostCategories,
		models.KindCostCenter:    s.CostCenters,
		models.KindCurrency:      s.Currencies,
		models.KindGodown:        s.Godowns,
		models.KindTaxUnit:       s.TaxUnits,
		models.KindUnit:          s.Units,
		models.KindVoucherType:   s.VoucherTypes,
	}
}
