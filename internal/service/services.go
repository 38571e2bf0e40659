package service

import (
	"github.com/hraghav/tally-mirror/internal/config"
	"github.com/hraghav/tally-mirror/internal/logger"
	"github.com/hraghav/tally-mirror/internal/store"
	"github.com/hraghav/tally-mirror/models"
)

// Reconcilers holds one typed [Reconciler] per entity kind. The HTTP layer
// binds each sync route to its reconciler.
type Reconcilers struct {
	Groups          *Reconciler[*models.Group]
	Ledgers         *Reconciler[*models.Ledger]
	StockItems      *Reconciler[*models.StockItem]
	StockGroups     *Reconciler[*models.StockGroup]
	StockCategories *Reconciler[*models.StockCategory]
	CostCategories  *Reconciler[*models.CostCategory]
	CostCenters     *Reconciler[*models.CostCenter]
	Currencies      *Reconciler[*models.Currency]
	Godowns         *Reconciler[*models.Godown]
	TaxUnits        *Reconciler[*models.TaxUnit]
	Units           *Reconciler[*models.Unit]
	VoucherTypes    *Reconciler[*models.VoucherType]
}

// Services aggregates every service the transport layer depends on.
type Services struct {
	AuthService    AuthService
	AppInfoService AppInfoService
	SyncStatus     SyncStatusService
	Reconcilers    *Reconcilers
}

// NewServices wires all services over the given storages and configuration.
func NewServices(storages *store.Storages, cfg config.App, log *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg, log)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:    NewAuthService(storages.Users, cfg, log),
		AppInfoService: appInfo,
		SyncStatus:     NewSyncStatusService(storages.SyncCursors, storages.Registry(), log),
		Reconcilers: &Reconcilers{
			Groups:          NewReconciler(storages.Groups, models.KindGroup, log),
			Ledgers:         NewReconciler(storages.Ledgers, models.KindLedger, log),
			StockItems:      NewReconciler(storages.StockItems, models.KindStockItem, log),
			StockGroups:     NewReconciler(storages.StockGroups, models.KindStockGroup, log),
			StockCategories: NewReconciler(storages.StockCategories, models.KindStockCategory, log),
			CostCategories:  NewReconciler(storages.CostCategories, models.KindCostCategory, log),
			CostCenters:     NewReconciler(storages.CostCenters, models.KindCostCenter, log),
			Currencies:      NewReconciler(storages.Currencies, models.KindCurrency, log),
			Godowns:         NewReconciler(storages.Godowns, models.KindGodown, log),
			TaxUnits:        NewReconciler(storages.TaxUnits, models.KindTaxUnit, log),
			Units:           NewReconciler(storages.Units, models.KindUnit, log),
			VoucherTypes:    NewReconciler(storages.VoucherTypes, models.KindVoucherType, log),
		},
	}, nil
}
