package store

import "github.com/hraghav/tally-mirror/models"

// KindSpec binds an entity kind to the table holding its records. It is the
// only per-kind knowledge the generic [MasterStore] needs.
type KindSpec struct {
	Kind  models.EntityKind
	Table string
}

var kindSpecs = map[models.EntityKind]KindSpec{
	models.KindGroup:         {Kind: models.KindGroup, Table: "master_groups"},
	models.KindLedger:        {Kind: models.KindLedger, Table: "master_ledgers"},
	models.KindStockItem:     {Kind: models.KindStockItem, Table: "master_stock_items"},
	models.KindStockGroup:    {Kind: models.KindStockGroup, Table: "master_stock_groups"},
	models.KindStockCategory: {Kind: models.KindStockCategory, Table: "master_stock_categories"},
	models.KindCostCategory:  {Kind: models.KindCostCategory, Table: "master_cost_categories"},
	models.KindCostCenter:    {Kind: models.KindCostCenter, Table: "master_cost_centers"},
	models.KindCurrency:      {Kind: models.KindCurrency, Table: "master_currencies"},
	models.KindGodown:        {Kind: models.KindGodown, Table: "master_godowns"},
	models.KindTaxUnit:       {Kind: models.KindTaxUnit, Table: "master_tax_units"},
	models.KindUnit:          {Kind: models.KindUnit, Table: "master_units"},
	models.KindVoucherType:   {Kind: models.KindVoucherType, Table: "master_voucher_types"},
}

// SpecFor returns the [KindSpec] for the given kind. The zero KindSpec is
// returned for unknown kinds; callers validate kinds before reaching here.
func SpecFor(kind models.EntityKind) KindSpec {
	return kindSpecs[kind]
}
