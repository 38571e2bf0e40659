package models

import "github.com/shopspring/decimal"

// StockItem mirrors a Tally inventory item.
type StockItem struct {
	MasterCore
	StockItemAttrs
}

// StockItemAttrs holds the stock-item-specific fields overwritten wholesale
// on every successful upsert.
type StockItemAttrs struct {
	// Parent is the owning stock group; Category the owning stock category.
	Parent   string `json:"parent"`
	Category string `json:"category"`

	// BaseUnits and AdditionalUnits reference unit names of measure.
	BaseUnits       string `json:"base_units"`
	AdditionalUnits string `json:"additional_units"`

	// Opening stock position.
	OpeningBalance decimal.Decimal `json:"opening_balance"`
	OpeningRate    decimal.Decimal `json:"opening_rate"`
	OpeningValue   decimal.Decimal `json:"opening_value"`

	// CostingMethod and ValuationMethod are upstream costing settings.
	CostingMethod   string `json:"costing_method"`
	ValuationMethod string `json:"valuation_method"`

	// HSNCode is the GST harmonized classification code.
	HSNCode string `json:"hsn_code"`

	// BatchWiseOn enables batch tracking upstream.
	BatchWiseOn bool `json:"batch_wise_on"`
}

func (s *StockItem) Core() *MasterCore { return &s.MasterCore }
func (s *StockItem) Kind() EntityKind  { return KindStockItem }
func (s *StockItem) Attrs() any        { return &s.StockItemAttrs }

// StockGroup mirrors a Tally stock group (the inventory hierarchy node).
type StockGroup struct {
	MasterCore
	StockGroupAttrs
}

type StockGroupAttrs struct {
	// Parent is the name of the parent stock group.
	Parent string `json:"parent"`

	// QuantitiesAddable reports whether child item quantities can be summed.
	QuantitiesAddable bool `json:"quantities_addable"`
}

func (s *StockGroup) Core() *MasterCore { return &s.MasterCore }
func (s *StockGroup) Kind() EntityKind  { return KindStockGroup }
func (s *StockGroup) Attrs() any        { return &s.StockGroupAttrs }

// StockCategory mirrors a Tally stock category, a parallel classification
// axis to stock groups.
type StockCategory struct {
	MasterCore
	StockCategoryAttrs
}

type StockCategoryAttrs struct {
	// Parent is the name of the parent stock category.
	Parent string `json:"parent"`
}

func (s *StockCategory) Core() *MasterCore { return &s.MasterCore }
func (s *StockCategory) Kind() EntityKind  { return KindStockCategory }
func (s *StockCategory) Attrs() any        { return &s.StockCategoryAttrs }
