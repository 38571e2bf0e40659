package models

import "github.com/shopspring/decimal"

// Unit mirrors a Tally unit of measure.
type Unit struct {
	MasterCore
	UnitAttrs
}

type UnitAttrs struct {
	// OriginalName is the formal name reported upstream (Name holds the symbol).
	OriginalName string `json:"original_name"`

	// IsSimpleUnit is false for compound units (e.g. dozen of 12 pieces).
	IsSimpleUnit bool `json:"is_simple_unit"`

	// BaseUnits and Conversion describe compound units: one of this unit
	// equals Conversion of BaseUnits. Both are zero-valued for simple units.
	BaseUnits  string          `json:"base_units"`
	Conversion decimal.Decimal `json:"conversion"`

	// DecimalPlaces controls quantity rounding upstream.
	DecimalPlaces int `json:"decimal_places"`
}

func (u *Unit) Core() *MasterCore { return &u.MasterCore }
func (u *Unit) Kind() EntityKind  { return KindUnit }
func (u *Unit) Attrs() any        { return &u.UnitAttrs }
