package models

// EntityKind identifies one of the master-data categories mirrored from the
// external accounting system. Every kind is reconciled with the same upsert
// algorithm but stored in its own table.
type EntityKind string

const (
	KindGroup         EntityKind = "group"
	KindLedger        EntityKind = "ledger"
	KindStockItem     EntityKind = "stockitem"
	KindStockGroup    EntityKind = "stockgroup"
	KindStockCategory EntityKind = "stockcategory"
	KindCostCategory  EntityKind = "costcategory"
	KindCostCenter    EntityKind = "costcenter"
	KindCurrency      EntityKind = "currency"
	KindGodown        EntityKind = "godown"
	KindTaxUnit       EntityKind = "taxunit"
	KindUnit          EntityKind = "unit"
	KindVoucherType   EntityKind = "vouchertype"
)

// AllEntityKinds returns every supported kind in a stable order.
// The order matters for deterministic iteration when computing the
// store-derived maximum revision across all kinds.
func AllEntityKinds() []EntityKind {
	return []EntityKind{
		KindGroup,
		KindLedger,
		KindStockItem,
		KindStockGroup,
		KindStockCategory,
		KindCostCategory,
		KindCostCenter,
		KindCurrency,
		KindGodown,
		KindTaxUnit,
		KindUnit,
		KindVoucherType,
	}
}

// Valid reports whether k is one of the supported entity kinds.
func (k EntityKind) Valid() bool {
	switch k {
	case KindGroup, KindLedger, KindStockItem, KindStockGroup, KindStockCategory,
		KindCostCategory, KindCostCenter, KindCurrency, KindGodown, KindTaxUnit,
		KindUnit, KindVoucherType:
		return true
	}
	return false
}

// String implements the fmt.Stringer interface.
func (k EntityKind) String() string {
	return string(k)
}
