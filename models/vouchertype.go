package models

// VoucherType mirrors a Tally voucher type definition.
type VoucherType struct {
	MasterCore
	VoucherTypeAttrs
}

type VoucherTypeAttrs struct {
	// Parent is the predefined voucher type this one derives from.
	Parent string `json:"parent"`

	// NumberingMethod is the upstream voucher numbering mode.
	NumberingMethod string `json:"numbering_method"`

	// IsDeemedPositive fixes the debit/credit orientation of the type.
	IsDeemedPositive bool `json:"is_deemed_positive"`

	// AffectsStock marks types whose vouchers move inventory.
	AffectsStock bool `json:"affects_stock"`

	// CommonNarration enables a single narration per voucher upstream.
	CommonNarration bool `json:"common_narration"`
}

func (v *VoucherType) Core() *MasterCore { return &v.MasterCore }
func (v *VoucherType) Kind() EntityKind  { return KindVoucherType }
func (v *VoucherType) Attrs() any        { return &v.VoucherTypeAttrs }
