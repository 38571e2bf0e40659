package models

// TaxUnit mirrors a Tally tax unit (a GST registration of the company).
type TaxUnit struct {
	MasterCore
	TaxUnitAttrs
}

type TaxUnitAttrs struct {
	// Address and State describe the registered place of business.
	Address string `json:"address"`
	State   string `json:"state"`

	// GSTIN is the registration number; RegistrationType its category.
	GSTIN            string `json:"gstin"`
	RegistrationType string `json:"registration_type"`
}

func (t *TaxUnit) Core() *MasterCore { return &t.MasterCore }
func (t *TaxUnit) Kind() EntityKind  { return KindTaxUnit }
func (t *TaxUnit) Attrs() any        { return &t.TaxUnitAttrs }
