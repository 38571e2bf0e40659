package models

import "github.com/shopspring/decimal"

// Ledger mirrors a Tally ledger account, the most attribute-heavy of the
// twelve master kinds: it carries classification, contact, and tax fields
// in addition to the shared core.
type Ledger struct {
	MasterCore
	LedgerAttrs
}

// LedgerAttrs holds the ledger-specific fields overwritten wholesale on
// every successful upsert.
type LedgerAttrs struct {
	// Parent is the name of the owning account group.
	Parent string `json:"parent"`

	// PrimaryGroup is the top-level group the ledger rolls up to.
	PrimaryGroup string `json:"primary_group"`

	// Code and Alias are optional upstream short identifiers.
	Code  string `json:"code"`
	Alias string `json:"alias"`

	// IsRevenue marks ledgers that affect the profit & loss statement.
	IsRevenue bool `json:"is_revenue"`

	// BillwiseOn enables bill-by-bill outstanding tracking upstream.
	BillwiseOn bool `json:"billwise_on"`

	// OpeningBalance is the opening balance in CurrencyName units.
	OpeningBalance decimal.Decimal `json:"opening_balance"`
	CurrencyName   string          `json:"currency_name"`

	// Contact fields.
	MailingName string `json:"mailing_name"`
	Address     string `json:"address"`
	State       string `json:"state"`
	Country     string `json:"country"`
	Pincode     string `json:"pincode"`
	Email       string `json:"email"`
	Mobile      string `json:"mobile"`

	// GST registration (India).
	GSTApplicable       bool   `json:"gst_applicable"`
	GSTRegistrationType string `json:"gst_registration_type"`
	GSTIN               string `json:"gstin"`
	GSTState            string `json:"gst_state"`
}

func (l *Ledger) Core() *MasterCore { return &l.MasterCore }
func (l *Ledger) Kind() EntityKind  { return KindLedger }
func (l *Ledger) Attrs() any        { return &l.LedgerAttrs }
