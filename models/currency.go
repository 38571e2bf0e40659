package models

// Currency mirrors a Tally currency definition.
type Currency struct {
	MasterCore
	CurrencyAttrs
}

// CurrencyAttrs holds the currency formatting fields overwritten wholesale
// on every successful upsert.
type CurrencyAttrs struct {
	// Symbol is the display symbol (e.g. "₹"); FormalName the ISO-style name.
	Symbol     string `json:"symbol"`
	FormalName string `json:"formal_name"`

	// Display formatting settings as configured upstream.
	DecimalPlaces               int    `json:"decimal_places"`
	DecimalSeparator            string `json:"decimal_separator"`
	ShowAmountInWords           bool   `json:"show_amount_in_words"`
	SuffixSymbol                bool   `json:"suffix_symbol"`
	SpaceBetweenAmountAndSymbol bool   `json:"space_between_amount_and_symbol"`
}

func (c *Currency) Core() *MasterCore { return &c.MasterCore }
func (c *Currency) Kind() EntityKind  { return KindCurrency }
func (c *Currency) Attrs() any        { return &c.CurrencyAttrs }
