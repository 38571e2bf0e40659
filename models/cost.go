package models

// CostCategory mirrors a Tally cost category, the top-level axis for
// cost-center allocation.
type CostCategory struct {
	MasterCore
	CostCategoryAttrs
}

type CostCategoryAttrs struct {
	// AllocateRevenue / AllocateNonRevenue control which transaction types
	// may be allocated against cost centers of this category.
	AllocateRevenue    bool `json:"allocate_revenue"`
	AllocateNonRevenue bool `json:"allocate_non_revenue"`
}

func (c *CostCategory) Core() *MasterCore { return &c.MasterCore }
func (c *CostCategory) Kind() EntityKind  { return KindCostCategory }
func (c *CostCategory) Attrs() any        { return &c.CostCategoryAttrs }

// CostCenter mirrors a Tally cost center.
type CostCenter struct {
	MasterCore
	CostCenterAttrs
}

type CostCenterAttrs struct {
	// Parent is the name of the parent cost center.
	Parent string `json:"parent"`

	// Category is the owning cost category.
	Category string `json:"category"`
}

func (c *CostCenter) Core() *MasterCore { return &c.MasterCore }
func (c *CostCenter) Kind() EntityKind  { return KindCostCenter }
func (c *CostCenter) Attrs() any        { return &c.CostCenterAttrs }
