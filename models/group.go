package models

// Group mirrors a Tally account group (the chart-of-accounts hierarchy node).
type Group struct {
	MasterCore
	GroupAttrs
}

// GroupAttrs holds the group-specific fields overwritten wholesale on every
// successful upsert.
type GroupAttrs struct {
	// Parent is the name of the parent group in the Tally hierarchy.
	Parent string `json:"parent"`

	// PrimaryGroup is the top-level group this group ultimately rolls up to.
	PrimaryGroup string `json:"primary_group"`

	// Nature classifies the group (Assets, Liabilities, Income, Expenses).
	Nature string `json:"nature"`

	// IsRevenue marks groups that affect the profit & loss statement.
	IsRevenue bool `json:"is_revenue"`

	// IsReserved marks Tally's built-in groups that cannot be renamed upstream.
	IsReserved bool `json:"is_reserved"`

	// LevelNumber is the depth of the group in the hierarchy (0 for roots).
	LevelNumber int `json:"level_number"`
}

func (g *Group) Core() *MasterCore { return &g.MasterCore }
func (g *Group) Kind() EntityKind  { return KindGroup }
func (g *Group) Attrs() any        { return &g.GroupAttrs }
