package models

// Godown mirrors a Tally godown (warehouse/storage location).
type Godown struct {
	MasterCore
	GodownAttrs
}

type GodownAttrs struct {
	// Parent is the name of the parent godown.
	Parent string `json:"parent"`

	// Address is the free-form storage location address.
	Address string `json:"address"`
}

func (g *Godown) Core() *MasterCore { return &g.MasterCore }
func (g *Godown) Kind() EntityKind  { return KindGodown }
func (g *Godown) Attrs() any        { return &g.GodownAttrs }
