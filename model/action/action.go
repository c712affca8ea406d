// Package action implements the operations behind the web and cli surfaces:
// build CRUD, part placement, pattern expansion and validation runs.
package action

import (
	"github.com/Maxwell1111/Lego-Interligence/catalog"
	conf "github.com/Maxwell1111/Lego-Interligence/config"
	"github.com/Maxwell1111/Lego-Interligence/validate"
)

var log = conf.NamedLogger("action")

// Resolver carries the collaborators every action needs. It is constructed
// once at startup; the database session is passed per call.
type Resolver struct {
	Config    *conf.Config
	Catalog   *catalog.Catalog
	Validator *validate.PhysicalValidator
}

// NewResolver ...
func NewResolver(config *conf.Config) *Resolver {
	return &Resolver{
		Config:    config,
		Catalog:   catalog.NewCatalog(),
		Validator: validate.NewPhysicalValidator(),
	}
}
