package specification

import "gorm.io/gorm"

// Specification is a composable query fragment. Repositories apply the
// given specs in order to build the final GORM query.
type Specification interface {
	Apply(db *gorm.DB) *gorm.DB
}
