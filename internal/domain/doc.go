// Package domain contains the core domain model for unitcalc.
//
// The domain is transport- and persistence-agnostic: it does not depend on YAML parsing,
// net/http, or terminal rendering. Infra/adapters map into/from these types.
package domain
