// Package openapi exposes the public contracts for loading OpenAPI documents
// and importing their operations as editable form schemas. Implementations
// live under internal/openapi to keep kin-openapi out of the public API.
package openapi
