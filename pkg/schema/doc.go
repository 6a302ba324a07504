// Package schema defines the declarative form tree: a Schema holds ordered
// tabs, tabs hold sections, sections hold typed fields carrying validation
// and conditional-display rules. Values of these types are treated as
// immutable snapshots; structural edits go through the builder package and
// always yield a fresh Schema, so concurrent readers never observe a
// half-updated tree. The package also provides JSON/YAML codecs and a
// structural lint (Validate) that flags invariant violations such as options
// on non-choice fields or duplicate field names.
package schema
