// Package jsonschema generates JSON Schema documents from Go types via
// reflection. It backs the automatic derivation of tool argument schemas.
package jsonschema
