// Package schema validates structured documents against embedded JSON schemas.
package schema
