package ast

import "github.com/toakleaf/sass.go/internal/source"

// Stylesheet is the root of one parsed source: its top-level statements
// plus the source it was parsed from.
type Stylesheet struct {
	Source *source.Source
	Body   *Block
}
