package types

// LookupOrderInput carries the raw identifier scanned or typed by warehouse
// staff. It is either a numeric/#-prefixed order number or a tracking number.
type LookupOrderInput struct {
	Identifier string
}
