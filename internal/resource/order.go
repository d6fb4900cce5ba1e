package resource

import "strings"

// Order is a sort direction.
type Order int

const (
	Asc Order = iota
	Desc
)

// ParseOrder returns Desc for "desc" in any case and Asc for everything else.
func ParseOrder(s string) Order {
	if strings.EqualFold(s, "desc") {
		return Desc
	}
	return Asc
}

func (o Order) String() string {
	if o == Desc {
		return "desc"
	}
	return "asc"
}
