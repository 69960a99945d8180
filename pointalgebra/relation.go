package pointalgebra

// Relation is a bitmask over the three base point-algebra primitives.
// Every qualitative relation named in spec §3 is a subset of {Less, Equal,
// Greater}: Universal is the full set, Empty is the zero set, and composition
// / intersection reduce to ordinary bitwise operations over primitives.
type Relation uint8

const (
	// Less is the base primitive "a < b".
	Less Relation = 1 << iota
	// Equal is the base primitive "a = b".
	Equal
	// Greater is the base primitive "a > b".
	Greater

	// Empty allows no primitive: the relation is inconsistent.
	Empty Relation = 0
	// LessEqual is "a <= b" = {Less, Equal}.
	LessEqual = Less | Equal
	// GreaterEqual is "a >= b" = {Greater, Equal}.
	GreaterEqual = Greater | Equal
	// NotEqual is "a != b" = {Less, Greater}.
	NotEqual = Less | Greater
	// Universal allows any primitive: no information.
	Universal = Less | Equal | Greater
)

// Inverse returns the relation obtained by swapping operand order, e.g.
// Inverse(Less) == Greater, Inverse(LessEqual) == GreaterEqual.
func (r Relation) Inverse() Relation {
	var out Relation
	if r&Less != 0 {
		out |= Greater
	}
	if r&Equal != 0 {
		out |= Equal
	}
	if r&Greater != 0 {
		out |= Less
	}

	return out
}

// Intersect returns the set-intersection of two relations (bitwise AND).
// The result is Empty iff the two relations share no allowed primitive.
func (r Relation) Intersect(other Relation) Relation {
	return r & other
}

// composePrimitive composes two single-primitive relations under a total
// order: if a P b and b Q c, what can be said about a,c?
//
//	<  ∘ <  = <          <  ∘ =  = <          <  ∘ >  = Universal
//	=  ∘ <  = <          =  ∘ =  = =          =  ∘ >  = >
//	>  ∘ <  = Universal  >  ∘ =  = >          >  ∘ >  = >
//
// a<b, b>c gives no information about a vs c (Universal); every other pairing
// of base primitives composes to a single primitive.
func composePrimitive(p, q Relation) Relation {
	if p == Equal {
		return q
	}
	if q == Equal {
		return p
	}
	if p == q {
		return p
	}

	// p, q are distinct and neither is Equal: one is Less, the other Greater.
	return Universal
}

// Compose returns r1∘r2: for all primitives p∈r1, q∈r2, the union of
// composePrimitive(p,q). This is the composition table of §4.1, expressed
// generatively rather than as a hand-maintained 8x8 lookup — the two forms
// are equivalent because Relation is exactly the powerset of the three base
// primitives.
func (r1 Relation) Compose(r2 Relation) Relation {
	var out Relation
	for _, p := range []Relation{Less, Equal, Greater} {
		if r1&p == 0 {
			continue
		}
		for _, q := range []Relation{Less, Equal, Greater} {
			if r2&q == 0 {
				continue
			}
			out |= composePrimitive(p, q)
		}
	}

	return out
}

// String renders the canonical symbol set contained in r, for diagnostics.
func (r Relation) String() string {
	switch r {
	case Empty:
		return "Empty"
	case Universal:
		return "Universal"
	case Less:
		return "<"
	case Equal:
		return "="
	case Greater:
		return ">"
	case LessEqual:
		return "<="
	case GreaterEqual:
		return ">="
	case NotEqual:
		return "!="
	default:
		return "?"
	}
}
