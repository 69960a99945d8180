package pointalgebra

import "testing"

func TestInverse(t *testing.T) {
	cases := map[Relation]Relation{
		Less:         Greater,
		Greater:      Less,
		Equal:        Equal,
		LessEqual:    GreaterEqual,
		GreaterEqual: LessEqual,
		NotEqual:     NotEqual,
		Universal:    Universal,
		Empty:        Empty,
	}
	for r, want := range cases {
		if got := r.Inverse(); got != want {
			t.Errorf("%s.Inverse() = %s, want %s", r, got, want)
		}
	}
}

func TestComposeRoundTrip(t *testing.T) {
	// a < b, b < a  ->  Empty on the (a,b) bidirectional label (property 4 in §8).
	if got := Less.Intersect(Greater.Inverse()); got != Empty {
		t.Fatalf("Less ∩ Inverse(Greater) = %s, want Empty", got)
	}
}

func TestComposeUncertainty(t *testing.T) {
	// a<b, c<b (b>c) gives no information about a,c.
	if got := Less.Compose(Greater); got != Universal {
		t.Fatalf("Less.Compose(Greater) = %s, want Universal", got)
	}
}

func TestComposeTransitive(t *testing.T) {
	if got := Less.Compose(Less); got != Less {
		t.Fatalf("Less.Compose(Less) = %s, want Less", got)
	}
	if got := LessEqual.Compose(LessEqual); got != LessEqual {
		t.Fatalf("LessEqual.Compose(LessEqual) = %s, want LessEqual", got)
	}
}
