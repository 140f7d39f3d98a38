// Package builder implements the scoped constraint accumulator described by
// spec §4.1: a small layer over frontend.API that records labelled
// constraint expressions, supports a non-nesting conditional scope, and
// finalizes everything against a row selector in one call. Gadgets in
// pkg/ecgadget, pkg/elgamal, and pkg/shuffle build their per-row constraints
// through a Builder, so those constraints carry a name for debugging and the
// conditional-multiplication pattern is applied uniformly; a few one-off
// checks (such as pkg/shuffle's one-hot indicator count) still call
// api.AssertIsEqual directly.
package builder

import (
	"fmt"

	"github.com/consensys/gnark/frontend"
)

// Entry is one accumulated, named constraint expression; Gate asserts
// Expr == 0 once the row selector has been folded in.
type Entry struct {
	Name string
	Expr frontend.Variable
}

// Builder accumulates labelled constraint expressions for a single logical
// row. It is not safe for concurrent use; callers construct one Builder per
// row (or per sub-circuit invocation) and discard it after calling Gate.
type Builder struct {
	api api

	entries []Entry

	// condFactor is the current conditional-scope multiplier, or nil when no
	// Condition scope is active. Nesting is forbidden: Condition panics if
	// condFactor is already set.
	condFactor frontend.Variable

	// maxDegree bounds the multiplicative degree of any recorded expression;
	// zero means unbounded. Builder does not itself track symbolic degree
	// (gnark's frontend does not expose it uniformly across backends), so
	// this is honored as a soft contract: callers that track degree
	// explicitly (e.g. when composing many Condition scopes) should check it
	// via CheckDegree.
	maxDegree int
}

// api is the subset of frontend.API the builder needs; kept narrow so tests
// can stub it if ever required.
type api interface {
	Mul(i1, i2 frontend.Variable, in ...frontend.Variable) frontend.Variable
	Sub(i1, i2 frontend.Variable, in ...frontend.Variable) frontend.Variable
	Add(i1, i2 frontend.Variable, in ...frontend.Variable) frontend.Variable
	AssertIsEqual(i1, i2 frontend.Variable)
}

// New returns a Builder over the given frontend.API, with an optional
// maximum constraint degree (0 = unbounded).
func New(a frontend.API, maxDegree int) *Builder {
	return &Builder{api: a, maxDegree: maxDegree}
}

func (b *Builder) record(name string, expr frontend.Variable) {
	if b.condFactor != nil {
		expr = b.api.Mul(b.condFactor, expr)
	}
	b.entries = append(b.entries, Entry{Name: name, Expr: expr})
}

// RequireZero records expr = 0.
func (b *Builder) RequireZero(name string, expr frontend.Variable) {
	b.record(name, expr)
}

// RequireEqual records lhs - rhs = 0.
func (b *Builder) RequireEqual(name string, lhs, rhs frontend.Variable) {
	b.record(name, b.api.Sub(lhs, rhs))
}

// RequireBoolean records v*(1-v) = 0.
func (b *Builder) RequireBoolean(name string, v frontend.Variable) {
	one := frontend.Variable(1)
	b.record(name, b.api.Mul(v, b.api.Sub(one, v)))
}

// RequireInSet records prod(v - s_i) = 0 for the given candidate set.
func (b *Builder) RequireInSet(name string, v frontend.Variable, set []frontend.Variable) {
	if len(set) == 0 {
		return
	}
	prod := b.api.Sub(v, set[0])
	for _, s := range set[1:] {
		prod = b.api.Mul(prod, b.api.Sub(v, s))
	}
	b.record(name, prod)
}

// Condition runs body with every expression it records multiplied by cond.
// Nesting is forbidden: calling Condition again from within body panics, the
// same way the spec requires implementers to detect and fail on nested
// scopes rather than silently multiply factors together.
func (b *Builder) Condition(cond frontend.Variable, body func(*Builder)) {
	if b.condFactor != nil {
		panic("builder: nested Condition scopes are forbidden")
	}
	b.condFactor = cond
	defer func() { b.condFactor = nil }()
	body(b)
}

// Gate finalizes every accumulated expression by multiplying in the row
// selector, asserting each as zero, and returns the finalized entries (the
// equivalent of handing a [](name, selector*expr) list to a backend). After
// Gate returns, the Builder's entry list is reset so it can be reused for
// the next logical row.
func (b *Builder) Gate(selector frontend.Variable) []Entry {
	out := make([]Entry, 0, len(b.entries))
	for _, e := range b.entries {
		gated := b.api.Mul(selector, e.Expr)
		b.api.AssertIsEqual(gated, frontend.Variable(0))
		out = append(out, Entry{Name: e.Name, Expr: gated})
	}
	b.entries = b.entries[:0]
	return out
}

// CheckDegree is a best-effort guard a caller can invoke before adding an
// expression it knows to be of the given symbolic degree; it panics if a
// nonzero maxDegree is configured and exceeded. gnark's own constraint
// systems flatten degree internally, so this exists purely to catch
// accidental degree blow-up while composing gadgets (e.g. stacking several
// conditional scopes around an addition gadget), mirroring the spec's
// "optionally enforces a maximum constraint degree" requirement.
func (b *Builder) CheckDegree(observed int) {
	if b.maxDegree > 0 && observed > b.maxDegree {
		panic(fmt.Sprintf("builder: expression degree %d exceeds max %d", observed, b.maxDegree))
	}
}
