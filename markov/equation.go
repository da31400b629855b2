// SPDX-License-Identifier: MIT

package markov

import (
	"fmt"
	"math/big"
	"strings"
)

// NewEquation builds the balance equation of state defining from one matrix
// row: one Term per column j holding row[j]. A nil entry becomes 0.
//
// Implementation:
//   - Stage 1: allocate a term slice with capacity len(row).
//   - Stage 2: copy every entry into a fresh *big.Rat (no aliasing of row).
//
// Behavior highlights:
//   - No validation of sums or ranges; Chain construction does that.
//
// Complexity:
//   - Time O(N), Space O(N).
func NewEquation(defining int, row []*big.Rat) *Equation {
	terms := make([]Term, 0, len(row))
	for j, p := range row {
		coef := new(big.Rat)
		if p != nil {
			coef.Set(p)
		}
		terms = append(terms, Term{Index: j, Coef: coef})
	}

	return &Equation{defining: defining, terms: terms}
}

// Defining returns the state whose probability this equation defines.
func (e *Equation) Defining() int { return e.defining }

// Len returns the current number of terms.
func (e *Equation) Len() int { return len(e.terms) }

// Terms returns a deep copy of the right-hand side, in order.
func (e *Equation) Terms() []Term {
	out := make([]Term, len(e.terms))
	for i, t := range e.terms {
		out[i] = t.clone()
	}

	return out
}

// References reports whether any term has the given index.
// Complexity: O(len(terms)).
func (e *Equation) References(index int) bool {
	for _, t := range e.terms {
		if t.Index == index {
			return true
		}
	}

	return false
}

// Coefficient returns the sum of the coefficients on index (0 when absent).
// The returned value is a fresh *big.Rat.
func (e *Equation) Coefficient(index int) *big.Rat {
	sum := new(big.Rat)
	for _, t := range e.terms {
		if t.Index == index {
			sum.Add(sum, t.Coef)
		}
	}

	return sum
}

// Clone returns a deep copy sharing no coefficient with e.
func (e *Equation) Clone() *Equation {
	return &Equation{defining: e.defining, terms: e.Terms()}
}

// Simplify isolates π[defining]: it removes the self-referencing terms,
// sets complement = 1 - (their coefficient) and divides every remaining
// coefficient by complement.
//
// Implementation:
//   - Stage 1: collect survivors and accumulate the self coefficient.
//   - Stage 2: no self term ⇒ complement is 1 and nothing changes.
//   - Stage 3: complement == 0 ⇒ *DegenerateEquationError, e untouched.
//   - Stage 4: divide survivors by complement and replace the container.
//
// Behavior highlights:
//   - Idempotent: once no term references the defining index, repeated calls
//     leave every coefficient unchanged.
//   - Several self terms (possible before Consolidate) are treated as their sum.
//
// Errors:
//   - *DegenerateEquationError (matches ErrDegenerateEquation).
//
// Complexity:
//   - Time O(len(terms)), Space O(len(terms)).
func (e *Equation) Simplify() error {
	var (
		self      = new(big.Rat)
		hasSelf   bool
		survivors = make([]Term, 0, len(e.terms))
	)
	for _, t := range e.terms {
		if t.Index == e.defining {
			self.Add(self, t.Coef)
			hasSelf = true

			continue
		}
		survivors = append(survivors, t)
	}
	if !hasSelf {
		return nil
	}

	complement := new(big.Rat).Sub(big.NewRat(1, 1), self)
	if complement.Sign() == 0 {
		return &DegenerateEquationError{State: e.defining}
	}
	for _, t := range survivors {
		t.Coef.Quo(t.Coef, complement) // coefficients are owned by e
	}
	e.terms = survivors

	return nil
}

// Substitute inlines src into e: every term of e on src's defining index k is
// removed and replaced by one new term per term of src, with coefficient
// src.coef × removed.coef.
//
// Implementation:
//   - Stage 1: split e's terms into survivors and the k-terms being replaced.
//   - Stage 2: append the expanded products as new Terms with new coefficients.
//   - Stage 3: replace the container.
//
// Behavior highlights:
//   - Every k-term is expanded independently; duplicates are expected and the
//     caller must Consolidate next.
//   - src is never modified and shares no coefficient with e afterwards.
//   - Substituting an equation into itself (or a nil src) is a no-op.
//
// Complexity:
//   - Time O(len(e) + r·len(src)) for r replaced terms.
func (e *Equation) Substitute(src *Equation) {
	if src == nil || src == e {
		return
	}
	k := src.defining

	survivors := make([]Term, 0, len(e.terms)+len(src.terms))
	var replaced []Term
	for _, t := range e.terms {
		if t.Index == k {
			replaced = append(replaced, t)

			continue
		}
		survivors = append(survivors, t)
	}
	if len(replaced) == 0 {
		return
	}

	for _, r := range replaced {
		for _, s := range src.terms {
			survivors = append(survivors, Term{
				Index: s.Index,
				Coef:  new(big.Rat).Mul(s.Coef, r.Coef),
			})
		}
	}
	e.terms = survivors
}

// Consolidate merges all terms sharing an index into a single term whose
// coefficient is their sum.
//
// Implementation:
//   - Stage 1: walk terms once, mapping index → slot in the output.
//   - Stage 2: first occurrence claims a slot; later ones add into it.
//
// Behavior highlights:
//   - Output order is the order of first appearance (deterministic).
//   - Each input term contributes exactly once; nothing is double-counted.
//   - Zero coefficients are kept; a zero term still marks a reference.
//
// Complexity:
//   - Time O(len(terms)), Space O(distinct indices).
func (e *Equation) Consolidate() {
	slot := make(map[int]int, len(e.terms))
	merged := make([]Term, 0, len(e.terms))
	for _, t := range e.terms {
		if at, ok := slot[t.Index]; ok {
			merged[at].Coef.Add(merged[at].Coef, t.Coef)

			continue
		}
		slot[t.Index] = len(merged)
		merged = append(merged, t)
	}
	e.terms = merged
}

// String renders the equation on one line for debugging, e.g.
// "π_1 = 5/7·π_0 + 2/7·π_2".
func (e *Equation) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "π_%d =", e.defining)
	if len(e.terms) == 0 {
		sb.WriteString(" 0")

		return sb.String()
	}
	for i, t := range e.terms {
		if i > 0 {
			sb.WriteString(" +")
		}
		fmt.Fprintf(&sb, " %s·π_%d", t.Coef.RatString(), t.Index)
	}

	return sb.String()
}
