package internal

import "golang.org/x/exp/maps"

// cellImpl is the tagged-sum behavior of a Cell's current contents:
// Empty, Text, or Formula. Each concrete type implements the full
// interface so dispatch never falls through to a default case.
type cellImpl interface {
	value() CellValue
	text() string
	referencedCells() []Position
	cacheValid() bool
	invalidateCache()
}

type emptyImpl struct{}

func (emptyImpl) value() CellValue           { return EmptyValue{} }
func (emptyImpl) text() string               { return "" }
func (emptyImpl) referencedCells() []Position { return nil }
func (emptyImpl) cacheValid() bool           { return true }
func (emptyImpl) invalidateCache()           {}

// textImpl holds raw, non-empty text. A leading EscapeSign is stripped
// from the value but kept in the raw text.
type textImpl struct {
	raw string
}

func (t textImpl) value() CellValue {
	if len(t.raw) > 0 && t.raw[0] == EscapeSign {
		return TextValue(t.raw[1:])
	}
	return TextValue(t.raw)
}
func (t textImpl) text() string               { return t.raw }
func (t textImpl) referencedCells() []Position { return nil }
func (t textImpl) cacheValid() bool           { return true }
func (t textImpl) invalidateCache()           {}

// formulaImpl holds a parsed formula and the cache of its last computed
// value. A nil cache means "needs recomputing".
type formulaImpl struct {
	formula *Formula
	sheet   *Sheet
	cache   *CellValue
}

func (f *formulaImpl) value() CellValue {
	if f.cache == nil {
		v, err := f.formula.Evaluate(f.sheet)
		var result CellValue
		if err != nil {
			if fe, ok := err.(FormulaError); ok {
				result = ErrorValue{Err: fe}
			} else {
				result = ErrorValue{Err: FormulaError{Category: CategoryValue}}
			}
		} else {
			result = NumberValue(v)
		}
		f.cache = &result
	}
	return *f.cache
}

func (f *formulaImpl) text() string               { return string(FormulaSign) + f.formula.Expression() }
func (f *formulaImpl) referencedCells() []Position { return f.formula.ReferencedCells() }
func (f *formulaImpl) cacheValid() bool           { return f.cache != nil }
func (f *formulaImpl) invalidateCache()           { f.cache = nil }

// buildImpl classifies raw cell text into the impl it should become.
// Parsing a formula can fail with ErrFormulaParse; the caller must leave
// the cell untouched in that case.
func buildImpl(text string, sheet *Sheet) (cellImpl, error) {
	switch {
	case text == "":
		return emptyImpl{}, nil
	case len(text) > 1 && text[0] == FormulaSign:
		f, err := ParseFormula(text[1:])
		if err != nil {
			return nil, err
		}
		return &formulaImpl{formula: f, sheet: sheet}, nil
	default:
		return textImpl{raw: text}, nil
	}
}

// Cell is a single grid slot. It owns one cellImpl and the edges of the
// dependency graph: incoming holds every cell whose formula references
// this one, outgoing holds every cell this one's formula references.
// Edges are non-owning -- the Sheet owns every Cell, so removing one
// only ever happens after its incoming set is empty.
type Cell struct {
	sheet    *Sheet
	impl     cellImpl
	incoming map[*Cell]struct{}
	outgoing map[*Cell]struct{}
}

func newCell(sheet *Sheet) *Cell {
	return &Cell{
		sheet:    sheet,
		impl:     emptyImpl{},
		incoming: make(map[*Cell]struct{}),
		outgoing: make(map[*Cell]struct{}),
	}
}

// Value returns the cell's current value, computing and caching a
// formula's result on demand.
func (c *Cell) Value() CellValue { return c.impl.value() }

// Text returns the raw source text -- "=" plus the canonical expression
// for a formula cell, the literal text otherwise.
func (c *Cell) Text() string { return c.impl.text() }

// ReferencedCells returns the positions this cell's formula references,
// or nil for a non-formula cell.
func (c *Cell) ReferencedCells() []Position { return c.impl.referencedCells() }

// IsReferenced reports whether any other cell depends on this one.
func (c *Cell) IsReferenced() bool { return len(c.incoming) > 0 }

// set classifies text, rejects it with ErrCircularDependency if it would
// introduce a cycle, and otherwise swaps in the new impl, rewires edges,
// and force-invalidates every cache reachable via incoming. Either the
// whole transition happens, or none of it does: the cycle check runs
// before anything is mutated.
func (c *Cell) set(text string) error {
	newImpl, err := buildImpl(text, c.sheet)
	if err != nil {
		return err
	}

	refs := newImpl.referencedCells()
	if c.wouldIntroduceCycle(refs) {
		return ErrCircularDependency
	}

	newOutgoing := make([]*Cell, 0, len(refs))
	for _, p := range refs {
		newOutgoing = append(newOutgoing, c.sheet.getOrCreateCell(p))
	}

	for oc := range c.outgoing {
		delete(oc.incoming, c)
	}
	maps.Clear(c.outgoing)
	for _, oc := range newOutgoing {
		c.outgoing[oc] = struct{}{}
		oc.incoming[c] = struct{}{}
	}

	c.impl = newImpl
	c.invalidateRecursive(true)
	return nil
}

// clear resets the impl to Empty. Edges are deliberately left alone here
// -- the sheet is the one that decides whether a cleared, unreferenced
// cell should be dropped from the map. The cache of every dependent is
// still force-invalidated, the same way set() does it, since a formula
// reading through this cell can no longer trust a value computed before
// the clear.
func (c *Cell) clear() {
	c.impl = emptyImpl{}
	c.invalidateRecursive(true)
}

// wouldIntroduceCycle reports whether adopting a candidate impl with the
// given referenced positions would create a cycle. It walks incoming
// edges (cells that transitively depend on c) and checks whether any of
// them is among the cells the candidate would newly depend on: if one
// is, c would become reachable from itself.
func (c *Cell) wouldIntroduceCycle(refs []Position) bool {
	if len(refs) == 0 {
		return false
	}

	referenced := make(map[*Cell]struct{}, len(refs))
	for _, p := range refs {
		if cell := c.sheet.getCellOrNil(p); cell != nil {
			referenced[cell] = struct{}{}
		}
	}
	if len(referenced) == 0 {
		return false
	}

	visited := make(map[*Cell]struct{})
	stack := []*Cell{c}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, ok := visited[cur]; ok {
			continue
		}
		visited[cur] = struct{}{}

		if _, ok := referenced[cur]; ok {
			return true
		}
		for incoming := range cur.incoming {
			if _, ok := visited[incoming]; !ok {
				stack = append(stack, incoming)
			}
		}
	}
	return false
}

// invalidateRecursive clears this cell's cache and recurses into every
// cell that depends on it. With force=false, a cell whose cache is
// already invalid stops the walk -- its own dependents must already be
// invalid too, since nothing can have read a fresher value through it.
func (c *Cell) invalidateRecursive(force bool) {
	if !c.impl.cacheValid() && !force {
		return
	}
	c.impl.invalidateCache()
	for incoming := range c.incoming {
		incoming.invalidateRecursive(false)
	}
}
