package internal

// cellSource is the narrow view of a sheet a Formula needs to resolve
// the cell references inside it. Implemented by *Sheet.
type cellSource interface {
	resolveCell(Position) (float64, error)
}

// Formula wraps a parsed AST and exposes the facade spec.md describes:
// evaluation against a sheet, the canonical expression text, and the set
// of cells it references.
type Formula struct {
	ast        *formulaAST
	referenced []Position
}

// ParseFormula parses the body of a formula (the text after the leading
// '='). A parse failure is reported via ErrFormulaParse.
func ParseFormula(src string) (*Formula, error) {
	ast, err := parseFormulaAST(src)
	if err != nil {
		return nil, err
	}
	return &Formula{ast: ast, referenced: dedupValidSorted(ast.cells)}, nil
}

// dedupValidSorted drops invalid positions and adjacent duplicates from
// an already-ascending-sorted slice, preserving order.
func dedupValidSorted(cells []Position) []Position {
	out := make([]Position, 0, len(cells))
	for _, p := range cells {
		if !p.IsValid() {
			continue
		}
		if n := len(out); n > 0 && out[n-1] == p {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Evaluate computes the formula's value against sheet. The returned
// error, if non-nil, is always a FormulaError.
func (f *Formula) Evaluate(sheet cellSource) (float64, error) {
	return f.ast.evaluate(sheet.resolveCell)
}

// Expression is the canonical, minimally-parenthesized pretty-printed
// form of the formula (without the leading '=').
func (f *Formula) Expression() string {
	return f.ast.printFormula()
}

// ReferencedCells returns every valid cell this formula references, in
// ascending sorted order with duplicates removed.
func (f *Formula) ReferencedCells() []Position {
	return f.referenced
}

// debugPrint exposes the fully-parenthesized S-expression form, used by
// tests to pin down evaluator structure independent of the canonical
// printer.
func (f *Formula) debugPrint() string {
	return f.ast.debugPrint()
}
