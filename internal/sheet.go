package internal

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// CellInterface is the read-only view of a cell exposed to the host.
type CellInterface interface {
	Value() CellValue
	Text() string
	ReferencedCells() []Position
}

// Sheet is a sparse Position -> *Cell map. Positions absent from the map
// are semantically Empty. A Cell's lifetime is strictly dominated by the
// Sheet's: cells hold non-owning references back to their peers and to
// the sheet, so removal only ever happens once a cell's incoming set is
// empty: through ClearCell, or when a failed SetCell drops the cell it
// had just created.
type Sheet struct {
	cells map[Position]*Cell
}

// NewSheet returns an empty sheet.
func NewSheet() *Sheet {
	return &Sheet{cells: make(map[Position]*Cell)}
}

// SetCell classifies text and installs it at pos, creating the cell if
// necessary. It returns ErrInvalidPosition for an out-of-range pos,
// ErrFormulaParse (wrapped) if text starts with '=' but fails to parse,
// or ErrCircularDependency if the resulting formula would create a
// cycle -- in the latter two cases the sheet is left unchanged.
func (s *Sheet) SetCell(pos Position, text string) error {
	if !pos.IsValid() {
		return ErrInvalidPosition
	}
	_, existed := s.cells[pos]
	cell := s.getOrCreateCell(pos)
	if err := cell.set(text); err != nil {
		if !existed {
			delete(s.cells, pos)
		}
		return err
	}
	return nil
}

// GetCell returns the cell at pos, or (nil, nil) if pos is valid but no
// cell is stored there. An empty cell kept because a formula references
// it is returned, not nil. It returns ErrInvalidPosition for an
// out-of-range pos.
func (s *Sheet) GetCell(pos Position) (CellInterface, error) {
	if !pos.IsValid() {
		return nil, ErrInvalidPosition
	}
	cell, ok := s.cells[pos]
	if !ok {
		return nil, nil
	}
	return cell, nil
}

// ClearCell resets the cell at pos to Empty, dropping it from the sheet
// entirely if nothing else references it.
func (s *Sheet) ClearCell(pos Position) error {
	if !pos.IsValid() {
		return ErrInvalidPosition
	}
	cell, ok := s.cells[pos]
	if !ok {
		return nil
	}
	cell.clear()
	if !cell.IsReferenced() {
		delete(s.cells, pos)
	}
	return nil
}

// PrintableSize returns the smallest (rows, cols) bounding box covering
// every cell present in the sheet, or (0, 0) if it is empty.
func (s *Sheet) PrintableSize() Size {
	var size Size
	for pos := range s.cells {
		if pos.Row+1 > size.Rows {
			size.Rows = pos.Row + 1
		}
		if pos.Col+1 > size.Cols {
			size.Cols = pos.Col + 1
		}
	}
	return size
}

// PrintValues writes the sheet's evaluated values as a tab-separated
// grid, one line per row, covering PrintableSize. A cell is only
// written if it is present and its raw text is non-empty.
func (s *Sheet) PrintValues(w io.Writer) error {
	return s.printGrid(w, func(c *Cell) string {
		return formatCellValue(c.Value())
	})
}

// PrintTexts writes the sheet's raw cell text as a tab-separated grid,
// analogous to PrintValues.
func (s *Sheet) PrintTexts(w io.Writer) error {
	return s.printGrid(w, func(c *Cell) string {
		return c.Text()
	})
}

func (s *Sheet) printGrid(w io.Writer, render func(*Cell) string) error {
	size := s.PrintableSize()
	for row := 0; row < size.Rows; row++ {
		for col := 0; col < size.Cols; col++ {
			if col > 0 {
				if _, err := io.WriteString(w, "\t"); err != nil {
					return err
				}
			}
			cell, ok := s.cells[Position{Row: row, Col: col}]
			if ok && cell.Text() != "" {
				if _, err := io.WriteString(w, render(cell)); err != nil {
					return err
				}
			}
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

func formatCellValue(v CellValue) string {
	switch v := v.(type) {
	case EmptyValue:
		return ""
	case TextValue:
		return string(v)
	case NumberValue:
		return formatNumber(float64(v))
	case ErrorValue:
		return v.Err.Error()
	default:
		return ""
	}
}

func (s *Sheet) getOrCreateCell(pos Position) *Cell {
	if c, ok := s.cells[pos]; ok {
		return c
	}
	c := newCell(s)
	s.cells[pos] = c
	return c
}

func (s *Sheet) getCellOrNil(pos Position) *Cell {
	return s.cells[pos]
}

// resolveCell implements the Position -> float64 resolver semantics a
// formula's CellRef nodes evaluate through: an invalid position fails
// with Ref, an absent cell is 0, a number passes through, empty text is
// 0, non-empty text is parsed as a full decimal number or fails with
// Value, and a propagated error keeps its category.
func (s *Sheet) resolveCell(pos Position) (float64, error) {
	if !pos.IsValid() {
		return 0, FormulaError{Category: CategoryRef}
	}
	cell, ok := s.cells[pos]
	if !ok {
		return 0, nil
	}

	switch v := cell.Value().(type) {
	case EmptyValue:
		return 0, nil
	case NumberValue:
		return float64(v), nil
	case TextValue:
		if v == "" {
			return 0, nil
		}
		n, err := strconv.ParseFloat(strings.TrimLeft(string(v), " \t"), 64)
		if err != nil {
			return 0, FormulaError{Category: CategoryValue}
		}
		return n, nil
	case ErrorValue:
		return 0, v.Err
	default:
		return 0, fmt.Errorf("%w: unexpected cell value type", ErrInvalidPosition)
	}
}
