package internal

// Wire-format constants shared by the position parser and the cell
// classifier.
const (
	FormulaSign = '='
	EscapeSign  = '\''

	Letters = 26

	MaxRows           = 16384
	MaxCols           = 16384
	MaxPositionLength = 17
	MaxPosLetterCount = 3
)
