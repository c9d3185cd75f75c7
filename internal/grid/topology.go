package grid

// Board dimensions.
const (
	CellCount = 81
	UnitCount = 29 // 9 rows + 9 columns + 9 boxes + 2 diagonals
)

const (
	rowLetters = "ABCDEFGHI"
	colDigits  = "123456789"
)

// Unit is an ordered group of 9 cells that must contain each digit exactly once.
type Unit [9]int

// Precomputed constraint topology. Built once in init and never mutated;
// all lookups share these tables by reference.
var (
	unitList [UnitCount]Unit

	// unitsOf[pos] holds the indices into unitList of every unit containing
	// pos: row, column, box, then 0-2 diagonals.
	unitsOf [CellCount][]int

	// peersOf[pos] holds every cell sharing a unit with pos, ascending,
	// pos itself excluded. 20 peers off the diagonals, up to 26 on them.
	peersOf [CellCount][]int

	posToRow [CellCount]int
	posToCol [CellCount]int
)

// MakePos transforms a row and column (0-8 each) into a linear position.
func MakePos(row, col int) int {
	return 9*row + col
}

// Label returns the cell label for a position, e.g. 0 -> "A1", 80 -> "I9".
func Label(pos int) string {
	return string(rowLetters[posToRow[pos]]) + string(colDigits[posToCol[pos]])
}

// PosOf returns the position for a cell label, or -1 if the label is invalid.
func PosOf(label string) int {
	if len(label) != 2 {
		return -1
	}
	row := int(label[0] - 'A')
	col := int(label[1] - '1')
	if row < 0 || row > 8 || col < 0 || col > 8 {
		return -1
	}
	return MakePos(row, col)
}

// Units returns the units containing pos: row, column, box, and any diagonals.
func Units(pos int) []Unit {
	units := make([]Unit, len(unitsOf[pos]))
	for i, u := range unitsOf[pos] {
		units[i] = unitList[u]
	}
	return units
}

// UnitList returns all 29 units in their fixed order:
// rows A-I, columns 1-9, boxes row-major, main diagonal, anti-diagonal.
func UnitList() []Unit {
	return unitList[:]
}

// Peers returns the peer set of pos in ascending order.
func Peers(pos int) []int {
	return peersOf[pos]
}

// OnDiagonal reports whether pos lies on the main or anti diagonal.
func OnDiagonal(pos int) bool {
	r, c := posToRow[pos], posToCol[pos]
	return r == c || r+c == 8
}

func init() {
	for pos := 0; pos < CellCount; pos++ {
		posToRow[pos] = pos / 9
		posToCol[pos] = pos % 9
	}

	n := 0
	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			unitList[n][col] = MakePos(row, col)
		}
		n++
	}
	for col := 0; col < 9; col++ {
		for row := 0; row < 9; row++ {
			unitList[n][row] = MakePos(row, col)
		}
		n++
	}
	for boxRow := 0; boxRow < 9; boxRow += 3 {
		for boxCol := 0; boxCol < 9; boxCol += 3 {
			for i := 0; i < 9; i++ {
				unitList[n][i] = MakePos(boxRow+i/3, boxCol+i%3)
			}
			n++
		}
	}
	for i := 0; i < 9; i++ {
		unitList[n][i] = MakePos(i, i) // main diagonal A1..I9
	}
	n++
	for i := 0; i < 9; i++ {
		unitList[n][i] = MakePos(i, 8-i) // anti-diagonal A9..I1
	}

	for pos := 0; pos < CellCount; pos++ {
		var inPeers [CellCount]bool
		for u, unit := range unitList {
			member := false
			for _, p := range unit {
				if p == pos {
					member = true
					break
				}
			}
			if !member {
				continue
			}
			unitsOf[pos] = append(unitsOf[pos], u)
			for _, p := range unit {
				if p != pos {
					inPeers[p] = true
				}
			}
		}
		for p := 0; p < CellCount; p++ {
			if inPeers[p] {
				peersOf[pos] = append(peersOf[pos], p)
			}
		}
	}
}
