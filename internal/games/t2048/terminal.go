package t2048

// HasWon returns true if any cell holds the target value.
func HasWon(board Board, target int) bool {
	for r := range BoardSize {
		for c := range BoardSize {
			if board[r][c] == target {
				return true
			}
		}
	}
	return false
}

// IsOver returns true if the board is full and no two neighbours,
// horizontally or vertically, hold the same value.
func IsOver(board Board) bool {
	for r := range BoardSize {
		for c := range BoardSize {
			val := board[r][c]
			if val == 0 {
				return false
			}
			if c < BoardSize-1 && board[r][c+1] == val {
				return false
			}
			if r < BoardSize-1 && board[r+1][c] == val {
				return false
			}
		}
	}
	return true
}
