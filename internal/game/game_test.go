package game

import (
	"testing"
)

const (
	X = Player
	O = Opponent
	E = Empty
)

func TestHasLine(t *testing.T) {
	tests := []struct {
		name         string
		board        Board
		wantPlayer   bool
		wantOpponent bool
	}{
		{
			name:  "No line - empty board",
			board: Board{},
		},
		{
			name: "No line - partial board",
			board: Board{
				{X, E, E},
				{E, O, E},
				{E, E, E},
			},
		},
		{
			name: "X completes first row",
			board: Board{
				{X, X, X},
				{E, O, E},
				{E, E, O},
			},
			wantPlayer: true,
		},
		{
			name: "O completes second column",
			board: Board{
				{X, O, E},
				{X, O, E},
				{E, O, E},
			},
			wantOpponent: true,
		},
		{
			name: "X completes third column",
			board: Board{
				{O, O, X},
				{E, E, X},
				{E, E, X},
			},
			wantPlayer: true,
		},
		{
			name: "X completes main diagonal",
			board: Board{
				{X, E, E},
				{E, X, E},
				{E, E, X},
			},
			wantPlayer: true,
		},
		{
			name: "O completes anti-diagonal",
			board: Board{
				{E, E, O},
				{E, O, E},
				{O, E, E},
			},
			wantOpponent: true,
		},
		{
			name: "No line - full board",
			board: Board{
				{X, O, X},
				{X, O, O},
				{O, X, X},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.board.HasLine(Player); got != tt.wantPlayer {
				t.Errorf("HasLine(Player) got = %v, want %v", got, tt.wantPlayer)
			}
			if got := tt.board.HasLine(Opponent); got != tt.wantOpponent {
				t.Errorf("HasLine(Opponent) got = %v, want %v", got, tt.wantOpponent)
			}
			if tt.board.HasLine(Empty) {
				t.Errorf("HasLine(Empty) got = true, want false")
			}
		})
	}
}

func TestIsFull(t *testing.T) {
	tests := []struct {
		name  string
		board Board
		want  bool
	}{
		{
			name:  "Empty board is not full",
			board: Board{},
			want:  false,
		},
		{
			name: "Partial board is not full",
			board: Board{
				{X, E, E},
				{E, O, E},
				{E, E, E},
			},
			want: false,
		},
		{
			name: "One empty cell is not full",
			board: Board{
				{X, O, X},
				{X, O, O},
				{O, X, E},
			},
			want: false,
		},
		{
			name: "Full board is full",
			board: Board{
				{X, O, X},
				{X, O, O},
				{O, X, X},
			},
			want: true,
		},
		{
			name: "Full board with a line is full",
			board: Board{
				{X, X, X},
				{O, O, X},
				{O, X, O},
			},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.board.IsFull(); got != tt.want {
				t.Errorf("IsFull() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSetAndIsEmpty(t *testing.T) {
	var b Board
	if !b.IsEmpty(2, 1) {
		t.Fatalf("IsEmpty(2, 1) on a new board got = false, want true")
	}

	b.Set(2, 1, Opponent)
	if b.IsEmpty(2, 1) {
		t.Errorf("IsEmpty(2, 1) after Set got = true, want false")
	}
	if got := b.At(2, 1); got != Opponent {
		t.Errorf("At(2, 1) got = %q, want %q", got, Opponent)
	}
	if got := b.Count(); got != 1 {
		t.Errorf("Count() got = %d, want 1", got)
	}

	b.Set(2, 1, Empty)
	if !b.IsEmpty(2, 1) {
		t.Errorf("IsEmpty(2, 1) after undo got = false, want true")
	}
}

func TestReset(t *testing.T) {
	b := Board{
		{X, O, X},
		{X, O, O},
		{O, X, X},
	}
	b.Reset()

	for r := range [Size]int{} {
		for c := range [Size]int{} {
			if !b.IsEmpty(r, c) {
				t.Errorf("cell (%d, %d) got = %q after Reset, want empty", r, c, b.At(r, c))
			}
		}
	}
	if b.Count() != 0 {
		t.Errorf("Count() after Reset got = %d, want 0", b.Count())
	}
}

func TestInBounds(t *testing.T) {
	tests := []struct {
		row, col int
		want     bool
	}{
		{0, 0, true},
		{2, 2, true},
		{1, 2, true},
		{-1, 0, false},
		{0, -1, false},
		{3, 0, false},
		{0, 3, false},
	}

	for _, tt := range tests {
		if got := InBounds(tt.row, tt.col); got != tt.want {
			t.Errorf("InBounds(%d, %d) got = %v, want %v", tt.row, tt.col, got, tt.want)
		}
	}
}

func TestStatusTerminal(t *testing.T) {
	tests := []struct {
		status Status
		want   bool
	}{
		{InProgress, false},
		{PlayerWon, true},
		{OpponentWon, true},
		{Draw, true},
	}

	for _, tt := range tests {
		if got := tt.status.Terminal(); got != tt.want {
			t.Errorf("%s.Terminal() got = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestRowsAndString(t *testing.T) {
	b := Board{
		{X, E, E},
		{E, O, E},
		{E, E, X},
	}

	rows := b.Rows()
	if len(rows) != Size || rows[1][1] != O || rows[2][2] != X || rows[0][1] != E {
		t.Errorf("Rows() got = %v", rows)
	}

	rows[0][0] = O
	if b.At(0, 0) != X {
		t.Errorf("Rows() must return a copy, board changed to %q", b.At(0, 0))
	}

	want := "X..\n.O.\n..X"
	if got := b.String(); got != want {
		t.Errorf("String() got = %q, want %q", got, want)
	}
}
