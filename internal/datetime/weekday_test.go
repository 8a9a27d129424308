package datetime

import "testing"

func TestDecodeFirstDay(t *testing.T) {
	tests := []struct {
		name string
		code int
		want int
	}{
		{"friday", 4, 0},
		{"saturday", 5, 1},
		{"monday", 0, 3},
		{"sunday", 6, 2},
		{"tuesday collapses to sunday", 1, 2},
		{"wednesday collapses to sunday", 2, 2},
		{"thursday collapses to sunday", 3, 2},
		{"out of range collapses to sunday", 42, 2},
		{"negative collapses to sunday", -1, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DecodeFirstDay(tt.code); got != tt.want {
				t.Errorf("DecodeFirstDay(%d) = %d, want %d", tt.code, got, tt.want)
			}
		})
	}
}

func TestEncodeFirstDay(t *testing.T) {
	tests := []struct {
		name  string
		index int
		want  int
	}{
		{"friday", 0, 4},
		{"saturday", 1, 5},
		{"sunday", 2, 6},
		{"monday", 3, 0},
		{"out of range falls back to sunday", 9, 6},
		{"negative falls back to sunday", -1, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EncodeFirstDay(tt.index); got != tt.want {
				t.Errorf("EncodeFirstDay(%d) = %d, want %d", tt.index, got, tt.want)
			}
		})
	}
}

// The decode direction is many-to-one: Tuesday through Thursday all land on
// the Sunday dropdown entry, so encoding the decoded index rewrites those
// codes to 6. Only the four codes with their own dropdown entry survive a
// round trip unchanged.
func TestFirstDayRoundTripCollapses(t *testing.T) {
	stable := map[int]bool{4: true, 5: true, 6: true, 0: true}

	for code := 0; code <= 6; code++ {
		got := EncodeFirstDay(DecodeFirstDay(code))
		if stable[code] {
			if got != code {
				t.Errorf("round trip of %d = %d, want unchanged", code, got)
			}
			continue
		}
		if got != 6 {
			t.Errorf("round trip of %d = %d, want collapse to 6", code, got)
		}
	}
}

func TestEveryDropdownIndexDecodesToItself(t *testing.T) {
	for index := 0; index < FirstDayChoices; index++ {
		if got := DecodeFirstDay(EncodeFirstDay(index)); got != index {
			t.Errorf("DecodeFirstDay(EncodeFirstDay(%d)) = %d, want %d", index, got, index)
		}
	}
}
