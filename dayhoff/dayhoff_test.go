package dayhoff

import "testing"

func TestMatrix(t *testing.T) {
	for i := 0; i < 20; i++ {
		if Matrix[i][i] != 1.5 {
			t.Fatalf("similarity of %c with itself should be 1.5, but is %v",
				Alphabet[i], Matrix[i][i])
		}
		for j := 0; j < i; j++ {
			if Matrix[i][j] != Matrix[j][i] {
				t.Fatalf("similarity table is not symmetric for %c and %c: "+
					"%v versus %v",
					Alphabet[i], Alphabet[j], Matrix[i][j], Matrix[j][i])
			}
		}
	}
}

func TestIndex(t *testing.T) {
	type test struct {
		residue byte
		answer  int
	}
	tests := []test{
		{'V', 0},
		{'v', 0},
		{'L', 1},
		{'D', 19},
		{'d', 19},
		{'B', -1},
		{'J', -1},
		{'X', -1},
		{'Z', -1},
		{'-', -1},
		{'.', -1},
		{' ', -1},
	}
	for _, test := range tests {
		if ix := Index(test.residue); ix != test.answer {
			t.Fatalf("Index(%q) should be %d, but returned %d",
				test.residue, test.answer, ix)
		}
	}
}

func TestSim(t *testing.T) {
	type test struct {
		a, b   byte
		answer float64
	}
	tests := []test{
		{'V', 'V', 1.5},
		{'V', 'L', 0.8},
		{'L', 'V', 0.8},
		{'v', 'l', 0.8},
		{'W', 'R', 1.4},
		{'L', 'A', -0.1},
		{'V', '-', 0},
		{'X', 'V', 0},
	}
	for _, test := range tests {
		if s := Sim(test.a, test.b); s != test.answer {
			t.Fatalf("Sim(%q, %q) should be %v, but returned %v",
				test.a, test.b, test.answer, s)
		}
	}
}
