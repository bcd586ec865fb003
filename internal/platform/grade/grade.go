package grade

const (
	MinScore = 0
	MaxScore = 100
)

type Letter byte

const (
	A            Letter = 'A'
	B            Letter = 'B'
	C            Letter = 'C'
	D            Letter = 'D'
	F            Letter = 'F'
	Unclassified Letter = '?'
)

type Grader interface {
	Grade() Letter
}

type Scores struct {
	A, B, C int
}

func (s Scores) Average() int {
	return Average(s.A, s.B, s.C)
}

func (s Scores) Grade() Letter {
	return Classify(s.A, s.B, s.C)
}

// Average truncates toward zero, so (-1, -1, 0) averages to 0.
func Average(a, b, c int) int {
	return (a + b + c) / 3
}

// Classify returns Unclassified when the average falls outside [MinScore, MaxScore].
func Classify(a, b, c int) Letter {
	s := Average(a, b, c)
	switch {
	case s < MinScore || s > MaxScore:
		return Unclassified
	case s >= 90:
		return A
	case s >= 80:
		return B
	case s >= 70:
		return C
	case s >= 60:
		return D
	default:
		return F
	}
}

func (l Letter) Classified() bool {
	switch l {
	case A, B, C, D, F:
		return true
	}
	return false
}

func (l Letter) String() string {
	return string(rune(l))
}
