package render

import "testing"

func TestLimiterBudgetClamp(t *testing.T) {
	// 10 LEDs all white, 60mA each
	buf := make([]Color, 10)
	for i := range buf {
		buf[i] = White
	}
	l := Limits{ChanMA: 20, BudgetMA: 300, WhiteCap: 3.0}

	// pre-limit current would be 10 * 60 = 600 mA
	l.Apply(buf)
	if cur := l.Current(buf); cur > 300.1 {
		t.Fatalf("expected <= 300mA after limit, got %.2f mA", cur)
	}
}

func TestLimiterUnderBudgetPassesThrough(t *testing.T) {
	buf := make([]Color, 10)
	for i := range buf {
		buf[i] = Color{0.5, 0.5, 0.5} // 30mA each, 300 total
	}
	Limits{BudgetMA: 310}.Apply(buf)
	if buf[0] != (Color{0.5, 0.5, 0.5}) {
		t.Fatalf("frame under budget must pass through, got %v", buf[0])
	}
}

func TestWhiteCap(t *testing.T) {
	buf := []Color{White} // sum=3
	Limits{WhiteCap: 1.5}.Apply(buf)
	if sum := buf[0].Sum(); sum > 1.5001 {
		t.Fatalf("expected sum <= 1.5, got %f", sum)
	}
}
