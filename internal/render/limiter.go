package render

// Limits is a two-stage power limiter for WS2812 frames:
//  1. per-LED white cap: scales (R,G,B) so R+G+B <= WhiteCap
//  2. global current budget: estimates draw and scales the whole frame to
//     stay under BudgetMA
//
// Zero fields take the defaults below; BudgetMA of 0 disables stage 2.
type Limits struct {
	WhiteCap float64 // sum of channels, default 3.0 (no cap)
	ChanMA   float64 // mA per channel at full scale, default 20
	BudgetMA float64
}

func (l Limits) withDefaults() Limits {
	if l.WhiteCap <= 0 {
		l.WhiteCap = 3.0
	}
	if l.ChanMA <= 0 {
		l.ChanMA = 20
	}
	return l
}

// Current estimates the draw of buf in mA.
func (l Limits) Current(buf []Color) float64 {
	l = l.withDefaults()
	cm := float32(l.ChanMA)
	var total float64
	for i := range buf {
		total += float64(buf[i].Sum() * cm)
	}
	return total
}

// Apply limits buf in place.
func (l Limits) Apply(buf []Color) {
	l = l.withDefaults()

	wc := float32(l.WhiteCap)
	for i := range buf {
		s := buf[i].Sum()
		if s > wc && s > 0 {
			buf[i] = buf[i].Scale(wc / s)
		}
	}

	if l.BudgetMA <= 0 {
		return
	}
	total := l.Current(buf)
	if total <= 0 {
		return
	}
	if total <= l.BudgetMA {
		return
	}
	scaleAll(buf, float32(l.BudgetMA/total))
}

func scaleAll(buf []Color, s float32) {
	if s >= 1.0 {
		return
	}
	for i := range buf {
		buf[i] = buf[i].Scale(s)
	}
}
