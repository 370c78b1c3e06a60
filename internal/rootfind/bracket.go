package rootfind

// Interval is a subinterval of a scan known to contain a sign change.
type Interval struct {
	Lo, Hi float64
}

// Bracket scans [lo, hi] in n uniform steps and returns the first
// subinterval with a sign change. Points where f errors are skipped.
func Bracket(f Func, lo, hi float64, n int) (Interval, bool) {
	all := BracketAll(f, lo, hi, n)
	if len(all) == 0 {
		return Interval{}, false
	}
	return all[0], true
}

// BracketAll scans [lo, hi] in n uniform steps and returns every
// subinterval carrying a sign change. Invalid points (f error) break the
// running bracket but do not abort the scan, so searches can step over a
// forbidden region such as the inside of the dome.
func BracketAll(f Func, lo, hi float64, n int) []Interval {
	if n < 1 {
		n = 1
	}
	var out []Interval
	step := (hi - lo) / float64(n)

	prevX := lo
	prevF, prevErr := f(lo)
	for i := 1; i <= n; i++ {
		x := lo + float64(i)*step
		if i == n {
			x = hi
		}
		fx, err := f(x)
		if err == nil && prevErr == nil && prevF*fx <= 0 {
			out = append(out, Interval{Lo: prevX, Hi: x})
		}
		prevX, prevF, prevErr = x, fx, err
	}
	return out
}
