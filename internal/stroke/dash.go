package stroke

import "math"

// Dash splits a subpath into the "on" segments produced by a dash pattern,
// walking in user space so a non-uniform transform doesn't distort dash
// lengths the way walking in device space would. pattern is taken with an
// odd length duplicated (as an HTML canvas dash list is), matching the
// contract of the public Dash type; a nil or all-zero pattern returns the
// subpath unchanged as its only segment.
func Dash(devicePoints []Point, closed bool, pattern []float64, offset float64, toUser, toDevice func(Point) Point, out *[][]Point) {
	effective := effectivePattern(pattern)
	if len(effective) == 0 || len(devicePoints) < 2 {
		*out = append(*out, devicePoints)
		return
	}

	pts := toUserSpace(devicePoints, toUser)
	pts = dedupe(pts, closed)
	if len(pts) < 2 {
		return
	}
	if closed {
		pts = append(pts, pts[0])
	}

	total := 0.0
	for _, l := range effective {
		total += l
	}
	if total <= 0 {
		*out = append(*out, devicePoints)
		return
	}

	cursor := math.Mod(offset, total)
	if cursor < 0 {
		cursor += total
	}
	idx := 0
	for cursor >= effective[idx] {
		cursor -= effective[idx]
		idx = (idx + 1) % len(effective)
	}
	on := idx%2 == 0
	remain := effective[idx] - cursor

	var current []Point
	if on {
		current = append(current, pts[0])
	}
	for i := 0; i < len(pts)-1; i++ {
		p0, p1 := pts[i], pts[i+1]
		segLen := p1.sub(p0).length()
		walked := 0.0
		for walked < segLen {
			step := math.Min(remain, segLen-walked)
			walked += step
			remain -= step
			at := p0.lerp(p1, walked/segLen)
			if on {
				current = append(current, at)
			}
			if remain <= 1e-9 {
				if on && len(current) > 1 {
					*out = append(*out, toDeviceSpace(current, toDevice))
				}
				on = !on
				idx = (idx + 1) % len(effective)
				remain = effective[idx]
				current = nil
				if on {
					current = append(current, at)
				}
			}
		}
	}
	if on && len(current) > 1 {
		*out = append(*out, toDeviceSpace(current, toDevice))
	}
}

func (p Point) lerp(q Point, t float64) Point {
	return Point{p.X + (q.X-p.X)*t, p.Y + (q.Y-p.Y)*t}
}

// effectivePattern duplicates an odd-length pattern, per the usual dash
// contract, and drops the pattern entirely if every entry is non-positive.
func effectivePattern(pattern []float64) []float64 {
	if len(pattern) == 0 {
		return nil
	}
	anyPositive := false
	for _, l := range pattern {
		if l > 0 {
			anyPositive = true
		}
		if l < 0 {
			return nil
		}
	}
	if !anyPositive {
		return nil
	}
	if len(pattern)%2 == 1 {
		return append(append([]float64{}, pattern...), pattern...)
	}
	return pattern
}
