package scene

import "fmt"

// Validate checks every polygon in s against the well-formedness invariants
// assumed by the rasterizer: in-range references, chain-direction
// monotonicity per edge type, a closed boundary, and at least three edges.
// It is grounded on the reference rasterizer's check_pool_poly, generalized
// to run against raw scene input rather than a working pool, so a caller
// can validate a Scene before ever handing it to a Rasterizer.
//
// Validate is not called by Rasterizer.Render itself — per the module's
// error handling contract, a malformed scene is a programmer error caught
// only by debug-build invariant checks during render, not a recoverable
// condition checked up front. Validate exists for callers (tests, the
// Builder, demo code) that want an explicit, recoverable pre-flight check.
func (s *Scene) Validate() error {
	for pi, p := range s.Polys {
		if p.End-p.Start < 3 {
			return fmt.Errorf("scene: poly %d has %d edges, need >= 3", pi, p.End-p.Start)
		}
		if p.Start < 0 || p.End > len(s.Edges) || p.Start > p.End {
			return fmt.Errorf("scene: poly %d has out-of-range edge span [%d,%d)", pi, p.Start, p.End)
		}
		out := make(map[Point]int)
		in := make(map[Point]int)
		for i := p.Start; i < p.End; i++ {
			e := s.Edges[i]
			if e.Segment < 0 || e.Segment >= len(s.Segments) {
				return fmt.Errorf("scene: poly %d edge %d references out-of-range segment %d", pi, i-p.Start, e.Segment)
			}
			if e.Type.IsArc() && (e.Circle < 0 || e.Circle >= len(s.Circles)) {
				return fmt.Errorf("scene: poly %d edge %d is an arc but references out-of-range circle %d", pi, i-p.Start, e.Circle)
			}
			p1, p2 := s.Endpoints(e)
			switch {
			case e.Type.IsYTopChain() && p2.Y < p1.Y:
				return fmt.Errorf("scene: poly %d edge %d type %v is top-chain but p2.y < p1.y (p1=%v p2=%v)", pi, i-p.Start, e.Type, p1, p2)
			case e.Type.IsYBottomChain() && p2.Y > p1.Y:
				return fmt.Errorf("scene: poly %d edge %d type %v is bottom-chain but p2.y > p1.y (p1=%v p2=%v)", pi, i-p.Start, e.Type, p1, p2)
			case e.Type.IsXRightChain() && p2.X < p1.X:
				return fmt.Errorf("scene: poly %d edge %d type %v is right-chain but p2.x < p1.x (p1=%v p2=%v)", pi, i-p.Start, e.Type, p1, p2)
			case e.Type.IsXLeftChain() && p2.X > p1.X:
				return fmt.Errorf("scene: poly %d edge %d type %v is left-chain but p2.x > p1.x (p1=%v p2=%v)", pi, i-p.Start, e.Type, p1, p2)
			}
			out[p1]++
			in[p2]++
		}
		for pt, n := range out {
			if in[pt] != n {
				return fmt.Errorf("scene: poly %d is not a closed boundary at point %v: %d departures, %d arrivals", pi, pt, n, in[pt])
			}
		}
		for pt, n := range in {
			if out[pt] != n {
				return fmt.Errorf("scene: poly %d is not a closed boundary at point %v: %d departures, %d arrivals", pi, pt, out[pt], n)
			}
		}
		if p.Color < 0 || p.Color >= len(s.Colors) {
			return fmt.Errorf("scene: poly %d references out-of-range color %d", pi, p.Color)
		}
	}
	return nil
}
