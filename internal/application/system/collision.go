package system

import "github.com/younwookim/skyline/internal/domain/entity"

// ResolveHorizontal pushes the player out of every solid it overlaps after
// the x integration. Moving right snaps the right edge to the solid's left
// edge, moving left snaps the left edge to the solid's right edge. vx is
// zeroed on any contact. Solids are visited in store order and the last
// matching correction wins.
func ResolveHorizontal(p *entity.Player, solids []entity.Solid) {
	for i := range solids {
		s := &solids[i]
		if !entity.Intersects(p.Rect, s.Rect) {
			continue
		}
		if p.VX > 0 {
			p.X = s.X - p.W
		} else if p.VX < 0 {
			p.X = s.X + s.W
		}
		p.VX = 0
	}
}

// ResolveVertical runs after ResolveHorizontal. OnGround is cleared first
// and only set again by an actual downward landing this step.
func ResolveVertical(p *entity.Player, solids []entity.Solid) {
	p.OnGround = false
	for i := range solids {
		s := &solids[i]
		if !entity.Intersects(p.Rect, s.Rect) {
			continue
		}
		if p.VY > 0 {
			p.Y = s.Y - p.H
			p.VY = 0
			p.OnGround = true
		} else if p.VY < 0 {
			p.Y = s.Y + s.H
			p.VY = 0
		}
	}
}
