package shooter

import "github.com/vovakirdan/tui-shooter/internal/core"

// Shape is how a sprite part is filled.
type Shape int

const (
	ShapeRect Shape = iota
	ShapeEllipse
)

// Part is one procedurally drawn piece of a sprite.
type Part struct {
	W, H  int
	Shape Shape
	Color core.Color
}

// draw fills the part with its top-left corner at (x, y).
func (p Part) draw(dst core.Canvas, x, y int) {
	r := core.NewRect(x, y, p.W, p.H)
	if p.Shape == ShapeEllipse {
		dst.FillEllipse(r, p.Color)
		return
	}
	dst.FillRect(r, p.Color)
}

// Character holds the body parts of the player sprite.
type Character struct {
	Head Part
	Body Part
	Arm  Part
	Leg  Part
	Gun  Part
}

// LoadCharacter builds the player's body parts. They are purely cosmetic:
// collisions use the player's hitbox, not these shapes.
func LoadCharacter() Character {
	return Character{
		Head: Part{W: 40, H: 40, Shape: ShapeEllipse, Color: core.ColorSkin},
		Body: Part{W: 40, H: 50, Shape: ShapeRect, Color: core.ColorShirt},
		Arm:  Part{W: 15, H: 30, Shape: ShapeRect, Color: core.ColorShirt},
		Leg:  Part{W: 20, H: 25, Shape: ShapeRect, Color: core.ColorBoots},
		Gun:  Part{W: 15, H: 5, Shape: ShapeRect, Color: core.ColorGun},
	}
}

// Draw renders the character anchored at the player position (x, y).
// The head sits above the anchor; the gun is held in the left hand.
func (c Character) Draw(dst core.Canvas, x, y int) {
	c.Body.draw(dst, x, y)
	c.Head.draw(dst, x, y-c.Head.H)

	// Left arm with gun
	c.Arm.draw(dst, x-10, y)
	c.Gun.draw(dst, x-25, y+10)

	// Right arm (mirrored; a solid part looks the same flipped)
	c.Arm.draw(dst, x+30, y)

	// Legs
	c.Leg.draw(dst, x+5, y+45)
	c.Leg.draw(dst, x+15, y+45)
}
