package value

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// Point is a 2D integer coordinate.
type Point struct {
	X int `cty:"x" json:"x" yaml:"x"`
	Y int `cty:"y" json:"y" yaml:"y"`
}

// PointTypeName is the name under which Point is registered.
const PointTypeName = "point"

// PointType is the cty representation of Point.
var PointType = cty.Object(map[string]cty.Type{
	"x": cty.Number,
	"y": cty.Number,
})

// NewPoint returns the point (x, y).
func NewPoint(x, y int) Point {
	return Point{X: x, Y: y}
}

// Equal reports whether both coordinates match.
func (p Point) Equal(o Point) bool {
	return p.X == o.X && p.Y == o.Y
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Cty converts the point into its cty object form.
func (p Point) Cty() cty.Value {
	v, err := gocty.ToCtyValue(p, PointType)
	if err != nil {
		// Both fields are plain ints, so conversion cannot fail.
		panic(fmt.Sprintf("value: converting point: %v", err))
	}
	return v
}
