package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRectFromCorners(t *testing.T) {
	r := RectFromCorners(Point2D{X: 100, Y: 20}, Point2D{X: 10, Y: 80})
	assert.Equal(t, NewRect(10, 20, 90, 60), r)

	// Same rect regardless of corner order.
	assert.Equal(t, r, RectFromCorners(Point2D{X: 10, Y: 80}, Point2D{X: 100, Y: 20}))
}

func TestRectContainsAndIntersects(t *testing.T) {
	r := NewRect(0, 0, 100, 50)
	assert.True(t, r.Contains(Point2D{X: 50, Y: 25}))
	assert.True(t, r.Contains(Point2D{X: 0, Y: 0}))
	assert.False(t, r.Contains(Point2D{X: 101, Y: 25}))

	assert.True(t, r.Intersects(NewRect(90, 40, 50, 50)))
	assert.False(t, r.Intersects(NewRect(200, 200, 10, 10)))
}

func TestRectUnion(t *testing.T) {
	u := NewRect(0, 0, 10, 10).Union(NewRect(50, 30, 20, 20))
	assert.Equal(t, NewRect(0, 0, 70, 50), u)
}

func TestAffineTransformInverse(t *testing.T) {
	tr := Translation(5, -3).Compose(Scale(2, 2))
	inv, ok := tr.Inverse()
	require.True(t, ok)

	p := Point2D{X: 12.5, Y: -7}
	back := inv.Apply(tr.Apply(p))
	assert.InDelta(t, p.X, back.X, 1e-9)
	assert.InDelta(t, p.Y, back.Y, 1e-9)
}

func TestPointOnCircle(t *testing.T) {
	c := Point2D{X: 10, Y: 20}
	p := PointOnCircle(c, 5, 0)
	assert.InDelta(t, 15, p.X, 1e-9)
	assert.InDelta(t, 20, p.Y, 1e-9)

	p = PointOnCircle(c, 5, 90)
	assert.InDelta(t, 10, p.X, 1e-9)
	assert.InDelta(t, 25, p.Y, 1e-9)

	p = PointOnCircle(c, 5, 180)
	assert.InDelta(t, 5, p.X, 1e-9)
	assert.InDelta(t, 20, p.Y, 1e-9)
}

func TestBoundingBox(t *testing.T) {
	box := BoundingBox([]Point2D{{X: 3, Y: 9}, {X: -2, Y: 4}, {X: 7, Y: 5}})
	assert.Equal(t, NewRect(-2, 4, 9, 5), box)
	assert.Equal(t, Rect{}, BoundingBox(nil))
}

func TestDistance(t *testing.T) {
	d := Point2D{X: 0, Y: 0}.Distance(Point2D{X: 3, Y: 4})
	assert.InDelta(t, 5, d, 1e-9)
	assert.InDelta(t, math.Sqrt2, Point2D{}.Distance(Point2D{X: 1, Y: 1}), 1e-9)
}
