// Package view maps between world coordinates (the venue plan) and screen
// coordinates, and computes the pseudo-3D elevation projection.
package view

import (
	"math"

	"seatmap/pkg/geometry"
)

const (
	// MinZoom and MaxZoom bound the zoom factor.
	MinZoom = 0.1
	MaxZoom = 3.0
	// ZoomStep is the multiplicative factor for a discrete zoom action.
	ZoomStep = 1.2
)

// Camera holds the pan/zoom state of one interactive session.
// The zero value is not useful; use NewCamera.
type Camera struct {
	Zoom float64
	Pan  geometry.Point2D
}

// NewCamera returns a camera at 1:1 zoom with no pan.
func NewCamera() *Camera {
	return &Camera{Zoom: 1.0}
}

// Transform returns the world-to-screen matrix: scale by zoom, then
// translate by pan.
func (c *Camera) Transform() geometry.AffineTransform {
	return geometry.Translation(c.Pan.X, c.Pan.Y).Compose(geometry.Scale(c.Zoom, c.Zoom))
}

// WorldToScreen applies the forward transform: screen = world*zoom + pan.
func (c *Camera) WorldToScreen(p geometry.Point2D) geometry.Point2D {
	return c.Transform().Apply(p)
}

// ScreenToWorld applies the exact algebraic inverse of WorldToScreen.
// A camera zoom is never zero, so the inverse always exists.
func (c *Camera) ScreenToWorld(p geometry.Point2D) geometry.Point2D {
	inv, ok := c.Transform().Inverse()
	if !ok {
		return p
	}
	return inv.Apply(p)
}

// SetZoom sets the zoom factor, clamped to [MinZoom, MaxZoom].
func (c *Camera) SetZoom(zoom float64) {
	if zoom < MinZoom {
		zoom = MinZoom
	}
	if zoom > MaxZoom {
		zoom = MaxZoom
	}
	c.Zoom = zoom
}

// ZoomIn increases zoom by one step.
func (c *Camera) ZoomIn() {
	c.SetZoom(c.Zoom * ZoomStep)
}

// ZoomOut decreases zoom by one step.
func (c *Camera) ZoomOut() {
	c.SetZoom(c.Zoom / ZoomStep)
}

// Reset returns the camera to 1:1 zoom and zero pan.
func (c *Camera) Reset() {
	c.Zoom = 1.0
	c.Pan = geometry.Point2D{}
}

// Project computes the pseudo-3D projection for an element at vertical
// world position y and elevation z, given the global perspective angle
// (degrees) and camera height. It returns the projected y and the scale
// multiplier applied to the element's sprite. Pure and stateless.
func Project(y, z, perspectiveDeg, cameraHeight float64) (projectedY, scale float64) {
	projectedY = y - (z*math.Sin(geometry.DegToRad(perspectiveDeg)))/2
	scale = 1 + z/cameraHeight
	return
}

// DepthKey returns the stacking-order key for an element at world y and
// elevation z: floor(z + y). Higher elevation and lower-on-screen
// elements draw on top.
func DepthKey(y, z float64) int {
	return int(math.Floor(z + y))
}
