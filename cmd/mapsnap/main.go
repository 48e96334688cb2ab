// Command mapsnap renders a venue file to a PNG image.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"

	"seatmap/internal/project"
	"seatmap/internal/render"
	"seatmap/internal/venue"
	"seatmap/internal/view"
	"seatmap/pkg/geometry"
)

func main() {
	venuePath := flag.String("venue", "", "Path to venue file (.venue.json)")
	outPath := flag.String("out", "map.png", "Output PNG path")
	width := flag.Int("width", 1280, "Image width in pixels")
	height := flag.Int("height", 960, "Image height in pixels")
	tier := flag.Int("tier", -1, "Tier index to render (-1 = file's current tier)")
	flag.Parse()

	if *venuePath == "" {
		fmt.Println("Usage: mapsnap -venue <path> [-out map.png] [-width 1280] [-height 960] [-tier 0]")
		os.Exit(1)
	}

	doc, err := project.Load(*venuePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load venue: %v\n", err)
		os.Exit(1)
	}
	m := doc.Venue
	if *tier >= 0 {
		if err := m.SwitchTier(*tier); err != nil {
			fmt.Fprintf(os.Stderr, "Bad tier: %v\n", err)
			os.Exit(1)
		}
	}

	cam := view.NewCamera()
	viewport := geometry.Size{Width: float64(*width), Height: float64(*height)}
	if bounds, ok := tierBounds(m); ok {
		fitted, err := view.FitToBounds(bounds, viewport, 40)
		if err == nil {
			cam = fitted
		}
	}

	frame := render.BuildFrame(m, cam, nil, nil, nil)
	img := render.Paint(frame, *width, *height)

	f, err := os.Create(*outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create output: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to encode PNG: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Rendered %s (%d seats) to %s at %dx%d\n",
		m.Name, len(m.CurrentTierPlane().Seats()), *outPath, *width, *height)
}

// tierBounds is the bounding box of everything on the current tier.
func tierBounds(m *venue.Map) (geometry.Rect, bool) {
	tier := m.CurrentTierPlane()
	if tier == nil {
		return geometry.Rect{}, false
	}
	var pts []geometry.Point2D
	for _, obj := range tier.Objects {
		switch o := obj.(type) {
		case *venue.Section:
			for _, seat := range o.Seats {
				pts = append(pts, seat.Position())
			}
		case *venue.Stage:
			b := o.Bounds()
			pts = append(pts, b.TopLeft(), b.BottomRight())
		}
	}
	if len(pts) == 0 {
		return geometry.Rect{}, false
	}
	return geometry.BoundingBox(pts), true
}
