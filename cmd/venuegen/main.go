// Command venuegen builds a demo venue and writes it as a venue file.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"seatmap/internal/layout"
	"seatmap/internal/project"
	"seatmap/internal/venue"
	"seatmap/pkg/geometry"
)

func main() {
	outDir := flag.String("out", ".", "Output directory")
	name := flag.String("name", "Demo Hall", "Venue name")
	flag.Parse()

	m := venue.NewDefaultMap()
	m.Name = *name

	standard, _ := m.PricingTierByID("standard")
	premium, _ := m.PricingTierByID("premium")
	balconyTier, _ := m.PricingTierByID("balcony")

	orchestra := m.CurrentTierPlane()

	stage, err := layout.Stage(geometry.Point2D{X: 150, Y: -160}, "Main Stage", layout.DefaultStage())
	if err != nil {
		fatal("building stage: %v", err)
	}
	if err := m.AddStage(stage); err != nil {
		fatal("adding stage: %v", err)
	}

	secA, err := layout.Straight(geometry.Point2D{X: 0, Y: 0}, orchestra, premium, "Section A", layout.StraightParams{
		Rows: 8, SeatsPerRow: 12, Spacing: 25, RowSpacing: 35,
	})
	if err != nil {
		fatal("building section A: %v", err)
	}
	markReserved(secA, []int{5, 6, 23, 24, 41, 42, 67, 68})
	if err := m.AddSection(0, secA); err != nil {
		fatal("adding section A: %v", err)
	}

	secB, err := layout.Straight(geometry.Point2D{X: 350, Y: 0}, orchestra, standard, "Section B", layout.StraightParams{
		Rows: 6, SeatsPerRow: 10, Spacing: 25, RowSpacing: 35,
	})
	if err != nil {
		fatal("building section B: %v", err)
	}
	markReserved(secB, []int{15, 16, 35, 36})
	if err := m.AddSection(0, secB); err != nil {
		fatal("adding section B: %v", err)
	}

	balcony, err := layout.Curved(geometry.Point2D{X: 250, Y: 450}, m.Tiers[2], balconyTier, "Balcony Center", layout.CurvedParams{
		StartAngle: -60, EndAngle: 60, InnerRadius: 150, OuterRadius: 250, Rows: 4,
	})
	if err != nil {
		fatal("building balcony: %v", err)
	}
	if err := m.AddSection(2, balcony); err != nil {
		fatal("adding balcony: %v", err)
	}

	path := filepath.Join(*outDir, project.ExportFileName(m.Name))
	doc := project.New(m)
	if err := doc.Save(path); err != nil {
		fatal("writing %s: %v", path, err)
	}

	total := 0
	for i := range m.Tiers {
		total += len(m.Tiers[i].Seats())
	}
	fmt.Printf("Wrote %s: %d tiers, %d seats\n", path, len(m.Tiers), total)
}

// markReserved flags the given seat indexes in section order.
func markReserved(sec *venue.Section, indexes []int) {
	for _, i := range indexes {
		if i >= 0 && i < len(sec.Seats) {
			sec.Seats[i].Status = venue.StatusReserved
		}
	}
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
