package renderer

import (
	"bytes"
	"fmt"
	"time"

	"github.com/olekukonko/tablewriter"
)

// WorkerStats counts the work done by one render worker
type WorkerStats struct {
	Worker         int
	Iterations     int
	PhotonsEmitted int
	SurfacePhotons int // Photons stored on lambertian surfaces
	VolumePhotons  int // Photons stored in the medium
	EyePaths       int
	Busy           time.Duration // Time spent processing iterations
}

// PhotonsStored returns surface plus volume photons
func (s WorkerStats) PhotonsStored() int {
	return s.SurfacePhotons + s.VolumePhotons
}

func (s *WorkerStats) add(other WorkerStats) {
	s.Iterations += other.Iterations
	s.PhotonsEmitted += other.PhotonsEmitted
	s.SurfacePhotons += other.SurfacePhotons
	s.VolumePhotons += other.VolumePhotons
	s.EyePaths += other.EyePaths
	s.Busy += other.Busy
}

// RenderStats summarizes a render
type RenderStats struct {
	Workers []WorkerStats
	Elapsed time.Duration // Wall time of the render
}

// Total sums the per-worker statistics
func (rs RenderStats) Total() WorkerStats {
	total := WorkerStats{Worker: -1}
	for _, w := range rs.Workers {
		total.add(w)
	}
	return total
}

// Table renders the statistics as a text table with a total row
func (rs RenderStats) Table() string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Worker", "Iterations", "Photons emitted", "Surface photons", "Volume photons", "Eye paths", "Busy"})
	for _, w := range rs.Workers {
		table.Append([]string{
			fmt.Sprintf("%d", w.Worker),
			fmt.Sprintf("%d", w.Iterations),
			fmt.Sprintf("%d", w.PhotonsEmitted),
			fmt.Sprintf("%d", w.SurfacePhotons),
			fmt.Sprintf("%d", w.VolumePhotons),
			fmt.Sprintf("%d", w.EyePaths),
			w.Busy.Round(time.Millisecond).String(),
		})
	}
	total := rs.Total()
	table.SetFooter([]string{
		"TOTAL",
		fmt.Sprintf("%d", total.Iterations),
		fmt.Sprintf("%d", total.PhotonsEmitted),
		fmt.Sprintf("%d", total.SurfacePhotons),
		fmt.Sprintf("%d", total.VolumePhotons),
		fmt.Sprintf("%d", total.EyePaths),
		rs.Elapsed.Round(time.Millisecond).String(),
	})
	table.Render()
	return buf.String()
}
