package renderer

import (
	"fmt"
	"io"
	"time"

	"github.com/olekukonko/tablewriter"
)

// RenderStats counts the outcome of primary rays over a set of pixels
type RenderStats struct {
	Pixels int // Pixels rendered
	Hits   int // Primary rays that hit a shape
	Misses int // Primary rays that fell through to the background
}

// Add returns the sum of two stats
func (s RenderStats) Add(other RenderStats) RenderStats {
	return RenderStats{
		Pixels: s.Pixels + other.Pixels,
		Hits:   s.Hits + other.Hits,
		Misses: s.Misses + other.Misses,
	}
}

// WorkerStats holds the totals of one worker
type WorkerStats struct {
	ID    int
	Tiles int
	RenderStats
}

// FrameStats summarizes a complete render
type FrameStats struct {
	Width, Height    int
	Tiles            int
	Workers          []WorkerStats
	Total            RenderStats
	RenderTime       time.Duration
	AverageLuminance float64 // Mean luma of the clamped frame
}

// Table writes a per-worker breakdown of the frame statistics
func (fs FrameStats) Table(w io.Writer) {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Worker", "Tiles", "Pixels", "Hits", "Misses", "% of frame"})

	for _, ws := range fs.Workers {
		table.Append([]string{
			fmt.Sprintf("%d", ws.ID),
			fmt.Sprintf("%d", ws.Tiles),
			fmt.Sprintf("%d", ws.Pixels),
			fmt.Sprintf("%d", ws.Hits),
			fmt.Sprintf("%d", ws.Misses),
			fmt.Sprintf("%02.1f %%", percent(ws.Pixels, fs.Total.Pixels)),
		})
	}
	table.SetFooter([]string{
		"TOTAL",
		fmt.Sprintf("%d", fs.Tiles),
		fmt.Sprintf("%d", fs.Total.Pixels),
		fmt.Sprintf("%d", fs.Total.Hits),
		fmt.Sprintf("%d", fs.Total.Misses),
		fs.RenderTime.String(),
	})
	table.SetCaption(true, fmt.Sprintf("%dx%d, average luminance %.3f", fs.Width, fs.Height, fs.AverageLuminance))

	table.Render()
}

func percent(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return 100 * float64(part) / float64(whole)
}
