package renderer

import "time"

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels     int           // Total number of pixels rendered
	TotalSamples    int           // Total number of camera samples traced
	AbsorbedPaths   int           // Paths that ran out of depth
	DegeneratePaths int           // Paths dropped on a zero-length bounce direction
	Workers         int           // Number of workers that rendered the frame
	Duration        time.Duration // Wall time for the frame
}

// add accumulates counters from a partial result
func (s *RenderStats) add(other RenderStats) {
	s.TotalPixels += other.TotalPixels
	s.TotalSamples += other.TotalSamples
	s.AbsorbedPaths += other.AbsorbedPaths
	s.DegeneratePaths += other.DegeneratePaths
}

// AverageSamples returns the mean number of samples per pixel
func (s RenderStats) AverageSamples() float64 {
	if s.TotalPixels == 0 {
		return 0
	}
	return float64(s.TotalSamples) / float64(s.TotalPixels)
}

// AbsorbedFraction returns the share of samples whose path was absorbed
func (s RenderStats) AbsorbedFraction() float64 {
	if s.TotalSamples == 0 {
		return 0
	}
	return float64(s.AbsorbedPaths) / float64(s.TotalSamples)
}
