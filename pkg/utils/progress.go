package utils

import (
	"fmt"
	"strings"
	"time"
)

// ProgressBar renders a single-line terminal progress bar with percent,
// item counts and an ETA estimate.
type ProgressBar struct {
	Total   int
	Prefix  string
	Length  int
	current int
	start   time.Time
}

// NewProgressBar creates a progress bar for total items. A zero or
// negative total disables all output.
func NewProgressBar(total int, prefix string) *ProgressBar {
	return &ProgressBar{
		Total:  total,
		Prefix: prefix,
		Length: 40,
		start:  time.Now(),
	}
}

// Update advances the bar by one step and redraws it.
func (p *ProgressBar) Update() {
	p.current++
	p.draw()
}

// Finish completes the bar, drawing the full state if any steps were
// skipped.
func (p *ProgressBar) Finish() {
	if p.Total <= 0 || p.current >= p.Total {
		return
	}
	p.current = p.Total
	p.draw()
}

func (p *ProgressBar) draw() {
	if p.Total <= 0 {
		return
	}
	if p.current > p.Total {
		p.current = p.Total
	}

	percent := p.current * 100 / p.Total
	filled := p.Length * p.current / p.Total
	bar := strings.Repeat("█", filled) + strings.Repeat("-", p.Length-filled)

	eta := "--"
	if p.current > 0 && p.current < p.Total {
		elapsed := time.Since(p.start).Seconds()
		remaining := elapsed / float64(p.current) * float64(p.Total-p.current)
		eta = fmt.Sprintf("%.1fs", remaining)
	}

	fmt.Printf("\r%s |%s| %d%% (%d/%d) ETA: %s", p.Prefix, bar, percent, p.current, p.Total, eta)
	if p.current >= p.Total {
		fmt.Println()
	}
}
