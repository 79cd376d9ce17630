package output

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Series is a single line on a chart.
type Series struct {
	Name   string
	Points []float64
	Color  lipgloss.Color
}

// Chart renders one or more series as an ASCII line chart with a
// dollar-formatted Y axis.
type Chart struct {
	Title      string
	Series     []*Series
	Labels     []string // X-axis labels
	Width      int
	Height     int
	ShowLegend bool
	XAxisLabel string
}

// NewChart creates a chart with default dimensions.
func NewChart(title string) *Chart {
	return &Chart{
		Title:      title,
		Width:      72,
		Height:     14,
		ShowLegend: true,
	}
}

// AddSeries appends a data series.
func (c *Chart) AddSeries(name string, points []float64, color lipgloss.Color) *Chart {
	c.Series = append(c.Series, &Series{Name: name, Points: points, Color: color})
	return c
}

// WithLabels sets the X-axis labels.
func (c *Chart) WithLabels(labels []string) *Chart {
	c.Labels = labels
	return c
}

// WithAxisLabel sets the X-axis caption.
func (c *Chart) WithAxisLabel(label string) *Chart {
	c.XAxisLabel = label
	return c
}

// Render returns the styled chart.
func (c *Chart) Render() string {
	if len(c.Series) == 0 {
		return MutedStyle.Render("No data to display")
	}

	var content strings.Builder

	if c.Title != "" {
		content.WriteString(TitleStyle.Render(c.Title))
		content.WriteString("\n\n")
	}

	minVal, maxVal := c.bounds()
	content.WriteString(c.renderGrid(minVal, maxVal))

	if c.XAxisLabel != "" {
		content.WriteString("\n")
		content.WriteString(MutedStyle.Italic(true).Render(c.XAxisLabel))
	}

	if c.ShowLegend && len(c.Series) > 1 {
		content.WriteString("\n\n")
		content.WriteString(c.renderLegend())
	}

	return content.String()
}

// bounds finds the value range across all series, padded by 10%.
func (c *Chart) bounds() (float64, float64) {
	minVal := math.Inf(1)
	maxVal := math.Inf(-1)

	for _, series := range c.Series {
		for _, point := range series.Points {
			minVal = math.Min(minVal, point)
			maxVal = math.Max(maxVal, point)
		}
	}
	if math.IsInf(minVal, 1) {
		return 0, 0
	}

	padding := (maxVal - minVal) * 0.1
	return minVal - padding, maxVal + padding
}

func (c *Chart) renderGrid(minVal, maxVal float64) string {
	yAxisWidth := 10
	chartWidth := c.Width - yAxisWidth
	valueRange := maxVal - minVal
	if valueRange == 0 {
		valueRange = 1
	}

	grid := make([][]rune, c.Height)
	for i := range grid {
		grid[i] = make([]rune, chartWidth)
		for j := range grid[i] {
			grid[i][j] = ' '
		}
	}

	for seriesIdx, series := range c.Series {
		if len(series.Points) < 2 {
			continue
		}
		pointChar := seriesChar(seriesIdx)

		for i, point := range series.Points {
			x := int(float64(i) / float64(len(series.Points)-1) * float64(chartWidth-1))
			y := c.Height - 1 - int((point-minVal)/valueRange*float64(c.Height-1))

			if x >= 0 && x < chartWidth && y >= 0 && y < c.Height {
				grid[y][x] = pointChar
			}

			if i > 0 {
				prevX := int(float64(i-1) / float64(len(series.Points)-1) * float64(chartWidth-1))
				prevY := c.Height - 1 - int((series.Points[i-1]-minVal)/valueRange*float64(c.Height-1))
				drawLine(grid, prevX, prevY, x, y, pointChar)
			}
		}
	}

	var out strings.Builder
	yAxisStyle := MutedStyle.Width(yAxisWidth).Align(lipgloss.Right)

	for i, row := range grid {
		yValue := maxVal - (float64(i)/float64(c.Height-1))*(maxVal-minVal)
		out.WriteString(yAxisStyle.Render(formatChartValue(yValue)))
		out.WriteString(" │ ")
		out.WriteString(string(row))
		out.WriteString("\n")
	}

	out.WriteString(strings.Repeat(" ", yAxisWidth))
	out.WriteString(" └")
	out.WriteString(strings.Repeat("─", chartWidth))
	out.WriteString("\n")

	if len(c.Labels) > 0 {
		out.WriteString(c.renderXAxisLabels(yAxisWidth, chartWidth))
	}

	return out.String()
}

func seriesChar(index int) rune {
	chars := []rune{'●', '■', '▲', '♦'}
	return chars[index%len(chars)]
}

// drawLine connects two grid points using Bresenham's algorithm,
// filling only empty cells so plotted points stay visible.
func drawLine(grid [][]rune, x0, y0, x1, y1 int, char rune) {
	dx := abs(x1 - x0)
	dy := abs(y1 - y0)

	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}

	err := dx - dy
	x, y := x0, y0

	for {
		if y >= 0 && y < len(grid) && x >= 0 && x < len(grid[0]) {
			if grid[y][x] == ' ' {
				grid[y][x] = char
			}
		}

		if x == x1 && y == y1 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}

func (c *Chart) renderXAxisLabels(yAxisWidth, chartWidth int) string {
	maxLabels := 5
	step := len(c.Labels) / maxLabels
	if step == 0 {
		step = 1
	}

	var out strings.Builder
	out.WriteString(strings.Repeat(" ", yAxisWidth+3))

	for i := 0; i < len(c.Labels); i += step {
		if i > 0 {
			spacing := chartWidth / maxLabels
			out.WriteString(strings.Repeat(" ", max(spacing-len(c.Labels[i-step]), 1)))
		}
		out.WriteString(MutedStyle.Render(c.Labels[i]))
	}

	return out.String()
}

func (c *Chart) renderLegend() string {
	var items []string
	for i, series := range c.Series {
		symbol := lipgloss.NewStyle().Foreground(series.Color).Render(string(seriesChar(i)))
		items = append(items, fmt.Sprintf("%s %s", symbol, series.Name))
	}
	return MutedStyle.Render("Legend: " + strings.Join(items, " • "))
}

func formatChartValue(value float64) string {
	if math.Abs(value) >= 1000 {
		return fmt.Sprintf("$%.1fK", value/1000)
	}
	return fmt.Sprintf("$%.0f", value)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
