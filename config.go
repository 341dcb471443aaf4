package chartcanvas

import (
	"io"

	"github.com/golang/freetype/truetype"
	chart "github.com/wcharczuk/go-chart/v2"
)

// Configuration is a declarative chart definition: anything that paints
// itself through a renderer provider. All go-chart chart structs satisfy it.
// The canvas treats configurations as opaque except for sizing: the known
// chart types are re-sized to the canvas dimensions on a copy before
// rendering, so off-screen output always matches the surface and the
// caller's struct is never mutated.
type Configuration interface {
	Render(rp chart.RendererProvider, w io.Writer) error
}

// sizedConfig returns a copy of cfg forced to the given dimensions, with
// defaultFont applied where the configuration carries none. Configurations
// of unknown concrete type are returned unchanged; they own their sizing.
func sizedConfig(cfg Configuration, width, height int, defaultFont *truetype.Font) Configuration {
	switch v := cfg.(type) {
	case chart.Chart:
		return sizeChart(v, width, height, defaultFont)
	case *chart.Chart:
		return sizeChart(*v, width, height, defaultFont)
	case chart.BarChart:
		return sizeBarChart(v, width, height, defaultFont)
	case *chart.BarChart:
		return sizeBarChart(*v, width, height, defaultFont)
	case chart.StackedBarChart:
		return sizeStackedBarChart(v, width, height, defaultFont)
	case *chart.StackedBarChart:
		return sizeStackedBarChart(*v, width, height, defaultFont)
	case chart.PieChart:
		return sizePieChart(v, width, height, defaultFont)
	case *chart.PieChart:
		return sizePieChart(*v, width, height, defaultFont)
	case chart.DonutChart:
		return sizeDonutChart(v, width, height, defaultFont)
	case *chart.DonutChart:
		return sizeDonutChart(*v, width, height, defaultFont)
	default:
		return cfg
	}
}

func sizeChart(c chart.Chart, width, height int, font *truetype.Font) chart.Chart {
	c.Width = width
	c.Height = height
	if c.Font == nil {
		c.Font = font
	}
	return c
}

func sizeBarChart(c chart.BarChart, width, height int, font *truetype.Font) chart.BarChart {
	c.Width = width
	c.Height = height
	if c.Font == nil {
		c.Font = font
	}
	return c
}

func sizeStackedBarChart(c chart.StackedBarChart, width, height int, font *truetype.Font) chart.StackedBarChart {
	c.Width = width
	c.Height = height
	if c.Font == nil {
		c.Font = font
	}
	return c
}

func sizePieChart(c chart.PieChart, width, height int, font *truetype.Font) chart.PieChart {
	c.Width = width
	c.Height = height
	if c.Font == nil {
		c.Font = font
	}
	return c
}

func sizeDonutChart(c chart.DonutChart, width, height int, font *truetype.Font) chart.DonutChart {
	c.Width = width
	c.Height = height
	if c.Font == nil {
		c.Font = font
	}
	return c
}
