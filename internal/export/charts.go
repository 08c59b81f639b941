package export

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"wastewatch.io/internal/dataset"
)

// rankingsChartLimit keeps the bar chart readable; the full table is in the
// workbook.
const rankingsChartLimit = 25

var clusterColors = []color.RGBA{
	{R: 198, G: 40, B: 40, A: 255},
	{R: 46, G: 125, B: 50, A: 255},
	{R: 21, G: 101, B: 192, A: 255},
	{R: 255, G: 143, B: 0, A: 255},
	{R: 106, G: 27, B: 154, A: 255},
}

// WriteRankingsChart renders the highest-waste countries as a bar chart.
func WriteRankingsChart(manager *dataset.Manager, path string) error {
	rankings := manager.Rankings("highest", rankingsChartLimit)
	if len(rankings) == 0 {
		return errors.New("no countries to chart")
	}

	p := plot.New()
	p.Title.Text = "Highest Food Waste Estimates"
	p.X.Label.Text = "Country"
	p.Y.Label.Text = "Combined estimate (kg/capita/year)"

	values := make(plotter.Values, len(rankings))
	labels := make([]string, len(rankings))
	for i, entry := range rankings {
		values[i] = entry.CombinedKgPerCapita
		labels[i] = entry.Name
	}

	bars, err := plotter.NewBarChart(values, vg.Points(20))
	if err != nil {
		return err
	}
	bars.Color = color.RGBA{R: 70, G: 130, B: 180, A: 255}
	bars.LineStyle.Width = vg.Length(0)

	p.Add(bars, plotter.NewGrid())
	p.NominalX(labels...)
	p.X.Tick.Label.Rotation = math.Pi / 3
	p.X.Tick.Label.YAlign = draw.YCenter
	p.X.Tick.Label.XAlign = draw.XRight
	p.Y.Min = 0

	return p.Save(16*vg.Inch, 8*vg.Inch, path)
}

// WriteClusterChart renders the household/retail waste profile of every
// country, colored by cluster, with a cross at each cluster's mean profile.
// Countries missing either sector estimate are left out.
func WriteClusterChart(manager *dataset.Manager, path string) error {
	countries := manager.GetCountries()
	clusterData := manager.Clusters()
	if len(clusterData.Clusters) == 0 {
		return errors.New("no cluster assignments to chart")
	}

	p := plot.New()
	p.Title.Text = "Country Clusters by Waste Profile"
	p.X.Label.Text = "Household estimate (kg/capita/year)"
	p.Y.Label.Text = "Retail estimate (kg/capita/year)"

	for _, cluster := range clusterData.Clusters {
		points := make(plotter.XYs, 0, cluster.Size)
		for _, country := range countries {
			if country.Cluster != cluster.Label ||
				country.HouseholdKgPerCapita == nil || country.RetailKgPerCapita == nil {
				continue
			}
			points = append(points, plotter.XY{
				X: *country.HouseholdKgPerCapita,
				Y: *country.RetailKgPerCapita,
			})
		}

		scatter, err := plotter.NewScatter(points)
		if err != nil {
			return err
		}
		scatter.GlyphStyle.Color = clusterColors[cluster.Label%len(clusterColors)]
		scatter.GlyphStyle.Radius = vg.Points(4)
		scatter.GlyphStyle.Shape = draw.CircleGlyph{}

		p.Add(scatter)
		p.Legend.Add(fmt.Sprintf("cluster %d", cluster.Label), scatter)
	}

	means := make(plotter.XYs, len(clusterData.Clusters))
	for i, cluster := range clusterData.Clusters {
		means[i] = plotter.XY{X: cluster.MeanHousehold, Y: cluster.MeanRetail}
	}
	centers, err := plotter.NewScatter(means)
	if err != nil {
		return err
	}
	centers.GlyphStyle.Shape = draw.CrossGlyph{}
	centers.GlyphStyle.Radius = vg.Points(6)
	centers.GlyphStyle.Color = color.RGBA{A: 255}

	p.Add(centers, plotter.NewGrid())
	p.Legend.Top = true

	return p.Save(10*vg.Inch, 8*vg.Inch, path)
}
