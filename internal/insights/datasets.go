// Package insights holds the literal PM2.5 datasets shown on the Insights page and
// renders them as charts.
package insights

// ChartKind selects the chart type for a dataset.
type ChartKind string

const (
	ChartBar  ChartKind = "bar"
	ChartLine ChartKind = "line"
)

// Dataset is one chart with its caption.
type Dataset struct {
	Key     string
	Heading string
	Title   string
	XLabel  string
	YLabel  string
	Kind    ChartKind
	Labels  []string
	Values  []int
	Colors  []string
	Caption string
}

var datasets = []Dataset{
	{
		Key:     "cities",
		Heading: "Top 5 Polluted Cities",
		XLabel:  "City",
		YLabel:  "PM2.5",
		Kind:    ChartBar,
		Labels:  []string{"Delhi", "Mumbai", "Chennai", "Kolkata", "Hyderabad"},
		Values:  []int{140, 90, 60, 110, 85},
		Colors:  []string{"#fcbba1", "#fc9272", "#fb6a4a", "#de2d26", "#a50f15"},
		Caption: "Higher PM2.5 levels indicate poorer air quality, which can have serious health impacts, especially in metropolitan areas. Delhi has the highest PM2.5 level among the selected cities.",
	},
	{
		Key:     "seasons",
		Heading: "Seasonal Air Pollution",
		Title:   "PM2.5 Seasonal Variation",
		XLabel:  "Seasons",
		YLabel:  "Avg PM2.5",
		Kind:    ChartLine,
		Labels:  []string{"Winter", "Summer", "Monsoon", "Post-Monsoon"},
		Values:  []int{150, 90, 50, 100},
		Colors:  []string{"blue"},
		Caption: "Air pollution levels fluctuate across seasons, with winter experiencing the highest PM2.5 concentrations due to increased heating, industrial emissions, and weather conditions that trap pollutants near the ground.",
	},
	{
		Key:     "traffic",
		Heading: "Impact of Traffic Density on Air Pollution",
		Title:   "Traffic Density vs PM2.5",
		XLabel:  "Traffic Density",
		YLabel:  "PM2.5 Level",
		Kind:    ChartBar,
		Labels:  []string{"Low", "Medium", "High", "Very High"},
		Values:  []int{50, 85, 120, 160},
		Colors:  []string{"#c6dbef", "#6baed6", "#2171b5", "#08306b"},
		Caption: "Higher traffic density correlates with higher air pollution levels. Areas with very high traffic congestion tend to have nearly 3x more PM2.5 pollution than low-density areas. Implementing better traffic management can help reduce pollution.",
	},
	{
		Key:     "areas",
		Heading: "Industrial vs Residential Pollution Levels",
		Title:   "Pollution Levels: Industrial vs Residential",
		XLabel:  "Area Type",
		YLabel:  "PM2.5 Level",
		Kind:    ChartBar,
		Labels:  []string{"Residential", "Commercial", "Industrial"},
		Values:  []int{60, 100, 180},
		Colors:  []string{"#c7e9c0", "#74c476", "#238b45"},
		Caption: "Industrial areas experience significantly higher pollution than residential areas, often exceeding 180 µg/m³ in PM2.5 levels. This highlights the need for stricter regulations and pollution control measures in heavily industrialized zones.",
	},
}

// Datasets returns the charts in page order. The slice is a copy.
func Datasets() []Dataset {
	out := make([]Dataset, len(datasets))
	copy(out, datasets)
	return out
}

// Find looks a dataset up by key.
func Find(key string) (Dataset, bool) {
	for _, d := range datasets {
		if d.Key == key {
			return d, true
		}
	}
	return Dataset{}, false
}

func (d Dataset) colorAt(i int) string {
	if len(d.Colors) == 0 {
		return ""
	}
	return d.Colors[i%len(d.Colors)]
}
