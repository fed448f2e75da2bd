package charts

const (
	// ChartHeightRatio determines chart height as width/ChartHeightRatio.
	ChartHeightRatio = 4

	// MinChartHeight is the floor for timeseries chart height.
	MinChartHeight = 8
)
