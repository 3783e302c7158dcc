package debug

import (
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

// Charts 曲线绘制
// 每个试次一张图, 每个触点一条曲线。
type Charts struct {
	Record
}

// NewCharts 从导出结构构造绘制器
func NewCharts(r *Record) *Charts { return &Charts{Record: *r} }

// Render 格式化
func (c *Charts) Render(w io.Writer) error {
	page := components.NewPage()
	for trial, trialData := range c.Voltages {
		line := charts.NewLine()
		line.SetGlobalOptions(
			charts.WithInitializationOpts(opts.Initialization{
				Theme: types.ThemeWesteros,
			}),
			charts.WithTitleOpts(opts.Title{
				Title:    fmt.Sprintf("胞外电位曲线 试次(%d)", trial),
				Subtitle: fmt.Sprintf("各触点电位随时间变化曲线, sigma=%v, method=%s", c.Sigma, c.Method),
			}),
			charts.WithLegendOpts(opts.Legend{
				Type:   "scroll",
				Orient: "vertical",
				Right:  "10",
				Top:    "20",
				Bottom: "20",
			}),
			charts.WithXAxisOpts(opts.XAxis{
				SplitNumber: 20,
			}),
			charts.WithYAxisOpts(opts.YAxis{
				Scale: opts.Bool(true),
			}),
			charts.WithDataZoomOpts(opts.DataZoom{
				Type:       "inside",
				Start:      0,
				End:        100,
				XAxisIndex: []int{0},
			}),
			charts.WithAnimation(true),
		)
		line.SetXAxis(c.Times)
		items := make([][]opts.LineData, 0)
		series := make([]charts.SingleSeries, 0)
		for ci := range trialData {
			items = append(items, make([]opts.LineData, len(c.Times)))
			series = append(series, charts.SingleSeries{
				Name: c.Contacts[ci],
				Data: items[ci],
				Type: types.ChartLine,
			})
			series[ci].InitSeriesDefaultOpts(line.BaseConfiguration)
			for si, v := range trialData[ci] {
				items[ci][si].Value = v
			}
		}
		line.MultiSeries = series
		page.AddCharts(line)
	}
	return page.Render(w)
}

// Handler 发布到网页面
func (c *Charts) Handler(w http.ResponseWriter, _ *http.Request) {
	c.Render(w)
}

// Error 报告错误
func (c *Charts) Error(err error) { log.Println(err) }
