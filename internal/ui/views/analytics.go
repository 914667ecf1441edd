package views

import (
	"github.com/hance08/dompet/internal/service"
	"github.com/hance08/dompet/internal/ui"
	"github.com/hance08/dompet/internal/utils"
	"github.com/pterm/pterm"
)

type AnalyticsView struct {
	theme     ui.Theme
	formatter *utils.Formatter
}

func NewAnalyticsView(theme ui.Theme, formatter *utils.Formatter) *AnalyticsView {
	return &AnalyticsView{theme: theme, formatter: formatter}
}

func (v *AnalyticsView) Render(agg service.AggregatedSeries) error {
	ui.PrintL1Title("Cash Flow")
	if err := v.renderSeries(agg.Income); err != nil {
		return err
	}
	return v.renderSeries(agg.Expense)
}

func (v *AnalyticsView) renderSeries(s service.Series) error {
	ui.PrintL2Title("%s", s.Name)

	if s.Len() == 0 {
		pterm.Warning.Printf("No %s data\n", s.Name)
		return nil
	}

	bars := make(pterm.Bars, 0, s.Len())
	tableData := pterm.TableData{{"", "Category", "Total", "Share"}}
	total := s.Total()

	for i, label := range s.Labels {
		bars = append(bars, pterm.Bar{
			Label: label,
			Value: int(s.Values[i].IntPart()),
		})

		swatch := "■"
		if rgb, err := pterm.NewRGBFromHEX(s.Colors[i]); err == nil {
			swatch = rgb.Sprint("■")
		}

		share := "-"
		if total.IsPositive() {
			share = s.Values[i].Mul(hundred).Div(total).StringFixed(1) + "%"
		}
		tableData = append(tableData, []string{swatch, label, v.formatter.Format(s.Values[i]), share})
	}

	if err := pterm.DefaultBarChart.WithHorizontal().WithShowValue().WithBars(bars).Render(); err != nil {
		return err
	}
	if err := v.theme.Table().WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Info.Printf("Total %s: %s\n", s.Name, v.formatter.Format(total))
	return nil
}
