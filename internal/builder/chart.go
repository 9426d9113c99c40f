package builder

import (
	"fmt"

	"github.com/dgallion1/pptx-export-mcp/internal/deck"
	"github.com/dgallion1/pptx-export-mcp/internal/pptx"
)

const defaultSeriesName = "Series"

func (b *Builder) addChart(slide *pptx.Slide, el deck.Element) error {
	chartType, err := payloadString("chartType", el.ChartType)
	if err != nil {
		return err
	}
	series, err := payloadArray("chartData", el.ChartData)
	if err != nil {
		return err
	}
	if chartType == "" || len(series) == 0 {
		return nil
	}
	opts, err := payloadOptions(el.Options)
	if err != nil {
		return err
	}
	data := pptx.ChartData{Title: opts.str("title")}
	if v, ok := opts["showLegend"].(bool); ok {
		data.Legend = &v
	}

	for i, raw := range series {
		m, ok := raw.(map[string]any)
		if !ok {
			return fmt.Errorf("chartData[%d] is %T, want an object", i, raw)
		}
		// Categories come from the first series only.
		if i == 0 {
			labels, err := stringList(m["labels"])
			if err != nil {
				return fmt.Errorf("chartData[0].labels: %w", err)
			}
			data.Categories = labels
		}
		values, err := numberList(m["values"])
		if err != nil {
			return fmt.Errorf("chartData[%d].values: %w", i, err)
		}
		sizes, err := numberList(m["sizes"])
		if err != nil {
			return fmt.Errorf("chartData[%d].sizes: %w", i, err)
		}
		name := formatValue(m["name"])
		if name == "" {
			name = defaultSeriesName
		}
		data.Series = append(data.Series, pptx.Series{Name: name, Values: values, Sizes: sizes})
	}

	return slide.AddChart(ChartKind(chartType), opts.rect(chartBox), data)
}

func stringList(v any) ([]string, error) {
	if v == nil {
		return nil, nil
	}
	items, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("got %T, want an array", v)
	}
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = formatValue(item)
	}
	return out, nil
}

func numberList(v any) ([]float64, error) {
	if v == nil {
		return nil, nil
	}
	items, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("got %T, want an array", v)
	}
	out := make([]float64, len(items))
	for i, item := range items {
		f, ok := toFloat(item)
		if !ok {
			return nil, fmt.Errorf("item %d (%v) is not a number", i, item)
		}
		out[i] = f
	}
	return out, nil
}
