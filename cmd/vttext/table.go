package main

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"vttext/internal/vtt"
)

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

func renderTable(headers []string, rows [][]string, aligns []columnAlignment, colorize bool) string {
	columns := len(headers)

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	if colorize {
		tw.Style().Color.Header = text.Colors{text.Bold, text.FgCyan}
	}

	header := make(table.Row, columns)
	for i := 0; i < columns; i++ {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	columnConfigs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
			align = text.AlignRight
		}
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render()
}

func statsRows(stats vtt.Stats) [][]string {
	rows := make([][]string, 0, len(vtt.Kinds)+4)
	rows = append(rows, []string{"lines read", strconv.Itoa(stats.Lines)})
	for _, kind := range vtt.Kinds {
		rows = append(rows, []string{kind.String(), strconv.Itoa(stats.ByKind[kind])})
	}
	rows = append(rows,
		[]string{"emptied by cleaning", strconv.Itoa(stats.Emptied)},
		[]string{"duplicates dropped", strconv.Itoa(stats.Duplicates)},
		[]string{"captions emitted", strconv.Itoa(stats.Emitted)},
	)
	return rows
}

func renderStats(stats vtt.Stats, colorize bool) string {
	return renderTable([]string{"Metric", "Count"}, statsRows(stats), []columnAlignment{alignLeft, alignRight}, colorize)
}
