package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Style names used by the workbook writer
const (
	styleTitle    = "title"
	styleHeader   = "header"
	styleStandard = "standard"
	styleCount    = "count"
	styleCommand  = "command"
)

const (
	fontFamily = "IBM Plex Sans"
	textFormat = 49 // "@"
	tabColor   = "8DC3FC"
)

var cellBorder = []excelize.Border{
	{Type: "bottom", Color: "000000", Style: 1},
	{Type: "right", Color: "000000", Style: 1},
}

// styleTable maps each named style to its cell properties
var styleTable = map[string]excelize.Style{
	styleTitle: {
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Font:      &excelize.Font{Family: fontFamily, Size: 28},
	},
	styleHeader: {
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
		Font:      &excelize.Font{Family: fontFamily, Size: 14, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"002060"}},
	},
	styleStandard: {
		Border:    cellBorder,
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center", WrapText: true},
		Font:      &excelize.Font{Family: fontFamily, Size: 12},
		NumFmt:    textFormat,
	},
	styleCount: {
		Border:    cellBorder,
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
		Font:      &excelize.Font{Family: fontFamily, Size: 12},
		NumFmt:    textFormat,
	},
	styleCommand: {
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center", WrapText: true},
		Font:      &excelize.Font{Family: fontFamily, Size: 12},
		NumFmt:    textFormat,
	},
}

// registerStyles adds every entry of the style table to the workbook and
// returns the style IDs by name
func registerStyles(f *excelize.File) (map[string]int, error) {
	ids := make(map[string]int, len(styleTable))
	for name, style := range styleTable {
		id, err := f.NewStyle(&style)
		if err != nil {
			return nil, fmt.Errorf("registering style %s: %v", name, err)
		}
		ids[name] = id
	}
	return ids, nil
}
