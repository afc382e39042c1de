package report

import (
	"fmt"
	"strings"

	"panorama/rules"

	"github.com/xuri/excelize/v2"
)

// Sheet names of the recurring profile workbook
const (
	ReviewSheet   = "Recurring Profiles"
	CommandsSheet = "Set Commands"
)

const (
	reviewTitle      = "Recurring Security Profiles Not Grouped"
	reviewFirstRow   = 3 // below the title and header rows
	commandsFirstRow = 2
	// excelize rejects widths above 255
	commandsColWidth = 255
)

// WriteRecurringWorkbook writes the review sheet for the qualifying groups and
// the set commands sheet for their command blocks. Groups and blocks are
// written in the order given. The parent directory must already exist.
func WriteRecurringWorkbook(filePath string, groups []*rules.Group, blocks []rules.CommandBlock) error {
	f := excelize.NewFile()
	defer f.Close()

	styles, err := registerStyles(f)
	if err != nil {
		return err
	}
	if err := writeReviewSheet(f, styles, groups); err != nil {
		return fmt.Errorf("writing %s sheet: %v", ReviewSheet, err)
	}
	if err := writeCommandsSheet(f, styles, blocks); err != nil {
		return fmt.Errorf("writing %s sheet: %v", CommandsSheet, err)
	}
	f.SetActiveSheet(0)

	if err := f.SaveAs(filePath); err != nil {
		return fmt.Errorf("%w %s: %v", ErrWrite, filePath, err)
	}
	return nil
}

func writeReviewSheet(f *excelize.File, styles map[string]int, groups []*rules.Group) error {
	if err := f.SetSheetName("Sheet1", ReviewSheet); err != nil {
		return err
	}
	if err := setupSheet(f, ReviewSheet, 2, 40); err != nil {
		return err
	}
	for col, width := range map[string]float64{"A": 60, "B": 8, "C": 190} {
		if err := f.SetColWidth(ReviewSheet, col, col, width); err != nil {
			return err
		}
	}

	if err := f.MergeCell(ReviewSheet, "A1", "C1"); err != nil {
		return err
	}
	if err := setCell(f, ReviewSheet, "A1", reviewTitle, styles[styleTitle]); err != nil {
		return err
	}
	if err := f.SetCellStyle(ReviewSheet, "A1", "C1", styles[styleTitle]); err != nil {
		return err
	}
	if err := f.SetRowHeight(ReviewSheet, 1, 60); err != nil {
		return err
	}

	headers := []string{"Config Grouping", "Count", "Rules Associated With Config Grouping"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 2)
		if err := setCell(f, ReviewSheet, cell, header, styles[styleHeader]); err != nil {
			return err
		}
	}
	if err := f.SetRowHeight(ReviewSheet, 2, 30); err != nil {
		return err
	}

	for i, group := range groups {
		row := reviewFirstRow + i
		values := []struct {
			value any
			style string
		}{
			{strings.TrimSpace(group.Signature), styleStandard},
			{group.Count, styleCount},
			{rules.FormatRuleList(group.Rules), styleStandard},
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := setCell(f, ReviewSheet, cell, v.value, styles[v.style]); err != nil {
				return err
			}
		}
		if err := f.SetRowHeight(ReviewSheet, row, 115); err != nil {
			return err
		}
	}
	return nil
}

func writeCommandsSheet(f *excelize.File, styles map[string]int, blocks []rules.CommandBlock) error {
	if _, err := f.NewSheet(CommandsSheet); err != nil {
		return err
	}
	if err := setupSheet(f, CommandsSheet, 1, 0); err != nil {
		return err
	}
	if err := f.SetColWidth(CommandsSheet, "A", "A", commandsColWidth); err != nil {
		return err
	}
	if err := setCell(f, CommandsSheet, "A1", CommandsSheet, styles[styleTitle]); err != nil {
		return err
	}
	if err := f.SetRowHeight(CommandsSheet, 1, 60); err != nil {
		return err
	}

	row := commandsFirstRow
	for _, block := range blocks {
		lines := append([]string{block.Create}, block.Assign...)
		for _, line := range lines {
			cell, _ := excelize.CoordinatesToCellName(1, row)
			if err := setCell(f, CommandsSheet, cell, line, styles[styleCommand]); err != nil {
				return err
			}
			row++
		}
		// blank separator row
		row++
	}
	return nil
}

// setupSheet hides gridlines, colors the tab and freezes the header rows.
// A zero rowHeight keeps the default row height.
func setupSheet(f *excelize.File, sheet string, frozenRows int, rowHeight float64) error {
	showGridLines := false
	if err := f.SetSheetView(sheet, -1, &excelize.ViewOptions{ShowGridLines: &showGridLines}); err != nil {
		return err
	}

	color := tabColor
	props := &excelize.SheetPropsOptions{TabColorRGB: &color}
	if rowHeight > 0 {
		props.DefaultRowHeight = &rowHeight
	}
	if err := f.SetSheetProps(sheet, props); err != nil {
		return err
	}

	topLeft, _ := excelize.CoordinatesToCellName(1, frozenRows+1)
	return f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      frozenRows,
		TopLeftCell: topLeft,
		ActivePane:  "bottomLeft",
	})
}

func setCell(f *excelize.File, sheet, cell string, value any, style int) error {
	if err := f.SetCellValue(sheet, cell, value); err != nil {
		return err
	}
	return f.SetCellStyle(sheet, cell, cell, style)
}
