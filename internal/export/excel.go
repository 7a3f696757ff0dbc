package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"stroydoc/internal/access"
)

// Workbook собирает книгу с одним листом: заголовок раздела,
// строка шапки и данные в порядке колонок схемы.
func Workbook(cat *access.Category, rows []map[string]any) ([]byte, error) {
	file := excelize.NewFile()

	sheet := cat.Slug
	file.SetSheetName("Sheet1", sheet)

	set := func(col, row int, value any) {
		cell, _ := excelize.CoordinatesToCellName(col, row)
		_ = file.SetCellValue(sheet, cell, value)
	}

	set(1, 1, cat.Title)

	headerRow := 3
	set(1, headerRow, "ID")
	for i, f := range cat.Fields {
		set(i+2, headerRow, f.Label)
	}

	for i, row := range rows {
		r := headerRow + 1 + i
		set(1, r, cellValue(row[cat.PK]))
		for j, f := range cat.Fields {
			set(j+2, r, cellValue(row[f.Column]))
		}
	}

	_ = file.SetColWidth(sheet, "A", "A", 10)
	if len(cat.Fields) > 0 {
		last, _ := excelize.ColumnNumberToName(len(cat.Fields) + 1)
		_ = file.SetColWidth(sheet, "B", last, 24)
	}

	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// Драйвер отдаёт NUMERIC и TEXT как []byte — приводим к строке,
// остальные типы excelize форматирует сам.
func cellValue(v any) any {
	switch val := v.(type) {
	case nil:
		return ""
	case []byte:
		return string(val)
	default:
		return v
	}
}
