package exporter

import (
	"github.com/xuri/excelize/v2"
)

// ExcelizeEngineName excelize 引擎名称
const ExcelizeEngineName = "excelize"

func init() {
	RegisterEngine(ExcelizeEngine{})
}

// ExcelizeEngine 基于 excelize 的 xlsx 写入引擎
type ExcelizeEngine struct{}

// Name 引擎名称
func (ExcelizeEngine) Name() string { return ExcelizeEngineName }

// NewWorkbook 新建空工作簿
func (ExcelizeEngine) NewWorkbook() (Workbook, error) {
	return &excelizeWorkbook{f: excelize.NewFile(), headerStyle: -1}, nil
}

type excelizeWorkbook struct {
	f           *excelize.File
	sheets      int
	headerStyle int
}

func (w *excelizeWorkbook) AddSheet(name string) error {
	var err error
	if w.sheets == 0 {
		// 新建文件自带 Sheet1，直接改名
		err = w.f.SetSheetName("Sheet1", name)
	} else {
		_, err = w.f.NewSheet(name)
	}
	if err != nil {
		return err
	}
	w.sheets++
	return nil
}

func (w *excelizeWorkbook) SetRow(sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return w.f.SetSheetRow(sheet, cell, &values)
}

func (w *excelizeWorkbook) SetHeaderStyle(sheet string, columns int) error {
	if columns <= 0 {
		return nil
	}
	if w.headerStyle < 0 {
		style, err := w.f.NewStyle(&excelize.Style{
			Font:      &excelize.Font{Bold: true},
			Alignment: &excelize.Alignment{Horizontal: "center"},
		})
		if err != nil {
			return err
		}
		w.headerStyle = style
	}
	end, err := excelize.CoordinatesToCellName(columns, 1)
	if err != nil {
		return err
	}
	return w.f.SetCellStyle(sheet, "A1", end, w.headerStyle)
}

func (w *excelizeWorkbook) SetColWidth(sheet string, col int, width float64) error {
	name, err := excelize.ColumnNumberToName(col)
	if err != nil {
		return err
	}
	return w.f.SetColWidth(sheet, name, name, width)
}

func (w *excelizeWorkbook) SetProperties(props DocProperties) error {
	return w.f.SetDocProps(&excelize.DocProperties{
		Title:      props.Title,
		Subject:    props.Subject,
		Creator:    props.Creator,
		Identifier: props.Identifier,
		Language:   props.Language,
	})
}

func (w *excelizeWorkbook) SaveAs(path string) error {
	if w.sheets > 0 {
		w.f.SetActiveSheet(0)
	}
	return w.f.SaveAs(path)
}

func (w *excelizeWorkbook) Close() error {
	return w.f.Close()
}
