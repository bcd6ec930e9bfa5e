package exporter

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/ssj-sketch/Statuswindow/internal/model"
)

func sampleSheets() []model.Sheet {
	return []model.Sheet{
		{
			Name:   "월별요약",
			Header: []string{"항목", "값"},
			Rows: [][]any{
				{"총 사용액", int64(274200)},
				{"평균 거래액", 27420.0},
			},
		},
		{
			Name:   "상위가맹점",
			Header: []string{"가맹점명", "사용액", "거래건수", "비율(%)"},
			Rows: [][]any{
				{"롯데마트 잠실점", int64(80000), 1, 29.18},
			},
		},
	}
}

func openWorkbook(t *testing.T, path string) *excelize.File {
	t.Helper()

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func TestWriteDocument_SheetsAndRows(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "summary.xlsx")
	if err := WriteDocument(ExcelizeEngine{}, path, sampleSheets(), DefaultWriteOptions()); err != nil {
		t.Fatalf("WriteDocument: %v", err)
	}

	f := openWorkbook(t, path)
	if got, want := f.GetSheetList(), []string{"월별요약", "상위가맹점"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("sheets=%v, want %v", got, want)
	}

	rows, err := f.GetRows("월별요약")
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	want := [][]string{
		{"항목", "값"},
		{"총 사용액", "274200"},
		{"평균 거래액", "27420"},
	}
	if !reflect.DeepEqual(rows, want) {
		t.Fatalf("rows=%v, want %v", rows, want)
	}

	rows, err = f.GetRows("상위가맹점")
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rows) != 2 || rows[1][0] != "롯데마트 잠실점" || rows[1][3] != "29.18" {
		t.Fatalf("unexpected merchant rows: %v", rows)
	}
}

func TestWriteDocument_ColumnWidths(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "widths.xlsx")
	sheets := []model.Sheet{{
		Name:   "거래내역",
		Header: []string{"날짜", "가맹점", "메모"},
		Rows: [][]any{
			{"2024-01-15", "아주 아주 아주 긴 가맹점 이름이 들어가는 경우", ""},
		},
	}}
	if err := WriteDocument(ExcelizeEngine{}, path, sheets, DefaultWriteOptions()); err != nil {
		t.Fatalf("WriteDocument: %v", err)
	}

	f := openWorkbook(t, path)
	for col, want := range map[string]float64{"A": 12, "B": 20, "C": 4} {
		got, err := f.GetColWidth("거래내역", col)
		if err != nil {
			t.Fatalf("GetColWidth %s: %v", col, err)
		}
		if got != want {
			t.Fatalf("col %s width=%v, want %v", col, got, want)
		}
	}
}

func TestWriteDocument_DocProps(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "props.xlsx")
	if err := WriteDocument(ExcelizeEngine{}, path, sampleSheets(), DefaultWriteOptions()); err != nil {
		t.Fatalf("WriteDocument: %v", err)
	}

	props, err := openWorkbook(t, path).GetDocProps()
	if err != nil {
		t.Fatalf("GetDocProps: %v", err)
	}
	if props.Title != "props" || props.Creator != "cardreport" {
		t.Fatalf("props=%+v", props)
	}
	if props.Identifier != DocumentID("props.xlsx") {
		t.Fatalf("identifier=%q, want %q", props.Identifier, DocumentID("props.xlsx"))
	}
	if DocumentID("props.xlsx") == DocumentID("other.xlsx") {
		t.Fatalf("identifiers should differ per file name")
	}
}

func TestWriteDocument_InvalidSheets(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		sheets []model.Sheet
	}{
		{name: "empty", sheets: nil},
		{name: "blank name", sheets: []model.Sheet{{Name: " ", Header: []string{"a"}}}},
		{name: "duplicate", sheets: []model.Sheet{
			{Name: "Sheet", Header: []string{"a"}},
			{Name: "sheet", Header: []string{"a"}},
		}},
		{name: "no header", sheets: []model.Sheet{{Name: "a"}}},
		{name: "ragged", sheets: []model.Sheet{{Name: "a", Header: []string{"a", "b"}, Rows: [][]any{{1}}}}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			path := filepath.Join(t.TempDir(), "bad.xlsx")
			err := WriteDocument(ExcelizeEngine{}, path, tt.sheets, DefaultWriteOptions())
			if !errors.Is(err, ErrInvalidDocument) {
				t.Fatalf("err=%v, want ErrInvalidDocument", err)
			}
			if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
				t.Fatalf("file should not exist, stat err=%v", statErr)
			}
		})
	}
}

func TestWriteDocument_IOError(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing-dir", "out.xlsx")
	err := WriteDocument(ExcelizeEngine{}, path, sampleSheets(), DefaultWriteOptions())

	var ioErr *IOError
	if !errors.As(err, &ioErr) {
		t.Fatalf("err=%v, want *IOError", err)
	}
	if ioErr.Path != path || ioErr.Op != "save" {
		t.Fatalf("ioErr=%+v", ioErr)
	}
}

func TestWriteDocument_ClosesOnFailure(t *testing.T) {
	t.Parallel()

	engine := &fakeEngine{name: "fake", saveErr: errors.New("disk full")}
	err := WriteDocument(engine, "out.xlsx", sampleSheets(), DefaultWriteOptions())

	var ioErr *IOError
	if !errors.As(err, &ioErr) {
		t.Fatalf("err=%v, want *IOError", err)
	}
	if len(engine.workbooks) != 1 || !engine.workbooks[0].closed {
		t.Fatalf("workbook not closed")
	}
}

func TestWriteDocument_NilEngine(t *testing.T) {
	t.Parallel()

	err := WriteDocument(nil, "out.xlsx", sampleSheets(), DefaultWriteOptions())
	if !errors.Is(err, ErrCapabilityUnavailable) {
		t.Fatalf("err=%v, want ErrCapabilityUnavailable", err)
	}
}

func TestWriteDocument_RowOrder(t *testing.T) {
	t.Parallel()

	engine := &fakeEngine{name: "fake"}
	if err := WriteDocument(engine, "out.xlsx", sampleSheets(), DefaultWriteOptions()); err != nil {
		t.Fatalf("WriteDocument: %v", err)
	}
	wb := engine.workbooks[0]
	if !reflect.DeepEqual(wb.sheets, []string{"월별요약", "상위가맹점"}) {
		t.Fatalf("sheets=%v", wb.sheets)
	}
	// 表头 2 行 + 数据 3 行
	if wb.rows != 5 {
		t.Fatalf("rows=%d, want 5", wb.rows)
	}
	if wb.saved != "out.xlsx" || !wb.closed {
		t.Fatalf("saved=%q closed=%v", wb.saved, wb.closed)
	}
}
