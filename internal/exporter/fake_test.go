package exporter

import (
	"errors"
	"path/filepath"
	"sync"
)

// fakeEngine 记录调用的内存引擎
type fakeEngine struct {
	name    string
	saveErr error
	failOn  string // 保存到该文件名时返回 saveErr

	mu        sync.Mutex
	workbooks []*fakeWorkbook
}

func (e *fakeEngine) Name() string { return e.name }

func (e *fakeEngine) NewWorkbook() (Workbook, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	wb := &fakeWorkbook{engine: e, widths: map[string]map[int]float64{}}
	e.workbooks = append(e.workbooks, wb)
	return wb, nil
}

type fakeWorkbook struct {
	engine *fakeEngine
	sheets []string
	rows   int
	widths map[string]map[int]float64
	props  DocProperties
	saved  string
	closed bool
}

func (w *fakeWorkbook) AddSheet(name string) error {
	w.sheets = append(w.sheets, name)
	w.widths[name] = map[int]float64{}
	return nil
}

func (w *fakeWorkbook) SetRow(sheet string, row int, values []any) error {
	w.rows++
	return nil
}

func (w *fakeWorkbook) SetHeaderStyle(sheet string, columns int) error { return nil }

func (w *fakeWorkbook) SetColWidth(sheet string, col int, width float64) error {
	if _, ok := w.widths[sheet]; !ok {
		return errors.New("no such sheet")
	}
	w.widths[sheet][col] = width
	return nil
}

func (w *fakeWorkbook) SetProperties(props DocProperties) error {
	w.props = props
	return nil
}

func (w *fakeWorkbook) SaveAs(path string) error {
	if w.engine.saveErr != nil && (w.engine.failOn == "" || w.engine.failOn == filepath.Base(path)) {
		return w.engine.saveErr
	}
	w.saved = path
	return nil
}

func (w *fakeWorkbook) Close() error {
	w.closed = true
	return nil
}
