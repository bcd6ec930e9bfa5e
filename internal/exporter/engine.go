package exporter

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// ErrCapabilityUnavailable 配置的表格写入引擎不可用
var ErrCapabilityUnavailable = errors.New("spreadsheet engine unavailable")

// DocProperties 文档属性
type DocProperties struct {
	Title      string
	Subject    string
	Creator    string
	Identifier string
	Language   string
}

// Workbook 一个正在构建的工作簿；行、列均从 1 开始
type Workbook interface {
	AddSheet(name string) error
	SetRow(sheet string, row int, values []any) error
	SetHeaderStyle(sheet string, columns int) error
	SetColWidth(sheet string, col int, width float64) error
	SetProperties(props DocProperties) error
	SaveAs(path string) error
	Close() error
}

// Engine 表格写入能力
type Engine interface {
	Name() string
	NewWorkbook() (Workbook, error)
}

var (
	enginesMu sync.RWMutex
	engines   = map[string]Engine{}
)

// RegisterEngine 按名称注册写入引擎，同名覆盖
func RegisterEngine(e Engine) {
	enginesMu.Lock()
	defer enginesMu.Unlock()
	engines[strings.ToLower(e.Name())] = e
}

// LookupEngine 按名称查找写入引擎
func LookupEngine(name string) (Engine, error) {
	enginesMu.RLock()
	defer enginesMu.RUnlock()
	e, ok := engines[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrCapabilityUnavailable, name)
	}
	return e, nil
}

// EngineNames 已注册的引擎名称（排序）
func EngineNames() []string {
	enginesMu.RLock()
	defer enginesMu.RUnlock()
	names := make([]string, 0, len(engines))
	for name := range engines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
