package exporter

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/ssj-sketch/Statuswindow/internal/model"
)

// 列宽默认值
const (
	DefaultColumnPadding  = 2
	DefaultMaxColumnWidth = 20
)

// ColumnOptions 自动列宽参数
type ColumnOptions struct {
	Padding  float64
	MaxWidth float64
}

// DefaultColumnOptions 默认列宽参数
func DefaultColumnOptions() ColumnOptions {
	return ColumnOptions{Padding: DefaultColumnPadding, MaxWidth: DefaultMaxColumnWidth}
}

func (o ColumnOptions) normalized() ColumnOptions {
	if o.Padding < 0 {
		o.Padding = 0
	}
	if o.MaxWidth <= 0 {
		o.MaxWidth = DefaultMaxColumnWidth
	}
	return o
}

// ColumnWidths 计算每列宽度：表头与数据中最长显示文本的字符数 + padding，不超过 MaxWidth
//
// 无法转换为文本的单元格按长度 0 处理并跳过。
func ColumnWidths(sheet model.Sheet, opts ColumnOptions) []float64 {
	opts = opts.normalized()

	widths := make([]float64, sheet.Width())
	for c, h := range sheet.Header {
		longest := utf8.RuneCountInString(h)
		for _, row := range sheet.Rows {
			if c >= len(row) {
				continue
			}
			s, ok := DisplayString(row[c])
			if !ok {
				continue
			}
			if n := utf8.RuneCountInString(s); n > longest {
				longest = n
			}
		}
		widths[c] = min(float64(longest)+opts.Padding, opts.MaxWidth)
	}
	return widths
}

// AutoSizeColumns 按 ColumnWidths 设置工作表的列宽，每列独立计算
func AutoSizeColumns(wb Workbook, sheet model.Sheet, opts ColumnOptions) ([]float64, error) {
	widths := ColumnWidths(sheet, opts)
	for i, w := range widths {
		if err := wb.SetColWidth(sheet.Name, i+1, w); err != nil {
			return nil, fmt.Errorf("设置 %s 第 %d 列宽度失败: %w", sheet.Name, i+1, err)
		}
	}
	return widths, nil
}

// DisplayString 单元格的显示文本；nil 或不支持的类型返回 false，转换 panic 同样视为失败
//
// 列宽按写入后单元格呈现的文本计算，数字格式与 excelize 一致：27420.0 显示为 "27420"。
func DisplayString(v any) (s string, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			s, ok = "", false
		}
	}()

	switch x := v.(type) {
	case nil:
		return "", false
	case string:
		return x, true
	case int:
		return strconv.Itoa(x), true
	case int8:
		return strconv.FormatInt(int64(x), 10), true
	case int16:
		return strconv.FormatInt(int64(x), 10), true
	case int32:
		return strconv.FormatInt(int64(x), 10), true
	case int64:
		return strconv.FormatInt(x, 10), true
	case uint:
		return strconv.FormatUint(uint64(x), 10), true
	case uint8:
		return strconv.FormatUint(uint64(x), 10), true
	case uint16:
		return strconv.FormatUint(uint64(x), 10), true
	case uint32:
		return strconv.FormatUint(uint64(x), 10), true
	case uint64:
		return strconv.FormatUint(x, 10), true
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32), true
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(x), true
	case fmt.Stringer:
		return x.String(), true
	case error:
		return x.Error(), true
	default:
		return "", false
	}
}
