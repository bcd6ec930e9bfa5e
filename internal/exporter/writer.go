package exporter

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/ssj-sketch/Statuswindow/internal/model"
)

// 文档标识命名空间，同名文件每次导出得到相同标识
var documentNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/ssj-sketch/Statuswindow/cardreport"))

// WriteOptions 写入选项
type WriteOptions struct {
	Columns    ColumnOptions
	BoldHeader bool
	Creator    string
	Language   string
}

// DefaultWriteOptions 默认写入选项
func DefaultWriteOptions() WriteOptions {
	return WriteOptions{
		Columns:    DefaultColumnOptions(),
		BoldHeader: true,
		Creator:    "cardreport",
		Language:   "ko-KR",
	}
}

// DocumentID 由文件名派生的确定性文档标识
func DocumentID(fileName string) string {
	return uuid.NewSHA1(documentNamespace, []byte(fileName)).String()
}

// WriteDocument 将 sheets 按顺序写入 path 处的单个工作簿
//
// 每个工作表先写表头再按输入顺序写数据行，随后自动调整列宽。
// 无论成功与否，工作簿句柄在返回前关闭。
func WriteDocument(engine Engine, path string, sheets []model.Sheet, opts WriteOptions) (err error) {
	if engine == nil {
		return fmt.Errorf("%w: engine is nil", ErrCapabilityUnavailable)
	}
	if err := validateSheets(sheets); err != nil {
		return err
	}

	wb, err := engine.NewWorkbook()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCapabilityUnavailable, err)
	}
	defer func() {
		if cerr := wb.Close(); cerr != nil && err == nil {
			err = &IOError{Op: "close", Path: path, Err: cerr}
		}
	}()

	for _, sheet := range sheets {
		if err := writeSheet(wb, sheet, opts); err != nil {
			return err
		}
	}

	fileName := filepath.Base(path)
	if err := wb.SetProperties(DocProperties{
		Title:      strings.TrimSuffix(fileName, filepath.Ext(fileName)),
		Subject:    strings.Join(model.Document{Sheets: sheets}.SheetNames(), ", "),
		Creator:    opts.Creator,
		Identifier: DocumentID(fileName),
		Language:   opts.Language,
	}); err != nil {
		return fmt.Errorf("设置文档属性失败: %w", err)
	}

	if err := wb.SaveAs(path); err != nil {
		return &IOError{Op: "save", Path: path, Err: err}
	}
	return nil
}

func writeSheet(wb Workbook, sheet model.Sheet, opts WriteOptions) error {
	if err := wb.AddSheet(sheet.Name); err != nil {
		return fmt.Errorf("创建工作表 %s 失败: %w", sheet.Name, err)
	}

	header := make([]any, len(sheet.Header))
	for i, h := range sheet.Header {
		header[i] = h
	}
	if err := wb.SetRow(sheet.Name, 1, header); err != nil {
		return fmt.Errorf("写入 %s 表头失败: %w", sheet.Name, err)
	}
	if opts.BoldHeader {
		if err := wb.SetHeaderStyle(sheet.Name, len(sheet.Header)); err != nil {
			return fmt.Errorf("设置 %s 表头样式失败: %w", sheet.Name, err)
		}
	}

	for i, row := range sheet.Rows {
		if err := wb.SetRow(sheet.Name, i+2, row); err != nil {
			return fmt.Errorf("写入 %s 第 %d 行失败: %w", sheet.Name, i+2, err)
		}
	}

	if _, err := AutoSizeColumns(wb, sheet, opts.Columns); err != nil {
		return err
	}
	return nil
}

func validateSheets(sheets []model.Sheet) error {
	if len(sheets) == 0 {
		return fmt.Errorf("%w: 工作表列表为空", ErrInvalidDocument)
	}
	seen := make(map[string]struct{}, len(sheets))
	for _, s := range sheets {
		name := strings.TrimSpace(s.Name)
		if name == "" {
			return fmt.Errorf("%w: 工作表名称为空", ErrInvalidDocument)
		}
		// 工作表名称不区分大小写
		key := strings.ToLower(name)
		if _, ok := seen[key]; ok {
			return fmt.Errorf("%w: 工作表名称重复 %s", ErrInvalidDocument, s.Name)
		}
		seen[key] = struct{}{}
		if len(s.Header) == 0 {
			return fmt.Errorf("%w: %s 缺少表头", ErrInvalidDocument, s.Name)
		}
		if !s.IsRectangular() {
			return fmt.Errorf("%w: %s 行列数与表头不一致", ErrInvalidDocument, s.Name)
		}
	}
	return nil
}
