package model

// Sheet 单个工作表：表头 + 数据行（矩形表格）
type Sheet struct {
	Name   string   `json:"name"`
	Header []string `json:"header"`
	Rows   [][]any  `json:"rows"`
}

// Width 列数（以表头为准）
func (s Sheet) Width() int {
	return len(s.Header)
}

// IsRectangular 所有数据行列数与表头一致
func (s Sheet) IsRectangular() bool {
	for _, row := range s.Rows {
		if len(row) != len(s.Header) {
			return false
		}
	}
	return true
}

// Document 一个输出文件，按顺序包含若干工作表
type Document struct {
	FileName string  `json:"fileName"`
	Sheets   []Sheet `json:"sheets"`
}

// SheetNames 按顺序返回工作表名称
func (d Document) SheetNames() []string {
	names := make([]string, 0, len(d.Sheets))
	for _, s := range d.Sheets {
		names = append(names, s.Name)
	}
	return names
}
