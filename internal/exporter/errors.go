package exporter

import (
	"errors"
	"fmt"
)

// ErrInvalidDocument 工作表列表不合法（为空、重名、非矩形）
var ErrInvalidDocument = errors.New("invalid document")

// IOError 目标文件无法创建或写入
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }
