package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

// 环境变量
const (
	EnvOutputDir      = "CARDREPORT_OUTPUT_DIR"
	EnvExcelEngine    = "CARDREPORT_EXCEL_ENGINE"
	EnvMaxColumnWidth = "CARDREPORT_MAX_COLUMN_WIDTH"
	EnvLogLevel       = "CARDREPORT_LOG_LEVEL"
)

// excel 列宽上限（Excel 本身允许的最大列宽）
const maxExcelColumnWidth = 255

// AppConfig 应用配置
type AppConfig struct {
	Output OutputConfig `toml:"output"`
	Excel  ExcelConfig  `toml:"excel"`
	Log    LogConfig    `toml:"log"`
}

// OutputConfig 输出配置
type OutputConfig struct {
	Dir               string `toml:"dir"`
	TransactionsFile  string `toml:"transactions_file"`
	SummaryFile       string `toml:"summary_file"`
	ComprehensiveFile string `toml:"comprehensive_file"`
}

// ExcelConfig 表格写入配置
type ExcelConfig struct {
	Engine         string  `toml:"engine"`
	ColumnPadding  float64 `toml:"column_padding"`
	MaxColumnWidth float64 `toml:"max_column_width"`
	BoldHeader     bool    `toml:"bold_header"`
}

// LogConfig 日志配置
type LogConfig struct {
	Level   string `toml:"level"`
	Console bool   `toml:"console"`
}

// LoadConfigInfo 配置加载元信息
type LoadConfigInfo struct {
	Path     string
	FromFile bool
	DotEnv   bool
}

// DefaultConfig 默认配置
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Output: OutputConfig{
			Dir:               ".",
			TransactionsFile:  "sample_card_transactions.xlsx",
			SummaryFile:       "sample_monthly_summary.xlsx",
			ComprehensiveFile: "sample_comprehensive_report.xlsx",
		},
		Excel: ExcelConfig{
			Engine:         "excelize",
			ColumnPadding:  2,
			MaxColumnWidth: 20,
			BoldHeader:     true,
		},
		Log: LogConfig{
			Level:   "info",
			Console: true,
		},
	}
}

// GetExeDir 获取可执行文件所在目录
func GetExeDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// DefaultConfigPath 可执行文件同目录下的 config.toml
func DefaultConfigPath() string {
	exeDir, err := GetExeDir()
	if err != nil {
		// 无法获取可执行文件目录，使用当前目录
		exeDir = "."
	}
	return filepath.Join(exeDir, "config.toml")
}

// LoadConfigWithInfo 加载配置：默认值 → config.toml → .env / 环境变量
//
// path 为空时使用可执行文件同目录下的 config.toml；文件不存在时使用默认配置。
func LoadConfigWithInfo(path string) (*AppConfig, LoadConfigInfo, error) {
	if strings.TrimSpace(path) == "" {
		path = DefaultConfigPath()
	}
	info := LoadConfigInfo{Path: path}
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, config); err != nil {
			return nil, info, fmt.Errorf("解析配置文件 %s 失败: %w", path, err)
		}
		info.FromFile = true
	case errors.Is(err, fs.ErrNotExist):
		// 配置文件不存在，使用默认配置
	default:
		return nil, info, err
	}

	// .env 不覆盖已存在的环境变量
	if err := godotenv.Load(); err == nil {
		info.DotEnv = true
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, info, fmt.Errorf("读取 .env 失败: %w", err)
	}

	if err := applyEnv(config); err != nil {
		return nil, info, err
	}
	if err := config.Validate(); err != nil {
		return nil, info, err
	}

	return config, info, nil
}

// LoadConfig 加载配置
func LoadConfig(path string) (*AppConfig, error) {
	config, _, err := LoadConfigWithInfo(path)
	return config, err
}

func applyEnv(config *AppConfig) error {
	if v := strings.TrimSpace(os.Getenv(EnvOutputDir)); v != "" {
		config.Output.Dir = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvExcelEngine)); v != "" {
		config.Excel.Engine = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvMaxColumnWidth)); v != "" {
		w, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("环境变量 %s 不是数字: %w", EnvMaxColumnWidth, err)
		}
		config.Excel.MaxColumnWidth = w
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		config.Log.Level = v
	}
	return nil
}

// Validate 校验配置
func (c *AppConfig) Validate() error {
	if strings.TrimSpace(c.Excel.Engine) == "" {
		return errors.New("excel.engine 不能为空")
	}
	if c.Excel.ColumnPadding < 0 {
		return fmt.Errorf("excel.column_padding 不能为负数: %v", c.Excel.ColumnPadding)
	}
	if c.Excel.MaxColumnWidth <= 0 || c.Excel.MaxColumnWidth > maxExcelColumnWidth {
		return fmt.Errorf("excel.max_column_width 超出范围 (0, %d]: %v", maxExcelColumnWidth, c.Excel.MaxColumnWidth)
	}
	for _, name := range []string{c.Output.TransactionsFile, c.Output.SummaryFile, c.Output.ComprehensiveFile} {
		if name != "" && name != filepath.Base(name) {
			return fmt.Errorf("输出文件名不能包含目录: %s", name)
		}
	}
	return nil
}

// EnsureOutputDir 确保输出目录存在，返回绝对路径
func EnsureOutputDir(config *AppConfig) (string, error) {
	dir := config.Output.Dir
	if strings.TrimSpace(dir) == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return filepath.Abs(dir)
}
