package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ssj-sketch/Statuswindow/internal/config"
	"github.com/ssj-sketch/Statuswindow/internal/exporter"
	"github.com/ssj-sketch/Statuswindow/internal/logger"
	"github.com/ssj-sketch/Statuswindow/internal/model"
	"github.com/ssj-sketch/Statuswindow/internal/report"
)

// generate 构建样例报表并写出三个文件
func generate(ctx context.Context, cfg *config.AppConfig) ([]string, error) {
	log := logger.FromContext(ctx)

	// 写入能力不可用时不创建任何文件（包括输出目录）
	engine, err := exporter.LookupEngine(cfg.Excel.Engine)
	if err != nil {
		return nil, err
	}

	dir, err := config.EnsureOutputDir(cfg)
	if err != nil {
		return nil, fmt.Errorf("创建输出目录失败: %w", err)
	}

	opts := exporter.DefaultWriteOptions()
	opts.Columns = exporter.ColumnOptions{
		Padding:  cfg.Excel.ColumnPadding,
		MaxWidth: cfg.Excel.MaxColumnWidth,
	}
	opts.BoldHeader = cfg.Excel.BoldHeader

	names := report.FileNames{
		Transactions:  cfg.Output.TransactionsFile,
		Summary:       cfg.Output.SummaryFile,
		Comprehensive: cfg.Output.ComprehensiveFile,
	}
	build := func() ([]model.Document, error) {
		warnings, err := report.Check()
		if err != nil {
			return nil, err
		}
		for _, w := range warnings {
			log.Warn().Str("check", "forecast").Msg(w)
		}
		return report.Documents(names), nil
	}

	exp := exporter.NewExporter(engine, opts, log)
	return exp.Run(ctx, dir, build, nil)
}

// printResult 输出面向用户的结果提示
func printResult(w io.Writer, files []string, err error, engine string) {
	switch {
	case err == nil:
		fmt.Fprintln(w, "엑셀 파일이 성공적으로 생성되었습니다!")
		for _, f := range files {
			fmt.Fprintf(w, "- %s\n", filepath.Base(f))
		}
	case errors.Is(err, exporter.ErrCapabilityUnavailable):
		fmt.Fprintf(w, "엑셀 쓰기 엔진 라이브러리가 필요합니다. (설정된 엔진 %q 을(를) 사용할 수 없습니다)\n", engine)
		fmt.Fprintf(w, "config.toml 의 [excel] engine 값을 다음 중 하나로 설정하세요: %s\n", strings.Join(exporter.EngineNames(), ", "))
	default:
		fmt.Fprintf(w, "오류 발생: %v\n", err)
	}
}

// exitCode 进程退出码：成功 0，任何失败 1
func exitCode(err error) int {
	if err != nil {
		return 1
	}
	return 0
}
