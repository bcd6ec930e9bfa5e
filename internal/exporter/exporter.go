package exporter

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/ssj-sketch/Statuswindow/internal/model"
)

// BuildFunc 在内存中构建待写入的文档
type BuildFunc func() ([]model.Document, error)

// Exporter 按顺序把文档写入输出目录
type Exporter struct {
	engine Engine
	opts   WriteOptions
	log    zerolog.Logger
	stage  Stage
}

// NewExporter 创建导出器
func NewExporter(engine Engine, opts WriteOptions, log zerolog.Logger) *Exporter {
	return &Exporter{
		engine: engine,
		opts:   opts,
		log:    log,
		stage:  StageIdle,
	}
}

// Stage 当前阶段
func (e *Exporter) Stage() Stage {
	return e.stage
}

// Run 构建文档并写入 dir，返回已写入文件的完整路径
//
// 任一步骤失败即中止，已写入的文件保留。
func (e *Exporter) Run(ctx context.Context, dir string, build BuildFunc, progress func(ProgressEvent)) ([]string, error) {
	e.setStage(progress, ProgressEvent{Percent: 0, Stage: StageBuilding})
	docs, err := build()
	if err != nil {
		return nil, e.fail(progress, "", fmt.Errorf("构建报表数据失败: %w", err))
	}
	return e.ExportAll(ctx, dir, docs, progress)
}

// ExportAll 依次写入全部文档
func (e *Exporter) ExportAll(ctx context.Context, dir string, docs []model.Document, progress func(ProgressEvent)) ([]string, error) {
	if e.engine == nil {
		return nil, e.fail(progress, "", fmt.Errorf("%w: engine is nil", ErrCapabilityUnavailable))
	}

	written := make([]string, 0, len(docs))
	for i, doc := range docs {
		if err := ctx.Err(); err != nil {
			return written, e.fail(progress, doc.FileName, err)
		}

		path := filepath.Join(dir, doc.FileName)
		e.setStage(progress, ProgressEvent{
			Percent: i * 100 / len(docs),
			Stage:   StageWriting,
			File:    doc.FileName,
		})

		if err := WriteDocument(e.engine, path, doc.Sheets, e.opts); err != nil {
			return written, e.fail(progress, doc.FileName, fmt.Errorf("写入 %s 失败: %w", doc.FileName, err))
		}
		e.log.Info().
			Str("file", path).
			Strs("sheets", doc.SheetNames()).
			Msg("document written")
		written = append(written, path)
	}

	e.setStage(progress, ProgressEvent{Percent: 100, Stage: StageDone})
	return written, nil
}

func (e *Exporter) setStage(progress func(ProgressEvent), ev ProgressEvent) {
	e.stage = ev.Stage
	e.log.Debug().Str("stage", string(ev.Stage)).Int("percent", ev.Percent).Str("file", ev.File).Msg("export progress")
	reportProgress(progress, ev)
}

func (e *Exporter) fail(progress func(ProgressEvent), file string, err error) error {
	e.stage = StageFailed
	e.log.Error().Err(err).Str("file", file).Msg("export failed")
	reportProgress(progress, ProgressEvent{Stage: StageFailed, File: file, Err: err})
	return err
}
