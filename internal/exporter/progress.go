package exporter

// Stage 导出运行阶段：Idle → Building → Writing → Done | Failed
type Stage string

const (
	StageIdle     Stage = "idle"
	StageBuilding Stage = "building"
	StageWriting  Stage = "writing"
	StageDone     Stage = "done"
	StageFailed   Stage = "failed"
)

// ProgressEvent 导出进度事件
type ProgressEvent struct {
	Percent int
	Stage   Stage
	File    string
	Err     error
}

func reportProgress(progress func(ProgressEvent), ev ProgressEvent) {
	if progress == nil {
		return
	}
	if ev.Percent < 0 {
		ev.Percent = 0
	}
	if ev.Percent > 100 {
		ev.Percent = 100
	}
	progress(ev)
}
