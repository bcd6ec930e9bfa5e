package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/ssj-sketch/Statuswindow/internal/config"
	"github.com/ssj-sketch/Statuswindow/internal/logger"
)

var (
	configPath = flag.String("config", "", "配置文件路径（默认：可执行文件同目录下的 config.toml）")
	outputDir  = flag.String("dir", "", "输出目录（覆盖配置文件）")
)

func main() {
	flag.Parse()

	cfg, info, err := config.LoadConfigWithInfo(*configPath)
	if err != nil {
		printResult(os.Stdout, nil, err, "")
		os.Exit(exitCode(err))
	}
	if *outputDir != "" {
		cfg.Output.Dir = *outputDir
	}

	log := logger.New(logger.Options{Level: cfg.Log.Level, Console: cfg.Log.Console})
	log.Debug().Str("config", info.Path).Bool("fromFile", info.FromFile).Bool("dotenv", info.DotEnv).Msg("config loaded")

	ctx := logger.WithContext(context.Background(), log)
	files, err := generate(ctx, cfg)
	printResult(os.Stdout, files, err, cfg.Excel.Engine)
	os.Exit(exitCode(err))
}

func init() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "用法: %s [-config config.toml] [-dir 输出目录]\n", os.Args[0])
		flag.PrintDefaults()
	}
}
