// Package main 进度拖动条示例播放器
//
// Usage:
//
//	go run . [flags]
//
// Flags:
//
//	--verbose         Enable verbose logging
//	--style <path>    Load seek bar style from a YAML file (e.g. data/seekbar_style.yaml)
//	--builtin-style   Use the style embedded at build time when no style path is given
//
// Controls:
//
//	Mouse/Touch drag  - Seek
//	Space             - Play/pause
//	Left/Right Arrow  - Seek -5s/+5s
//	H                 - Toggle haptic feedback
//	D                 - Disable/enable the seek bar
//	F11               - Toggle fullscreen
package main

import (
	"flag"
	"log"

	"github.com/gonewx/seekbar/pkg/app"
	"github.com/gonewx/seekbar/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verboseFlag = flag.Bool("verbose", false, "Enable verbose logging (default off)")
	styleFlag   = flag.String("style", "", "Seek bar style YAML file")
	builtinFlag = flag.Bool("builtin-style", false, "Use the embedded seek bar style")
)

func main() {
	flag.Parse()

	cfg := app.Config{
		Verbose:   *verboseFlag,
		StylePath: *styleFlag,
	}
	if *builtinFlag {
		cfg.StyleData = builtinStyle
	}

	player, err := app.NewApp(cfg)
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	ebiten.SetWindowSize(config.DemoWindowWidth, config.DemoWindowHeight)
	ebiten.SetWindowTitle("SeekBar Demo")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(int(config.DemoTicksPerSecond))

	if err := ebiten.RunGame(player); err != nil && err != ebiten.Termination {
		log.Fatal(err)
	}
}
