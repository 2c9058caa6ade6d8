package main

import (
	"ar-campus/internal/graphics"
	"ar-campus/internal/logger"
	"ar-campus/internal/viewconfig"
)

func main() {
	log := logger.New(logger.DefaultPath)
	prefs, _ := viewconfig.Load(viewconfig.DefaultPath)
	vc := newViewController(prefs, log)
	graphics.Run(graphics.WindowOptions{
		Title:      "AR Campus",
		Width:      prefs.WindowWidth,
		Height:     prefs.WindowHeight,
		Fullscreen: prefs.Fullscreen,
	}, vc.hooks())
}
