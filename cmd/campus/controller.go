package main

import (
	"ar-campus/internal/assets"
	"ar-campus/internal/campus"
	"ar-campus/internal/debug"
	"ar-campus/internal/graphics"
	"ar-campus/internal/logger"
	"ar-campus/internal/scene"
	"ar-campus/internal/scenegraph"
	"ar-campus/internal/session"
	"ar-campus/internal/viewconfig"
)

// viewController owns the view and its session. It is the session's delegate; the
// notifications are only logged.
type viewController struct {
	prefs   viewconfig.ViewPrefs
	log     *logger.Logger
	scn     *scene.Scene
	stats   *debug.Debug
	tracker *session.Tracker
	nodes   int
	draws   int
}

func newViewController(prefs viewconfig.ViewPrefs, log *logger.Logger) *viewController {
	vc := &viewController{prefs: prefs, log: log}
	vc.tracker = session.NewTracker(vc)
	return vc
}

func (vc *viewController) hooks() graphics.Hooks {
	return graphics.Hooks{
		Appear:    vc.viewWillAppear,
		Disappear: vc.viewWillDisappear,
		Interrupt: vc.tracker.Interrupt,
		Resume:    vc.tracker.Resume,
		Update:    vc.update,
		Draw:      vc.draw,
	}
}

// viewDidLoad builds the scene. It needs the window, since the scene allocates GPU
// resources lazily on first draw.
func (vc *viewController) viewDidLoad() {
	vc.scn = scene.New(vc.prefs)
	vc.stats = debug.New(vc.prefs.ShowsStatistics)

	var loader campus.SceneLoader
	if lib, err := assets.OpenDir(vc.prefs.AssetDir, vc.log); err != nil {
		vc.log.Logf("asset library unavailable: %v", err)
	} else {
		loader = lib
	}
	if campus.Populate(vc.scn.Root(), loader, vc.prefs.AuthoredScene) {
		vc.log.Logf("authored scene %q loaded", vc.prefs.AuthoredScene)
	}
	vc.nodes = vc.scn.Root().Count()
	vc.log.Logf("scene ready: %d nodes\n%s", vc.nodes, scenegraph.Dump(vc.scn.Root()))
}

func (vc *viewController) viewWillAppear() {
	if vc.scn == nil {
		vc.viewDidLoad()
	}
	vc.tracker.Run(session.WorldTracking())
	vc.log.Log("session started")
}

func (vc *viewController) viewWillDisappear() {
	vc.tracker.Pause()
	vc.log.Log("session paused")
	vc.scn.Unload()
}

// update is not called while the window is suspended. The scene keeps animating after a
// session failure; only tracking stops.
func (vc *viewController) update(dt float32) {
	vc.scn.Update(dt)
}

func (vc *viewController) draw() {
	vc.draws = vc.scn.Draw()
	if err := vc.scn.Err(); err != nil && vc.tracker.Err() == nil {
		vc.tracker.Fail(err)
	}
	vc.stats.Draw(debug.Stats{
		Nodes:  vc.nodes,
		Draws:  vc.draws,
		Paused: vc.tracker.State() != session.Running,
	})
}

func (vc *viewController) DidFail(err error) {
	vc.log.Logf("session failed: %v", err)
}

func (vc *viewController) WasInterrupted() {
	vc.log.Log("session interrupted")
}

func (vc *viewController) InterruptionEnded() {
	vc.log.Log("session resumed")
}
