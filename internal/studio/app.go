// Package studio implements the editor main loop: it drives the scene from
// window input and draws it every frame.
package studio

import (
	"context"
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/scene-studio/internal/assets"
	"github.com/Faultbox/scene-studio/internal/config"
	"github.com/Faultbox/scene-studio/internal/engine/camera"
	"github.com/Faultbox/scene-studio/internal/engine/compositor"
	"github.com/Faultbox/scene-studio/internal/engine/debug"
	"github.com/Faultbox/scene-studio/internal/engine/input"
	"github.com/Faultbox/scene-studio/internal/engine/renderer"
	"github.com/Faultbox/scene-studio/internal/engine/scene"
	"github.com/Faultbox/scene-studio/internal/engine/window"
	"github.com/Faultbox/scene-studio/internal/logger"
	"github.com/Faultbox/scene-studio/pkg/math"
)

// keyCommands binds keys to editor commands.
var keyCommands = map[sdl.Scancode]Command{
	sdl.SCANCODE_ESCAPE: CmdQuit,
	sdl.SCANCODE_TAB:    CmdToggleDualView,
	sdl.SCANCODE_DELETE: CmdDeleteSelected,
	sdl.SCANCODE_1:      CmdSpawnCube,
	sdl.SCANCODE_2:      CmdSpawnSphere,
	sdl.SCANCODE_3:      CmdSpawnCylinder,
	sdl.SCANCODE_L:      CmdAddLight,
	sdl.SCANCODE_F12:    CmdScreenshot,
	sdl.SCANCODE_O:      CmdImportModel,
	sdl.SCANCODE_T:      CmdLoadTexture,
	sdl.SCANCODE_HOME:   CmdResetCamera,
}

// maxFrameTime caps dt so a stall does not fling the camera.
const maxFrameTime = 0.25

// App is the running studio.
type App struct {
	config  *config.Config
	running bool

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input

	loader     *assets.Loader
	scene      *scene.Scene
	loads      *Loads
	controller *camera.Controller

	shots     *debug.Screenshots
	wantsShot bool
	picker    *filePicker

	cursorX, cursorY float32 // drawable pixels
	looking          bool
	cancelPreload    context.CancelFunc
}

// New creates the window, the renderer and the startup scene.
func New(cfg *config.Config) (*App, error) {
	logger.Info("initializing studio",
		zap.String("title", cfg.Window.Title),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
	)

	a := &App{
		config:     cfg,
		input:      input.New(),
		controller: camera.NewController(),
		shots:      debug.NewScreenshots(cfg.Render.ScreenshotDir, "studio"),
		picker:     newFilePicker(cfg.Scene.AssetRoot),
	}
	a.controller.Speed = cfg.Camera.MoveSpeed

	// Create window (this also creates OpenGL context)
	var err error
	a.window, err = window.New(window.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Create renderer (AFTER window, since OpenGL context must exist)
	w, h := a.window.DrawableSize()
	a.renderer, err = renderer.New(renderer.Config{Width: w, Height: h})
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	a.loader = assets.NewLoader(assets.NewDirSource(cfg.Scene.AssetRoot))
	a.scene, a.loads, err = NewScene(cfg, a.loader)
	if err != nil {
		a.loader.Close()
		a.renderer.Close()
		a.window.Close()
		return nil, err
	}

	if len(cfg.Scene.Preload) > 0 {
		a.startPreload(cfg.Scene.Preload)
	}

	logger.Info("studio initialized successfully")
	return a, nil
}

// startPreload warms the asset cache in the background.
func (a *App) startPreload(paths []string) {
	ctx, cancel := context.WithCancel(context.Background())
	a.cancelPreload = cancel
	go func() {
		start := time.Now()
		if err := a.loader.Preload(ctx, paths, assets.DefaultPreloadLimit); err != nil {
			logger.Warn("preload incomplete", zap.Error(err))
			return
		}
		logger.Info("preload finished", zap.Int("assets", len(paths)), zap.Duration("took", time.Since(start)))
	}()
}

// Run starts the main loop and returns when the user quits.
func (a *App) Run() error {
	a.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting main loop")

	for a.running {
		now := time.Now()
		dt := float32(now.Sub(lastTime).Seconds())
		lastTime = now
		if dt > maxFrameTime {
			dt = maxFrameTime
		}

		// 1. Process input
		if a.input.Update() {
			a.running = false
			break
		}
		a.handleEvents()
		if !a.running {
			break
		}

		// 2. Update scene state
		a.update(dt)

		// 3. Render
		a.render()

		// 4. Present (swap buffers)
		a.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			stats := a.renderer.Stats()
			logger.Debug("fps",
				zap.Int("count", frameCount),
				zap.Int("objects", stats.Objects),
				zap.Int("triangles", stats.Triangles),
			)
			a.window.SetTitle(fmt.Sprintf("%s - %d fps", a.config.Window.Title, frameCount))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// handleEvents applies the discrete events of the frame.
func (a *App) handleEvents() {
	for _, event := range a.input.Events() {
		switch event.Type {
		case input.EventWindowResize:
			w, h := a.window.DrawableSize()
			a.renderer.Resize(w, h)

		case input.EventMouseMove:
			a.cursorX, a.cursorY = a.toDrawable(event.MouseX, event.MouseY)

		case input.EventMouseDown:
			if event.Button == sdl.BUTTON_LEFT {
				x, y := a.toDrawable(event.MouseX, event.MouseY)
				a.pick(x, y)
			}

		case input.EventKeyDown:
			if event.Repeat {
				continue
			}
			cmd, ok := keyCommands[event.Key]
			if !ok {
				continue
			}
			switch cmd {
			case CmdQuit:
				a.running = false
				return
			case CmdScreenshot:
				a.wantsShot = true
				continue
			case CmdResetCamera:
				homeCamera(a.scene.Camera, a.config.Camera)
				continue
			case CmdImportModel:
				a.picker.open(pickModel)
				continue
			case CmdLoadTexture:
				if _, ok := a.scene.Objects.Selected(); !ok {
					logger.Info("select an object before loading a texture")
					continue
				}
				a.picker.open(pickTexture)
				continue
			}
			if err := Apply(a.scene, cmd, a.cursorGround()); err != nil {
				logger.Warn("command failed", zap.Stringer("command", cmd), zap.Error(err))
			}
		}
	}
}

func (a *App) toDrawable(x, y int) (float32, float32) {
	scale := a.window.PixelScale()
	return float32(x) * scale, float32(y) * scale
}

// cursorGround is the ground point under the cursor, if any.
func (a *App) cursorGround() *math.Vec3 {
	s := a.renderer.Surface()
	p, ok := a.scene.GroundPoint(a.cursorX, a.cursorY, s.Width, s.Height)
	if !ok {
		return nil
	}
	return &p
}

func (a *App) pick(x, y float32) {
	s := a.renderer.Surface()
	if idx, ok := a.scene.Pick(x, y, s.Width, s.Height); ok {
		obj, _ := a.scene.Objects.At(idx)
		logger.Debug("object picked", zap.String("name", obj.Name), zap.Int("index", idx))
	}
}

// update advances camera, assets and animation by dt seconds.
func (a *App) update(dt float32) {
	if looking := a.input.Looking(); looking != a.looking {
		a.looking = looking
		a.window.SetRelativeMouse(looking)
	}

	a.controller.Apply(a.scene.Camera, a.input.Movement(), dt)
	if dx, dy := a.input.MouseDelta(); dx != 0 || dy != 0 {
		a.scene.Camera.Look(dx, dy, true)
	}

	if r, ok := a.picker.poll(); ok {
		a.applyPick(r)
	}
	if n := a.scene.Poll(); n > 0 && a.loads.Pending() > 0 {
		// Check logs each failure.
		_ = a.loads.Check(a.scene)
	}

	a.scene.Advance(dt)
}

// applyPick starts loading a file chosen in the dialog.
func (a *App) applyPick(r pickResult) {
	switch r.purpose {
	case pickModel:
		a.loads.watchModel(r.path, a.scene.ImportModel(r.path, ""), "")

	case pickTexture:
		idx, ok := a.scene.Objects.Selected()
		if !ok {
			return
		}
		obj, _ := a.scene.Objects.At(idx)
		if err := a.loads.applyTexture(a.scene, obj.Handle, r.path); err != nil {
			logger.Warn("texture not applied", zap.String("path", r.path), zap.Error(err))
			return
		}
	}
	logger.Info("loading asset", zap.String("path", r.path))
}

// render composes the scene and draws it.
func (a *App) render() {
	surface := a.renderer.Surface()
	if surface.Empty() {
		return
	}
	frame := compositor.Compose(a.scene.Snapshot(), surface)
	// Individual draw failures are logged by Execute and skipped.
	_ = a.renderer.Render(frame)

	if a.wantsShot {
		a.wantsShot = false
		pixels, w, h := a.renderer.ReadPixels()
		path, err := a.shots.SavePixels(pixels, w, h)
		if err != nil {
			logger.Warn("screenshot failed", zap.Error(err))
			return
		}
		logger.Info("screenshot saved", zap.String("path", path))
	}
}

// Close cleans up studio resources.
func (a *App) Close() {
	logger.Info("closing studio")

	if a.cancelPreload != nil {
		a.cancelPreload()
	}
	if a.scene != nil {
		a.scene.Close()
	}
	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}
