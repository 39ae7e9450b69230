package studio

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/sqweek/dialog"
	"go.uber.org/zap"

	"github.com/Faultbox/scene-studio/internal/engine/texture"
	"github.com/Faultbox/scene-studio/internal/logger"
)

// ErrOutsideAssetRoot is returned for picked files the asset source cannot
// serve.
var ErrOutsideAssetRoot = errors.New("file is outside the asset root")

type pickPurpose int

const (
	pickModel pickPurpose = iota
	pickTexture
)

// pickResult is a file chosen in the native dialog, relative to the asset
// root.
type pickResult struct {
	purpose pickPurpose
	path    string
}

// filePicker runs native open dialogs off the main loop. At most one dialog
// is open at a time; results are collected with poll.
type filePicker struct {
	root    string
	results chan pickResult
	busy    atomic.Bool
}

func newFilePicker(root string) *filePicker {
	return &filePicker{root: root, results: make(chan pickResult, 1)}
}

// open shows a dialog for purpose unless one is already showing.
func (p *filePicker) open(purpose pickPurpose) {
	if !p.busy.CompareAndSwap(false, true) {
		return
	}
	go func() {
		defer p.busy.Store(false)

		b := dialog.File().SetStartDir(p.root)
		switch purpose {
		case pickModel:
			b = b.Filter("Wavefront OBJ", "obj").Title("Import Model")
		case pickTexture:
			b = b.Filter("Images", imageExtensions()...).Title("Load Texture")
		}
		filename, err := b.Load()
		if err != nil {
			if !errors.Is(err, dialog.ErrCancelled) {
				logger.Warn("file dialog failed", zap.Error(err))
			}
			return
		}

		rel, err := relativeAsset(p.root, filename)
		if err != nil {
			logger.Warn("file not loadable", zap.String("path", filename), zap.Error(err))
			return
		}
		p.results <- pickResult{purpose: purpose, path: rel}
	}()
}

// poll returns a finished pick, if any, without blocking.
func (p *filePicker) poll() (pickResult, bool) {
	select {
	case r := <-p.results:
		return r, true
	default:
		return pickResult{}, false
	}
}

// relativeAsset maps an absolute file path into the asset root as a
// slash-separated relative path.
func relativeAsset(root, path string) (string, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", err
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	rel, err := filepath.Rel(absRoot, absPath)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, ErrOutsideAssetRoot)
	}
	rel = filepath.ToSlash(rel)
	if rel == "." || rel == ".." || strings.HasPrefix(rel, "../") {
		return "", fmt.Errorf("%s: %w", path, ErrOutsideAssetRoot)
	}
	return rel, nil
}

// imageExtensions lists the decodable image extensions without dots.
func imageExtensions() []string {
	exts := texture.SupportedExtensions()
	out := make([]string, 0, len(exts))
	for _, e := range exts {
		out = append(out, strings.TrimPrefix(e, "."))
	}
	return out
}
