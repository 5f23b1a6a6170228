// internal/storage/file/file.go
package file

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/touchline/goalviz/internal/config"
	"github.com/touchline/goalviz/internal/scene"
	"github.com/touchline/goalviz/internal/storage"
)

// Backend writes rendered diagrams to disk
type Backend struct {
	cfg config.FileConfig

	exported []string
	mu       sync.Mutex
}

// New creates a new file backend
func New(cfg config.FileConfig) *Backend {
	return &Backend{cfg: cfg}
}

// Init creates the output directory
func (b *Backend) Init() error {
	if err := os.MkdirAll(b.cfg.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	return nil
}

// Close cleans up resources
func (b *Backend) Close() error {
	return nil
}

// Save writes the SVG document and, when enabled, the draw-command export.
func (b *Backend) Save(a *storage.Artifact) error {
	if a == nil {
		return fmt.Errorf("nil artifact")
	}
	name := a.Name
	if name == "" {
		name = storage.Slug(a.Match)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	var svgPath string
	if b.cfg.CompressOutput {
		svgPath = filepath.Join(b.cfg.OutputDir, name+".svgz")
		if err := writeGzip(svgPath, a.SVG); err != nil {
			return err
		}
	} else {
		svgPath = filepath.Join(b.cfg.OutputDir, name+".svg")
		if err := os.WriteFile(svgPath, a.SVG, 0644); err != nil {
			return fmt.Errorf("failed to write file: %w", err)
		}
	}
	b.exported = append(b.exported, svgPath)

	if b.cfg.ExportScene && a.Scene != nil {
		scenePath := filepath.Join(b.cfg.OutputDir, name+".scene.json")
		if err := writeJSON(scenePath, sceneExport{
			RenderID:  a.RenderID,
			CreatedAt: a.CreatedAt.UTC(),
			Scene:     a.Scene,
		}); err != nil {
			return err
		}
		b.exported = append(b.exported, scenePath)
	}

	return nil
}

// ExportedPaths returns every file written so far, in write order.
func (b *Backend) ExportedPaths() []string {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]string, len(b.exported))
	copy(out, b.exported)
	return out
}

// sceneExport is the root JSON structure of <name>.scene.json
type sceneExport struct {
	RenderID  string       `json:"renderId,omitempty"`
	CreatedAt time.Time    `json:"createdAt"`
	Scene     *scene.Scene `json:"scene"`
}

func writeJSON(path string, data sceneExport) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	return encodeJSON(f, data)
}

// encodeJSON writes data to wc and closes it. A failed close is reported,
// since the file may be incomplete.
func encodeJSON(wc io.WriteCloser, data sceneExport) error {
	encoder := json.NewEncoder(wc)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		wc.Close()
		return fmt.Errorf("failed to encode scene: %w", err)
	}
	if err := wc.Close(); err != nil {
		return fmt.Errorf("failed to close file: %w", err)
	}
	return nil
}

func writeGzip(path string, data []byte) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	return compress(f, data)
}

// compress gzips data into wc and closes it.
func compress(wc io.WriteCloser, data []byte) error {
	gzWriter := gzip.NewWriter(wc)
	if _, err := gzWriter.Write(data); err != nil {
		gzWriter.Close()
		wc.Close()
		return fmt.Errorf("failed to compress: %w", err)
	}
	if err := gzWriter.Close(); err != nil {
		wc.Close()
		return fmt.Errorf("failed to compress: %w", err)
	}
	if err := wc.Close(); err != nil {
		return fmt.Errorf("failed to close file: %w", err)
	}
	return nil
}
