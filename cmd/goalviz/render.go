package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/touchline/goalviz/internal/dataset"
	"github.com/touchline/goalviz/internal/logging"
	"github.com/touchline/goalviz/internal/storage"
	"github.com/touchline/goalviz/internal/svgout"
	"github.com/touchline/goalviz/internal/visual"
	"github.com/touchline/goalviz/pkg/core"
)

// errInvalidDataset is returned by validate when a finding would change what
// gets drawn.
var errInvalidDataset = errors.New("dataset has issues")

// renderGoal draws ds, encodes it at the given presentation width and saves
// it to backend.
func renderGoal(ctx context.Context, ds *core.Dataset, backend storage.Backend, width int, stdout io.Writer) (*storage.Artifact, error) {
	renderID := uuid.NewString()
	SlogManager.SetRender(renderID, visual.Title(ds.Match))
	defer SlogManager.SetRender("", "")

	logIssues(ctx, dataset.Validate(ds))

	start := time.Now()
	doc, report := visual.Document(ds, visual.Options{
		Palette: visual.DefaultPalette(),
		Logger:  Logger,
	})

	var buf bytes.Buffer
	if err := svgout.Encode(&buf, doc, width); err != nil {
		Logger.ErrorContext(ctx, "Failed to encode SVG", "error", err)
		return nil, fmt.Errorf("failed to encode svg: %w", err)
	}

	artifact := &storage.Artifact{
		RenderID:  renderID,
		Name:      storage.Slug(ds.Match),
		CreatedAt: time.Now(),
		Match:     ds.Match,
		SVG:       buf.Bytes(),
		Scene:     &doc.Pitch,
	}
	if err := backend.Save(artifact); err != nil {
		Logger.ErrorContext(ctx, "Failed to save render", "error", err)
		return nil, fmt.Errorf("failed to save render: %w", err)
	}

	Logger.InfoContext(ctx, "Rendered goal",
		"elements", len(doc.Pitch.Elements),
		"skipped", report.Skipped(),
		"degenerate", report.Degenerate,
		"bytes", buf.Len(),
		"duration", time.Since(start),
	)

	if exp, ok := backend.(storage.Exported); ok {
		for _, path := range exp.ExportedPaths() {
			Logger.InfoContext(ctx, "Wrote file", "path", path)
			fmt.Fprintln(stdout, path)
		}
	}
	return artifact, nil
}

// validateGoal prints every finding. Pass chain gaps are informational.
func validateGoal(ctx context.Context, ds *core.Dataset, stdout io.Writer) error {
	issues := dataset.Validate(ds)
	logIssues(ctx, issues)

	blocking := 0
	for _, issue := range issues {
		fmt.Fprintln(stdout, issue.Error())
		if !errors.Is(issue, dataset.ErrChainGap) {
			blocking++
		}
	}
	if blocking > 0 {
		return fmt.Errorf("%w: %d finding(s)", errInvalidDataset, blocking)
	}

	fmt.Fprintf(stdout, "ok: %d players, %d movements, %d passes, %d ball points\n",
		len(ds.Players), len(ds.Movements), len(ds.Passes), len(ds.BallPath))
	return nil
}

// writeScene prints the composed pitch scene, as JSON draw commands or, with
// asSVG, as a bare SVG without header or legend.
func writeScene(ds *core.Dataset, asSVG bool, stdout io.Writer) error {
	s, _ := visual.Compose(ds, visual.Options{
		Palette: visual.DefaultPalette(),
		Logger:  Logger,
	})

	if asSVG {
		if err := svgout.EncodeScene(stdout, s); err != nil {
			return fmt.Errorf("failed to write scene: %w", err)
		}
		return nil
	}

	encoder := json.NewEncoder(stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(s); err != nil {
		return fmt.Errorf("failed to write scene: %w", err)
	}
	return nil
}

func logIssues(ctx context.Context, issues []dataset.Issue) {
	for _, issue := range issues {
		ctx := logging.WithContextAttrs(ctx, slog.String("subject", issue.Subject))
		if errors.Is(issue, dataset.ErrChainGap) {
			Logger.InfoContext(ctx, "Dataset note", "issue", issue.Error())
			continue
		}
		Logger.WarnContext(ctx, "Dataset issue", "issue", issue.Error())
	}
}
