package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/touchline/goalviz/internal/config"
	"github.com/touchline/goalviz/internal/dataset"
	"github.com/touchline/goalviz/internal/scene"
	"github.com/touchline/goalviz/internal/storage/memory"
	"github.com/touchline/goalviz/pkg/core"
)

// writeConfig puts a config file in a fresh dir with logs and renders below it.
func writeConfig(t *testing.T, extra string) string {
	t.Helper()
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	cfg := `{
		"logsDir": "` + filepath.ToSlash(filepath.Join(dir, "logs")) + `",
		"storage": {"file": {"outputDir": "` + filepath.ToSlash(filepath.Join(dir, "renders")) + `"` + extra + `}}
	}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.ConfigFileName), []byte(cfg), 0644))
	return dir
}

func TestParseArgs(t *testing.T) {
	tests := []struct {
		args      []string
		command   string
		configDir string
		svg       bool
		wantErr   bool
	}{
		{nil, "render", ".", false, false},
		{[]string{"render"}, "render", ".", false, false},
		{[]string{"VALIDATE", "conf"}, "validate", "conf", false, false},
		{[]string{"scene"}, "scene", ".", false, false},
		{[]string{"scene", "-svg"}, "scene", ".", true, false},
		{[]string{"scene", "--svg", "conf"}, "scene", "conf", true, false},
		{[]string{"./conf"}, "render", "./conf", false, false},
		{[]string{"--help"}, "help", ".", false, false},
		{[]string{"render", "a", "b"}, "", "", false, true},
		{[]string{"render", "-svg", "conf"}, "", "", false, true},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			cli, err := parseArgs(tt.args)
			if tt.wantErr {
				assert.ErrorIs(t, err, errUsage)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.command, cli.command)
			assert.Equal(t, tt.configDir, cli.configDir)
			assert.Equal(t, tt.svg, cli.svg)
		})
	}
}

func TestRun_Render(t *testing.T) {
	dir := writeConfig(t, "")

	var out bytes.Buffer
	require.NoError(t, run([]string{"render", dir}, &out))

	svgPath := filepath.Join(dir, "renders", "argentina_vs_serbia_and_montenegro_2006.svg")
	scenePath := filepath.Join(dir, "renders", "argentina_vs_serbia_and_montenegro_2006.scene.json")
	assert.Contains(t, out.String(), svgPath)
	assert.Contains(t, out.String(), scenePath)

	data, err := os.ReadFile(svgPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `viewBox="0 0 404 814"`)
	assert.Contains(t, string(data), "<title>Argentina vs Serbia and Montenegro, 2006</title>")

	logData, err := os.ReadFile(LogFilePath)
	require.NoError(t, err)
	assert.Contains(t, string(logData), "Rendered goal")
	assert.Contains(t, string(logData), "render_id=")
}

func TestRun_RenderCompressedWithoutScene(t *testing.T) {
	dir := writeConfig(t, `, "compressOutput": true, "exportScene": false`)

	var out bytes.Buffer
	require.NoError(t, run([]string{dir}, &out))

	_, err := os.Stat(filepath.Join(dir, "renders", "argentina_vs_serbia_and_montenegro_2006.svgz"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "renders", "argentina_vs_serbia_and_montenegro_2006.scene.json"))
	assert.True(t, os.IsNotExist(err))
}

func TestRun_Validate(t *testing.T) {
	dir := writeConfig(t, "")

	var out bytes.Buffer
	require.NoError(t, run([]string{"validate", dir}, &out))
	assert.Equal(t, "ok: 10 players, 9 movements, 24 passes, 16 ball points\n", out.String())
}

func TestRun_Scene(t *testing.T) {
	dir := writeConfig(t, "")

	var out bytes.Buffer
	require.NoError(t, run([]string{"scene", dir}, &out))

	var s scene.Scene
	require.NoError(t, json.Unmarshal(out.Bytes(), &s))
	assert.Equal(t, core.CanvasWidth, s.Width)
	assert.Equal(t, core.CanvasHeight, s.Height)
	assert.Equal(t, 24, s.Count(scene.LayerPasses, scene.KindLine))
	assert.Equal(t, 10, s.Count(scene.LayerPlayers, scene.KindMarker))
}

func TestRun_SceneSVG(t *testing.T) {
	dir := writeConfig(t, "")

	var out bytes.Buffer
	require.NoError(t, run([]string{"scene", "-svg", dir}, &out))

	svg := out.String()
	assert.True(t, strings.HasPrefix(svg, "<?xml"))
	assert.Contains(t, svg, `viewBox="0 0 404 678"`)
	assert.Contains(t, svg, `<g id="passes">`)
	assert.Contains(t, svg, `<g id="players">`)
	assert.NotContains(t, svg, `<g id="legend">`)
	assert.Equal(t, 24, strings.Count(svg, `id="touch-`))
}

func TestRun_UnknownStorage(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	cfg := `{"logsDir": "` + filepath.ToSlash(filepath.Join(dir, "logs")) + `", "storage": {"type": "s3"}}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.ConfigFileName), []byte(cfg), 0644))

	err := run([]string{"render", dir}, &bytes.Buffer{})
	assert.ErrorContains(t, err, "unknown storage type: s3")
}

func TestRun_Help(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"help"}, &out))
	assert.Contains(t, out.String(), "usage: goalviz")
}

func TestRenderGoal_MemoryBackend(t *testing.T) {
	dir := writeConfig(t, "")
	cleanup := setup(dir)
	defer cleanup()

	backend := memory.New()
	var out bytes.Buffer
	artifact, err := renderGoal(context.Background(), dataset.Goal(), backend, 808, &out)
	require.NoError(t, err)

	assert.Empty(t, out.String(), "memory backend exports no files")
	assert.NotEmpty(t, artifact.RenderID)
	assert.Equal(t, "argentina_vs_serbia_and_montenegro_2006", artifact.Name)
	assert.Contains(t, string(artifact.SVG), `width="808"`)
	require.NotNil(t, artifact.Scene)
	assert.Equal(t, 1, artifact.Scene.Count(scene.LayerBallPath, scene.KindPath))

	stored, ok := backend.Last()
	require.True(t, ok)
	assert.Equal(t, artifact.RenderID, stored.RenderID)
}

func TestValidateGoal_ReportsIssues(t *testing.T) {
	dir := writeConfig(t, "")
	cleanup := setup(dir)
	defer cleanup()

	ds := dataset.Goal()
	ds.Passes = append(ds.Passes, core.Pass{From: "crespo", To: "nobody"})

	var out bytes.Buffer
	err := validateGoal(context.Background(), ds, &out)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errInvalidDataset))
	assert.Contains(t, out.String(), "pass[24]")
}
