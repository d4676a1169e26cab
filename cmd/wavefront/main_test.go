package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kenny-designs/wavefront/config"
	"github.com/kenny-designs/wavefront/mapio"
	"github.com/kenny-designs/wavefront/planner"
)

const roomMap = `0 0 0 0 0 0 0 0
0 0 0 0 0 0 0 0
0 0 0 0 0 0 0 0
1 1 1 1 1 0 0 0
0 0 0 0 0 0 0 0
0 0 0 0 0 0 0 0
0 0 0 0 0 0 0 0
0 0 0 0 0 0 0 0
`

func writeRoom(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "map.txt")
	require.NoError(t, os.WriteFile(path, []byte(roomMap), 0o644))
	return path
}

func runCLI(args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestPointValue(t *testing.T) {
	var v pointValue
	require.NoError(t, v.Set("-2, 1.5"))
	assert.Equal(t, config.Point{X: -2, Y: 1.5}, v.p)
	assert.Equal(t, "-2,1.5", v.String())

	assert.Error(t, v.Set("3"))
	assert.Error(t, v.Set("a,1"))
	assert.Error(t, v.Set("1,b"))
}

func TestRun_Plan(t *testing.T) {
	mapPath := writeRoom(t)
	dir := filepath.Dir(mapPath)
	outMap := filepath.Join(dir, "map-out.txt")
	outPlan := filepath.Join(dir, "plan-out.txt")
	outYAML := filepath.Join(dir, "plan.yaml")

	code, stdout, stderr := runCLI("plan",
		"-map", mapPath, "-side", "8",
		"-start", "-2,-2", "-goal", "-2,1.5",
		"-out-map", outMap, "-out-plan", outPlan, "-out-yaml", outYAML,
		"-log-level", "error")
	require.Equal(t, exitOK, code, stderr)
	assert.Equal(t, "(1.0, -2.0)\n(1.0, 1.5)\n(-2.0, 1.5)\nhops 19\n", stdout)

	plan, err := os.ReadFile(outPlan)
	require.NoError(t, err)
	assert.Equal(t, "6 1 -2 1 1.5 -2 1.5\n", string(plan))

	dump, err := os.ReadFile(outMap)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(dump), "\n"), "\n")
	require.Len(t, lines, 8)
	assert.Equal(t, "0 0 0 0 0 0 2 0", lines[0])
	assert.Equal(t, "1 1 1 1 1 0 0 0", lines[3])
	assert.Equal(t, "2 0 0 0 0 0 2 0", lines[7])

	f, err := os.Open(outYAML)
	require.NoError(t, err)
	defer f.Close()
	doc, err := mapio.ReadPlanYAML(f)
	require.NoError(t, err)
	assert.Equal(t, 19, doc.Hops)
	assert.True(t, doc.Dilated)
	assert.Equal(t, planner.Point{X: -2, Y: 1.5}, doc.Goal)
}

func TestRun_PlanFromConfig(t *testing.T) {
	mapPath := writeRoom(t)
	dir := filepath.Dir(mapPath)
	cfgPath := filepath.Join(dir, "wavefront.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
[map]
path = "`+filepath.ToSlash(mapPath)+`"
side = 0

[planner]
start = { x = -2.0, y = -2.0 }
goal = { x = -2.0, y = 1.5 }
dilate = false

[output]
map_path = "-"
plan_path = "-"

[logging]
level = "error"
`), 0o644))

	code, stdout, stderr := runCLI("plan", "-config", cfgPath)
	require.Equal(t, exitOK, code, stderr)
	// without dilation the gap cell next to the wall is usable
	assert.Equal(t, "(0.5, -2.0)\n(0.5, 1.5)\n(-2.0, 1.5)\nhops 17\n", stdout)
}

func TestRun_Errors(t *testing.T) {
	mapPath := writeRoom(t)
	quiet := []string{"-map", mapPath, "-side", "0", "-log-level", "error", "-out-map", "-", "-out-plan", "-"}

	tests := []struct {
		name string
		args []string
		want int
	}{
		{"no command", nil, exitUsage},
		{"unknown command", []string{"fly"}, exitUsage},
		{"bad flag", []string{"plan", "-bogus"}, exitUsage},
		{"flag help", []string{"plan", "-h"}, exitUsage},
		{"stray argument", append([]string{"plan", "extra"}, quiet...), exitUsage},
		{"invalid radius", append([]string{"plan", "-radius", "-1"}, quiet...), exitUsage},
		{"missing map", []string{"plan", "-map", filepath.Join(t.TempDir(), "none.txt"), "-log-level", "error"}, exitError},
		{"goal outside", append([]string{"plan", "-start", "-2,-2", "-goal", "9,9"}, quiet...), exitNoPlan},
		{"goal in wall", append([]string{"plan", "-start", "-2,-2", "-goal", "-2,-0.5"}, quiet...), exitNoPlan},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			code, _, _ := runCLI(tc.args...)
			assert.Equal(t, tc.want, code)
		})
	}
}

func TestRun_Help(t *testing.T) {
	code, stdout, _ := runCLI("help")
	assert.Equal(t, exitOK, code)
	assert.Contains(t, stdout, "Usage: wavefront")
}

func TestRun_Inspect(t *testing.T) {
	code, stdout, stderr := runCLI("inspect", "-map", writeRoom(t), "-side", "8", "-log-level", "error")
	require.Equal(t, exitOK, code, stderr)
	assert.Contains(t, stdout, "side      8 cells, 0.50 m each, extent ±2.00 m")
	assert.Contains(t, stdout, "occupied  5 of 64")
	assert.Contains(t, stdout, "regions   1")
	assert.Contains(t, stdout, "dilated   13 cells at radius 1, 1 regions")
	assert.Contains(t, stdout, "#####+..")
}

func TestRun_InspectEndpoints(t *testing.T) {
	room := writeRoom(t)

	code, stdout, stderr := runCLI("inspect", "-map", room, "-side", "8", "-log-level", "error",
		"-start", "-2,-2", "-goal", "-2,1.5")
	require.Equal(t, exitOK, code, stderr)
	assert.Contains(t, stdout, "start     (-2.0, -2.0) in region 0\n")
	assert.Contains(t, stdout, "goal      (-2.0, 1.5) in region 0\n")
	assert.Contains(t, stdout, "\nconnected yes\n")
	assert.Contains(t, stdout, "\n  connected yes\n")

	code, stdout, stderr = runCLI("inspect", "-map", room, "-side", "8", "-log-level", "error",
		"-start", "9,9", "-goal", "-2,-0.5")
	require.Equal(t, exitOK, code, stderr)
	assert.Contains(t, stdout, "start     (9.0, 9.0) outside the map\n")
	assert.Contains(t, stdout, "goal      (-2.0, -0.5) is occupied\n")
	assert.NotContains(t, stdout, "connected")
}
