package main

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/mitchellh/cli"
	"github.com/stretchr/testify/require"
)

func testMeta(t *testing.T) (Meta, *cli.MockUi) {
	t.Helper()

	ui := cli.NewMockUi()
	return Meta{Ui: ui, ShutdownCh: make(chan struct{})}, ui
}

func writeFile(t *testing.T, name, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, ioutil.WriteFile(path, []byte(contents), 0o600))
	return path
}

func memoryConfig(t *testing.T) string {
	return writeFile(t, "tinydbc.yaml", `
database:
  name: cli
  protocol: memory
log:
  level: error
`)
}

func TestExecCommand_CSV(t *testing.T) {
	assert := require.New(t)
	meta, ui := testMeta(t)

	script := writeFile(t, "script.sql", `
CREATE TABLE fruit (name TEXT, qty INTEGER);
INSERT INTO fruit VALUES ('apple', 3), ('pear', 5);
SELECT name, qty FROM fruit ORDER BY name;
`)

	c := &ExecCommand{Meta: meta}
	code := c.Run([]string{"-config=" + memoryConfig(t), "-format=csv", script})
	assert.Equal(0, code, ui.ErrorWriter.String())
	assert.Equal("Rows affected: 0\nRows affected: 2\nname,qty\napple,3\npear,5\n", ui.OutputWriter.String())
}

func TestExecCommand_LogFile(t *testing.T) {
	assert := require.New(t)
	meta, ui := testMeta(t)

	logFile := filepath.Join(t.TempDir(), "tinydbc.log")
	config := writeFile(t, "tinydbc.yaml", fmt.Sprintf(`
database:
  name: cli
  protocol: memory
log:
  level: debug
  format: json
  file: %s
`, logFile))
	script := writeFile(t, "script.sql", "CREATE TABLE t (a INTEGER); INSERT INTO t VALUES (1);")

	c := &ExecCommand{Meta: meta}
	assert.Equal(0, c.Run([]string{"-config=" + config, script}), ui.ErrorWriter.String())

	data, err := ioutil.ReadFile(logFile)
	assert.NoError(err)
	assert.Contains(string(data), `"commands":2`)
	assert.Contains(string(data), `"msg":"running script"`)
	assert.Contains(string(data), `"msg":"connection closed"`)
}

func TestExecCommand_StopsOnError(t *testing.T) {
	assert := require.New(t)
	meta, ui := testMeta(t)

	script := writeFile(t, "script.sql", "SELECT * FROM missing; CREATE TABLE t (a INTEGER);")

	c := &ExecCommand{Meta: meta}
	assert.Equal(1, c.Run([]string{"-config=" + memoryConfig(t), script}))
	assert.Contains(ui.ErrorWriter.String(), "missing")
	assert.Empty(ui.OutputWriter.String())
}

func TestExecCommand_Interrupted(t *testing.T) {
	assert := require.New(t)
	meta, ui := testMeta(t)

	shutdownCh := make(chan struct{})
	close(shutdownCh)
	meta.ShutdownCh = shutdownCh

	script := writeFile(t, "script.sql", "CREATE TABLE t (a INTEGER);")

	c := &ExecCommand{Meta: meta}
	assert.Equal(1, c.Run([]string{"-config=" + memoryConfig(t), script}))
	assert.Contains(ui.ErrorWriter.String(), "Interrupted")
}

func TestExecCommand_BadFlags(t *testing.T) {
	assert := require.New(t)
	meta, ui := testMeta(t)

	c := &ExecCommand{Meta: meta}
	assert.Equal(1, c.Run([]string{"-format=xml", "script.sql"}))
	assert.Contains(ui.ErrorWriter.String(), "invalid format")

	assert.Equal(1, c.Run([]string{"-bogus"}))
	assert.Contains(ui.ErrorWriter.String(), "Usage: tinydbc exec")
}

func TestBatchCommand(t *testing.T) {
	assert := require.New(t)
	meta, ui := testMeta(t)

	script := writeFile(t, "script.sql", `
CREATE TABLE t (a INTEGER);
INSERT INTO t VALUES (1);
SELECT * FROM t;
INSERT INTO missing VALUES (1);
INSERT INTO t VALUES (2), (3);
`)

	c := &BatchCommand{Meta: meta}
	assert.Equal(2, c.Run([]string{"-config=" + memoryConfig(t), script}))

	out := ui.OutputWriter.String()
	assert.Contains(out, "SUCCESS_NO_INFO")
	assert.Contains(out, "EXECUTE_FAILED")
	assert.Contains(out, "INSERT INTO t VALUES (2), (3)")
}

func TestBatchCommand_AllSucceed(t *testing.T) {
	assert := require.New(t)
	meta, ui := testMeta(t)

	script := writeFile(t, "script.sql", "CREATE TABLE t (a INTEGER); INSERT INTO t VALUES (1);")

	c := &BatchCommand{Meta: meta}
	assert.Equal(0, c.Run([]string{"-config=" + memoryConfig(t), script}), ui.ErrorWriter.String())
	assert.NotContains(ui.OutputWriter.String(), "EXECUTE_FAILED")
}

func TestInitCommand(t *testing.T) {
	assert := require.New(t)
	meta, ui := testMeta(t)

	dir := t.TempDir()
	config := writeFile(t, "tinydbc.yaml", fmt.Sprintf(`
database:
  path: %s
  name: shop
log:
  level: error
`, dir))

	c := &InitCommand{Meta: meta}
	assert.Equal(0, c.Run([]string{"-config=" + config}), ui.ErrorWriter.String())
	assert.Contains(ui.OutputWriter.String(), `Initialized sqlite database "shop"`)

	info, err := os.Stat(filepath.Join(dir, "shop"))
	assert.NoError(err)
	assert.True(info.IsDir())
}

func TestInitCommand_BadConfig(t *testing.T) {
	assert := require.New(t)
	meta, ui := testMeta(t)

	c := &InitCommand{Meta: meta}
	assert.Equal(1, c.Run([]string{"-config=" + filepath.Join(t.TempDir(), "missing.yaml")}))
	assert.Contains(ui.ErrorWriter.String(), "Error opening connection")
}

func TestVersionCommand(t *testing.T) {
	assert := require.New(t)
	meta, ui := testMeta(t)

	c := &VersionCommand{Meta: meta}
	assert.Equal(0, c.Run(nil))
	assert.Equal("tinydbc v"+version+"\n", ui.OutputWriter.String())
}

func TestCommands(t *testing.T) {
	assert := require.New(t)
	meta, _ := testMeta(t)

	for _, name := range []string{"exec", "batch", "init", "version"} {
		factory, ok := commands(meta)[name]
		assert.True(ok, name)

		c, err := factory()
		assert.NoError(err)
		assert.NotEmpty(c.Synopsis())
		assert.NotEmpty(c.Help())
	}
}
