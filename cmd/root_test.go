package cmd

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xll-gen/bin2header/internal/header"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	return executeWithStdin(t, nil, args...)
}

func executeWithStdin(t *testing.T, stdin []byte, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetIn(bytes.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeInput(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.bin")
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func TestConvert(t *testing.T) {
	path := writeInput(t, []byte{0x00})

	stdout, stderr, err := execute(t, path, "foo")
	require.NoError(t, err)
	require.Equal(t, "const unsigned char foo [] = {\n\t 0x0, \n};\n", stdout)
	require.Empty(t, stderr)
}

func TestConvert_Empty(t *testing.T) {
	path := writeInput(t, nil)

	stdout, _, err := execute(t, path, "empty")
	require.NoError(t, err)
	require.Equal(t, "const unsigned char empty [] = {\n};\n", stdout)
}

func TestConvert_Idempotent(t *testing.T) {
	data := make([]byte, 1024)
	for i := range data {
		data[i] = byte(i * 31)
	}
	path := writeInput(t, data)

	first, _, err := execute(t, path, "blob")
	require.NoError(t, err)
	second, _, err := execute(t, path, "blob")
	require.NoError(t, err)
	require.Equal(t, first, second)
	require.Equal(t, header.Format(data, "blob"), first)
}

func TestConvert_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.bin")

	stdout, stderr, err := execute(t, path, "foo")
	require.Error(t, err)
	require.True(t, errors.Is(err, fs.ErrNotExist))

	var fae *header.FileAccessError
	require.True(t, errors.As(err, &fae))
	require.Empty(t, stdout)
	require.Contains(t, stderr, "Error:")
}

func TestConvert_ArgCount(t *testing.T) {
	for _, args := range [][]string{{}, {"only-one"}, {"a", "b", "c"}} {
		stdout, _, err := execute(t, args...)
		require.Error(t, err, "args %v", args)
		require.Empty(t, stdout)
	}
}

func TestConvert_Config(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "bin2header.yaml")
	logPath := filepath.Join(dir, "bin2header.log")
	cfg := "logging:\n  level: debug\n  path: " + logPath + "\nlayout:\n  line_budget: 12\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0644))
	path := writeInput(t, []byte{0, 1, 2})

	stdout, _, err := execute(t, "--config", cfgPath, path, "two")
	require.NoError(t, err)
	require.Equal(t, "const unsigned char two [] = {\n\t 0x0,  0x1, \n\t 0x2, \n};\n", stdout)

	logged, err := os.ReadFile(logPath)
	require.NoError(t, err)
	require.Contains(t, string(logged), "bytes=3")
	require.Contains(t, string(logged), "per_line=2")
}

func TestConvert_LogFlags(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "run.log")
	path := writeInput(t, []byte{0xff})

	stdout, _, err := execute(t, "--log-level", "debug", "--log-file", logPath, path, "hi")
	require.NoError(t, err)
	require.Equal(t, "const unsigned char hi [] = {\n\t0xff, \n};\n", stdout)

	logged, err := os.ReadFile(logPath)
	require.NoError(t, err)
	require.Contains(t, string(logged), "name=hi")
}

func TestConvert_BadLogLevel(t *testing.T) {
	path := writeInput(t, []byte{1})

	stdout, _, err := execute(t, "--log-level", "loud", path, "x")
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid logging level")
	require.Empty(t, stdout)
}

func TestConvert_DashIdentifiers(t *testing.T) {
	path := writeInput(t, []byte{0x00})

	for _, name := range []string{"-h", "--help", "-foo", "--bar", "-c"} {
		stdout, stderr, err := execute(t, path, name)
		require.NoError(t, err, "name %q", name)
		require.Equal(t, "const unsigned char "+name+" [] = {\n\t 0x0, \n};\n", stdout)
		require.NotContains(t, stdout, "Usage:")
		require.Empty(t, stderr)
	}
}

func TestConvert_FlagsBeforeInput(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "run.log")
	path := writeInput(t, []byte{0x01})

	stdout, _, err := execute(t, "--log-level", "debug", "--log-file", logPath, path, "-x")
	require.NoError(t, err)
	require.Equal(t, "const unsigned char -x [] = {\n\t 0x1, \n};\n", stdout)

	logged, err := os.ReadFile(logPath)
	require.NoError(t, err)
	require.Contains(t, string(logged), "name=-x")
}

func TestConvert_Stdin(t *testing.T) {
	data := make([]byte, 40)
	for i := range data {
		data[i] = byte(255 - i)
	}
	path := writeInput(t, data)

	fromFile, _, err := execute(t, path, "blob")
	require.NoError(t, err)

	fromStdin, _, err := executeWithStdin(t, data, "-", "blob")
	require.NoError(t, err)
	require.Equal(t, fromFile, fromStdin)

	// A dashed identifier after "-" input is still positional.
	dashed, _, err := executeWithStdin(t, []byte{0}, "-", "-h")
	require.NoError(t, err)
	require.Equal(t, "const unsigned char -h [] = {\n\t 0x0, \n};\n", dashed)
}
