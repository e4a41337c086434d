package e2e

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmokeFlow(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)
	require.NoError(t, writeAccountsFixture(home))

	stdout, stderr, err := runTBC(t, binaryPath, home,
		"account", "add",
		"--email", "backup@example.com",
		"--password", "pw-backup",
	)
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "added account 2 (Account 2)")

	stdout, stderr, err = runTBC(t, binaryPath, home, "account", "list")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "1\tPrimary\tprimary@example.com")
	assert.Contains(t, stdout, "2\tAccount 2\tbackup@example.com")

	stdout, stderr, err = runTBC(t, binaryPath, home, "status")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "Primary (#1)")

	stdout, stderr, err = runTBC(t, binaryPath, home, "cookies")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "no cookies stored yet")
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "tbc-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/tbc")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build tbc binary: %s", string(output))
	return binaryPath
}

func runTBC(t *testing.T, binaryPath, home string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(), "HOME="+home, "TBC_LOG_LEVEL=error")

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func repoRoot(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(wd, "..", ".."))
}

func writeAccountsFixture(home string) error {
	configDir := filepath.Join(home, ".tbc")
	if err := os.MkdirAll(configDir, 0o700); err != nil {
		return err
	}

	accounts := `version = 1

[[accounts]]
name = "Primary"
email = "primary@example.com"
password = "pw-primary"
`

	return os.WriteFile(filepath.Join(configDir, "accounts.toml"), []byte(accounts), 0o600)
}
