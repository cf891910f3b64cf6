package setup

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/kanban/internal/app"
	clipkg "github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/config"
	"github.com/thenoetrevino/kanban/internal/testutil"
	"github.com/thenoetrevino/kanban/internal/testutil/cli"
)

func TestBootstrap_Integration(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer func() {
		_ = db.Close()
	}()
	application := app.New(db)

	output, err := cli.ExecuteCLICommand(t, application, BootstrapCmd(), nil)
	require.NoError(t, err)
	assert.Contains(t, output, "Board 'Default Board' (ID: 1) ready with 5 columns")

	// second run is a no-op
	output, err = cli.ExecuteCLICommand(t, application, BootstrapCmd(), []string{"--json"})
	require.NoError(t, err)
	data := testutil.ParseJSON(t, output)["data"].(map[string]interface{})
	assert.Len(t, data["columns"], 5)

	var boards int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM boards").Scan(&boards))
	assert.Equal(t, 1, boards)
}

func TestInitConfig_Integration(t *testing.T) {
	db, application := cli.SetupCLITest(t)
	defer func() {
		_ = db.Close()
	}()

	cfg := config.Default()
	cfg.Server.Addr = ":7070"
	ctx := clipkg.WithConfig(context.Background(), cfg)
	path := filepath.Join(t.TempDir(), "kanban", "config.yaml")

	output, err := cli.ExecuteCLICommandWithContext(t, ctx, application, ConfigCmd(), []string{"init", "--path", path})
	require.NoError(t, err)
	assert.Contains(t, output, "Config written to "+path)

	loaded, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":7070", loaded.Server.Addr)

	// refuses to overwrite without --force
	_, err = cli.ExecuteCLICommandWithContext(t, ctx, application, ConfigCmd(), []string{"init", "--path", path, "--json"})
	assert.Equal(t, clipkg.ExitUsage, clipkg.ExitCode(err))

	cfg.Server.Addr = ":8080"
	_, err = cli.ExecuteCLICommandWithContext(t, ctx, application, ConfigCmd(), []string{"init", "--path", path, "--force", "--quiet"})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), ":8080")
}
