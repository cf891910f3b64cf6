package board

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clipkg "github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/testutil"
	"github.com/thenoetrevino/kanban/internal/testutil/cli"
)

func TestListBoards_Integration(t *testing.T) {
	db, app := cli.SetupCLITest(t)
	defer func() {
		_ = db.Close()
	}()

	output, err := cli.ExecuteCLICommand(t, app, BoardCmd(), []string{"list"})
	require.NoError(t, err)
	assert.Contains(t, output, "[1] Default Board")

	output, err = cli.ExecuteCLICommand(t, app, BoardCmd(), []string{"list", "--json"})
	require.NoError(t, err)
	result := testutil.ParseJSON(t, output)
	boards := result["data"].([]interface{})
	require.Len(t, boards, 1)
	assert.Equal(t, "Default Board", boards[0].(map[string]interface{})["name"])
}

func TestCreateBoard_Integration(t *testing.T) {
	db, app := cli.SetupCLITest(t)
	defer func() {
		_ = db.Close()
	}()

	output, err := cli.ExecuteCLICommand(t, app, BoardCmd(), []string{"create", "--name", "Roadmap", "--quiet"})
	require.NoError(t, err)
	id := strings.TrimSpace(output)

	output, err = cli.ExecuteCLICommand(t, app, BoardCmd(), []string{"list", "--quiet"})
	require.NoError(t, err)
	assert.Equal(t, "1\n"+id+"\n", output)

	_, err = cli.ExecuteCLICommand(t, app, BoardCmd(), []string{"create", "--name", " ", "--json"})
	assert.Equal(t, clipkg.ExitValidation, clipkg.ExitCode(err))
}

func TestShowBoard_Integration(t *testing.T) {
	db, app := cli.SetupCLITest(t)
	defer func() {
		_ = db.Close()
	}()

	board, columns := cli.DefaultBoard(t, db)
	cli.CreateTestCard(t, db, board.ID, columns[2].ID, "Build it", 0)

	output, err := cli.ExecuteCLICommand(t, app, BoardCmd(), []string{"show"})
	require.NoError(t, err)
	for _, name := range []string{"Default Board", "Parking Lot", "Defined", "In Progress", "Blocked", "Done", "Build it"} {
		assert.Contains(t, output, name)
	}

	output, err = cli.ExecuteCLICommand(t, app, BoardCmd(), []string{"show", "--board", fmt.Sprintf("%d", board.ID), "--json"})
	require.NoError(t, err)
	data := testutil.ParseJSON(t, output)["data"].(map[string]interface{})
	assert.Len(t, data["columns"], 5)
	assert.Len(t, data["cards"], 1)

	_, err = cli.ExecuteCLICommand(t, app, BoardCmd(), []string{"show", "--board", "42", "--json"})
	assert.Equal(t, clipkg.ExitNotFound, clipkg.ExitCode(err))
}
