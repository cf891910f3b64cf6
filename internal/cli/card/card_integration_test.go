package card

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clipkg "github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/testutil"
	"github.com/thenoetrevino/kanban/internal/testutil/cli"
)

func TestCreateCard_Integration(t *testing.T) {
	db, app := cli.SetupCLITest(t)
	defer func() {
		_ = db.Close()
	}()

	board, columns := cli.DefaultBoard(t, db)

	tests := []struct {
		name         string
		flags        []string
		expectedCode int
		verifyOutput func(t *testing.T, output string)
	}{
		{
			name: "Create card by column name",
			flags: []string{
				"--board", fmt.Sprintf("%d", board.ID),
				"--column", "defined",
				"--title", "Write docs",
			},
			verifyOutput: func(t *testing.T, output string) {
				assert.Contains(t, output, "Card 'Write docs' created")
				assert.Contains(t, output, "in Defined at position 0")
			},
		},
		{
			name: "Create card by column ID with JSON output",
			flags: []string{
				"--board", fmt.Sprintf("%d", board.ID),
				"--column", fmt.Sprintf("%d", columns[1].ID),
				"--title", "Second",
				"--description", "details",
				"--json",
			},
			verifyOutput: func(t *testing.T, output string) {
				result := testutil.ParseJSON(t, output)
				assert.Equal(t, true, result["success"])
				data := result["data"].(map[string]interface{})
				assert.Equal(t, "Second", data["title"])
				assert.Equal(t, "details", data["description"])
				assert.EqualValues(t, 1, data["position"])
			},
		},
		{
			name: "Create card quiet mode prints ID",
			flags: []string{
				"--board", fmt.Sprintf("%d", board.ID),
				"--column", "Parking Lot",
				"--title", "Quiet",
				"--quiet",
			},
			verifyOutput: func(t *testing.T, output string) {
				assert.Regexp(t, `^\d+\n$`, output)
			},
		},
		{
			name: "Unknown column name",
			flags: []string{
				"--board", fmt.Sprintf("%d", board.ID),
				"--column", "Review",
				"--title", "Lost",
				"--json",
			},
			expectedCode: clipkg.ExitNotFound,
			verifyOutput: func(t *testing.T, output string) {
				result := testutil.ParseJSON(t, output)
				assert.Equal(t, false, result["success"])
			},
		},
		{
			name: "Blank title",
			flags: []string{
				"--board", fmt.Sprintf("%d", board.ID),
				"--column", "Defined",
				"--title", "   ",
				"--json",
			},
			expectedCode: clipkg.ExitValidation,
			verifyOutput: func(t *testing.T, output string) {
				result := testutil.ParseJSON(t, output)
				errData := result["error"].(map[string]interface{})
				assert.Equal(t, "VALIDATION_ERROR", errData["code"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"create"}, tt.flags...)
			output, err := cli.ExecuteCLICommand(t, app, CardCmd(), args)

			assert.Equal(t, tt.expectedCode, clipkg.ExitCode(err), "err: %v", err)
			if tt.verifyOutput != nil {
				tt.verifyOutput(t, output)
			}
		})
	}
}

func TestMoveCard_Integration(t *testing.T) {
	db, app := cli.SetupCLITest(t)
	defer func() {
		_ = db.Close()
	}()

	board, columns := cli.DefaultBoard(t, db)
	defined, inProgress := columns[1], columns[2]

	x := cli.CreateTestCard(t, db, board.ID, defined.ID, "X", 0)
	cli.CreateTestCard(t, db, board.ID, defined.ID, "Y", 1)
	z := cli.CreateTestCard(t, db, board.ID, defined.ID, "Z", 2)

	// reorder within the column
	output, err := cli.ExecuteCLICommand(t, app, CardCmd(), []string{
		"move", "--id", fmt.Sprintf("%d", z), "--to", "Defined", "--position", "0",
	})
	require.NoError(t, err)
	assert.Contains(t, output, "moved from 'Defined' to 'Defined' at position 0")
	assert.Equal(t, map[int]string{0: "Z", 1: "X", 2: "Y"}, testutil.ColumnLayout(t, db, board.ID, defined.ID))

	// move across columns by name
	output, err = cli.ExecuteCLICommand(t, app, CardCmd(), []string{
		"move", "--id", fmt.Sprintf("%d", x), "--to", "in progress", "--json",
	})
	require.NoError(t, err)
	result := testutil.ParseJSON(t, output)
	data := result["data"].(map[string]interface{})
	assert.EqualValues(t, inProgress.ID, data["column_id"])
	assert.EqualValues(t, 0, data["position"])
	assert.Equal(t, map[int]string{0: "Z", 1: "Y"}, testutil.ColumnLayout(t, db, board.ID, defined.ID))

	// missing card
	_, err = cli.ExecuteCLICommand(t, app, CardCmd(), []string{
		"move", "--id", "9999", "--to", "Done", "--json",
	})
	assert.Equal(t, clipkg.ExitNotFound, clipkg.ExitCode(err))

	// negative position
	_, err = cli.ExecuteCLICommand(t, app, CardCmd(), []string{
		"move", "--id", fmt.Sprintf("%d", x), "--to", "Done", "--position", "-1", "--json",
	})
	assert.Equal(t, clipkg.ExitValidation, clipkg.ExitCode(err))
}

func TestShowCard_Integration(t *testing.T) {
	db, app := cli.SetupCLITest(t)
	defer func() {
		_ = db.Close()
	}()

	board, columns := cli.DefaultBoard(t, db)
	id := cli.CreateTestCard(t, db, board.ID, columns[3].ID, "Waiting on review", 0)

	output, err := cli.ExecuteCLICommand(t, app, CardCmd(), []string{"show", fmt.Sprintf("%d", id)})
	require.NoError(t, err)
	assert.Contains(t, output, "Waiting on review")
	assert.Contains(t, output, "Blocked")

	output, err = cli.ExecuteCLICommand(t, app, CardCmd(), []string{"show", "--id", fmt.Sprintf("%d", id), "--quiet"})
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("%d\n", id), output)

	_, err = cli.ExecuteCLICommand(t, app, CardCmd(), []string{"show", "0", "--json"})
	assert.Equal(t, clipkg.ExitUsage, clipkg.ExitCode(err))

	_, err = cli.ExecuteCLICommand(t, app, CardCmd(), []string{"show", "9999", "--json"})
	assert.Equal(t, clipkg.ExitNotFound, clipkg.ExitCode(err))
}
