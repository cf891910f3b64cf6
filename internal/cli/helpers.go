package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanban/internal/models"
)

// FindColumn resolves a column by numeric ID or case-insensitive name
func FindColumn(columns []*models.Column, ref string) (*models.Column, error) {
	ref = strings.TrimSpace(ref)
	if id, err := strconv.Atoi(ref); err == nil {
		for _, col := range columns {
			if col.ID == id {
				return col, nil
			}
		}
		return nil, fmt.Errorf("column %d is not on this board", id)
	}

	for _, col := range columns {
		if strings.EqualFold(col.Name, ref) {
			return col, nil
		}
	}

	names := make([]string, len(columns))
	for i, col := range columns {
		names[i] = col.Name
	}
	return nil, fmt.Errorf("column '%s' not found (available: %s)", ref, strings.Join(names, ", "))
}

// ColumnName returns the name of the column with the given ID, or "?"
func ColumnName(columns []*models.Column, id int) string {
	for _, col := range columns {
		if col.ID == id {
			return col.Name
		}
	}
	return "?"
}

// Formatter builds an OutputFormatter from the --json and --quiet flags
func Formatter(cmd *cobra.Command) *OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return &OutputFormatter{
		JSON:  jsonOutput,
		Quiet: quietMode,
		Out:   cmd.OutOrStdout(),
		Err:   cmd.ErrOrStderr(),
	}
}

// AddOutputFlags registers the agent-friendly output flags
func AddOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")
}
