// Package styles renders boards and cards for the terminal with lipgloss
package styles

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/glamour"

	"github.com/thenoetrevino/kanban/internal/config"
	"github.com/thenoetrevino/kanban/internal/models"
)

var (
	// Card styles
	CardStyle lipgloss.Style
	CardWidth = 80

	// Board styles
	ColumnStyle     lipgloss.Style
	ColumnCardStyle lipgloss.Style
	ColumnWidth     = 26

	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	LabelStyle    lipgloss.Style // For field labels like "Column:", "Position:"
	ValueStyle    lipgloss.Style // For field values
	SectionStyle  lipgloss.Style // For section headers like "Description"

	// Status styles
	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style

	// markdownStyle is the glamour standard style matching the theme
	markdownStyle = "dark"
)

// Init initializes all CLI styles with the given theme
func Init(theme *config.Theme) {
	if theme == nil {
		theme = config.DefaultTheme()
	}

	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Accent)).
		Padding(1, 2).
		Width(CardWidth)

	ColumnStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.ColumnBorder)).
		Padding(0, 1).
		Width(ColumnWidth)

	ColumnCardStyle = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(theme.CardBorder)).
		Foreground(lipgloss.Color(theme.Normal)).
		Width(ColumnWidth - 4)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Title))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle))

	LabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Accent))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Normal))

	SectionStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Accent)).
		Bold(true).
		MarginTop(1)

	SuccessStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.InfoFg)).
		Background(lipgloss.Color(theme.InfoBg)).
		Padding(0, 1)

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.ErrorFg)).
		Background(lipgloss.Color(theme.ErrorBg)).
		Padding(0, 1)

	markdownStyle = "dark"
	if theme.Preset == "monochrome" {
		markdownStyle = "notty"
	}
}

func init() {
	Init(nil)
}

// ═══════════════════════════════════════════════════════════════════
// RENDERING
// ═══════════════════════════════════════════════════════════════════

// RenderBoard lays out the board's columns side by side, each listing its
// cards in position order. cards must be ordered by column, then position.
func RenderBoard(board *models.Board, columns []*models.Column, cards []*models.Card) string {
	byColumn := make(map[int][]*models.Card, len(columns))
	for _, card := range cards {
		byColumn[card.ColumnID] = append(byColumn[card.ColumnID], card)
	}

	rendered := make([]string, 0, len(columns))
	for _, col := range columns {
		colCards := byColumn[col.ID]

		var b strings.Builder
		b.WriteString(TitleStyle.Render(col.Name))
		b.WriteString(SubtitleStyle.Render(fmt.Sprintf(" (%d)", len(colCards))))
		for _, card := range colCards {
			b.WriteString("\n")
			b.WriteString(ColumnCardStyle.Render(fmt.Sprintf("#%d %s", card.ID, card.Title)))
		}
		if len(colCards) == 0 {
			b.WriteString("\n")
			b.WriteString(SubtitleStyle.Render("empty"))
		}

		rendered = append(rendered, ColumnStyle.Render(b.String()))
	}

	header := TitleStyle.Render(board.Name) + SubtitleStyle.Render(fmt.Sprintf("  board #%d", board.ID))
	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		lipgloss.JoinHorizontal(lipgloss.Top, rendered...),
	)
}

// RenderCardDetail renders a card with its description as markdown
func RenderCardDetail(card *models.Card, columnName string) (string, error) {
	var content strings.Builder

	content.WriteString(TitleStyle.Render(card.Title))
	content.WriteString("\n")
	content.WriteString(SubtitleStyle.Render(fmt.Sprintf("card #%d", card.ID)))
	content.WriteString("\n\n")

	content.WriteString(LabelStyle.Render("Board: "))
	content.WriteString(ValueStyle.Render(fmt.Sprintf("%d", card.BoardID)))
	content.WriteString("\n")
	content.WriteString(LabelStyle.Render("Column: "))
	content.WriteString(ValueStyle.Render(fmt.Sprintf("%s (%d)", columnName, card.ColumnID)))
	content.WriteString("\n")
	content.WriteString(LabelStyle.Render("Position: "))
	content.WriteString(ValueStyle.Render(fmt.Sprintf("%d", card.Position)))
	content.WriteString("\n")

	if desc := card.DescriptionText(); desc != "" {
		content.WriteString(SectionStyle.Render("Description"))
		content.WriteString("\n")
		md, err := RenderMarkdown(desc, CardWidth-6)
		if err != nil {
			return "", err
		}
		content.WriteString(strings.TrimRight(md, "\n"))
	}

	return CardStyle.Render(content.String()), nil
}

// RenderMarkdown renders markdown text for the terminal, wrapped at width
func RenderMarkdown(text string, width int) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(markdownStyle),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	return renderer.Render(text)
}

// ═══════════════════════════════════════════════════════════════════
// HELPER FUNCTIONS
// ═══════════════════════════════════════════════════════════════════

// ColoredText renders text with a hex color
func ColoredText(text, hexColor string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(hexColor)).
		Render(text)
}

// RenderSuccess renders a one-line success message
func RenderSuccess(msg string) string {
	return SuccessStyle.Render("✓") + " " + msg
}
