package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// TreeItem is one line of a tree display.
type TreeItem struct {
	Title  string
	Level  int
	IsLast bool
	// Detail is shown as a right-aligned badge.
	Detail string
}

const (
	treeBranch = "├─ "
	treeCorner = "└─ "
	treePipe   = "│  "
)

// RenderTree renders items as an indented tree with box-drawing connectors.
// Level 0 items are bold; wrapped titles keep the connector column.
func RenderTree(items []TreeItem, width int) string {
	if len(items) == 0 {
		return ""
	}

	type line struct {
		content string
		badge   string
	}
	lines := make([]line, len(items))
	maxWidth := 0

	for idx, item := range items {
		prefix, cont := "", ""
		if item.Level > 0 {
			for i := 1; i < item.Level; i++ {
				prefix += treePipe
				cont += treePipe
			}
			if item.IsLast {
				prefix += treeCorner
				cont += "   "
			} else {
				prefix += treeBranch
				cont += treePipe
			}
		}

		title := item.Title
		if width > 0 {
			title = strings.ReplaceAll(wrapText(title, width-lipgloss.Width(prefix)), "\n", "\n"+StyleDim.Render(cont))
		}
		if item.Level == 0 {
			title = Bold(title)
		}

		content := StyleDim.Render(prefix) + title
		lines[idx].content = content
		if item.Detail != "" {
			lines[idx].badge = StyleBlue.Render("[ " + item.Detail + " ]")
		}
		if w := lipgloss.Width(content); w > maxWidth && !strings.Contains(content, "\n") {
			maxWidth = w
		}
	}

	var b strings.Builder
	for _, li := range lines {
		if li.badge == "" {
			b.WriteString(li.content + "\n")
			continue
		}
		pad := max(0, maxWidth-lipgloss.Width(li.content))
		b.WriteString(li.content + strings.Repeat(" ", pad) + "  " + li.badge + "\n")
	}
	return b.String()
}
