package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if !m.ready {
		return "\n  Initializing..."
	}

	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(m.theme.Accent).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(m.theme.Border)

	helpStyle := lipgloss.NewStyle().Foreground(m.theme.Muted)

	header := headerStyle.Render(" ayat-atlas · verse locations ")

	contentW := max(m.width-listWidth-3, 24)
	contentH := max(m.height-4, 8)

	body := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.list.View(),
		" ",
		lipgloss.NewStyle().Width(contentW).Render(m.renderContent(contentW, contentH)),
	)

	help := helpStyle.Render("enter: select | esc: clear | i: labels | +/- zoom | shift+arrows: pan | q: quit")

	return fmt.Sprintf("%s\n%s\n%s", header, body, help)
}

// renderContent draws only the regions active for the current state.
func (m Model) renderContent(w, h int) string {
	regions := regionsFor(m.state)

	if regions.Has(RegionInstructions) {
		return lipgloss.NewStyle().Foreground(m.theme.Secondary).Render(
			"Pick a verse from the list and press enter.\n\n" +
				"Each verse is shown with two places: the location its\n" +
				"subject matter concerns, and the site of its revelation.")
	}

	if regions.Has(RegionSpinner) {
		return m.spinner.View() + " Loading verse..."
	}

	if regions.Has(RegionError) {
		return lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(m.theme.Error).
			Foreground(m.theme.Error).
			Padding(0, 1).
			Render("Error: " + m.errText)
	}

	// Loaded: text panels above the map.
	var sb strings.Builder

	if regions.Has(RegionArabic) && m.verse != nil {
		title := lipgloss.NewStyle().Bold(true).Foreground(m.theme.Accent).Render(
			fmt.Sprintf("%s (%s) · %s", m.verse.SurahName, m.verse.SurahNameArabic, m.verse.Revelation))
		arabic := lipgloss.NewStyle().Foreground(m.theme.Primary).Width(w).Render(m.verse.Arabic)
		sb.WriteString(title + "\n" + arabic + "\n\n")
	}

	if regions.Has(RegionTranslation) && m.verse != nil {
		sb.WriteString(lipgloss.NewStyle().Foreground(m.theme.Secondary).Width(w).Render(m.verse.Translation) + "\n\n")
	}

	if regions.Has(RegionTopic) && m.current != nil {
		topic := lipgloss.NewStyle().Foreground(m.theme.Muted).Render(
			fmt.Sprintf("Topic: %s - %s | Revealed in %s", m.current.TopicLocation, m.current.Description, m.site.Name))
		sb.WriteString(topic + "\n")
	}

	if regions.Has(RegionMap) {
		mapH := max(h-strings.Count(sb.String(), "\n")-2, 6)
		canvas := m.mapv.Render(max(w-4, 16), mapH)
		boxed := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(m.theme.BorderActive).
			Padding(0, 1).
			Render(canvas)
		sb.WriteString(boxed)

		if m.showLabels {
			legend := lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(m.theme.Border).
				Padding(0, 1).
				Render(strings.Join(m.mapv.Legend(), "\n"))
			sb.WriteString("\n" + legend)
		}
	}

	return sb.String()
}

// FatalModel is the permanent error screen shown when the dataset cannot
// be loaded. There is no retry path; any key quits.
type FatalModel struct {
	err error
	th  lipglossTheme
}

// lipglossTheme is the minimal slice of a theme the fatal screen needs.
type lipglossTheme struct {
	Error lipgloss.Color
	Muted lipgloss.Color
}

func NewFatalModel(err error, errColor, mutedColor lipgloss.Color) FatalModel {
	return FatalModel{err: err, th: lipglossTheme{Error: errColor, Muted: mutedColor}}
}

func (f FatalModel) Init() tea.Cmd { return nil }

func (f FatalModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok {
		return f, tea.Quit
	}
	return f, nil
}

func (f FatalModel) View() string {
	panel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(f.th.Error).
		Foreground(f.th.Error).
		Padding(0, 1).
		Render("Error: " + f.err.Error())
	hint := lipgloss.NewStyle().Foreground(f.th.Muted).Render("press any key to exit")
	return "\n" + panel + "\n" + hint + "\n"
}
