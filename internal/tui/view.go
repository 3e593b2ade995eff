package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/attune/internal/notify"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.state >= StateAddHabit && m.form != nil {
		return docStyle.Render(m.form.View())
	}

	var content string
	switch m.state {
	case StateChat:
		content = docStyle.Render(m.chatModel.View())
	case StateHabits:
		content = docStyle.Render(m.habitsModel.View())
	case StateTasks:
		content = docStyle.Render(m.tasksModel.View())
	case StateStress:
		content = docStyle.Render(m.stressModel.View())
	case StateSleep:
		content = docStyle.Render(m.sleepModel.View())
	case StateJournal:
		content = docStyle.Render(m.journalModel.View())
	case StateCalendar:
		content = docStyle.Render(m.calendarModel.View())
	case StateSettings:
		content = docStyle.Render(m.settingsModel.View())
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		m.viewBanners(),
		content,
		m.help.View(m.keys),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range tabTitles {
		if m.state == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// viewBanners renders the active notifications as a single line.
func (m Model) viewBanners() string {
	active := m.notifications.Active()
	if len(active) == 0 {
		return ""
	}

	var parts []string
	for _, n := range active {
		switch n.Kind {
		case notify.KindSuccess:
			parts = append(parts, successBannerStyle.Render("✓ "+n.Message))
		default:
			parts = append(parts, infoBannerStyle.Render("ℹ "+n.Message))
		}
	}
	return strings.Join(parts, "\n")
}
