package tui

// errorOverlayModel shows a blocking error until enter or esc is pressed.
type errorOverlayModel struct {
	title   string
	message string
}

func (m errorOverlayModel) visible() bool {
	return m.message != ""
}

func (m errorOverlayModel) View() string {
	title := m.title
	if title == "" {
		title = "Error"
	}
	content := errorTitleStyle.Render(title) + "\n\n" + m.message + "\n\n" + helpStyle.Render("enter / esc close")
	return overlayBoxStyle.Render(content)
}
