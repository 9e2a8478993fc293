package cli

import (
	"github.com/charmbracelet/lipgloss"

	"study-planner/internal/domain"
)

// Styles holds the lipgloss styles shared by every command's output.
type Styles struct {
	color bool

	Title    lipgloss.Style
	Header   lipgloss.Style
	Done     lipgloss.Style
	Pending  lipgloss.Style
	Muted    lipgloss.Style
	Warning  lipgloss.Style
	Category lipgloss.Style
}

// NewStyles builds the style set. With color disabled every style renders
// plain text, which keeps piped output clean.
func NewStyles(color bool) *Styles {
	s := &Styles{color: color}
	if !color {
		plain := lipgloss.NewStyle()
		s.Title = plain
		s.Header = plain
		s.Done = plain
		s.Pending = plain
		s.Muted = plain
		s.Warning = plain
		s.Category = plain
		return s
	}

	s.Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	s.Header = lipgloss.NewStyle().Bold(true)
	s.Done = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Strikethrough(true)
	s.Pending = lipgloss.NewStyle()
	s.Muted = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	s.Warning = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	s.Category = lipgloss.NewStyle().Bold(true).Underline(true)
	return s
}

// Subject renders a subject name in the subject's configured color.
func (s *Styles) Subject(subjectID string) string {
	subject, ok := domain.SubjectByID(subjectID)
	if !ok {
		return subjectID
	}
	if !s.color {
		return subject.Name
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(subject.Color)).Render(subject.Name)
}
