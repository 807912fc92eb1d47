package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/MKhiriev/go-movie-keeper/models"
)

const (
	fieldTitle = iota
	fieldYear
	fieldGenre
	fieldRating
	fieldReview
	fieldImage
	fieldCount
)

var formLabels = [fieldCount]string{
	fieldTitle:  "Title: ",
	fieldYear:   "Year:  ",
	fieldGenre:  "Genre: ",
	fieldRating: "Rating:",
	fieldReview: "Review:",
	fieldImage:  "Image: ",
}

type formModel struct {
	inputs     []textinput.Model
	focus      int
	editing    bool
	id         models.MovieID
	submitting bool
}

// newFormModel opens an empty form, or one prefilled from movie for editing.
func newFormModel(movie *models.Movie) formModel {
	inputs := make([]textinput.Model, fieldCount)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 50
	}
	inputs[fieldYear].CharLimit = 4
	inputs[fieldRating].CharLimit = 2
	inputs[fieldImage].Placeholder = "https://..."
	inputs[fieldTitle].Focus()

	m := formModel{inputs: inputs}
	if movie == nil {
		return m
	}

	m.editing = true
	m.id = movie.ID
	m.inputs[fieldTitle].SetValue(movie.Title)
	m.inputs[fieldYear].SetValue(strconv.Itoa(movie.Year))
	m.inputs[fieldGenre].SetValue(movie.Genre)
	m.inputs[fieldRating].SetValue(strconv.Itoa(movie.Rating))
	m.inputs[fieldReview].SetValue(movie.Review)
	m.inputs[fieldImage].SetValue(movie.Image)
	return m
}

// fields reads the form. Non-numeric year or rating read as zero and are
// reported by validation.
func (m formModel) fields() models.MovieFields {
	return models.MovieFields{
		Title:  strings.TrimSpace(m.inputs[fieldTitle].Value()),
		Year:   atoiOrZero(m.inputs[fieldYear].Value()),
		Genre:  strings.TrimSpace(m.inputs[fieldGenre].Value()),
		Rating: atoiOrZero(m.inputs[fieldRating].Value()),
		Review: strings.TrimSpace(m.inputs[fieldReview].Value()),
		Image:  strings.TrimSpace(m.inputs[fieldImage].Value()),
	}
}

func (m formModel) focusNext() formModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func (m formModel) focusPrev() formModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func (m formModel) View() string {
	title := "New movie"
	if m.editing {
		title = "Editing: " + m.inputs[fieldTitle].Value()
	}

	var b strings.Builder
	for i, input := range m.inputs {
		b.WriteString(formLabels[i])
		b.WriteString(" [")
		b.WriteString(input.View())
		b.WriteString("]\n")
	}
	if m.submitting {
		b.WriteString("\nSaving...")
	}

	return renderPage(titleStyle.Render(title), b.String(), "esc cancel  tab/shift+tab field  enter save")
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}
