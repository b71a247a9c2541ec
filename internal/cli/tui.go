package cli

import (
	"fmt"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/permgen/pkg/perm"
)

// Stepper styles
var (
	stepCellStyle = lipgloss.NewStyle().Width(4).Align(lipgloss.Right)
	stepBoxStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim).
			Padding(0, 1)
)

// =============================================================================
// StepModel - Interactive enumeration stepper
// =============================================================================

// StepModel is the bubbletea model that walks a generator one transition at
// a time and highlights the positions each transition changed.
type StepModel struct {
	Gen     perm.Generator[int]
	Perm    []int
	Changed []int
	Step    int
	Total   int // 0 when the count does not fit in an int
	Done    bool
}

// NewStepModel creates a stepper positioned on the first permutation of g.
func NewStepModel(g perm.Generator[int], total int) StepModel {
	return StepModel{
		Gen:   g,
		Perm:  slices.Clone(g.Perm()),
		Step:  1,
		Total: total,
	}
}

func (m StepModel) Init() tea.Cmd {
	return nil
}

func (m StepModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ", "enter", "n", "right", "l":
			return m.advance(), nil
		case "end", "G":
			for !m.Done {
				m = m.advance()
			}
			return m, nil
		}
	}
	return m, nil
}

// advance applies one transition. Once the generator is exhausted the model
// stays on the last permutation.
func (m StepModel) advance() StepModel {
	if m.Done {
		return m
	}
	prev := m.Perm
	if !m.Gen.Next() {
		m.Done = true
		m.Changed = nil
		return m
	}
	m.Perm = slices.Clone(m.Gen.Perm())
	m.Changed = perm.Diff(prev, m.Perm)
	m.Step++
	return m
}

func (m StepModel) View() string {
	var b strings.Builder

	alg := m.Gen.Algorithm()
	b.WriteString(StyleTitle.Render(fmt.Sprintf("Algorithm %s · %s", strings.ToUpper(alg.Letter()), alg)))
	b.WriteString("\n")

	total := "?"
	if m.Total > 0 {
		total = fmt.Sprint(m.Total)
	}
	b.WriteString(StyleDim.Render(fmt.Sprintf("step %d of %s", m.Step, total)))
	b.WriteString("\n\n")

	cells := make([]string, len(m.Perm))
	for i, v := range m.Perm {
		style := stepCellStyle.Inherit(StyleValue)
		if slices.Contains(m.Changed, i) {
			style = stepCellStyle.Inherit(StyleChanged)
		}
		cells[i] = style.Render(fmt.Sprint(v))
	}
	if len(cells) == 0 {
		cells = []string{StyleDim.Render("(empty)")}
	}
	b.WriteString(stepBoxStyle.Render(lipgloss.JoinHorizontal(lipgloss.Top, cells...)))
	b.WriteString("\n\n")

	if m.Done {
		b.WriteString(StyleDim.Render(fmt.Sprintf("done: visited %d permutations · q quit", m.Step)))
	} else {
		b.WriteString(StyleDim.Render("space/enter next · end last · q quit"))
	}
	b.WriteString("\n")
	return b.String()
}
