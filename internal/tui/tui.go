package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sbip-sg/SolidiFI-benchmark/internal/model"
)

type modelT struct {
	reports []model.Report
	cursor  int
}

func initialModel(reports []model.Report) modelT { return modelT{reports: reports} }

func (m modelT) Init() tea.Cmd { return nil }

func (m modelT) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.reports)-1 {
				m.cursor++
			}
		}
	}
	return m, nil
}

func (m modelT) View() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Contracts (%d)\n\n", len(m.reports))
	for i, r := range m.reports {
		marker := "  "
		if i == m.cursor {
			marker = "> "
		}
		s := r.Stats
		fmt.Fprintf(&b, "%s%s  injected=%d tp=%d fp=%d fn=%d tp_range=%d miscls=%d\n",
			marker, r.ContractPath, s.Injected, s.TP, s.FP, s.FN, s.TPRange, s.Miscls)
	}
	b.WriteString("\nq to quit\n")
	return b.String()
}

// Run launches a minimal list view over per-contract results
func Run(reports []model.Report) error {
	p := tea.NewProgram(initialModel(reports))
	_, err := p.Run()
	return err
}
