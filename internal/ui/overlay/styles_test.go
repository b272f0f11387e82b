package overlay

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/papan/internal/domain"
)

func TestNewStyles(t *testing.T) {
	styles := New()
	if styles == nil {
		t.Fatal("New() returned nil")
	}

	tests := []struct {
		name  string
		style lipgloss.Style
	}{
		{"Overlay", styles.Overlay},
		{"Title", styles.Title},
		{"MenuItem", styles.MenuItem},
		{"MenuItemActive", styles.MenuItemActive},
		{"MenuKey", styles.MenuKey},
		{"Separator", styles.Separator},
		{"Footer", styles.Footer},
		{"Category", styles.Category},
		{"Label", styles.Label},
		{"LabelActive", styles.LabelActive},
		{"Danger", styles.Danger},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rendered := tt.style.Render("test")
			if !strings.Contains(rendered, "test") {
				t.Errorf("%s style lost its content: %q", tt.name, rendered)
			}
		})
	}
}

func TestOverlayStyle(t *testing.T) {
	styles := New()

	rendered := styles.Overlay.Render("Content")
	// Border and padding make the output larger than the input
	if lipgloss.Width(rendered) <= len("Content") {
		t.Errorf("Overlay rendered output should include border and padding, got %q", rendered)
	}
}

func TestPriorityOption(t *testing.T) {
	styles := New()

	for _, p := range []domain.Priority{domain.PriorityNone, domain.PriorityLow, domain.PriorityMedium, domain.PriorityHigh} {
		for _, selected := range []bool{false, true} {
			got := styles.PriorityOption(p, selected)
			if !strings.Contains(got, p.Label()) {
				t.Errorf("PriorityOption(%v, %v) = %q, want label %q", p, selected, got, p.Label())
			}
		}
	}
}
