package styles

import (
	"testing"

	"github.com/riordanpawley/papan/internal/domain"
)

func TestNew(t *testing.T) {
	s := New()
	if s == nil {
		t.Fatal("New() returned nil")
	}
}

func TestPriorityBadge(t *testing.T) {
	s := New()

	tests := []struct {
		priority domain.Priority
		name     string
	}{
		{domain.PriorityHigh, "high"},
		{domain.PriorityMedium, "medium"},
		{domain.PriorityLow, "low"},
		{domain.PriorityNone, "none (falls back to overlay color)"},
		{domain.Priority(9), "out of range"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rendered := s.PriorityBadge(tt.priority).Render("P")
			if len(rendered) == 0 {
				t.Error("PriorityBadge rendered empty string")
			}
		})
	}
}

func TestColumnColors(t *testing.T) {
	for _, key := range domain.ColumnKeys {
		if _, ok := ColumnColors[key]; !ok {
			t.Errorf("no color for column %s", key)
		}
	}
	if rendered := New().StatusBadge(domain.ColumnKey(7)).Render("x"); rendered == "" {
		t.Error("StatusBadge rendered empty string for unknown column")
	}
}
