package statusbar

import "github.com/riordanpawley/papan/internal/types"

// GetHints returns the keybinding hints for the given mode
func GetHints(mode types.Mode) string {
	switch mode {
	case types.ModeNormal:
		return "h/l: columns  j/k: tasks  a: add  m: move  d: delete  t: timer  ?: help  q: quit"
	case types.ModeMove:
		return "h/l or 1-3: destination  Space/Enter: drop  Esc: cancel"
	case types.ModeOverlay:
		return "Enter: confirm  Esc: cancel"
	default:
		return ""
	}
}
