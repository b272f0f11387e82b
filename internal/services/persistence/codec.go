package persistence

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/riordanpawley/papan/internal/domain"
)

// ErrCorrupt marks stored data that cannot be decoded into a valid board
var ErrCorrupt = errors.New("corrupt board snapshot")

type columnSnapshot struct {
	Name  string         `json:"name"`
	Items []taskSnapshot `json:"items"`
}

type taskSnapshot struct {
	ID       snapshotID `json:"id"`
	Title    string     `json:"title"`
	Priority string     `json:"priority,omitempty"`
}

// snapshotID accepts both string IDs and the numeric millisecond IDs
// written by older boards. It is always written back as a string.
type snapshotID string

func (id *snapshotID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*id = snapshotID(s)
		return nil
	}

	var n json.Number
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&n); err != nil {
		return fmt.Errorf("task id must be a string or number: %s", data)
	}
	if _, err := strconv.ParseInt(n.String(), 10, 64); err != nil {
		return fmt.Errorf("task id must be an integer: %s", n)
	}
	*id = snapshotID(n.String())
	return nil
}

// Encode serializes the board into the persisted layout:
//
//	{"todo":{"name":..,"items":[..]},"inProgress":{..},"done":{..}}
func Encode(b domain.Board) (string, error) {
	snap := make(map[string]columnSnapshot, len(domain.ColumnKeys))
	for _, col := range b.Columns() {
		items := make([]taskSnapshot, 0, col.Len())
		for _, task := range col.Tasks() {
			items = append(items, taskSnapshot{
				ID:       snapshotID(task.ID),
				Title:    task.Title,
				Priority: task.Priority.String(),
			})
		}
		snap[col.Key().String()] = columnSnapshot{Name: col.Name(), Items: items}
	}

	data, err := json.Marshal(snap)
	if err != nil {
		return "", fmt.Errorf("encode board: %w", err)
	}
	return string(data), nil
}

// Decode parses the persisted layout. It requires exactly the three
// column keys, each holding an object, and a board that satisfies every
// domain invariant; anything else is reported as ErrCorrupt. Titles are
// trimmed and blank labels take the column default, so every board the
// domain accepts decodes back to itself.
func Decode(data string) (domain.Board, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal([]byte(data), &raw); err != nil {
		return domain.Board{}, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	if raw == nil {
		return domain.Board{}, fmt.Errorf("%w: not an object", ErrCorrupt)
	}
	if len(raw) != len(domain.ColumnKeys) {
		return domain.Board{}, fmt.Errorf("%w: want %d columns, got %d", ErrCorrupt, len(domain.ColumnKeys), len(raw))
	}

	columns := make([]domain.Column, 0, len(domain.ColumnKeys))
	for name, body := range raw {
		key, err := domain.ParseColumnKey(name)
		if err != nil {
			return domain.Board{}, fmt.Errorf("%w: %w", ErrCorrupt, err)
		}

		if trimmed := bytes.TrimSpace(body); len(trimmed) == 0 || trimmed[0] != '{' {
			return domain.Board{}, fmt.Errorf("%w: column %s is not an object", ErrCorrupt, name)
		}
		var cs columnSnapshot
		if err := json.Unmarshal(body, &cs); err != nil {
			return domain.Board{}, fmt.Errorf("%w: column %s: %w", ErrCorrupt, name, err)
		}

		tasks := make([]domain.Task, 0, len(cs.Items))
		for i, item := range cs.Items {
			priority, err := domain.ParsePriority(item.Priority)
			if err != nil {
				return domain.Board{}, fmt.Errorf("%w: %s#%d: %w", ErrCorrupt, name, i, err)
			}
			task, err := domain.NewTask(domain.TaskID(item.ID), item.Title, priority)
			if err != nil {
				return domain.Board{}, fmt.Errorf("%w: %s#%d: %w", ErrCorrupt, name, i, err)
			}
			tasks = append(tasks, task)
		}

		// Older snapshots may omit the label
		label := cs.Name
		if strings.TrimSpace(label) == "" {
			label = key.DefaultName()
		}
		columns = append(columns, domain.NewColumn(key, label, tasks))
	}

	b, err := domain.NewBoard(columns...)
	if err != nil {
		return domain.Board{}, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	return b, nil
}
