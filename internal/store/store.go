// Package store owns the authoritative ordered task collection and persists
// it wholesale to local JSON state on every mutation.
package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"remindpro/internal/task"
)

const (
	tasksFile    = "tasks.json"
	darkModeFile = "darkmode.json"
)

var (
	ErrTitleRequired = errors.New("title is required")
	ErrDueRequired   = errors.New("due date is required")
)

// Store holds the in-memory task collection, most-recently-created first.
// There is exactly one logical writer (the UI event loop), so access is not
// synchronized.
type Store struct {
	dir      string
	log      zerolog.Logger
	tasks    []task.Task
	darkMode bool
}

// Open hydrates the store from dir. Missing or malformed state files yield an
// empty collection and default preferences rather than an error.
func Open(dir string, log zerolog.Logger) (*Store, error) {
	if dir == "" {
		return nil, errors.New("state dir is empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	s := &Store{dir: dir, log: log}
	s.tasks = loadTasks(filepath.Join(dir, tasksFile), log)
	s.darkMode = loadDarkMode(filepath.Join(dir, darkModeFile), log)
	return s, nil
}

func loadTasks(path string, log zerolog.Logger) []task.Task {
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Warn().Err(err).Str("path", path).Msg("task state unreadable, starting empty")
		}
		return nil
	}
	var tasks []task.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("task state malformed, starting empty")
		return nil
	}
	return tasks
}

func loadDarkMode(path string, log zerolog.Logger) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	var dark bool
	if err := json.Unmarshal(data, &dark); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("dark mode preference malformed, using default")
		return false
	}
	return dark
}

// Draft carries caller input for Add. Title and DueDate are required; the
// rest default.
type Draft struct {
	Title       string
	Description string
	Notes       string
	Category    task.Category
	SubCategory string
	Priority    task.Priority
	DueDate     time.Time
	Recurrence  task.Recurrence
}

// Add creates a task from the draft, prepends it to the collection and
// persists. It rejects drafts missing a title or due date.
func (s *Store) Add(d Draft) (task.Task, error) {
	title := strings.TrimSpace(d.Title)
	if title == "" {
		return task.Task{}, ErrTitleRequired
	}
	if d.DueDate.IsZero() {
		return task.Task{}, ErrDueRequired
	}
	if !d.Category.Valid() {
		d.Category = task.CategoryPersonal
	}
	if !d.Priority.Valid() {
		d.Priority = task.PriorityMedium
	}
	if !d.Recurrence.Valid() {
		d.Recurrence = task.RecurrenceNone
	}

	t := task.Task{
		ID:          uuid.NewString(),
		Title:       title,
		Description: d.Description,
		Notes:       d.Notes,
		Category:    d.Category,
		SubCategory: d.SubCategory,
		Priority:    d.Priority,
		DueDate:     d.DueDate,
		Recurrence:  d.Recurrence,
		CreatedAt:   time.Now(),
	}
	s.tasks = append([]task.Task{t}, s.tasks...)
	s.saveTasks()
	return t, nil
}

// Toggle flips the completion flag of the matching task. Unknown ids are a
// no-op.
func (s *Store) Toggle(id string) {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i].IsCompleted = !s.tasks[i].IsCompleted
			s.saveTasks()
			return
		}
	}
}

// Delete removes the matching task. Unknown ids are a no-op.
func (s *Store) Delete(id string) {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			s.saveTasks()
			return
		}
	}
}

// Tasks returns a copy of the ordered collection.
func (s *Store) Tasks() []task.Task {
	out := make([]task.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

func (s *Store) DarkMode() bool {
	return s.darkMode
}

func (s *Store) SetDarkMode(dark bool) {
	s.darkMode = dark
	data, err := json.Marshal(dark)
	if err == nil {
		err = os.WriteFile(filepath.Join(s.dir, darkModeFile), data, 0o644)
	}
	if err != nil {
		s.log.Warn().Err(err).Msg("failed to persist dark mode preference")
	}
}

// saveTasks serializes the whole collection. In-memory state stays
// authoritative for the session even if the write fails.
func (s *Store) saveTasks() {
	tasks := s.tasks
	if tasks == nil {
		tasks = []task.Task{}
	}
	data, err := json.MarshalIndent(tasks, "", "  ")
	if err == nil {
		err = os.WriteFile(filepath.Join(s.dir, tasksFile), data, 0o644)
	}
	if err != nil {
		s.log.Warn().Err(err).Msg("failed to persist tasks")
	}
}
