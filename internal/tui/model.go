// Package tui is the interactive dashboard: category cards, the owner chart,
// bucket listings, task details and a comment form.
package tui

import (
	"context"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/textarea"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/circleback/internal/config"
	"github.com/thenoetrevino/circleback/internal/dataset"
	"github.com/thenoetrevino/circleback/internal/models"
	"github.com/thenoetrevino/circleback/internal/services/tracker"
	"github.com/thenoetrevino/circleback/internal/tui/state"
)

// Model represents the application state for the TUI
type Model struct {
	Ctx    context.Context
	Config *config.Config

	svc  tracker.Service
	keys keyMap
	help help.Model

	UiState           *state.UIState
	NotificationState *state.NotificationState

	dashboard *tracker.Dashboard
	bucket    *tracker.BucketView
	// tasks is the bucket listing flattened in display order
	tasks []models.TaskRecord

	detail     *tracker.TaskDetail
	detailView viewport.Model

	commentKey   string
	commentInput textarea.Model
}

// DataLoadedMsg carries a freshly computed dashboard
type DataLoadedMsg struct {
	Dashboard *tracker.Dashboard
	Err       error
}

// InitialModel creates the dashboard model. Data is loaded by Init.
func InitialModel(ctx context.Context, svc tracker.Service, cfg *config.Config) Model {
	if cfg == nil {
		cfg = config.Default()
	}

	ta := textarea.New()
	ta.Placeholder = "What happened with this task?"
	ta.CharLimit = tracker.MaxCommentLength
	ta.ShowLineNumbers = false
	ta.SetHeight(5)

	vp := viewport.New()
	vp.MouseWheelEnabled = true

	return Model{
		Ctx:               ctx,
		Config:            cfg,
		svc:               svc,
		keys:              newKeyMap(cfg.KeyMappings),
		help:              help.New(),
		UiState:           state.NewUIState(),
		NotificationState: state.NewNotificationState(),
		detailView:        vp,
		commentInput:      ta,
	}
}

// Init loads the dataset, fetching the default one if nothing is held
func (m Model) Init() tea.Cmd {
	return m.loadData(false)
}

// loadData recomputes the dashboard, re-fetching the default dataset first when refetch is set
func (m Model) loadData(refetch bool) tea.Cmd {
	ctx, svc := m.Ctx, m.svc
	return func() tea.Msg {
		var fetchErr error
		if refetch {
			_, fetchErr = svc.LoadDefault(ctx)
		}
		dash, err := svc.Dashboard(ctx)
		if err == nil {
			err = fetchErr
		}
		return DataLoadedMsg{Dashboard: dash, Err: err}
	}
}

// shouldRefetch reports whether a refresh re-reads the default dataset.
// Uploaded files are not re-read; a refresh only recomputes their views.
func (m Model) shouldRefetch() bool {
	if m.dashboard == nil || m.dashboard.SnapshotID == "" {
		return true
	}
	return m.dashboard.Source == dataset.SourceDefault
}

// Dashboard returns the dashboard currently displayed, nil before the first load
func (m Model) Dashboard() *tracker.Dashboard {
	return m.dashboard
}

// Tasks returns the selected bucket's tasks in display order
func (m Model) Tasks() []models.TaskRecord {
	return m.tasks
}

// Detail returns the task shown in DetailMode
func (m Model) Detail() *tracker.TaskDetail {
	return m.detail
}

// selectedTask returns the highlighted task of the bucket listing
func (m Model) selectedTask() (models.TaskRecord, bool) {
	i := m.UiState.SelectedTask()
	if i < 0 || i >= len(m.tasks) {
		return models.TaskRecord{}, false
	}
	return m.tasks[i], true
}

// reloadBucket lists the selected category with the current grouping
func (m *Model) reloadBucket() {
	view, err := m.svc.Bucket(m.Ctx, string(m.UiState.Category()), string(m.UiState.GroupBy()))
	if err != nil {
		m.NotificationState.Add(state.LevelError, err.Error())
		return
	}

	tasks := make([]models.TaskRecord, 0, view.Count)
	for _, group := range view.Groups {
		tasks = append(tasks, group.Tasks...)
	}

	m.bucket = view
	m.tasks = tasks
	m.UiState.ClampSelectedTask(len(tasks))
}

// loadDetail fetches a task and renders it into the detail viewport
func (m *Model) loadDetail(key string) error {
	detail, err := m.svc.TaskDetail(m.Ctx, key)
	if err != nil {
		return err
	}
	m.detail = detail
	m.resizeDetailView()
	m.renderDetail()
	m.detailView.GotoTop()
	return nil
}
