package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/pocketwatch-io/pocketwatch/cmd/tui/internal/view"
	"github.com/pocketwatch-io/pocketwatch/internal/analytics"
	"github.com/pocketwatch-io/pocketwatch/internal/cache"
	"github.com/pocketwatch-io/pocketwatch/internal/category"
	categoryStore "github.com/pocketwatch-io/pocketwatch/internal/category/store"
	"github.com/pocketwatch-io/pocketwatch/internal/config"
	"github.com/pocketwatch-io/pocketwatch/internal/database"
	"github.com/pocketwatch-io/pocketwatch/internal/transaction"
	txStore "github.com/pocketwatch-io/pocketwatch/internal/transaction/store"
	userStore "github.com/pocketwatch-io/pocketwatch/internal/user/store"
)

type model struct {
	txService        *transaction.Service
	categoryService  *category.Service
	analyticsService *analytics.Service
	userID           uuid.UUID

	currentView View

	dashboardView view.DashboardModel
	listView      view.ListModel
}

type View int

const (
	ViewMenu      View = 0
	ViewDashboard View = 1
	ViewList      View = 2
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	email := os.Getenv("TUI_USER_EMAIL")
	if email == "" {
		slog.Error("TUI_USER_EMAIL must be set")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	u, err := userStore.New(db).FindByEmail(ctx, email)
	if err != nil {
		slog.Error("failed to find user", "email", email, "error", err)
		os.Exit(1)
	}

	txSvc := transaction.NewService(txStore.New(db))
	catSvc := category.NewService(categoryStore.New(db))
	analyticsSvc := analytics.NewService(
		txSvc,
		cache.New[analytics.Result](cfg.Analytics.CacheTTL),
		cfg.Analytics.EmptyCacheTTL,
	)

	return model{
		txService:        txSvc,
		categoryService:  catSvc,
		analyticsService: analyticsSvc,
		userID:           u.ID,
		currentView:      ViewMenu,
		dashboardView:    view.NewDashboardModel(analyticsSvc, u.ID),
		listView:         view.NewListModel(txSvc, catSvc, u.ID),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewDashboard
				m.dashboardView = view.NewDashboardModel(m.analyticsService, m.userID)

				return m, m.dashboardView.Init()
			case "2":
				m.currentView = ViewList
				m.listView = view.NewListModel(m.txService, m.categoryService, m.userID)

				return m, m.listView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewDashboard:
		var newModel tea.Model
		newModel, cmd = m.dashboardView.Update(msg)
		m.dashboardView = newModel.(view.DashboardModel)
	case ViewList:
		var newModel tea.Model
		newModel, cmd = m.listView.Update(msg)
		m.listView = newModel.(view.ListModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"Pocketwatch TUI\n\n" +
				"1. Analytics Dashboard\n" +
				"2. List Transactions\n\n" +
				"q. Quit",
		)
	case ViewDashboard:
		return m.dashboardView.View()
	case ViewList:
		return m.listView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
