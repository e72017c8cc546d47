package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/pocketwatch-io/pocketwatch/internal/analytics"
)

type dashboardState int

const (
	dashboardStatePick dashboardState = iota
	dashboardStateLoading
	dashboardStateView
)

type DashboardModel struct {
	CommonModel
	analyticsService *analytics.Service
	userID           uuid.UUID

	state       dashboardState
	form        *huh.Form
	periodValue string
	period      analytics.Period

	result      analytics.Result
	cacheStatus analytics.CacheStatus
	table       table.Model
	err         error
}

func NewDashboardModel(analyticsSvc *analytics.Service, userID uuid.UUID) DashboardModel {
	columns := []table.Column{
		{Title: "Category", Width: 18},
		{Title: "Amount", Width: 12},
		{Title: "Share", Width: 8},
		{Title: "Txs", Width: 5},
		{Title: "Avg", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(8),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	m := DashboardModel{
		analyticsService: analyticsSvc,
		userID:           userID,
		periodValue:      string(analytics.PeriodMonth),
		table:            t,
	}
	m.form = m.newPeriodForm()

	return m
}

func (m DashboardModel) Title() string { return "Dashboard" }
func (m DashboardModel) ShortHelp() string {
	if m.state == dashboardStateView {
		return "Esc: back | p: change period | r: refresh"
	}

	return "Pick a period | Esc: back"
}

func (m DashboardModel) newPeriodForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("period").
				Title("Analytics period").
				Options(
					huh.NewOption("This week", string(analytics.PeriodWeek)),
					huh.NewOption("This month", string(analytics.PeriodMonth)),
					huh.NewOption("This quarter", string(analytics.PeriodQuarter)),
					huh.NewOption("This year", string(analytics.PeriodYear)),
				).
				Value(&m.periodValue),
		),
	).WithWidth(40).WithShowHelp(false)
}

func (m DashboardModel) Init() tea.Cmd {
	return m.form.Init()
}

type dashboardLoadMsg struct {
	result analytics.Result
	status analytics.CacheStatus
	err    error
}

func (m DashboardModel) loadCmd() tea.Cmd {
	period := m.period

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		result, status, err := m.analyticsService.Get(ctx, m.userID, period)

		return dashboardLoadMsg{result: result, status: status, err: err}
	}
}

func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardLoadMsg:
		m.state = dashboardStateView
		m.err = msg.err
		m.result = msg.result
		m.cacheStatus = msg.status
		m.refreshTable()

		return m, nil

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

		return m, nil
	}

	switch m.state {
	case dashboardStatePick:
		return m.updatePick(msg)
	case dashboardStateView:
		return m.updateView(msg)
	}

	return m, nil
}

func (m DashboardModel) updatePick(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		return m, Back
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	m.period = analytics.ParsePeriod(m.form.GetString("period"))
	m.state = dashboardStateLoading

	return m, m.loadCmd()
}

func (m DashboardModel) updateView(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "p":
			m.state = dashboardStatePick
			m.form = m.newPeriodForm()

			return m, m.form.Init()
		case "r":
			m.state = dashboardStateLoading
			return m, m.loadCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m *DashboardModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.result.CategoryBreakdown))
	for _, bucket := range m.result.CategoryBreakdown {
		rows = append(rows, table.Row{
			bucket.Category,
			FormatAmount(bucket.Amount),
			fmt.Sprintf("%.1f%%", bucket.Percentage),
			fmt.Sprintf("%d", bucket.Transactions),
			fmt.Sprintf("$%.2f", bucket.AvgAmount/100),
		})
	}

	m.table.SetRows(rows)
}

var (
	labelStyle = lipgloss.NewStyle().Faint(true)
	valueStyle = lipgloss.NewStyle().Bold(true)
	panelStyle = lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63"))
)

func (m DashboardModel) View() string {
	switch m.state {
	case dashboardStatePick:
		return lipgloss.NewStyle().Padding(1, 2).Render(m.form.View())
	case dashboardStateLoading:
		return lipgloss.NewStyle().Padding(2).Render("Crunching numbers...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	s := m.result.Summary

	summary := panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		valueStyle.Render(fmt.Sprintf("Summary (%s)", s.Period)),
		"",
		fmt.Sprintf("%s %s", labelStyle.Render("Income:      "), FormatAmount(s.TotalIncome)),
		fmt.Sprintf("%s %s", labelStyle.Render("Expenses:    "), FormatAmount(s.TotalExpenses)),
		fmt.Sprintf("%s %s", labelStyle.Render("Net:         "), FormatAmount(s.NetIncome)),
		fmt.Sprintf("%s $%.2f", labelStyle.Render("Daily avg:   "), s.AvgDailySpending/100),
		fmt.Sprintf("%s %s", labelStyle.Render("Top category:"), s.TopCategory),
		fmt.Sprintf("%s %d", labelStyle.Render("Transactions:"), s.TransactionCount),
	))

	breakdown := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	top := lipgloss.JoinHorizontal(lipgloss.Top, summary, " ", breakdown)

	sections := []string{top}

	if len(m.result.Trends) > 0 {
		var lines []string
		for _, trend := range m.result.Trends {
			lines = append(lines, fmt.Sprintf("%s %s %+.1f%% (%s)",
				trendArrow(trend.Trend), trend.Period, trend.Growth, trend.Significance))
		}

		sections = append(sections, panelStyle.Render("Trends\n\n"+strings.Join(lines, "\n")))
	}

	if len(m.result.Insights) > 0 {
		var lines []string
		for _, insight := range m.result.Insights {
			lines = append(lines, "• "+insight)
		}

		sections = append(sections, panelStyle.Render("Insights\n\n"+strings.Join(lines, "\n")))
	}

	sections = append(sections, labelStyle.Render(fmt.Sprintf("cache: %s", m.cacheStatus)))

	return lipgloss.NewStyle().Padding(1).Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func trendArrow(direction analytics.Direction) string {
	switch direction {
	case analytics.DirectionUp:
		return "↑"
	case analytics.DirectionDown:
		return "↓"
	default:
		return "→"
	}
}
