package ui

import (
	"context"
	"crypto/rand"
	"encoding/base32"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/svandijk/watershed/internal/engine"
	"github.com/svandijk/watershed/internal/store"
	"github.com/svandijk/watershed/internal/util"
)

const (
	viewCountrySelect = "country_select"
	viewGame          = "game"
	viewChallenges    = "challenges"
	viewAdvisor       = "advisor"
	viewHelp          = "help"
)

var seedEncoding = base32.NewEncoding("abcdefghijklmnopqrstuvwxyz234567").WithPadding(base32.NoPadding)

func randomSeedText() string {
	buf := make([]byte, 15)
	if _, err := rand.Read(buf); err != nil {
		return "fallback-seed"
	}
	return strings.ToLower(seedEncoding.EncodeToString(buf))
}

type model struct {
	ctx context.Context
	db  *store.DB
	cfg util.Config

	session   *engine.Session
	countries []engine.Country

	view         string
	themeName    string
	countryIndex int
	status       string
	helpRendered string

	logView  viewport.Model
	logReady bool

	width  int
	height int
}

func initialModel(ctx context.Context, db *store.DB, cfg util.Config) model {
	if cfg.SeedText == "" {
		cfg.SeedText = randomSeedText()
	}
	m := model{
		ctx:       ctx,
		db:        db,
		cfg:       cfg,
		countries: engine.ListCountries(),
		view:      viewCountrySelect,
		themeName: "catppuccin",
	}
	if _, ok := palettes[cfg.Theme]; ok {
		m.themeName = cfg.Theme
	}
	if cfg.CountryID != "" {
		if session, err := engine.NewSession(cfg.CountryID, cfg.SeedText); err == nil {
			m.session = session
			m.view = viewGame
		}
	}
	return m
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		logHeight := m.height - 24
		if logHeight < 5 {
			logHeight = 5
		}
		if !m.logReady {
			m.logView = viewport.New(m.width-4, logHeight)
			m.logReady = true
		} else {
			m.logView.Width = m.width - 4
			m.logView.Height = logHeight
		}
		m.refreshLog()
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	if m.logReady {
		var cmd tea.Cmd
		m.logView, cmd = m.logView.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.view {
	case viewCountrySelect:
		return m.handleCountrySelectKey(key)
	case viewHelp, viewChallenges, viewAdvisor:
		switch key {
		case "esc", "q", "h", "c", "a":
			m.view = viewGame
		}
		return m, nil
	default:
		return m.handleGameKey(key, msg)
	}
}

func (m model) handleCountrySelectKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.countryIndex > 0 {
			m.countryIndex--
		}
	case "down", "j":
		if m.countryIndex < len(m.countries)-1 {
			m.countryIndex++
		}
	case "enter":
		session, err := engine.NewSession(m.countries[m.countryIndex].ID, m.cfg.SeedText)
		if err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.session = session
		m.view = viewGame
		m.refreshLog()
	}
	return m, nil
}

func (m model) handleGameKey(key string, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.session == nil {
		m.view = viewCountrySelect
		return m, nil
	}
	switch key {
	case "q":
		return m, tea.Quit
	case "tab":
		m.cycleRole(1)
		m.refreshLog()
		return m, nil
	case "shift+tab":
		m.cycleRole(-1)
		m.refreshLog()
		return m, nil
	case "c":
		m.view = viewChallenges
		return m, nil
	case "a":
		m.view = viewAdvisor
		return m, nil
	case "h", "?":
		m.renderHelp()
		m.view = viewHelp
		return m, nil
	case "t":
		m.themeName = nextThemeName(m.themeName, 1)
		return m, nil
	case "s":
		m.saveSession()
		return m, nil
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		idx := int(key[0] - '1')
		actions := m.session.Actions()
		if idx < len(actions) {
			if err := m.session.TakeAction(actions[idx].Key); err != nil {
				m.status = err.Error()
			} else {
				m.status = ""
			}
			m.refreshLog()
		}
		return m, nil
	}
	if m.logReady {
		var cmd tea.Cmd
		m.logView, cmd = m.logView.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *model) cycleRole(step int) {
	roles := engine.ListRoles()
	idx := 0
	for i, r := range roles {
		if r == m.session.State.Role {
			idx = i
			break
		}
	}
	idx = (idx + step + len(roles)) % len(roles)
	_ = m.session.SwitchRole(roles[idx], "")
}

func (m *model) saveSession() {
	if m.db == nil {
		m.status = "persistence disabled (no database configured)"
		return
	}
	repo := store.NewSessionRepo(m.db)
	if err := repo.Save(m.ctx, m.session.Snapshot()); err != nil {
		m.status = fmt.Sprintf("save failed: %v", err)
		return
	}
	m.status = fmt.Sprintf("saved session %s", m.session.ID)
}

func (m *model) refreshLog() {
	if !m.logReady || m.session == nil {
		return
	}
	p := paletteFor(m.themeName)
	var b strings.Builder
	for _, msg := range m.session.Messages() {
		tag := lipgloss.NewStyle().Foreground(messageColor(p, msg.Type)).Render(fmt.Sprintf("[%s]", msg.Type))
		b.WriteString(fmt.Sprintf("%s %s\n", tag, msg.Text))
	}
	m.logView.SetContent(b.String())
	m.logView.GotoTop()
}

func messageColor(p palette, t engine.MessageType) lipgloss.Color {
	switch t {
	case engine.MsgCrisis, engine.MsgConflict:
		return p.Danger
	case engine.MsgSuccess:
		return p.Success
	case engine.MsgWarning, engine.MsgPollution:
		return p.Warning
	case engine.MsgClimate, engine.MsgDiplomatic:
		return p.AccentAlt
	default:
		return p.Muted
	}
}

func (m *model) renderHelp() {
	const helpMD = `# Watershed

A turn-based water diplomacy simulation. You lead one nation in a shared
river basin under climate change and cross-border pollution pressure.

## Keys

- **1-9** take an action
- **tab / shift+tab** switch role
- **c** challenges, **a** advisor, **h** help
- **s** save session, **t** cycle theme, **q** quit

## Turns

Each action costs resources and advances the world by one turn: climate
shifts, events fire, pollution spreads, and challenges arrive with
deadlines. Watch the log and keep your metrics out of the red.
`
	rendered, err := glamour.Render(helpMD, "dark")
	if err != nil {
		m.helpRendered = helpMD
		return
	}
	m.helpRendered = rendered
}

func (m model) View() string {
	switch m.view {
	case viewCountrySelect:
		return m.viewCountrySelect()
	case viewChallenges:
		return m.viewChallenges()
	case viewAdvisor:
		return m.viewAdvisor()
	case viewHelp:
		return m.helpRendered + "\n  esc to return"
	default:
		return m.viewGame()
	}
}

func (m model) viewCountrySelect() string {
	p := paletteFor(m.themeName)
	title := lipgloss.NewStyle().Bold(true).Foreground(p.Accent).Render("Choose your nation")
	var b strings.Builder
	b.WriteString(title + "\n\n")
	for i, c := range m.countries {
		cursor := "  "
		style := lipgloss.NewStyle().Foreground(p.Text)
		if i == m.countryIndex {
			cursor = "> "
			style = style.Foreground(p.Accent).Bold(true)
		}
		b.WriteString(style.Render(fmt.Sprintf("%s%s %s (%s) — %s", cursor, c.Flag, c.Name, c.Type, c.Region)) + "\n")
	}
	sel := m.countries[m.countryIndex]
	desc := lipgloss.NewStyle().Foreground(p.Muted).Width(70).Render(sel.Description)
	b.WriteString("\n" + desc + "\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(p.Muted).Render("enter to start, j/k to move, q to quit"))
	if m.status != "" {
		b.WriteString("\n" + lipgloss.NewStyle().Foreground(p.Danger).Render(m.status))
	}
	return b.String()
}

func (m model) viewGame() string {
	if m.session == nil {
		return "no session"
	}
	p := paletteFor(m.themeName)
	s := m.session.State
	c := m.session.Climate

	header := lipgloss.NewStyle().Bold(true).Foreground(p.Accent).Render(
		fmt.Sprintf("%s %s — Turn %d — %s — Resources %.0f",
			s.Country.Flag, s.Country.Name, s.Turn, s.Role, s.Resources))

	bars := strings.Join([]string{
		metricBar(p, "Water", s.WaterLevel, 20),
		metricBar(p, "Public", s.PublicSupport, 20),
		metricBar(p, "Economy", s.EconomicHealth, 20),
		metricBar(p, "Environment", s.EnvironmentalHealth, 20),
		metricBar(p, "Diplomacy", s.DiplomaticRelations, 20),
		metricBar(p, "Pollution", s.WaterQuality.PollutionLevel, 20),
	}, "\n")

	climate := lipgloss.NewStyle().Foreground(p.Muted).Render(fmt.Sprintf(
		"%s  %.1f°C  precip %.0f  stability %.0f  warming %.2f  risk %.0f  dispute %s",
		c.Season, c.Temperature, c.Precipitation, c.ClimateStability, c.GlobalWarming,
		c.ExtremeWeatherRisk, s.WaterQuality.DisputeLevel))

	var actions strings.Builder
	for i, a := range m.session.Actions() {
		if i >= 9 {
			break
		}
		affordable := s.Resources >= float64(a.Cost)
		style := lipgloss.NewStyle().Foreground(p.Text)
		if !affordable {
			style = style.Foreground(p.Muted)
		}
		actions.WriteString(style.Render(fmt.Sprintf("%d. %s (%d)", i+1, a.Name, a.Cost)) + "  ")
	}

	logPanel := ""
	if m.logReady {
		logPanel = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Render(m.logView.View())
	}

	footer := lipgloss.NewStyle().Foreground(p.Muted).Render(
		"1-9 act · tab role · c challenges · a advisor · s save · h help · q quit")

	parts := []string{header, "", bars, "", climate, "", actions.String(), logPanel, footer}
	if m.status != "" {
		parts = append(parts, lipgloss.NewStyle().Foreground(p.Danger).Render(m.status))
	}
	return strings.Join(parts, "\n")
}

func (m model) viewChallenges() string {
	p := paletteFor(m.themeName)
	title := lipgloss.NewStyle().Bold(true).Foreground(p.Accent).Render("Challenges")
	var b strings.Builder
	b.WriteString(title + "\n\n")
	challenges := m.session.Challenges()
	if len(challenges) == 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(p.Muted).Render("Nothing yet. Keep playing.") + "\n")
	}
	for _, ch := range challenges {
		statusStyle := lipgloss.NewStyle().Foreground(p.Warning)
		switch ch.Status {
		case engine.StatusCompleted:
			statusStyle = statusStyle.Foreground(p.Success)
		case engine.StatusFailed:
			statusStyle = statusStyle.Foreground(p.Danger)
		}
		deadline := "no deadline"
		if ch.Deadline > 0 {
			deadline = fmt.Sprintf("deadline turn %d", ch.Deadline)
		}
		b.WriteString(fmt.Sprintf("%s %s (%s, complexity %d, %s)\n",
			statusStyle.Render(string(ch.Status)), ch.Title, ch.Type, ch.Complexity, deadline))
		for metric, threshold := range ch.Requirements {
			b.WriteString(lipgloss.NewStyle().Foreground(p.Muted).
				Render(fmt.Sprintf("    need %s ≥ %.0f (now %.0f)", metric, threshold, m.session.State.Value(metric))) + "\n")
		}
	}
	b.WriteString("\n" + lipgloss.NewStyle().Foreground(p.Muted).Render("esc to return"))
	return b.String()
}

func (m model) viewAdvisor() string {
	p := paletteFor(m.themeName)
	title := lipgloss.NewStyle().Bold(true).Foreground(p.Accent).Render("Advisor")
	var b strings.Builder
	b.WriteString(title + "\n\n")
	recs := m.session.Recommendations()
	if len(recs) == 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(p.Muted).Render("No urgent recommendations.") + "\n")
	}
	for _, r := range recs {
		b.WriteString(lipgloss.NewStyle().Foreground(p.Warning).Render("! "+r.Title) + "\n")
		b.WriteString(lipgloss.NewStyle().Foreground(p.Muted).Render("  "+r.Description) + "\n")
		b.WriteString(lipgloss.NewStyle().Foreground(p.Text).Render("  suggested action: "+r.ActionKey) + "\n\n")
	}
	b.WriteString(lipgloss.NewStyle().Foreground(p.Muted).Render("esc to return"))
	return b.String()
}
