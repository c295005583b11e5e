// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-ctf-game/internal/service"
	"github.com/MKhiriev/go-ctf-game/models"
)

type mainView int

const (
	viewChallengeList mainView = iota
	viewChallengeDetail
	viewProgress
	viewLeaderboard
)

type createStage int

const (
	createStageNone createStage = iota
	createStageMeta
	createStageDescription
)

type mainLoopModel struct {
	ctx      context.Context
	services *service.Services
	user     models.User

	view    mainView
	loading bool
	status  string
	errMsg  string

	challenges []models.Challenge
	idx        int

	detailChallenge models.Challenge
	flagInput       textinput.Model
	submitting      bool
	solvedNow       bool

	progress models.UserProgress
	board    []models.LeaderboardRow

	createStage      createStage
	createMetaInputs []textinput.Model
	createMetaFocus  int
	createDescArea   textarea.Model
	createChallenge  models.Challenge
	createErr        string
	createSaving     bool

	logout bool
}

type challengesLoadedMsg struct {
	challenges []models.Challenge
	err        error
}

type challengeOpenedMsg struct {
	challenge models.Challenge
	err       error
}

type flagSubmittedMsg struct {
	result models.SubmissionResult
	err    error
}

type progressLoadedMsg struct {
	progress models.UserProgress
	err      error
}

type leaderboardLoadedMsg struct {
	board []models.LeaderboardRow
	err   error
}

type challengeCreatedMsg struct {
	challenge models.Challenge
	err       error
}

func newMainLoopModel(ctx context.Context, services *service.Services, user models.User) mainLoopModel {
	if user.UserID > 0 {
		setSessionUserID(user.UserID)
	}

	return mainLoopModel{
		ctx:      ctx,
		services: services,
		user:     user,
		loading:  true,
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return m.cmdLoadChallenges()
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case challengesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.challenges = msg.challenges
		if m.idx >= len(m.challenges) {
			m.idx = len(m.challenges) - 1
		}
		if m.idx < 0 {
			m.idx = 0
		}
		return m, nil

	case challengeOpenedMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.detailChallenge = msg.challenge
		m.solvedNow = false
		m.initFlagInput()
		m.view = viewChallengeDetail
		return m, textinput.Blink

	case flagSubmittedMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.status = msg.result.Message
		if msg.result.Accepted {
			m.solvedNow = true
			m.user.Score += m.detailChallenge.Points
			m.flagInput.Blur()
		}
		return m, nil

	case progressLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.progress = msg.progress
		m.user.Score = msg.progress.Score
		m.view = viewProgress
		return m, nil

	case leaderboardLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.board = msg.board
		m.view = viewLeaderboard
		return m, nil

	case challengeCreatedMsg:
		m.createSaving = false
		if msg.err != nil {
			m.createErr = msg.err.Error()
			return m, nil
		}
		m.resetCreateFlow()
		m.status = fmt.Sprintf("Challenge %q created", msg.challenge.Title)
		m.loading = true
		return m, m.cmdLoadChallenges()
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.createStage != createStageNone {
			return m.updateCreateFlow(msg)
		}
		if m.view == viewChallengeDetail {
			return m.updateDetailInput(msg)
		}
		return m, nil
	}

	if keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.createStage != createStageNone {
		return m.updateCreateFlow(msg)
	}

	switch m.view {
	case viewChallengeDetail:
		return m.updateDetail(keyMsg)
	case viewProgress, viewLeaderboard:
		if keyMsg.String() == "esc" {
			m.view = viewChallengeList
		}
		return m, nil
	}

	return m.updateList(keyMsg)
}

func (m mainLoopModel) updateList(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.idx > 0 {
			m.idx--
		}
	case "down", "j":
		if m.idx < len(m.challenges)-1 {
			m.idx++
		}
	case "r":
		m.loading = true
		m.status = ""
		return m, m.cmdLoadChallenges()
	case "enter":
		challenge, ok := m.current()
		if !ok {
			m.status = "No challenges yet"
			return m, nil
		}
		return m, m.cmdOpenChallenge(challenge.ChallengeID)
	case "p":
		m.loading = true
		return m, m.cmdLoadProgress()
	case "b":
		m.loading = true
		return m, m.cmdLoadLeaderboard()
	case "n":
		if !m.user.IsOrganizer {
			m.status = "Only organizers can create challenges"
			return m, nil
		}
		m.startCreateFlow()
		return m, textinput.Blink
	case "l":
		m.logout = true
		return m, tea.Quit
	}

	return m, nil
}

func (m mainLoopModel) updateDetail(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "esc":
		m.view = viewChallengeList
		m.status = ""
		m.errMsg = ""
		return m, nil
	case "ctrl+y":
		if err := clipboard.WriteAll(m.detailChallenge.Description); err != nil {
			m.errMsg = fmt.Sprintf("Copy failed: %v", err)
			return m, nil
		}
		m.status = "Description copied"
		return m, nil
	case "enter":
		if m.submitting || m.solvedNow {
			return m, nil
		}
		submitted := m.flagInput.Value()
		if strings.TrimSpace(submitted) == "" {
			m.errMsg = "Flag must not be empty"
			return m, nil
		}
		m.errMsg = ""
		m.submitting = true
		return m, m.cmdSubmitFlag(m.detailChallenge.ChallengeID, submitted)
	}

	return m.updateDetailInput(keyMsg)
}

func (m mainLoopModel) updateDetailInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.flagInput, cmd = m.flagInput.Update(msg)
	return m, cmd
}

func (m *mainLoopModel) initFlagInput() {
	flagInput := textinput.New()
	flagInput.Placeholder = "flag{...}"
	flagInput.Width = 44
	flagInput.Focus()
	m.flagInput = flagInput
	m.submitting = false
	m.status = ""
}

// ── Create flow ──────────────────────────────────────────────────────────────

func (m *mainLoopModel) startCreateFlow() {
	title := textinput.New()
	title.Placeholder = "title"
	title.Width = 40
	title.Focus()

	category := textinput.New()
	category.Placeholder = "category (e.g. web, crypto)"
	category.Width = 40

	points := textinput.New()
	points.Placeholder = "points"
	points.CharLimit = 6
	points.Width = 40

	flag := textinput.New()
	flag.Placeholder = "flag{...}"
	flag.Width = 40

	m.createMetaInputs = []textinput.Model{title, category, points, flag}
	m.createMetaFocus = 0
	m.createChallenge = models.Challenge{}
	m.createErr = ""
	m.createSaving = false
	m.createStage = createStageMeta
	m.status = ""
	m.errMsg = ""
}

func (m *mainLoopModel) resetCreateFlow() {
	m.createStage = createStageNone
	m.createMetaInputs = nil
	m.createMetaFocus = 0
	m.createChallenge = models.Challenge{}
	m.createErr = ""
	m.createSaving = false
}

func (m mainLoopModel) updateCreateFlow(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.createStage {
	case createStageMeta:
		return m.updateCreateMeta(msg)
	case createStageDescription:
		return m.updateCreateDescription(msg)
	default:
		return m, nil
	}
}

func (m mainLoopModel) updateCreateMeta(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.resetCreateFlow()
			return m, nil
		case "tab":
			m.createMetaInputs[m.createMetaFocus].Blur()
			m.createMetaFocus = (m.createMetaFocus + 1) % len(m.createMetaInputs)
			m.createMetaInputs[m.createMetaFocus].Focus()
			return m, nil
		case "shift+tab":
			m.createMetaInputs[m.createMetaFocus].Blur()
			m.createMetaFocus = (m.createMetaFocus - 1 + len(m.createMetaInputs)) % len(m.createMetaInputs)
			m.createMetaInputs[m.createMetaFocus].Focus()
			return m, nil
		case "enter":
			title := strings.TrimSpace(m.createMetaInputs[0].Value())
			category := strings.TrimSpace(m.createMetaInputs[1].Value())
			pointsRaw := strings.TrimSpace(m.createMetaInputs[2].Value())
			flag := strings.TrimSpace(m.createMetaInputs[3].Value())

			if title == "" || flag == "" {
				m.createErr = "Title and flag are required"
				return m, nil
			}
			points, err := strconv.ParseInt(pointsRaw, 10, 64)
			if err != nil || points <= 0 {
				m.createErr = "Points must be a positive number"
				return m, nil
			}

			m.createChallenge = models.Challenge{
				Title:       title,
				Category:    category,
				Flag:        flag,
				Points:      points,
				MaxAttempts: -1,
			}
			m.createErr = ""
			m.startCreateDescription()
			return m, textinput.Blink
		}
	}

	var cmd tea.Cmd
	m.createMetaInputs[m.createMetaFocus], cmd = m.createMetaInputs[m.createMetaFocus].Update(msg)
	return m, cmd
}

func (m *mainLoopModel) startCreateDescription() {
	descArea := textarea.New()
	descArea.Placeholder = "Challenge description (optional)"
	descArea.SetWidth(54)
	descArea.SetHeight(6)
	descArea.Focus()

	m.createDescArea = descArea
	m.createStage = createStageDescription
}

func (m mainLoopModel) updateCreateDescription(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.resetCreateFlow()
			return m, nil
		case "ctrl+s":
			if m.createSaving {
				return m, nil
			}

			challenge := m.createChallenge
			challenge.Description = strings.TrimSpace(m.createDescArea.Value())

			m.createErr = ""
			m.createSaving = true
			return m, m.cmdCreateChallenge(challenge)
		}
	}

	var cmd tea.Cmd
	m.createDescArea, cmd = m.createDescArea.Update(msg)
	return m, cmd
}

// ── Views ────────────────────────────────────────────────────────────────────

func (m mainLoopModel) View() string {
	switch m.createStage {
	case createStageMeta:
		return m.viewCreateMeta()
	case createStageDescription:
		return m.viewCreateDescription()
	}

	switch m.view {
	case viewChallengeDetail:
		return m.viewDetail()
	case viewProgress:
		return m.viewProgress()
	case viewLeaderboard:
		return m.viewLeaderboard()
	}

	return m.viewList()
}

func (m mainLoopModel) viewList() string {
	out := fmt.Sprintf("Player: %s │ Score: %d\n\n", m.user.Username, m.user.Score)

	if m.loading {
		out += "Loading challenges...\n"
		return renderPage("CHALLENGES", strings.TrimRight(out, "\n"), m.listHotKeys())
	}

	if m.errMsg != "" {
		out += "Error: " + m.errMsg + "\n"
	}
	if m.status != "" {
		out += "Status: " + m.status + "\n"
	}
	if m.errMsg != "" || m.status != "" {
		out += "\n"
	}

	if len(m.challenges) == 0 {
		out += "No challenges yet\n"
	} else {
		out += "  #  │ Title                    │ Category        │ Points\n"
		out += "─────┼──────────────────────────┼─────────────────┼────────\n"
		for i, challenge := range m.challenges {
			cursor := " "
			if i == m.idx {
				cursor = ">"
			}

			out += fmt.Sprintf(
				"%s %-3d│ %-24s │ %-15s │ %6d\n",
				cursor,
				i+1,
				fitText(challenge.Title, 24),
				fitText(challenge.Category, 15),
				challenge.Points,
			)
		}
	}

	return renderPage("CHALLENGES", strings.TrimRight(out, "\n"), m.listHotKeys())
}

func (m mainLoopModel) listHotKeys() string {
	hotKeys := "enter: open │ p: progress │ b: leaderboard │ r: refresh │ ↑/↓: navigate │ l: logout"
	if m.user.IsOrganizer {
		hotKeys = "n: new challenge │ " + hotKeys
	}
	return hotKeys
}

func (m mainLoopModel) viewDetail() string {
	challenge := m.detailChallenge

	out := fmt.Sprintf("Title    : %s\n", challenge.Title)
	out += fmt.Sprintf("Category : %s\n", challenge.Category)
	out += fmt.Sprintf("Points   : %d\n\n", challenge.Points)

	if strings.TrimSpace(challenge.Description) != "" {
		out += challenge.Description + "\n\n"
	}

	if m.solvedNow {
		out += solvedStyle.Render("SOLVED") + "\n"
	} else {
		out += "Flag     : [" + m.flagInput.View() + "]\n"
		if m.submitting {
			out += "\n[Submitting...]\n"
		}
	}

	if m.status != "" {
		out += "\n" + m.status + "\n"
	}
	if m.errMsg != "" {
		out += "\nError: " + m.errMsg + "\n"
	}

	return renderPage(
		"CHALLENGE",
		strings.TrimRight(out, "\n"),
		"enter: submit flag │ ctrl+y: copy description │ esc: back",
	)
}

func (m mainLoopModel) viewProgress() string {
	out := fmt.Sprintf("Player: %s │ Score: %d\n\n", m.progress.Username, m.progress.Score)

	if len(m.progress.Solved) == 0 {
		out += "Nothing solved yet\n"
	} else {
		out += "Solved challenge          │ Points │ Solved at\n"
		out += "──────────────────────────┼────────┼─────────────────────\n"
		for _, solved := range m.progress.Solved {
			out += fmt.Sprintf(
				"%-25s │ %6d │ %s\n",
				fitText(solved.Title, 25),
				solved.Points,
				solved.SolvedAt.Format("2006-01-02 15:04:05"),
			)
		}
	}

	return renderPage("MY PROGRESS", strings.TrimRight(out, "\n"), "esc: back")
}

func (m mainLoopModel) viewLeaderboard() string {
	out := ""

	if len(m.board) == 0 {
		out += "Nobody has scored yet\n"
	} else {
		out += "Rank │ Player               │ Score\n"
		out += "─────┼──────────────────────┼────────\n"
		for i, row := range m.board {
			line := fmt.Sprintf("%4d │ %-20s │ %6d", i+1, fitText(row.Username, 20), row.Score)
			if row.Username == m.user.Username {
				line = solvedStyle.Render(line)
			}
			out += line + "\n"
		}
	}

	return renderPage("LEADERBOARD", strings.TrimRight(out, "\n"), "esc: back")
}

func (m mainLoopModel) viewCreateMeta() string {
	out := "Field    │ Value\n"
	out += "─────────┼────────────────────────────────────────────\n"
	out += "Title    │ [" + m.createMetaInputs[0].View() + "]\n"
	out += "Category │ [" + m.createMetaInputs[1].View() + "]\n"
	out += "Points   │ [" + m.createMetaInputs[2].View() + "]\n"
	out += "Flag     │ [" + m.createMetaInputs[3].View() + "]\n"

	if m.createErr != "" {
		out += "\nError: " + m.createErr + "\n"
	}

	return renderPage("NEW CHALLENGE", strings.TrimRight(out, "\n"), "tab: next field │ enter: next │ esc: cancel")
}

func (m mainLoopModel) viewCreateDescription() string {
	out := fmt.Sprintf("Title: %s (%d points)\n\n", m.createChallenge.Title, m.createChallenge.Points)
	out += m.createDescArea.View()

	if m.createErr != "" {
		out += "\nError: " + m.createErr + "\n"
	}
	if m.createSaving {
		out += "\nSaving...\n"
	}

	return renderPage("NEW CHALLENGE: DESCRIPTION", strings.TrimRight(out, "\n"), "enter: new line │ ctrl+s: save │ esc: cancel")
}

// ── Commands ─────────────────────────────────────────────────────────────────

func (m mainLoopModel) current() (models.Challenge, bool) {
	if len(m.challenges) == 0 || m.idx < 0 || m.idx >= len(m.challenges) {
		return models.Challenge{}, false
	}
	return m.challenges[m.idx], true
}

func (m mainLoopModel) cmdLoadChallenges() tea.Cmd {
	ctx := m.ctx
	svc := m.services.GameService

	return func() tea.Msg {
		challenges, err := svc.ListChallenges(ctx)
		return challengesLoadedMsg{challenges: challenges, err: err}
	}
}

func (m mainLoopModel) cmdOpenChallenge(challengeID int64) tea.Cmd {
	ctx := m.ctx
	svc := m.services.GameService

	return func() tea.Msg {
		challenge, err := svc.GetChallenge(ctx, challengeID)
		return challengeOpenedMsg{challenge: challenge, err: err}
	}
}

func (m mainLoopModel) cmdSubmitFlag(challengeID int64, submitted string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.GameService
	userID := m.activeUserID()

	return func() tea.Msg {
		result, err := svc.SubmitFlag(ctx, userID, challengeID, submitted)
		return flagSubmittedMsg{result: result, err: err}
	}
}

func (m mainLoopModel) cmdLoadProgress() tea.Cmd {
	ctx := m.ctx
	svc := m.services.GameService
	userID := m.activeUserID()

	return func() tea.Msg {
		progress, err := svc.UserProgress(ctx, userID)
		return progressLoadedMsg{progress: progress, err: err}
	}
}

func (m mainLoopModel) cmdLoadLeaderboard() tea.Cmd {
	ctx := m.ctx
	svc := m.services.GameService

	return func() tea.Msg {
		board, err := svc.Leaderboard(ctx)
		return leaderboardLoadedMsg{board: board, err: err}
	}
}

func (m mainLoopModel) cmdCreateChallenge(challenge models.Challenge) tea.Cmd {
	ctx := m.ctx
	svc := m.services.GameService

	return func() tea.Msg {
		created, err := svc.CreateChallenge(ctx, challenge)
		return challengeCreatedMsg{challenge: created, err: err}
	}
}

func (m mainLoopModel) activeUserID() int64 {
	if m.user.UserID > 0 {
		return m.user.UserID
	}
	return getSessionUserID()
}
