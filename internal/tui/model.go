// Package tui is the terminal front end for the five-step prior-art wizard.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/junsang-dong/ipgps/internal/assist"
	"github.com/junsang-dong/ipgps/internal/export"
	"github.com/junsang-dong/ipgps/internal/scoring"
	"github.com/junsang-dong/ipgps/internal/search"
	"github.com/junsang-dong/ipgps/internal/session"
	"github.com/junsang-dong/ipgps/internal/wizard"
)

// Config wires runtime collaborators into the TUI program.
type Config struct {
	Store  *session.Store
	File   *session.SessionFile
	Client assist.Completer
	OutDir string
}

// New returns a tea.Model ready to be mounted into a Program.
func New(config Config) tea.Model {
	m := &model{
		config:  config,
		machine: wizard.NewMachine(config.Store),
		mode:    modeNormal,
		form:    formNone,
		width:   100,
	}

	m.inventionInputs = make([]textinput.Model, 4)
	placeholders := []string{
		"발명의 명칭",
		"기술분야 (예: 로봇공학, 2차전지)",
		"발명의 목적",
		"발명의 요약 (핵심 구성과 효과)",
	}
	for i := range m.inventionInputs {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.CharLimit = 500
		ti.Width = 70
		m.inventionInputs[i] = ti
	}

	m.keywordInput = textinput.New()
	m.keywordInput.Placeholder = "키워드 또는 분류코드 입력…"
	m.keywordInput.CharLimit = 80
	m.keywordInput.Width = 50

	m.itemInputs = make([]textinput.Model, 7)
	itemPlaceholders := []string{
		"특허 제목",
		"출원인",
		"특허번호 (예: KR10-2020-0001234)",
		"출원년도 (예: 2020)",
		"IPC 분류 (쉼표 구분)",
		"특허 문서 URL",
		"비고",
	}
	for i := range m.itemInputs {
		ti := textinput.New()
		ti.Placeholder = itemPlaceholders[i]
		ti.CharLimit = 300
		ti.Width = 60
		m.itemInputs[i] = ti
	}

	m.apiKeyInput = textinput.New()
	m.apiKeyInput.Placeholder = "sk-..."
	m.apiKeyInput.CharLimit = 200
	m.apiKeyInput.Width = 60
	m.apiKeyInput.EchoMode = textinput.EchoPassword

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	m.spinner = spin

	m.infoMessage = "n 다음 단계 · b 이전 단계 · ? 도움말 · ctrl+c 종료"
	return m
}

type model struct {
	config  Config
	machine *wizard.Machine

	mode mode
	form form

	inventionInputs []textinput.Model
	keywordInput    textinput.Model
	itemInputs      []textinput.Model
	apiKeyInput     textinput.Model
	spinner         spinner.Model

	focusIdx      int
	keywordKind   int
	editingItemID string
	cursor        int

	keywordLoading bool
	rankingLoading bool
	summaryLoading bool
	exporting      bool

	summary      string
	infoMessage  string
	errorMessage string
	helpVisible  bool

	width  int
	height int
}

var keywordKinds = []session.KeywordKind{
	session.KeywordKorean,
	session.KeywordEnglish,
	session.KeywordJapanese,
	session.KeywordIPC,
	session.KeywordCPC,
}

func (m *model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *model) busy() bool {
	return m.keywordLoading || m.rankingLoading || m.summaryLoading || m.exporting
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if m.busy() {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.mode == modeEdit {
			return m.handleFormKey(msg)
		}
		return m.handleNormalKey(msg)
	case keywordsResultMsg:
		m.keywordLoading = false
		if msg.err != nil {
			m.errorMessage = msg.err.Error()
			m.infoMessage = "g 키로 다시 시도할 수 있습니다."
			return m, nil
		}
		m.config.Store.SetKeywords(msg.keywords)
		m.errorMessage = ""
		m.infoMessage = "AI 키워드 도출 완료. a 키로 직접 추가할 수 있습니다."
		return m, m.persist()
	case rankingResultMsg:
		m.rankingLoading = false
		if msg.err != nil {
			m.errorMessage = msg.err.Error()
			m.infoMessage = "r 키로 다시 시도할 수 있습니다."
			return m, nil
		}
		applied := m.config.Store.ApplyRankings(msg.updates)
		m.errorMessage = ""
		m.infoMessage = fmt.Sprintf("AI 평가 완료: %d건 점수 반영", applied)
		return m, m.persist()
	case summaryResultMsg:
		m.summaryLoading = false
		if msg.err != nil {
			m.errorMessage = msg.err.Error()
			m.infoMessage = "s 키로 다시 시도할 수 있습니다."
			return m, nil
		}
		m.summary = msg.summary
		m.errorMessage = ""
		m.infoMessage = "AI 분석 요약 완료. 리포트에 포함됩니다."
		return m, nil
	case persistResultMsg:
		if msg.err != nil {
			m.errorMessage = "세션 저장 실패: " + msg.err.Error()
		}
		return m, nil
	case exportResultMsg:
		m.exporting = false
		if msg.err != nil {
			m.errorMessage = msg.err.Error()
			return m, nil
		}
		m.errorMessage = ""
		m.infoMessage = fmt.Sprintf("내보내기 완료: %s", msg.path)
		return m, nil
	}
	return m, nil
}

// persist snapshots the store to the session file after a mutation.
func (m *model) persist() tea.Cmd {
	if m.config.File == nil {
		return nil
	}
	return persistCmd(m.config.File, m.config.Store)
}

func (m *model) handleNormalKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "q":
		return m, tea.Quit
	case "?":
		m.helpVisible = !m.helpVisible
		return m, nil
	case "n":
		if m.busy() {
			m.infoMessage = "작업이 끝난 후 이동할 수 있습니다."
			return m, nil
		}
		if err := m.machine.Advance(); err != nil {
			m.errorMessage = err.Error()
			return m, nil
		}
		m.cursor = 0
		m.errorMessage = ""
		m.infoMessage = fmt.Sprintf("단계 %d: %s", m.machine.Current(), wizard.StepTitle(m.machine.Current()))
		return m, m.persist()
	case "b":
		if err := m.machine.GoBack(); err != nil {
			m.errorMessage = err.Error()
			return m, nil
		}
		m.cursor = 0
		m.errorMessage = ""
		return m, m.persist()
	case "1", "2", "3", "4", "5":
		target, _ := strconv.Atoi(key.String())
		if err := m.machine.NavigateTo(target); err != nil {
			m.errorMessage = err.Error()
			return m, nil
		}
		m.cursor = 0
		m.errorMessage = ""
		return m, m.persist()
	case "K":
		m.openAPIKeyForm()
		return m, nil
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down", "j":
		if m.cursor < m.cursorMax() {
			m.cursor++
		}
		return m, nil
	}
	return m.handleStepKey(key)
}

func (m *model) handleStepKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.machine.Current() {
	case wizard.StepInvention:
		switch key.String() {
		case "e", "enter":
			m.openInventionForm()
			return m, nil
		}
	case wizard.StepKeywords:
		switch key.String() {
		case "g":
			return m.startKeywordGeneration()
		case "a":
			m.openKeywordForm()
			return m, nil
		case "x":
			m.deleteKeywordAtCursor()
			return m, m.persist()
		}
	case wizard.StepSearch:
		switch key.String() {
		case "r":
			m.regenerateQueries()
			return m, m.persist()
		case "a":
			m.openItemForm(nil)
			return m, nil
		}
	case wizard.StepResults:
		switch key.String() {
		case "a":
			m.openItemForm(nil)
			return m, nil
		case "enter", "e":
			if item, ok := m.itemAtCursor(); ok {
				m.openItemForm(&item)
			}
			return m, nil
		case "x":
			if item, ok := m.itemAtCursor(); ok {
				if err := m.config.Store.DeletePriorArtItem(item.ID); err != nil {
					m.errorMessage = err.Error()
					return m, nil
				}
				if m.cursor > m.cursorMax() {
					m.cursor = m.cursorMax()
				}
				m.infoMessage = "항목을 삭제했습니다."
				return m, m.persist()
			}
		case " ":
			if item, ok := m.itemAtCursor(); ok {
				if err := m.config.Store.ToggleSelected(item.ID); err != nil {
					m.errorMessage = err.Error()
					return m, nil
				}
				return m, m.persist()
			}
		case "r":
			return m.startRanking()
		case "c":
			m.applyLocalScores()
			return m, m.persist()
		}
	case wizard.StepExport:
		switch key.String() {
		case "s":
			return m.startSummary()
		case "c", "j", "m", "h", "p":
			return m.startExport(key.String())
		}
	}
	return m, nil
}

func (m *model) startKeywordGeneration() (tea.Model, tea.Cmd) {
	if m.config.Client == nil {
		m.infoMessage = "K 키로 OpenAI API 키를 먼저 설정해주세요."
		return m, nil
	}
	if m.keywordLoading {
		m.infoMessage = "키워드 도출이 이미 진행 중입니다."
		return m, nil
	}
	info := m.config.Store.InventionInfo()
	if info == nil || info.Summary == "" {
		m.errorMessage = "발명의 요약을 먼저 입력해주세요"
		return m, nil
	}
	m.keywordLoading = true
	m.errorMessage = ""
	m.infoMessage = "AI 키워드 도출 중…"
	return m, tea.Batch(m.spinner.Tick, generateKeywordsCmd(m.config.Client, info.Summary))
}

func (m *model) startRanking() (tea.Model, tea.Cmd) {
	if m.config.Client == nil {
		m.infoMessage = "K 키로 OpenAI API 키를 먼저 설정해주세요."
		return m, nil
	}
	if m.rankingLoading {
		m.infoMessage = "AI 평가가 이미 진행 중입니다."
		return m, nil
	}
	items := m.config.Store.PriorArtItems()
	if len(items) == 0 {
		m.errorMessage = "평가할 특허를 먼저 추가해주세요"
		return m, nil
	}
	m.rankingLoading = true
	m.errorMessage = ""
	m.infoMessage = "AI 관련성 평가 중…"
	return m, tea.Batch(m.spinner.Tick, rankItemsCmd(m.config.Client, items, m.config.Store.InventionInfo()))
}

func (m *model) startSummary() (tea.Model, tea.Cmd) {
	if m.config.Client == nil {
		m.infoMessage = "K 키로 OpenAI API 키를 먼저 설정해주세요."
		return m, nil
	}
	if m.summaryLoading {
		m.infoMessage = "요약 생성이 이미 진행 중입니다."
		return m, nil
	}
	items := m.config.Store.SelectedItems()
	if len(items) == 0 {
		m.errorMessage = "요약할 특허가 없습니다"
		return m, nil
	}
	m.summaryLoading = true
	m.errorMessage = ""
	m.infoMessage = "AI 분석 요약 생성 중…"
	return m, tea.Batch(m.spinner.Tick, summarizeCmd(m.config.Client, items))
}

func (m *model) startExport(key string) (tea.Model, tea.Cmd) {
	if m.exporting {
		m.infoMessage = "내보내기가 이미 진행 중입니다."
		return m, nil
	}
	format := map[string]string{
		"c": string(export.FormatCSV),
		"j": string(export.FormatJSON),
		"m": string(export.FormatMarkdown),
		"h": string(export.FormatHTML),
		"p": string(export.FormatPDF),
	}[key]
	in := export.ReportInput{
		Invention: m.config.Store.InventionInfo(),
		Keywords:  m.config.Store.Keywords(),
		Items:     m.config.Store.SelectedItems(),
		Summary:   m.summary,
	}
	if len(in.Items) == 0 {
		m.errorMessage = "내보낼 특허가 없습니다"
		return m, nil
	}
	m.exporting = true
	m.errorMessage = ""
	m.infoMessage = "내보내기 생성 중…"
	return m, tea.Batch(m.spinner.Tick, exportCmd(format, m.config.OutDir, in))
}

// applyLocalScores runs the rule-based scorer over every item, a fallback
// when no API key is configured.
func (m *model) applyLocalScores() {
	kw := m.config.Store.Keywords()
	info := m.config.Store.InventionInfo()
	if kw == nil || info == nil {
		m.errorMessage = "발명 정보와 키워드가 필요합니다"
		return
	}
	ctx := scoring.Context{
		Keywords:      append(append([]string{}, kw.Korean...), kw.English...),
		TargetIPC:     kw.IPC,
		ReferenceText: info.Title + " " + info.Summary,
	}
	weights := scoring.DefaultWeights()
	count := 0
	for _, item := range m.config.Store.PriorArtItems() {
		score := scoring.Overall(scoring.Candidate{Title: item.Title, Year: item.Year, IPC: item.IPC}, ctx, weights)
		reason := "규칙 기반 점수 (키워드·IPC·연도·유사도 가중 합산)"
		if err := m.config.Store.UpdatePriorArtItem(item.ID, session.ItemUpdate{Score: &score, ScoreReason: &reason}); err == nil {
			count++
		}
	}
	m.errorMessage = ""
	m.infoMessage = fmt.Sprintf("규칙 기반 점수 계산 완료: %d건", count)
}

func (m *model) regenerateQueries() {
	kw := m.config.Store.Keywords()
	if kw == nil {
		m.errorMessage = "키워드를 먼저 입력해주세요"
		return
	}
	m.config.Store.SetSearchQueries(search.GenerateLinks(search.WizardKeywords(*kw), kw.IPC))
	m.infoMessage = "검색 링크를 다시 생성했습니다."
}

// cursorMax bounds the list cursor for the current step.
func (m *model) cursorMax() int {
	switch m.machine.Current() {
	case wizard.StepKeywords:
		n := len(m.flattenKeywords())
		if n == 0 {
			return 0
		}
		return n - 1
	case wizard.StepSearch:
		n := len(m.config.Store.SearchQueries())
		if n == 0 {
			return 0
		}
		return n - 1
	case wizard.StepResults:
		n := len(m.config.Store.PriorArtItems())
		if n == 0 {
			return 0
		}
		return n - 1
	}
	return 0
}

type keywordRef struct {
	kind  session.KeywordKind
	value string
}

func (m *model) flattenKeywords() []keywordRef {
	kw := m.config.Store.Keywords()
	if kw == nil {
		return nil
	}
	var refs []keywordRef
	add := func(kind session.KeywordKind, values []string) {
		for _, v := range values {
			refs = append(refs, keywordRef{kind: kind, value: v})
		}
	}
	add(session.KeywordKorean, kw.Korean)
	add(session.KeywordEnglish, kw.English)
	add(session.KeywordJapanese, kw.Japanese)
	add(session.KeywordIPC, kw.IPC)
	add(session.KeywordCPC, kw.CPC)
	return refs
}

func (m *model) deleteKeywordAtCursor() {
	refs := m.flattenKeywords()
	if m.cursor >= len(refs) {
		return
	}
	ref := refs[m.cursor]
	kw := m.config.Store.Keywords()
	kw.Remove(ref.kind, ref.value)
	m.config.Store.SetKeywords(*kw)
	if m.cursor > 0 {
		m.cursor--
	}
	m.infoMessage = fmt.Sprintf("키워드 삭제: %s", ref.value)
}

func (m *model) itemAtCursor() (session.PriorArtItem, bool) {
	items := m.config.Store.PriorArtItems()
	if m.cursor >= len(items) {
		return session.PriorArtItem{}, false
	}
	return items[m.cursor], true
}

func (m *model) openInventionForm() {
	info := m.config.Store.InventionInfo()
	values := []string{"", "", "", ""}
	if info != nil {
		values = []string{info.Title, info.TechnicalField, info.Purpose, info.Summary}
	}
	for i := range m.inventionInputs {
		m.inventionInputs[i].SetValue(values[i])
		m.inventionInputs[i].Blur()
	}
	m.inventionInputs[0].Focus()
	m.focusIdx = 0
	m.mode = modeEdit
	m.form = formInvention
	m.infoMessage = "Tab 다음 항목 · Enter 마지막 항목에서 저장 · Esc 취소"
}

func (m *model) openKeywordForm() {
	m.keywordInput.SetValue("")
	m.keywordInput.Focus()
	m.keywordKind = 0
	m.mode = modeEdit
	m.form = formKeyword
	m.infoMessage = "Tab 분류 전환 · Enter 추가 · Esc 닫기"
}

func (m *model) openItemForm(item *session.PriorArtItem) {
	values := []string{"", "", "", "", "", "", ""}
	m.editingItemID = ""
	if item != nil {
		m.editingItemID = item.ID
		values = []string{
			item.Title, item.Applicant, item.Number,
			strconv.Itoa(item.Year), strings.Join(item.IPC, ", "), item.URL, item.Note,
		}
	}
	for i := range m.itemInputs {
		m.itemInputs[i].SetValue(values[i])
		m.itemInputs[i].Blur()
	}
	m.itemInputs[0].Focus()
	m.focusIdx = 0
	m.mode = modeEdit
	m.form = formItem
	m.infoMessage = "Tab 다음 항목 · Enter 마지막 항목에서 저장 · Esc 취소"
}

func (m *model) openAPIKeyForm() {
	m.apiKeyInput.SetValue("")
	m.apiKeyInput.Focus()
	m.mode = modeEdit
	m.form = formAPIKey
	m.infoMessage = "OpenAI API 키 입력 후 Enter · Esc 취소"
}

func (m *model) closeForm() {
	m.mode = modeNormal
	m.form = formNone
	m.editingItemID = ""
}

func (m *model) handleFormKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Type == tea.KeyEsc {
		m.closeForm()
		m.infoMessage = "입력을 취소했습니다."
		return m, nil
	}
	switch m.form {
	case formInvention:
		return m.handleGroupFormKey(key, m.inventionInputs, m.submitInvention)
	case formItem:
		return m.handleGroupFormKey(key, m.itemInputs, m.submitItem)
	case formKeyword:
		return m.handleKeywordFormKey(key)
	case formAPIKey:
		var cmd tea.Cmd
		m.apiKeyInput, cmd = m.apiKeyInput.Update(key)
		if key.Type == tea.KeyEnter {
			value := strings.TrimSpace(m.apiKeyInput.Value())
			if value == "" {
				m.errorMessage = "API 키를 입력해주세요"
				return m, cmd
			}
			m.config.Store.SetCredential(value)
			m.config.Client = m.newClient(value)
			m.closeForm()
			m.errorMessage = ""
			m.infoMessage = "API 키가 설정되었습니다. 세션 파일에는 저장되지 않습니다."
		}
		return m, cmd
	}
	return m, nil
}

// newClient is replaced by cmd wiring; kept injectable for tests.
var clientFactory func(key string) assist.Completer

// SetClientFactory installs the constructor used when the API key is entered
// at runtime.
func SetClientFactory(f func(key string) assist.Completer) {
	clientFactory = f
}

func (m *model) newClient(key string) assist.Completer {
	if clientFactory == nil {
		return m.config.Client
	}
	return clientFactory(key)
}

func (m *model) handleGroupFormKey(key tea.KeyMsg, inputs []textinput.Model, submit func() tea.Cmd) (tea.Model, tea.Cmd) {
	switch key.Type {
	case tea.KeyTab, tea.KeyShiftTab, tea.KeyEnter:
		if key.Type == tea.KeyEnter && m.focusIdx == len(inputs)-1 {
			return m, submit()
		}
		delta := 1
		if key.Type == tea.KeyShiftTab {
			delta = -1
		}
		inputs[m.focusIdx].Blur()
		m.focusIdx = (m.focusIdx + delta + len(inputs)) % len(inputs)
		inputs[m.focusIdx].Focus()
		return m, textinput.Blink
	}
	var cmd tea.Cmd
	inputs[m.focusIdx], cmd = inputs[m.focusIdx].Update(key)
	return m, cmd
}

func (m *model) handleKeywordFormKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.Type {
	case tea.KeyTab:
		m.keywordKind = (m.keywordKind + 1) % len(keywordKinds)
		return m, nil
	case tea.KeyShiftTab:
		m.keywordKind = (m.keywordKind - 1 + len(keywordKinds)) % len(keywordKinds)
		return m, nil
	}
	var cmd tea.Cmd
	m.keywordInput, cmd = m.keywordInput.Update(key)
	if key.Type == tea.KeyEnter {
		value := strings.TrimSpace(m.keywordInput.Value())
		if value == "" {
			return m, cmd
		}
		kw := m.config.Store.Keywords()
		if kw == nil {
			kw = &session.Keywords{}
		}
		kind := keywordKinds[m.keywordKind]
		if kw.Add(kind, value) {
			m.config.Store.SetKeywords(*kw)
			m.infoMessage = fmt.Sprintf("추가: %s (%s)", value, kindLabel(kind))
			m.keywordInput.SetValue("")
			return m, tea.Batch(cmd, m.persist())
		}
		m.infoMessage = "이미 등록된 키워드입니다."
	}
	return m, cmd
}

func (m *model) submitInvention() tea.Cmd {
	info := session.InventionInfo{
		Title:          strings.TrimSpace(m.inventionInputs[0].Value()),
		TechnicalField: strings.TrimSpace(m.inventionInputs[1].Value()),
		Purpose:        strings.TrimSpace(m.inventionInputs[2].Value()),
		Summary:        strings.TrimSpace(m.inventionInputs[3].Value()),
	}
	if info.Title == "" {
		m.errorMessage = "발명의 명칭을 입력해주세요"
		return nil
	}
	if info.Summary == "" {
		m.errorMessage = "발명의 요약을 입력해주세요"
		return nil
	}
	m.config.Store.SetInventionInfo(info)
	m.closeForm()
	m.errorMessage = ""
	m.infoMessage = "발명 정보를 저장했습니다. n 키로 다음 단계로 이동하세요."
	return m.persist()
}

func (m *model) submitItem() tea.Cmd {
	year := 0
	if v := strings.TrimSpace(m.itemInputs[3].Value()); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			m.errorMessage = "출원년도는 숫자로 입력해주세요"
			return nil
		}
		year = parsed
	}
	title := strings.TrimSpace(m.itemInputs[0].Value())
	applicant := strings.TrimSpace(m.itemInputs[1].Value())
	number := strings.TrimSpace(m.itemInputs[2].Value())
	ipc := splitIPC(m.itemInputs[4].Value())
	url := strings.TrimSpace(m.itemInputs[5].Value())
	note := strings.TrimSpace(m.itemInputs[6].Value())

	if m.editingItemID != "" {
		update := session.ItemUpdate{
			Title: &title, Applicant: &applicant, Number: &number,
			Year: &year, IPC: ipc, URL: &url, Note: &note,
		}
		if err := m.config.Store.UpdatePriorArtItem(m.editingItemID, update); err != nil {
			m.errorMessage = err.Error()
			return nil
		}
		m.closeForm()
		m.errorMessage = ""
		m.infoMessage = "항목을 수정했습니다."
		return m.persist()
	}

	item := session.PriorArtItem{
		Title: title, Applicant: applicant, Number: number,
		Year: year, IPC: ipc, URL: url, Note: note,
	}
	if _, err := m.config.Store.AddPriorArtItem(item); err != nil {
		m.errorMessage = err.Error()
		return nil
	}
	m.closeForm()
	m.errorMessage = ""
	m.infoMessage = "선행특허를 추가했습니다."
	return m.persist()
}

func splitIPC(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func kindLabel(kind session.KeywordKind) string {
	switch kind {
	case session.KeywordKorean:
		return "한국어"
	case session.KeywordEnglish:
		return "영어"
	case session.KeywordJapanese:
		return "일본어"
	case session.KeywordIPC:
		return "IPC"
	case session.KeywordCPC:
		return "CPC"
	}
	return string(kind)
}
