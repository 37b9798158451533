package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/junsang-dong/ipgps/internal/session"
	"github.com/junsang-dong/ipgps/internal/wizard"
)

func (m *model) View() string {
	parts := []string{m.headerView()}

	if m.mode == modeEdit {
		parts = append(parts, m.formView())
	} else {
		parts = append(parts, m.stepView())
	}

	if m.busy() {
		parts = append(parts, helperStyle.Render(fmt.Sprintf("%s %s", m.spinner.View(), m.infoMessage)))
	} else {
		if m.errorMessage != "" {
			parts = append(parts, errorStyle.Render(m.errorMessage))
		}
		if m.infoMessage != "" {
			parts = append(parts, helperStyle.Render(m.infoMessage))
		}
	}
	if m.helpVisible {
		parts = append(parts, m.helpView())
	}
	return joinNonEmpty(parts)
}

func (m *model) headerView() string {
	current := m.machine.Current()
	var cells []string
	for step := session.FirstStep; step <= session.LastStep; step++ {
		label := fmt.Sprintf(" %d %s ", step, wizard.StepTitle(step))
		switch {
		case step == current:
			cells = append(cells, stepActiveStyle.Render(label))
		case step < current:
			cells = append(cells, stepDoneStyle.Render(label))
		default:
			cells = append(cells, stepTodoStyle.Render(label))
		}
	}
	nav := lipgloss.JoinHorizontal(lipgloss.Top, cells...)
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("IP-GPS 선행특허 조사 도우미"),
		nav,
	)
}

func (m *model) stepView() string {
	switch m.machine.Current() {
	case wizard.StepInvention:
		return m.viewInvention()
	case wizard.StepKeywords:
		return m.viewKeywords()
	case wizard.StepSearch:
		return m.viewSearch()
	case wizard.StepResults:
		return m.viewResults()
	case wizard.StepExport:
		return m.viewExport()
	}
	return ""
}

func (m *model) viewInvention() string {
	var b strings.Builder
	b.WriteString(sectionHeaderStyle.Render("1. 발명 정보 입력"))
	b.WriteString("\n\n")
	info := m.config.Store.InventionInfo()
	if info == nil || info.Title == "" {
		b.WriteString(helperStyle.Render("아직 입력된 발명 정보가 없습니다. e 키로 입력을 시작하세요."))
		return b.String()
	}
	wrap := m.wrapWidth()
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("명칭"), info.Title)
	if info.TechnicalField != "" {
		fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("분야"), info.TechnicalField)
	}
	if info.Purpose != "" {
		fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("목적"), wordwrap.String(info.Purpose, wrap))
	}
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("요약"), wordwrap.String(info.Summary, wrap))
	b.WriteString("\n")
	b.WriteString(helperStyle.Render("e 수정 · n 다음 단계"))
	return b.String()
}

func (m *model) viewKeywords() string {
	var b strings.Builder
	b.WriteString(sectionHeaderStyle.Render("2. 검색 키워드 및 분류코드"))
	b.WriteString("\n\n")

	refs := m.flattenKeywords()
	if len(refs) == 0 {
		b.WriteString(helperStyle.Render("키워드가 없습니다. g 키로 AI 도출하거나 a 키로 직접 추가하세요."))
		b.WriteString("\n")
	}
	lastKind := session.KeywordKind("")
	for i, ref := range refs {
		if ref.kind != lastKind {
			if lastKind != "" {
				b.WriteString("\n")
			}
			b.WriteString(labelStyle.Render(kindLabel(ref.kind)))
			b.WriteString("\n")
			lastKind = ref.kind
		}
		cursor := "  "
		if i == m.cursor {
			cursor = cursorStyle.Render("> ")
		}
		fmt.Fprintf(&b, "%s%s\n", cursor, ref.value)
	}
	b.WriteString("\n")
	b.WriteString(helperStyle.Render("g AI 도출 · a 추가 · x 삭제 · ↑/↓ 이동"))
	return b.String()
}

func (m *model) viewSearch() string {
	var b strings.Builder
	b.WriteString(sectionHeaderStyle.Render("3. 특허 데이터베이스 검색 링크"))
	b.WriteString("\n\n")

	queries := m.config.Store.SearchQueries()
	if len(queries) == 0 {
		b.WriteString(helperStyle.Render("생성된 검색 링크가 없습니다. r 키로 키워드에서 생성하세요."))
		return b.String()
	}
	for i, q := range queries {
		cursor := "  "
		if i == m.cursor {
			cursor = cursorStyle.Render("> ")
		}
		fmt.Fprintf(&b, "%s%s\n", cursor, labelStyle.Render(databaseLabel(q.Database)))
		fmt.Fprintf(&b, "    %s\n", wordwrap.String(q.QueryString, m.wrapWidth()))
		fmt.Fprintf(&b, "    %s\n", linkStyle.Render(q.URL))
	}
	b.WriteString("\n")
	b.WriteString(helperStyle.Render("브라우저에서 링크를 열고 찾은 특허를 a 키로 등록하세요. · r 링크 재생성"))
	return b.String()
}

func (m *model) viewResults() string {
	var b strings.Builder
	items := m.config.Store.PriorArtItems()
	b.WriteString(sectionHeaderStyle.Render(fmt.Sprintf("4. 수집된 선행특허 (%d건)", len(items))))
	b.WriteString("\n\n")

	if len(items) == 0 {
		b.WriteString(helperStyle.Render("등록된 특허가 없습니다. a 키로 추가하세요."))
		b.WriteString("\n")
	}
	for i, item := range items {
		cursor := "  "
		if i == m.cursor {
			cursor = cursorStyle.Render("> ")
		}
		check := "[ ]"
		if m.config.Store.IsSelected(item.ID) {
			check = "[✓]"
		}
		score := "  -"
		if item.Score != nil {
			score = fmt.Sprintf("%3d", *item.Score)
		}
		fmt.Fprintf(&b, "%s%s %s점  %s\n", cursor, check, score, item.Title)
		fmt.Fprintf(&b, "       %s · %s · %d\n", item.Number, item.Applicant, item.Year)
		if item.ScoreReason != "" {
			fmt.Fprintf(&b, "       %s\n", helperStyle.Render(wordwrap.String(item.ScoreReason, m.wrapWidth()-7)))
		}
	}
	b.WriteString("\n")
	b.WriteString(helperStyle.Render("a 추가 · e 수정 · x 삭제 · space 선택 · r AI 평가 · c 규칙 점수"))
	return b.String()
}

func (m *model) viewExport() string {
	var b strings.Builder
	selected := m.config.Store.SelectedItems()
	b.WriteString(sectionHeaderStyle.Render("5. 리포트 내보내기"))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "내보낼 특허: %d건 (선택 없음 시 전체)\n", len(selected))
	if m.summary != "" {
		fmt.Fprintf(&b, "AI 분석 요약: %s\n", okStyle.Render("준비됨"))
	} else {
		fmt.Fprintf(&b, "AI 분석 요약: %s\n", helperStyle.Render("없음 (s 키로 생성)"))
	}
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("형식"))
	b.WriteString("\n")
	b.WriteString("  c  CSV (엑셀)\n")
	b.WriteString("  j  JSON\n")
	b.WriteString("  m  Markdown 리포트\n")
	b.WriteString("  h  HTML 리포트\n")
	b.WriteString("  p  PDF 리포트 (Chromium 필요)\n")
	return b.String()
}

func (m *model) formView() string {
	var b strings.Builder
	switch m.form {
	case formInvention:
		b.WriteString(sectionHeaderStyle.Render("발명 정보 입력"))
		labels := []string{"명칭", "기술분야", "목적", "요약"}
		for i, input := range m.inventionInputs {
			fmt.Fprintf(&b, "\n%s\n%s\n", labelStyle.Render(labels[i]), input.View())
		}
	case formKeyword:
		b.WriteString(sectionHeaderStyle.Render("키워드 추가"))
		b.WriteString("\n")
		var kinds []string
		for i, kind := range keywordKinds {
			label := " " + kindLabel(kind) + " "
			if i == m.keywordKind {
				kinds = append(kinds, stepActiveStyle.Render(label))
			} else {
				kinds = append(kinds, stepTodoStyle.Render(label))
			}
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, kinds...))
		b.WriteString("\n\n")
		b.WriteString(m.keywordInput.View())
	case formItem:
		header := "선행특허 등록"
		if m.editingItemID != "" {
			header = "선행특허 수정"
		}
		b.WriteString(sectionHeaderStyle.Render(header))
		labels := []string{"제목", "출원인", "특허번호", "출원년도", "IPC", "URL", "비고"}
		for i, input := range m.itemInputs {
			fmt.Fprintf(&b, "\n%s\n%s\n", labelStyle.Render(labels[i]), input.View())
		}
	case formAPIKey:
		b.WriteString(sectionHeaderStyle.Render("OpenAI API 키 설정"))
		b.WriteString("\n")
		b.WriteString(helperStyle.Render("키는 메모리에만 보관되며 세션 파일에 저장되지 않습니다."))
		b.WriteString("\n\n")
		b.WriteString(m.apiKeyInput.View())
	}
	return b.String()
}

func (m *model) helpView() string {
	lines := []string{
		sectionHeaderStyle.Render("키 안내"),
		helperStyle.Render("n/b 다음·이전 단계, 1-5 이전 단계로 이동 (앞 단계로는 건너뛸 수 없음)"),
		helperStyle.Render("↑/↓ 목록 이동, space 선택, a 추가, e 수정, x 삭제"),
		helperStyle.Render("g AI 키워드 · r AI 평가 · s AI 요약 · c 규칙 점수 · K API 키 설정"),
		helperStyle.Render("5단계에서 c/j/m/h/p 로 내보내기 · q 종료"),
	}
	return helpBoxStyle.Render(strings.Join(lines, "\n"))
}

func databaseLabel(db session.Database) string {
	switch db {
	case session.DatabaseKIPRIS:
		return "KIPRIS (한국)"
	case session.DatabaseUSPTO:
		return "USPTO (미국)"
	case session.DatabaseJPlatPat:
		return "J-PlatPat (일본)"
	case session.DatabaseGooglePatents:
		return "Google Patents"
	}
	return string(db)
}

func (m *model) wrapWidth() int {
	width := m.width - 6
	if width < 40 {
		width = 40
	}
	return width
}

func joinNonEmpty(parts []string) string {
	filtered := make([]string, 0, len(parts))
	for _, part := range parts {
		if strings.TrimSpace(part) == "" {
			continue
		}
		filtered = append(filtered, part)
	}
	return strings.Join(filtered, "\n\n")
}

var (
	titleStyle         = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	sectionHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81"))
	labelStyle         = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("147"))
	helperStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	errorStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	okStyle            = lipgloss.NewStyle().Foreground(lipgloss.Color("78"))
	linkStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("110")).Underline(true)
	cursorStyle        = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	stepActiveStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#0f0f0f")).Background(lipgloss.Color("#ffd166"))
	stepDoneStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#a3be8c"))
	stepTodoStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#56526e"))
	helpBoxStyle       = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#56526e")).Padding(1, 2)
)
