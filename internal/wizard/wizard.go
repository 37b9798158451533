// Package wizard drives the five-step flow over the session store. Steps are
// linear; moving forward is gated per step, moving backward never is.
package wizard

import (
	"github.com/junsang-dong/ipgps/internal/search"
	"github.com/junsang-dong/ipgps/internal/session"
)

// Step identifiers.
const (
	StepInvention = 1
	StepKeywords  = 2
	StepSearch    = 3
	StepResults   = 4
	StepExport    = 5
)

// StepTitle returns the display name of a step.
func StepTitle(step int) string {
	switch step {
	case StepInvention:
		return "발명 정보 입력"
	case StepKeywords:
		return "키워드 도출"
	case StepSearch:
		return "검색 실행"
	case StepResults:
		return "결과 정리"
	case StepExport:
		return "리포트 내보내기"
	}
	return ""
}

// Machine wraps a session store with the step-gating rules.
type Machine struct {
	store *session.Store
}

func NewMachine(store *session.Store) *Machine {
	return &Machine{store: store}
}

func (m *Machine) Current() int {
	return m.store.CurrentStep()
}

// Advance moves to the next step when the current step's gate passes.
// The terminal step never advances.
func (m *Machine) Advance() error {
	step := m.store.CurrentStep()
	if step >= session.LastStep {
		return session.NewValidationError("마지막 단계입니다")
	}
	if err := m.gate(step); err != nil {
		return err
	}
	if err := m.store.SetCurrentStep(step + 1); err != nil {
		return err
	}
	m.enter(step + 1)
	return nil
}

// GoBack moves to the previous step. Always allowed except on the first.
func (m *Machine) GoBack() error {
	step := m.store.CurrentStep()
	if step <= session.FirstStep {
		return session.NewValidationError("첫 단계입니다")
	}
	return m.store.SetCurrentStep(step - 1)
}

// NavigateTo jumps to an already-visited step. Forward jumps are rejected;
// the gates exist so later steps always see validated input.
func (m *Machine) NavigateTo(target int) error {
	current := m.store.CurrentStep()
	if target > current {
		return session.NewValidationError("아직 진행하지 않은 단계입니다")
	}
	return m.store.SetCurrentStep(target)
}

func (m *Machine) gate(step int) error {
	switch step {
	case StepInvention:
		info := m.store.InventionInfo()
		if info == nil || info.Title == "" {
			return session.NewValidationError("발명의 명칭을 입력해주세요")
		}
		if info.Summary == "" {
			return session.NewValidationError("발명의 요약을 입력해주세요")
		}
	case StepKeywords:
		kw := m.store.Keywords()
		if kw == nil || (len(kw.Korean) == 0 && len(kw.English) == 0 && len(kw.IPC) == 0) {
			return session.NewValidationError("키워드를 하나 이상 입력해주세요")
		}
	}
	return nil
}

// enter runs a step's entry side effects. Step 3 seeds the search query
// list from the current keywords the first time through.
func (m *Machine) enter(step int) {
	if step != StepSearch {
		return
	}
	if len(m.store.SearchQueries()) > 0 {
		return
	}
	kw := m.store.Keywords()
	if kw == nil {
		return
	}
	terms := search.WizardKeywords(*kw)
	m.store.SetSearchQueries(search.GenerateLinks(terms, kw.IPC))
}
