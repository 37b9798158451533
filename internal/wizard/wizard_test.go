package wizard

import (
	"errors"
	"testing"

	"github.com/junsang-dong/ipgps/internal/session"
)

func ready(t *testing.T, step int) *Machine {
	t.Helper()
	store := session.NewStore()
	store.SetInventionInfo(session.InventionInfo{Title: "로봇 청소기", Summary: "주행 제어"})
	store.SetKeywords(session.Keywords{Korean: []string{"로봇", "청소기"}, IPC: []string{"A47L9/28"}})
	m := NewMachine(store)
	for m.Current() < step {
		if err := m.Advance(); err != nil {
			t.Fatalf("advancing to step %d: %v", step, err)
		}
	}
	return m
}

func TestAdvanceGateStepOne(t *testing.T) {
	tests := []struct {
		name    string
		info    *session.InventionInfo
		wantErr bool
	}{
		{name: "no info at all", info: nil, wantErr: true},
		{name: "missing title", info: &session.InventionInfo{Summary: "x"}, wantErr: true},
		{name: "missing summary", info: &session.InventionInfo{Title: "x"}, wantErr: true},
		{name: "minimal fields pass", info: &session.InventionInfo{Title: "x", Summary: "x"}, wantErr: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := session.NewStore()
			if tt.info != nil {
				store.SetInventionInfo(*tt.info)
			}
			m := NewMachine(store)
			err := m.Advance()
			if tt.wantErr {
				if err == nil {
					t.Fatal("gate passed without required fields")
				}
				var serr *session.Error
				if !errors.As(err, &serr) || serr.Code != session.CodeValidation {
					t.Fatalf("err = %v, want validation error", err)
				}
				if m.Current() != StepInvention {
					t.Fatal("step changed despite gate failure")
				}
				return
			}
			if err != nil {
				t.Fatalf("Advance: %v", err)
			}
			if m.Current() != StepKeywords {
				t.Fatalf("step = %d", m.Current())
			}
		})
	}
}

func TestAdvanceGateStepTwo(t *testing.T) {
	store := session.NewStore()
	store.SetInventionInfo(session.InventionInfo{Title: "x", Summary: "x"})
	m := NewMachine(store)
	if err := m.Advance(); err != nil {
		t.Fatalf("to step 2: %v", err)
	}
	if err := m.Advance(); err == nil {
		t.Fatal("gate passed without keywords")
	}

	// Japanese or CPC entries alone do not satisfy the gate.
	store.SetKeywords(session.Keywords{Japanese: []string{"ロボット"}, CPC: []string{"A47L2201/00"}})
	if err := m.Advance(); err == nil {
		t.Fatal("gate passed without korean/english/ipc")
	}

	store.SetKeywords(session.Keywords{IPC: []string{"A47L9/28"}})
	if err := m.Advance(); err != nil {
		t.Fatalf("ipc-only should pass: %v", err)
	}
}

func TestAdvanceStepsThreeAndFourUngated(t *testing.T) {
	m := ready(t, StepSearch)
	if err := m.Advance(); err != nil {
		t.Fatalf("step 3 advance: %v", err)
	}
	if err := m.Advance(); err != nil {
		t.Fatalf("step 4 advance: %v", err)
	}
	if m.Current() != StepExport {
		t.Fatalf("step = %d", m.Current())
	}
}

func TestAdvanceTerminalStep(t *testing.T) {
	m := ready(t, StepExport)
	if err := m.Advance(); err == nil {
		t.Fatal("advanced past the terminal step")
	}
	if m.Current() != StepExport {
		t.Fatalf("step = %d", m.Current())
	}
}

func TestGoBack(t *testing.T) {
	m := ready(t, StepSearch)
	if err := m.GoBack(); err != nil {
		t.Fatalf("GoBack: %v", err)
	}
	if m.Current() != StepKeywords {
		t.Fatalf("step = %d", m.Current())
	}

	fresh := NewMachine(session.NewStore())
	if err := fresh.GoBack(); err == nil {
		t.Fatal("went back from the first step")
	}
}

func TestNavigateToRejectsForwardJumps(t *testing.T) {
	m := ready(t, StepSearch)
	if err := m.NavigateTo(StepExport); err == nil {
		t.Fatal("forward jump allowed")
	}
	if m.Current() != StepSearch {
		t.Fatal("step changed on rejected jump")
	}
	if err := m.NavigateTo(StepInvention); err != nil {
		t.Fatalf("backward jump: %v", err)
	}
	if m.Current() != StepInvention {
		t.Fatalf("step = %d", m.Current())
	}
}

func TestEnteringSearchSeedsQueries(t *testing.T) {
	store := session.NewStore()
	store.SetInventionInfo(session.InventionInfo{Title: "로봇 청소기", Summary: "주행 제어"})
	store.SetKeywords(session.Keywords{Korean: []string{"로봇"}, English: []string{"robot"}})
	m := NewMachine(store)
	m.Advance()
	if err := m.Advance(); err != nil {
		t.Fatalf("to step 3: %v", err)
	}
	queries := store.SearchQueries()
	if len(queries) != 4 {
		t.Fatalf("got %d queries, want one per database", len(queries))
	}
}

func TestEnteringSearchKeepsExistingQueries(t *testing.T) {
	store := session.NewStore()
	store.SetInventionInfo(session.InventionInfo{Title: "로봇", Summary: "요약"})
	store.SetKeywords(session.Keywords{Korean: []string{"로봇"}})
	custom := []session.SearchQuery{{Database: session.DatabaseKIPRIS, QueryString: "사용자 수정", URL: "https://example.test"}}
	store.SetSearchQueries(custom)

	m := NewMachine(store)
	m.Advance()
	if err := m.Advance(); err != nil {
		t.Fatalf("to step 3: %v", err)
	}
	queries := store.SearchQueries()
	if len(queries) != 1 || queries[0].QueryString != "사용자 수정" {
		t.Fatalf("existing queries overwritten: %+v", queries)
	}
}
