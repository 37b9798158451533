package session

import (
	"path/filepath"
	"testing"
)

func TestSessionFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.db")
	file, err := OpenSessionFile(path)
	if err != nil {
		t.Fatalf("OpenSessionFile: %v", err)
	}
	defer file.Close()

	s := NewStore()
	s.SetCurrentStep(3)
	s.SetCredential("sk-secret")
	s.SetInventionInfo(InventionInfo{Title: "로봇 청소기", Summary: "주행 제어"})
	s.SetKeywords(Keywords{Korean: []string{"로봇", "청소기"}, IPC: []string{"A47L9/28"}})
	added, _ := s.AddPriorArtItem(PriorArtItem{Title: "선행특허", Number: "KR1", Year: 2020})
	s.ToggleSelected(added.ID)

	if err := file.Save(s); err != nil {
		t.Fatalf("Save: %v", err)
	}

	restored := NewStore()
	if err := file.Load(restored); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if restored.CurrentStep() != 3 {
		t.Fatalf("step = %d", restored.CurrentStep())
	}
	if restored.Credential() != "" {
		t.Fatal("credential persisted to disk")
	}
	if kw := restored.Keywords(); kw == nil || len(kw.Korean) != 2 {
		t.Fatalf("keywords = %+v", kw)
	}
	if !restored.IsSelected(added.ID) {
		t.Fatal("selection lost")
	}
}

func TestSessionFileColdStart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.db")
	file, err := OpenSessionFile(path)
	if err != nil {
		t.Fatalf("OpenSessionFile: %v", err)
	}
	defer file.Close()

	s := NewStore()
	if err := file.Load(s); err != nil {
		t.Fatalf("Load on empty db: %v", err)
	}
	if s.CurrentStep() != FirstStep {
		t.Fatalf("step = %d", s.CurrentStep())
	}
}

func TestSessionFileSaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.db")
	file, err := OpenSessionFile(path)
	if err != nil {
		t.Fatalf("OpenSessionFile: %v", err)
	}
	defer file.Close()

	s := NewStore()
	s.SetCurrentStep(2)
	if err := file.Save(s); err != nil {
		t.Fatalf("first Save: %v", err)
	}
	s.SetCurrentStep(4)
	if err := file.Save(s); err != nil {
		t.Fatalf("second Save: %v", err)
	}

	restored := NewStore()
	if err := file.Load(restored); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if restored.CurrentStep() != 4 {
		t.Fatalf("step = %d, want latest snapshot", restored.CurrentStep())
	}
}

func TestSessionFileReset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.db")
	file, err := OpenSessionFile(path)
	if err != nil {
		t.Fatalf("OpenSessionFile: %v", err)
	}
	defer file.Close()

	s := NewStore()
	s.SetCurrentStep(5)
	if err := file.Save(s); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := file.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}

	restored := NewStore()
	if err := file.Load(restored); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if restored.CurrentStep() != FirstStep {
		t.Fatal("state survived reset")
	}
}
