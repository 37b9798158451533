package session

import (
	"strings"
	"sync"

	"github.com/google/uuid"
)

const (
	FirstStep = 1
	LastStep  = 5
)

// Store owns the aggregate session state. It is the single shared mutable
// resource of the application; every mutation goes through a named operation
// that replaces or merges whole values under the lock. Reads return copies.
type Store struct {
	mu sync.Mutex

	currentStep   int
	credential    string
	inventionInfo *InventionInfo
	keywords      *Keywords
	searchQueries []SearchQuery
	priorArtItems []PriorArtItem
	selectedItems map[string]struct{}

	newID func() string
}

func NewStore() *Store {
	return &Store{
		currentStep:   FirstStep,
		selectedItems: map[string]struct{}{},
		newID:         func() string { return uuid.NewString() },
	}
}

// RankingUpdate is a score produced by the AI ranking path, keyed by the
// user-visible patent number rather than the internal item ID.
type RankingUpdate struct {
	Number string
	Score  int
	Reason string
}

func (s *Store) CurrentStep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentStep
}

// SetCurrentStep records the step the wizard is on. Transition rules live in
// the wizard package; the store only rejects out-of-range ordinals.
func (s *Store) SetCurrentStep(step int) error {
	if step < FirstStep || step > LastStep {
		return newError(CodeValidation, "step out of range")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentStep = step
	return nil
}

// Credential returns the completion-service key. Ephemeral: never written to
// the durable snapshot.
func (s *Store) Credential() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.credential
}

func (s *Store) SetCredential(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.credential = strings.TrimSpace(key)
}

func (s *Store) InventionInfo() *InventionInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inventionInfo == nil {
		return nil
	}
	cp := *s.inventionInfo
	return &cp
}

func (s *Store) SetInventionInfo(info InventionInfo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := info
	s.inventionInfo = &cp
}

func (s *Store) Keywords() *Keywords {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.keywords == nil {
		return nil
	}
	cp := copyKeywords(*s.keywords)
	return &cp
}

// SetKeywords overwrites the whole keyword set, deduplicating each list.
func (s *Store) SetKeywords(kw Keywords) {
	s.mu.Lock()
	defer s.mu.Unlock()
	deduped := Keywords{}
	for _, kind := range []KeywordKind{KeywordKorean, KeywordEnglish, KeywordJapanese, KeywordIPC, KeywordCPC} {
		for _, v := range *kw.list(kind) {
			deduped.Add(kind, strings.TrimSpace(v))
		}
	}
	s.keywords = &deduped
}

func (s *Store) SearchQueries() []SearchQuery {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]SearchQuery{}, s.searchQueries...)
}

// SetSearchQueries installs the derived deep-link list. The wizard calls this
// at most once per session, when entering step 3 with an empty list.
func (s *Store) SetSearchQueries(queries []SearchQuery) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searchQueries = append([]SearchQuery{}, queries...)
}

func (s *Store) PriorArtItems() []PriorArtItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]PriorArtItem, 0, len(s.priorArtItems))
	for _, item := range s.priorArtItems {
		out = append(out, copyItem(item))
	}
	return out
}

// AddPriorArtItem assigns an opaque unique ID and appends the item.
func (s *Store) AddPriorArtItem(item PriorArtItem) (PriorArtItem, error) {
	if strings.TrimSpace(item.Title) == "" {
		return PriorArtItem{}, newError(CodeValidation, "제목을 입력해주세요")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	item.ID = s.newID()
	item.IPC = append([]string{}, item.IPC...)
	item.DiffPoints = append([]string{}, item.DiffPoints...)
	s.priorArtItems = append(s.priorArtItems, item)
	return copyItem(item), nil
}

// UpdatePriorArtItem merges the non-nil fields of update into the item.
func (s *Store) UpdatePriorArtItem(id string, update ItemUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.priorArtItems {
		if s.priorArtItems[i].ID != id {
			continue
		}
		applyUpdate(&s.priorArtItems[i], update)
		return nil
	}
	return newError(CodeNotFound, "item not found: "+id)
}

// DeletePriorArtItem removes the item and prunes it from the selection set in
// the same critical section, so no dangling selection ID survives.
func (s *Store) DeletePriorArtItem(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.priorArtItems[:0]
	found := false
	for _, item := range s.priorArtItems {
		if item.ID == id {
			found = true
			continue
		}
		kept = append(kept, item)
	}
	if !found {
		return newError(CodeNotFound, "item not found: "+id)
	}
	s.priorArtItems = kept
	delete(s.selectedItems, id)
	return nil
}

// ToggleSelected flips the item's membership in the export selection set.
func (s *Store) ToggleSelected(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	exists := false
	for _, item := range s.priorArtItems {
		if item.ID == id {
			exists = true
			break
		}
	}
	if !exists {
		return newError(CodeNotFound, "item not found: "+id)
	}
	if _, ok := s.selectedItems[id]; ok {
		delete(s.selectedItems, id)
	} else {
		s.selectedItems[id] = struct{}{}
	}
	return nil
}

func (s *Store) IsSelected(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.selectedItems[id]
	return ok
}

// SelectedItems returns the items carried into export: the selected subset,
// or every item when nothing is explicitly selected.
func (s *Store) SelectedItems() []PriorArtItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []PriorArtItem{}
	for _, item := range s.priorArtItems {
		if len(s.selectedItems) > 0 {
			if _, ok := s.selectedItems[item.ID]; !ok {
				continue
			}
		}
		out = append(out, copyItem(item))
	}
	return out
}

// ApplyRankings merges AI ranking results, matching by patent number.
// Entries that match no known number are skipped. The whole batch applies in
// one critical section.
func (s *Store) ApplyRankings(rankings []RankingUpdate) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	applied := 0
	for _, r := range rankings {
		for i := range s.priorArtItems {
			if s.priorArtItems[i].Number != r.Number {
				continue
			}
			score := r.Score
			s.priorArtItems[i].Score = &score
			s.priorArtItems[i].ScoreReason = r.Reason
			applied++
			break
		}
	}
	return applied
}

// Snapshot returns the durable subset of the state, deep-copied.
func (s *Store) SnapshotState() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := Snapshot{
		CurrentStep:   s.currentStep,
		SearchQueries: append([]SearchQuery{}, s.searchQueries...),
		PriorArtItems: make([]PriorArtItem, 0, len(s.priorArtItems)),
		SelectedItems: make([]string, 0, len(s.selectedItems)),
	}
	if s.inventionInfo != nil {
		cp := *s.inventionInfo
		snap.InventionInfo = &cp
	}
	if s.keywords != nil {
		cp := copyKeywords(*s.keywords)
		snap.Keywords = &cp
	}
	for _, item := range s.priorArtItems {
		snap.PriorArtItems = append(snap.PriorArtItems, copyItem(item))
	}
	for _, item := range s.priorArtItems {
		if _, ok := s.selectedItems[item.ID]; ok {
			snap.SelectedItems = append(snap.SelectedItems, item.ID)
		}
	}
	return snap
}

// Restore replaces the durable state with a previously saved snapshot.
// The credential is untouched; selection IDs that match no item are dropped.
func (s *Store) Restore(snap Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	step := snap.CurrentStep
	if step < FirstStep || step > LastStep {
		step = FirstStep
	}
	s.currentStep = step
	s.inventionInfo = nil
	if snap.InventionInfo != nil {
		cp := *snap.InventionInfo
		s.inventionInfo = &cp
	}
	s.keywords = nil
	if snap.Keywords != nil {
		cp := copyKeywords(*snap.Keywords)
		s.keywords = &cp
	}
	s.searchQueries = append([]SearchQuery{}, snap.SearchQueries...)
	s.priorArtItems = make([]PriorArtItem, 0, len(snap.PriorArtItems))
	known := map[string]struct{}{}
	for _, item := range snap.PriorArtItems {
		s.priorArtItems = append(s.priorArtItems, copyItem(item))
		known[item.ID] = struct{}{}
	}
	s.selectedItems = map[string]struct{}{}
	for _, id := range snap.SelectedItems {
		if _, ok := known[id]; ok {
			s.selectedItems[id] = struct{}{}
		}
	}
}

// Reset returns the store to cold start: everything cleared, credential
// included. Durable storage is wiped by the caller via SessionFile.Reset.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentStep = FirstStep
	s.credential = ""
	s.inventionInfo = nil
	s.keywords = nil
	s.searchQueries = nil
	s.priorArtItems = nil
	s.selectedItems = map[string]struct{}{}
}

func applyUpdate(item *PriorArtItem, u ItemUpdate) {
	if u.Title != nil {
		item.Title = *u.Title
	}
	if u.Applicant != nil {
		item.Applicant = *u.Applicant
	}
	if u.Number != nil {
		item.Number = *u.Number
	}
	if u.Year != nil {
		item.Year = *u.Year
	}
	if u.IPC != nil {
		item.IPC = append([]string{}, u.IPC...)
	}
	if u.URL != nil {
		item.URL = *u.URL
	}
	if u.KeyClaims != nil {
		item.KeyClaims = *u.KeyClaims
	}
	if u.DiffPoints != nil {
		item.DiffPoints = append([]string{}, u.DiffPoints...)
	}
	if u.Note != nil {
		item.Note = *u.Note
	}
	if u.Score != nil {
		score := *u.Score
		item.Score = &score
	}
	if u.ScoreReason != nil {
		item.ScoreReason = *u.ScoreReason
	}
}

func copyItem(item PriorArtItem) PriorArtItem {
	cp := item
	cp.IPC = append([]string{}, item.IPC...)
	cp.DiffPoints = append([]string{}, item.DiffPoints...)
	if item.Score != nil {
		score := *item.Score
		cp.Score = &score
	}
	return cp
}

func copyKeywords(kw Keywords) Keywords {
	return Keywords{
		Korean:   append([]string{}, kw.Korean...),
		English:  append([]string{}, kw.English...),
		Japanese: append([]string{}, kw.Japanese...),
		IPC:      append([]string{}, kw.IPC...),
		CPC:      append([]string{}, kw.CPC...),
	}
}
