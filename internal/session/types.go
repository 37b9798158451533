package session

// Database identifies one of the external patent databases we deep-link into.
type Database string

const (
	DatabaseKIPRIS        Database = "kipris"
	DatabaseUSPTO         Database = "uspto"
	DatabaseJPlatPat      Database = "jplatpat"
	DatabaseGooglePatents Database = "google-patents"
)

// InventionInfo is the step-1 description of the invention under search.
// Title and Summary gate progression past step 1.
type InventionInfo struct {
	Title          string `json:"title"`
	Summary        string `json:"summary"`
	TechnicalField string `json:"technicalField"`
	Purpose        string `json:"purpose"`
}

// Keywords groups search terms by language plus the two classification
// schemes. Each list is deduplicated on insert; order carries no meaning.
type Keywords struct {
	Korean   []string `json:"korean"`
	English  []string `json:"english"`
	Japanese []string `json:"japanese"`
	IPC      []string `json:"ipc"`
	CPC      []string `json:"cpc"`
}

// KeywordKind names one of the five keyword lists.
type KeywordKind string

const (
	KeywordKorean   KeywordKind = "korean"
	KeywordEnglish  KeywordKind = "english"
	KeywordJapanese KeywordKind = "japanese"
	KeywordIPC      KeywordKind = "ipc"
	KeywordCPC      KeywordKind = "cpc"
)

func (k *Keywords) list(kind KeywordKind) *[]string {
	switch kind {
	case KeywordKorean:
		return &k.Korean
	case KeywordEnglish:
		return &k.English
	case KeywordJapanese:
		return &k.Japanese
	case KeywordIPC:
		return &k.IPC
	case KeywordCPC:
		return &k.CPC
	default:
		return nil
	}
}

// Add appends value to the named list unless it is already present.
// Reports whether the value was inserted.
func (k *Keywords) Add(kind KeywordKind, value string) bool {
	l := k.list(kind)
	if l == nil || value == "" {
		return false
	}
	for _, existing := range *l {
		if existing == value {
			return false
		}
	}
	*l = append(*l, value)
	return true
}

// Remove deletes value from the named list if present.
func (k *Keywords) Remove(kind KeywordKind, value string) {
	l := k.list(kind)
	if l == nil {
		return
	}
	out := (*l)[:0]
	for _, existing := range *l {
		if existing != value {
			out = append(out, existing)
		}
	}
	*l = out
}

// Empty reports whether no list holds any entry.
func (k Keywords) Empty() bool {
	return len(k.Korean) == 0 && len(k.English) == 0 && len(k.Japanese) == 0 &&
		len(k.IPC) == 0 && len(k.CPC) == 0
}

// PriorArtItem is one manually captured candidate patent. ID is assigned at
// creation and never changes; everything else is user-editable.
type PriorArtItem struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Applicant   string   `json:"applicant"`
	Number      string   `json:"number"`
	Year        int      `json:"year"`
	IPC         []string `json:"ipc"`
	URL         string   `json:"url"`
	KeyClaims   string   `json:"keyClaims,omitempty"`
	DiffPoints  []string `json:"diffPoints,omitempty"`
	Note        string   `json:"note,omitempty"`
	Score       *int     `json:"score,omitempty"`
	ScoreReason string   `json:"scoreReason,omitempty"`
}

// ItemUpdate is a partial edit applied to an existing item. Nil fields are
// left untouched.
type ItemUpdate struct {
	Title       *string
	Applicant   *string
	Number      *string
	Year        *int
	IPC         []string
	URL         *string
	KeyClaims   *string
	DiffPoints  []string
	Note        *string
	Score       *int
	ScoreReason *string
}

// SearchQuery is a derived deep link into one external database. Read-only
// once generated.
type SearchQuery struct {
	Database    Database `json:"database"`
	QueryString string   `json:"queryString"`
	URL         string   `json:"url"`
}

// Snapshot is the durable aggregate persisted between runs. The completion
// credential is deliberately absent.
type Snapshot struct {
	CurrentStep   int            `json:"currentStep"`
	InventionInfo *InventionInfo `json:"inventionInfo"`
	Keywords      *Keywords      `json:"keywords"`
	SearchQueries []SearchQuery  `json:"searchQueries"`
	PriorArtItems []PriorArtItem `json:"priorArtItems"`
	SelectedItems []string       `json:"selectedItems"`
}
