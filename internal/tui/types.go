package tui

import "github.com/junsang-dong/ipgps/internal/session"

// mode separates list navigation from form editing. Keys type into inputs
// only in modeEdit.
type mode int

const (
	modeNormal mode = iota
	modeEdit
)

// form identifies which input group is active while in modeEdit.
type form int

const (
	formNone form = iota
	formInvention
	formKeyword
	formItem
	formAPIKey
)

type keywordsResultMsg struct {
	keywords session.Keywords
	err      error
}

type rankingResultMsg struct {
	updates []session.RankingUpdate
	err     error
}

type summaryResultMsg struct {
	summary string
	err     error
}

type persistResultMsg struct {
	err error
}

type exportResultMsg struct {
	format string
	path   string
	err    error
}
