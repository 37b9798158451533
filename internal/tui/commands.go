package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/junsang-dong/ipgps/internal/assist"
	"github.com/junsang-dong/ipgps/internal/export"
	"github.com/junsang-dong/ipgps/internal/session"
)

const aiCallTimeout = 2 * time.Minute

func generateKeywordsCmd(client assist.Completer, summary string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), aiCallTimeout)
		defer cancel()
		kw, err := assist.GenerateKeywords(ctx, client, summary)
		return keywordsResultMsg{keywords: kw, err: err}
	}
}

func rankItemsCmd(client assist.Completer, items []session.PriorArtItem, info *session.InventionInfo) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), aiCallTimeout)
		defer cancel()
		updates, err := assist.RankPriorArt(ctx, client, items, info)
		return rankingResultMsg{updates: updates, err: err}
	}
}

func summarizeCmd(client assist.Completer, items []session.PriorArtItem) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), aiCallTimeout)
		defer cancel()
		summary, err := assist.Summarize(ctx, client, items)
		return summaryResultMsg{summary: summary, err: err}
	}
}

func persistCmd(file *session.SessionFile, store *session.Store) tea.Cmd {
	if file == nil {
		return nil
	}
	return func() tea.Msg {
		return persistResultMsg{err: file.Save(store)}
	}
}

func exportCmd(format string, outDir string, in export.ReportInput) tea.Cmd {
	return func() tea.Msg {
		var (
			data []byte
			name string
			err  error
		)
		switch format {
		case string(export.FormatCSV):
			data = []byte(export.CSV(in.Items))
			name = "prior-art-search.csv"
		case string(export.FormatJSON):
			data, err = export.JSON(in.Items)
			name = "prior-art-search.json"
		case string(export.FormatMarkdown):
			data = []byte(export.MarkdownReport(in))
			name = "prior-art-report.md"
		case string(export.FormatHTML):
			var doc string
			doc, err = export.HTMLReport(export.MarkdownReport(in))
			data = []byte(doc)
			name = "prior-art-report.html"
		case string(export.FormatPDF):
			ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
			defer cancel()
			data, err = export.NewPDFRenderer().Render(ctx, export.MarkdownReport(in))
			name = "prior-art-report.pdf"
		default:
			err = fmt.Errorf("unknown format %q", format)
		}
		if err != nil {
			return exportResultMsg{format: format, err: err}
		}
		path := filepath.Join(outDir, name)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return exportResultMsg{format: format, err: err}
		}
		return exportResultMsg{format: format, path: path}
	}
}
