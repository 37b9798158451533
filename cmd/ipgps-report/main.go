// ipgps-report exports a saved wizard session without opening the TUI.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/junsang-dong/ipgps/internal/export"
	"github.com/junsang-dong/ipgps/internal/session"
)

func main() {
	_ = godotenv.Load()

	dbPath := flag.String("db", "ipgps.db", "path to the session database")
	format := flag.String("format", "md", "output format: csv, json, md, html, pdf")
	outPath := flag.String("out", "", "output file (default: stdout, pdf requires -out)")
	flag.Parse()

	store := session.NewStore()
	file, err := session.OpenSessionFile(*dbPath)
	if err != nil {
		log.Fatalf("open session file: %v", err)
	}
	defer file.Close()
	if err := file.Load(store); err != nil {
		log.Fatalf("load session: %v", err)
	}

	in := export.ReportInput{
		Invention: store.InventionInfo(),
		Keywords:  store.Keywords(),
		Items:     store.SelectedItems(),
	}
	if len(in.Items) == 0 {
		log.Fatal("no prior art items in session")
	}

	var data []byte
	switch export.Format(*format) {
	case export.FormatCSV:
		data = []byte(export.CSV(in.Items))
	case export.FormatJSON:
		data, err = export.JSON(in.Items)
	case export.FormatMarkdown:
		data = []byte(export.MarkdownReport(in))
	case export.FormatHTML:
		var doc string
		doc, err = export.HTMLReport(export.MarkdownReport(in))
		data = []byte(doc)
	case export.FormatPDF:
		if *outPath == "" {
			log.Fatal("pdf output requires -out")
		}
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		data, err = export.NewPDFRenderer().Render(ctx, export.MarkdownReport(in))
	default:
		log.Fatalf("unknown format %q", *format)
	}
	if err != nil {
		log.Fatalf("export failed: %v", err)
	}

	if *outPath == "" {
		if _, err := os.Stdout.Write(data); err != nil {
			log.Fatalf("write output: %v", err)
		}
		return
	}
	if err := os.WriteFile(*outPath, data, 0o644); err != nil {
		log.Fatalf("write %s: %v", *outPath, err)
	}
	log.Printf("wrote %s (%d bytes, format=%s)", *outPath, len(data), *format)
}
