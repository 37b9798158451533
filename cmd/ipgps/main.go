package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/junsang-dong/ipgps/internal/assist"
	"github.com/junsang-dong/ipgps/internal/gpt"
	"github.com/junsang-dong/ipgps/internal/session"
	"github.com/junsang-dong/ipgps/internal/tui"
)

func main() {
	_ = godotenv.Load()

	dbPath := flag.String("db", "ipgps.db", "path to the session database")
	outDir := flag.String("out", ".", "directory for exported files")
	model := flag.String("model", "", "override the completion model (default gpt-4o-mini)")
	baseURL := flag.String("base-url", "", "OpenAI-compatible API base URL")
	noAltScreen := flag.Bool("no-alt-screen", false, "disable the alternate screen buffer")
	reset := flag.Bool("reset", false, "discard the saved session and start fresh")
	flag.Parse()

	absOut, err := filepath.Abs(*outDir)
	if err != nil {
		log.Fatalf("resolve output dir: %v", err)
	}

	store := session.NewStore()
	file, err := session.OpenSessionFile(*dbPath)
	if err != nil {
		log.Fatalf("open session file: %v", err)
	}
	defer file.Close()

	if *reset {
		if err := file.Reset(); err != nil {
			log.Fatalf("reset session: %v", err)
		}
	} else if err := file.Load(store); err != nil {
		log.Fatalf("load session: %v", err)
	}

	newClient := func(key string) assist.Completer {
		client, err := gpt.NewClient(gpt.Config{APIKey: key, Model: *model, BaseURL: *baseURL})
		if err != nil {
			return nil
		}
		return client
	}
	tui.SetClientFactory(newClient)

	var client assist.Completer
	if key := strings.TrimSpace(os.Getenv("GPT_API_KEY")); key != "" {
		store.SetCredential(key)
		client = newClient(key)
	} else {
		fmt.Fprintln(os.Stderr, "GPT_API_KEY 미설정: AI 기능은 K 키로 키를 입력한 후 사용할 수 있습니다.")
	}

	opts := []tea.ProgramOption{}
	if !*noAltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	program := tea.NewProgram(
		tui.New(tui.Config{
			Store:  store,
			File:   file,
			Client: client,
			OutDir: absOut,
		}),
		opts...,
	)
	if _, err := program.Run(); err != nil {
		log.Fatalf("program error: %v", err)
	}
}
