package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/thedidscuf/GameYoutube/internal/config"
	"github.com/thedidscuf/GameYoutube/internal/ops"
	"github.com/thedidscuf/GameYoutube/internal/store"
)

func main() {
	if len(os.Args) < 2 {
		printUsage(os.Stderr)
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "backup":
		err = cmdBackup(os.Args[2:], os.Stdout)
	case "restore":
		err = cmdRestore(os.Args[2:])
	case "drill":
		err = cmdDrill(os.Args[2:], os.Stdout)
	case "channels":
		err = cmdChannels(os.Args[2:], os.Stdout)
	case "balance":
		err = cmdBalance(os.Args[2:], os.Stdout)
	default:
		printUsage(os.Stderr)
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s failed: %v\n", os.Args[1], err)
		os.Exit(1)
	}
}

func cmdBackup(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("backup", flag.ContinueOnError)
	dataDir := fs.String("data-dir", "data", "path to data directory")
	dst := fs.String("out", "", "output archive path ("+ops.ArchiveExt+")")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *dst == "" {
		ts := time.Now().UTC().Format("20060102T150405Z")
		*dst = filepath.Join("backups", "gameyoutube-"+ts+ops.ArchiveExt)
	}

	if err := ops.BackupDataDir(*dataDir, *dst); err != nil {
		return err
	}
	fmt.Fprintln(out, *dst)
	return nil
}

func cmdRestore(args []string) error {
	fs := flag.NewFlagSet("restore", flag.ContinueOnError)
	archive := fs.String("archive", "", "input backup archive ("+ops.ArchiveExt+")")
	target := fs.String("target-dir", "data-restored", "restore target directory")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *archive == "" {
		return fmt.Errorf("archive is required")
	}
	return ops.RestoreDataDir(*archive, *target)
}

func cmdDrill(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("drill", flag.ContinueOnError)
	dataDir := fs.String("data-dir", "data", "path to data directory")
	workDir := fs.String("work-dir", os.TempDir(), "temporary workspace for drill artifacts")
	if err := fs.Parse(args); err != nil {
		return err
	}

	rep, err := ops.Drill(*dataDir, *workDir, time.Now())
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "backup:", rep.Archive)
	fmt.Fprintln(out, "restored:", rep.RestoreDir)
	fmt.Fprintln(out, "digest:", rep.Digest)
	return nil
}

// cmdChannels prints the stored channels of the store the server is
// configured with, one JSON object per line.
func cmdChannels(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("channels", flag.ContinueOnError)
	storeType := fs.String("store", "", "override STORE_TYPE")
	dataDir := fs.String("data-dir", "", "override DATA_DIR")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.LoadServer()
	if err != nil {
		return err
	}
	if *storeType != "" {
		cfg.Store.Type = *storeType
	}
	if *dataDir != "" {
		cfg.Store.DataDir = *dataDir
	}

	repo, err := store.Open(cfg.Store)
	if err != nil {
		return err
	}
	defer repo.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return listChannels(ctx, repo, out)
}

type channelLine struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Active      bool    `json:"active"`
	Day         int     `json:"day"`
	Subscribers int     `json:"subscribers"`
	Views       int     `json:"views"`
	Money       float64 `json:"money"`
	Videos      int     `json:"videos"`
	Monetized   bool    `json:"monetized"`
}

func listChannels(ctx context.Context, repo *store.Repository, out io.Writer) error {
	chs, err := repo.ListChannels(ctx)
	if err != nil {
		return err
	}
	active, err := repo.ActiveChannelID(ctx)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(out)
	for _, ch := range chs {
		if err := enc.Encode(channelLine{
			ID:          ch.ID,
			Name:        ch.Name,
			Active:      ch.ID == active,
			Day:         ch.Day,
			Subscribers: ch.Subscribers,
			Views:       ch.Views,
			Money:       ch.Money,
			Videos:      ch.VideosUploaded(),
			Monetized:   ch.IsMonetized,
		}); err != nil {
			return err
		}
	}
	return nil
}

// cmdBalance dumps a difficulty preset as YAML, a starting point for a
// BALANCE_FILE.
func cmdBalance(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("balance", flag.ContinueOnError)
	preset := fs.String("preset", "normal", "difficulty preset: casual, normal or hard")
	if err := fs.Parse(args); err != nil {
		return err
	}
	b, err := config.MarshalBalance(config.Preset(*preset))
	if err != nil {
		return err
	}
	_, err = out.Write(b)
	return err
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "usage:")
	fmt.Fprintln(w, "  gameyoutube-ops backup   --data-dir data --out backups/backup"+ops.ArchiveExt)
	fmt.Fprintln(w, "  gameyoutube-ops restore  --archive backups/backup"+ops.ArchiveExt+" --target-dir data-restored")
	fmt.Fprintln(w, "  gameyoutube-ops drill    --data-dir data --work-dir /tmp")
	fmt.Fprintln(w, "  gameyoutube-ops channels [--store file|sqlite|redis|memory] [--data-dir data]")
	fmt.Fprintln(w, "  gameyoutube-ops balance  [--preset casual|normal|hard] > balance.yaml")
}
