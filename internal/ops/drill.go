package ops

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"

	"lukechampine.com/blake3"
)

// DirDigest hashes every regular file under root, in path order, into one
// BLAKE3 digest. File names are part of the hash.
func DirDigest(root string) (string, error) {
	root = filepath.Clean(root)
	entries := []string{}
	if err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		entries = append(entries, filepath.ToSlash(rel))
		return nil
	}); err != nil {
		return "", err
	}
	sort.Strings(entries)

	h := blake3.New(32, nil)
	for _, rel := range entries {
		_, _ = io.WriteString(h, rel)
		_, _ = io.WriteString(h, "\n")
		f, err := os.Open(filepath.Join(root, rel))
		if err != nil {
			return "", err
		}
		_, err = io.Copy(h, f)
		_ = f.Close()
		if err != nil {
			return "", err
		}
		_, _ = io.WriteString(h, "\n")
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

type DrillReport struct {
	Archive    string `json:"archive"`
	RestoreDir string `json:"restoreDir"`
	Digest     string `json:"digest"`
}

// Drill backs dataDir up into workDir, restores it next to the archive and
// checks that both trees hash the same.
func Drill(dataDir, workDir string, now time.Time) (DrillReport, error) {
	if err := os.MkdirAll(workDir, 0o755); err != nil {
		return DrillReport{}, err
	}
	ts := now.UTC().Format("20060102T150405Z")
	rep := DrillReport{
		Archive:    filepath.Join(workDir, "gameyoutube-drill-"+ts+ArchiveExt),
		RestoreDir: filepath.Join(workDir, "gameyoutube-drill-restore-"+ts),
	}

	if err := BackupDataDir(dataDir, rep.Archive); err != nil {
		return rep, fmt.Errorf("backup: %w", err)
	}
	if err := RestoreDataDir(rep.Archive, rep.RestoreDir); err != nil {
		return rep, fmt.Errorf("restore: %w", err)
	}

	srcDigest, err := DirDigest(dataDir)
	if err != nil {
		return rep, err
	}
	restoreDigest, err := DirDigest(rep.RestoreDir)
	if err != nil {
		return rep, err
	}
	if srcDigest != restoreDigest {
		return rep, fmt.Errorf("digest mismatch after restore: src=%s restored=%s", srcDigest, restoreDigest)
	}
	rep.Digest = srcDigest
	return rep, nil
}
