// Package ops backs up and restores the data directory that the file and
// SQLite stores write to.
package ops

import (
	"archive/tar"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pierrec/lz4/v4"
)

// ArchiveExt is the extension of a backup archive: a tar stream in an LZ4
// frame.
const ArchiveExt = ".tar.lz4"

var errMissingPath = errors.New("ops: source and destination paths are required")

func cleanPair(a, b string) (string, string, error) {
	a, b = strings.TrimSpace(a), strings.TrimSpace(b)
	if a == "" || b == "" {
		return "", "", errMissingPath
	}
	return filepath.Clean(a), filepath.Clean(b), nil
}

// BackupDataDir archives every regular file and directory under srcDir.
// Entries are written in lexical order so two backups of the same tree are
// byte-identical.
func BackupDataDir(srcDir, archivePath string) (err error) {
	srcDir, archivePath, err = cleanPair(srcDir, archivePath)
	if err != nil {
		return err
	}
	if info, err := os.Stat(srcDir); err != nil {
		return err
	} else if !info.IsDir() {
		return fmt.Errorf("ops: %s is not a directory", srcDir)
	}

	entries, err := collectEntries(srcDir)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(archivePath), 0o755); err != nil {
		return err
	}
	f, err := os.Create(archivePath)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	zw := lz4.NewWriter(f)
	tw := tar.NewWriter(zw)
	for _, e := range entries {
		if err := e.writeTo(tw); err != nil {
			return fmt.Errorf("ops: archive %s: %w", e.name, err)
		}
	}
	if err := tw.Close(); err != nil {
		return err
	}
	return zw.Close()
}

type entry struct {
	name string // slash separated, relative to the data dir
	path string
	info fs.FileInfo
}

// collectEntries skips symlinks so a restore never points outside the
// target.
func collectEntries(root string) ([]entry, error) {
	var out []entry
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == root || d.Type()&fs.ModeSymlink != 0 {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		out = append(out, entry{name: filepath.ToSlash(rel), path: path, info: info})
		return nil
	})
	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })
	return out, err
}

func (e entry) writeTo(tw *tar.Writer) error {
	hdr, err := tar.FileInfoHeader(e.info, "")
	if err != nil {
		return err
	}
	hdr.Name = e.name
	if e.info.IsDir() {
		hdr.Name += "/"
	}
	if err := tw.WriteHeader(hdr); err != nil {
		return err
	}
	if !e.info.Mode().IsRegular() {
		return nil
	}
	src, err := os.Open(e.path)
	if err != nil {
		return err
	}
	defer src.Close()
	_, err = io.Copy(tw, src)
	return err
}

// RestoreDataDir unpacks an archive made by BackupDataDir into targetDir.
// Entries that would land outside targetDir fail the restore.
func RestoreDataDir(archivePath, targetDir string) error {
	archivePath, targetDir, err := cleanPair(archivePath, targetDir)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(targetDir, 0o755); err != nil {
		return err
	}

	f, err := os.Open(archivePath)
	if err != nil {
		return err
	}
	defer f.Close()

	tr := tar.NewReader(lz4.NewReader(f))
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("ops: read %s: %w", archivePath, err)
		}

		dest, err := localPath(targetDir, hdr.Name)
		if err != nil {
			return err
		}
		switch hdr.Typeflag {
		case tar.TypeDir:
			err = os.MkdirAll(dest, hdr.FileInfo().Mode().Perm()|0o700)
		case tar.TypeReg:
			err = extractFile(tr, dest, hdr.FileInfo().Mode().Perm())
		}
		if err != nil {
			return err
		}
	}
}

func extractFile(r io.Reader, dest string, perm fs.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return err
	}
	out, err := os.OpenFile(dest, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, perm)
	if err != nil {
		return err
	}
	_, err = io.Copy(out, r)
	return errors.Join(err, out.Close())
}

// localPath resolves an archive entry name under root, rejecting absolute
// names and any that climb out with "..".
func localPath(root, name string) (string, error) {
	name = strings.TrimSuffix(strings.TrimSpace(name), "/")
	if name == "" || !filepath.IsLocal(filepath.FromSlash(name)) {
		return "", fmt.Errorf("ops: unsafe archive entry %q", name)
	}
	return filepath.Join(root, filepath.FromSlash(name)), nil
}
