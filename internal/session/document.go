package session

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/ardour-tools/ardourfix/internal/checksum"
	"github.com/ardour-tools/ardourfix/internal/xmltree"
	"github.com/ardour-tools/ardourfix/pkg/ardourfix"
)

// LoadOptions controls how a session file is parsed.
type LoadOptions struct {
	// StrictXML enables the hardened parser.
	StrictXML bool
}

// SaveOptions controls how a session file is written back.
type SaveOptions struct {
	// Backup keeps the original content at Path + ardourfix.BackupSuffix.
	Backup bool
	// DryRun renders the document but writes nothing.
	DryRun bool
}

// SaveResult describes what Save did.
type SaveResult struct {
	OldDigest  string
	NewDigest  string
	Changed    bool
	Written    bool
	BackupPath string
}

// Document is a loaded session file. When Path is a symlink, Save rewrites
// the file it points to and leaves the link in place.
type Document struct {
	Path string
	Root *xmltree.Element

	target   string
	digest   string
	original []byte
	mode     fs.FileMode
}

// Load reads and parses the session file at path.
func Load(path string, opts LoadOptions) (*Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: '%s'", ardourfix.ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to stat '%s': %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("'%s' is a directory, expected a session file", path)
	}

	target, err := filepath.EvalSymlinks(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve '%s': %w", path, err)
	}

	data, err := os.ReadFile(target)
	if err != nil {
		return nil, fmt.Errorf("failed to read '%s': %w", path, err)
	}

	root, err := xmltree.ParseString(string(data), xmltree.Options{Strict: opts.StrictXML})
	if err != nil {
		return nil, fmt.Errorf("'%s': %w", path, err)
	}

	return &Document{
		Path:     path,
		Root:     root,
		target:   target,
		digest:   checksum.New().CalculateRaw(data),
		original: data,
		mode:     info.Mode().Perm(),
	}, nil
}

// Digest returns the SHA-256 of the bytes the document was loaded from.
func (d *Document) Digest() string {
	return d.digest
}

// Save serializes the tree and replaces the file at d.Path, or the file it
// links to.
//
// The file on disk must still match what Load read; otherwise Save fails with
// ardourfix.ErrFileChanged and leaves it alone.
func (d *Document) Save(opts SaveOptions) (SaveResult, error) {
	calc := checksum.New()

	out, err := d.Root.Bytes()
	if err != nil {
		return SaveResult{}, fmt.Errorf("failed to serialize '%s': %w", d.Path, err)
	}

	res := SaveResult{
		OldDigest: d.digest,
		NewDigest: calc.CalculateRaw(out),
	}
	res.Changed = res.OldDigest != res.NewDigest
	if opts.DryRun {
		return res, nil
	}

	current, err := calc.CalculateFile(d.target)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return res, fmt.Errorf("%w: '%s' was removed", ardourfix.ErrFileChanged, d.Path)
		}
		return res, fmt.Errorf("failed to read '%s': %w", d.Path, err)
	}
	if current != d.digest {
		return res, fmt.Errorf("%w: '%s'", ardourfix.ErrFileChanged, d.Path)
	}

	if opts.Backup {
		res.BackupPath = d.Path + ardourfix.BackupSuffix
		if err := writeFileAtomic(res.BackupPath, d.original, d.mode); err != nil {
			return res, fmt.Errorf("failed to write backup: %w", err)
		}
	}

	if err := writeFileAtomic(d.target, out, d.mode); err != nil {
		return res, fmt.Errorf("failed to write '%s': %w", d.Path, err)
	}

	d.digest = res.NewDigest
	d.original = out
	res.Written = true
	return res, nil
}

// writeFileAtomic writes data to a uniquely named sibling of path and renames
// it into place.
func writeFileAtomic(path string, data []byte, mode fs.FileMode) (err error) {
	tmp := filepath.Join(filepath.Dir(path), "."+filepath.Base(path)+"."+uuid.NewString()+".tmp")

	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, mode)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			os.Remove(tmp)
		}
	}()

	if _, err = f.Write(data); err != nil {
		f.Close()
		return err
	}
	if err = f.Sync(); err != nil {
		f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	if err = os.Chmod(tmp, mode); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
