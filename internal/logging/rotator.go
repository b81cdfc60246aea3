package logging

import (
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
)

const (
	defaultLogFileName = "kioskclock.log"
	defaultMaxSizeMB   = 10
	backupTimeLayout   = "20060102T150405.000"
	logDirPerm         = 0o750
	logFilePerm        = 0o600
)

// RotatorConfig describes where and how log files are rotated.
type RotatorConfig struct {
	Dir        string
	FileName   string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
	// Clock stamps backup names and ages them out. Nil uses the wall clock.
	Clock clock.Clock
}

// LogRotator is an io.Writer that moves its file aside once it would grow
// past MaxSizeMB, keeping at most MaxBackups backups no older than MaxAgeDays.
type LogRotator struct {
	cfg   RotatorConfig
	limit int64
	clock clock.Clock

	mu   sync.Mutex
	file *os.File
	size int64
}

var _ io.WriteCloser = (*LogRotator)(nil)

// NewLogRotator opens (or creates) the current log file in cfg.Dir.
func NewLogRotator(cfg RotatorConfig) (*LogRotator, error) {
	if cfg.FileName == "" {
		cfg.FileName = defaultLogFileName
	}
	if cfg.MaxSizeMB <= 0 {
		cfg.MaxSizeMB = defaultMaxSizeMB
	}
	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}

	if err := os.MkdirAll(cfg.Dir, logDirPerm); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	r := &LogRotator{cfg: cfg, limit: int64(cfg.MaxSizeMB) << 20, clock: clk}
	if err := r.open(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *LogRotator) path() string {
	return filepath.Join(r.cfg.Dir, r.cfg.FileName)
}

func (r *LogRotator) open() error {
	f, err := os.OpenFile(r.path(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePerm)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("stat log file: %w", err)
	}
	r.file, r.size = f, info.Size()
	return nil
}

// Write appends p, rotating first when p would overflow a non-empty file.
func (r *LogRotator) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file == nil {
		if err := r.open(); err != nil {
			return 0, err
		}
	}
	if r.size > 0 && r.size+int64(len(p)) > r.limit {
		if err := r.rotate(); err != nil {
			return 0, err
		}
	}

	n, err := r.file.Write(p)
	r.size += int64(n)
	return n, err
}

// rotate moves the current file to a timestamped backup and reopens.
// Compression and pruning failures are reported on stderr only: logging
// must keep working.
func (r *LogRotator) rotate() error {
	if err := r.file.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "kioskclock: close log file: %v\n", err)
	}
	r.file = nil

	backup := r.path() + "." + r.clock.Now().Format(backupTimeLayout)
	if err := os.Rename(r.path(), backup); err != nil {
		return fmt.Errorf("rotate log file: %w", err)
	}

	if r.cfg.Compress {
		if err := gzipFile(backup); err != nil {
			fmt.Fprintf(os.Stderr, "kioskclock: compress %s: %v\n", backup, err)
		}
	}
	if err := r.prune(); err != nil {
		fmt.Fprintf(os.Stderr, "kioskclock: prune log backups: %v\n", err)
	}

	return r.open()
}

// gzipFile replaces path with path.gz.
func gzipFile(path string) (err error) {
	in, err := os.Open(path)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(path+".gz", os.O_CREATE|os.O_WRONLY|os.O_TRUNC, logFilePerm)
	if err != nil {
		return err
	}

	zw := gzip.NewWriter(out)
	_, err = io.Copy(zw, in)
	err = errors.Join(err, zw.Close(), out.Close())
	if err != nil {
		_ = os.Remove(path + ".gz")
		return err
	}
	return os.Remove(path)
}

type backupFile struct {
	name    string
	modTime time.Time
}

// prune drops backups past MaxAgeDays, then the oldest beyond MaxBackups.
func (r *LogRotator) prune() error {
	entries, err := os.ReadDir(r.cfg.Dir)
	if err != nil {
		return err
	}

	maxAge := time.Duration(r.cfg.MaxAgeDays) * 24 * time.Hour
	now := r.clock.Now()
	prefix := r.cfg.FileName + "."

	var backups []backupFile
	var errs []error
	for _, e := range entries {
		if e.IsDir() || !strings.HasPrefix(e.Name(), prefix) {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		if maxAge > 0 && now.Sub(info.ModTime()) > maxAge {
			errs = append(errs, os.Remove(filepath.Join(r.cfg.Dir, e.Name())))
			continue
		}
		backups = append(backups, backupFile{name: e.Name(), modTime: info.ModTime()})
	}

	if r.cfg.MaxBackups > 0 && len(backups) > r.cfg.MaxBackups {
		// Names embed the rotation time, so they order oldest first even
		// when mtimes tie.
		slices.SortFunc(backups, func(a, b backupFile) int {
			if c := a.modTime.Compare(b.modTime); c != 0 {
				return c
			}
			return strings.Compare(a.name, b.name)
		})
		for _, b := range backups[:len(backups)-r.cfg.MaxBackups] {
			errs = append(errs, os.Remove(filepath.Join(r.cfg.Dir, b.name)))
		}
	}

	return errors.Join(errs...)
}

// Close closes the current log file. Later writes reopen it.
func (r *LogRotator) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}
