package organize

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"

	"github.com/jdlocklin-backyard/photo-organizing/internal/catalog"
	"github.com/jdlocklin-backyard/photo-organizing/internal/config"
	"github.com/jdlocklin-backyard/photo-organizing/internal/fileutil"
	"github.com/jdlocklin-backyard/photo-organizing/internal/logging"
	"github.com/jdlocklin-backyard/photo-organizing/internal/services"
)

// lockFileName guards a destination library against concurrent runs.
const lockFileName = ".photokit.lock"

// Options describes one organize run.
type Options struct {
	Source      string
	Destination string // empty: DefaultSubdir inside Source
	Move        bool
	DryRun      bool
}

// Stats summarizes an organize run. Errors holds per-file failure messages;
// their files are counted in Skipped.
type Stats struct {
	Destination string
	Found       int
	Organized   int
	Skipped     int
	Errors      []string
}

// Organizer walks a source tree and files photos into the dated library
// layout.
type Organizer struct {
	cfg    config.Organize
	exts   catalog.ExtensionSet
	logger *slog.Logger
}

// New constructs an Organizer. A nil logger is replaced with a no-op one.
func New(cfg config.Organize, exts catalog.ExtensionSet, logger *slog.Logger) *Organizer {
	return &Organizer{
		cfg:    cfg,
		exts:   exts,
		logger: logging.NewComponentLogger(logger, "organize"),
	}
}

// Run organizes every eligible media file under opts.Source into
// opts.Destination using the YYYY/YYYYMMDD/EXT layout. The destination
// subtree is excluded from the walk so already-organized files are not
// reprocessed.
func (o *Organizer) Run(ctx context.Context, opts Options) (*Stats, error) {
	source := filepath.Clean(opts.Source)
	info, err := os.Stat(source)
	if err != nil {
		return nil, services.Wrap(services.ErrNotFound, "organize", "open source", fmt.Sprintf("folder %q does not exist", source), err)
	}
	if !info.IsDir() {
		return nil, services.Wrap(services.ErrNotFound, "organize", "open source", fmt.Sprintf("%q is not a directory", source), nil)
	}

	dest := strings.TrimSpace(opts.Destination)
	if dest == "" {
		dest = filepath.Join(source, o.cfg.DefaultSubdir)
	}
	dest = filepath.Clean(dest)

	stats := &Stats{Destination: dest}

	if !opts.DryRun {
		if err := os.MkdirAll(dest, 0o755); err != nil {
			return nil, services.Wrap(services.ErrPermission, "organize", "create destination", dest, err)
		}
		lock := flock.New(filepath.Join(dest, lockFileName))
		locked, err := lock.TryLock()
		if err != nil {
			return nil, services.Wrap(services.ErrConflict, "organize", "lock destination", dest, err)
		}
		if !locked {
			return nil, services.Wrap(services.ErrConflict, "organize", "lock destination", fmt.Sprintf("another organize run is writing to %q", dest), nil)
		}
		defer func() {
			_ = lock.Unlock()
		}()
	}

	action := "copy"
	if opts.Move {
		action = "move"
	}
	o.logger.Info("starting organize run",
		logging.String("source", source),
		logging.String("destination", dest),
		logging.String("action", action),
		logging.Bool("dry_run", opts.DryRun),
	)

	walkErr := filepath.WalkDir(source, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			stats.Skipped++
			stats.Errors = append(stats.Errors, fmt.Sprintf("%s: %v", path, err))
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if isUnder(path, dest) {
				return filepath.SkipDir
			}
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		_, ext := catalog.SplitName(d.Name())
		if !o.exts.Contains(ext) || ext == "" {
			return nil
		}

		stats.Found++
		if err := o.place(path, dest, ext, opts); err != nil {
			stats.Skipped++
			stats.Errors = append(stats.Errors, fmt.Sprintf("%s: %v", path, err))
			o.logger.Warn("file not organized", logging.String("path", path), logging.Error(err))
			return nil
		}
		stats.Organized++
		return nil
	})
	if walkErr != nil {
		return stats, walkErr
	}

	o.logger.Info("organize run complete",
		logging.Int("found", stats.Found),
		logging.Int("organized", stats.Organized),
		logging.Int("skipped", stats.Skipped),
	)
	return stats, nil
}

func (o *Organizer) place(path, dest, ext string, opts Options) error {
	when := o.photoDate(path, ext)
	target := filepath.Join(dest, when.Format("2006"), when.Format("20060102"), strings.ToUpper(ext))

	if opts.DryRun {
		o.logger.Info("would organize", logging.String("path", path), logging.String("target", target))
		return nil
	}

	if err := os.MkdirAll(target, 0o755); err != nil {
		return err
	}
	final := fileutil.UniquePath(filepath.Join(target, filepath.Base(path)))

	if opts.Move {
		if err := fileutil.MoveFile(path, final); err != nil {
			return err
		}
	} else if err := fileutil.CopyFile(path, final); err != nil {
		return err
	}

	o.logger.Debug("organized file", logging.String("path", path), logging.String("target", final))
	return nil
}

// photoDate resolves the date used to file a photo. Companion formats borrow
// the date of a RAW file with the same stem when one exists; RAW and other
// formats use their own EXIF date. Modification time is the last resort.
func (o *Organizer) photoDate(path, ext string) time.Time {
	if contains(o.cfg.CompanionExtensions, ext) {
		if raw := rawCompanion(path, o.cfg.RawExtensions); raw != "" {
			if when := exifDate(raw); !when.IsZero() {
				return when
			}
			if when, err := fileDate(raw); err == nil {
				return when
			}
		}
		if when, err := fileDate(path); err == nil {
			return when
		}
		return time.Now()
	}

	if when := exifDate(path); !when.IsZero() {
		return when
	}
	if when, err := fileDate(path); err == nil {
		return when
	}
	return time.Now()
}

func contains(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}

func isUnder(path, base string) bool {
	if path == base {
		return true
	}
	return strings.HasPrefix(path, base+string(filepath.Separator))
}
