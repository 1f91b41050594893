package organize

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rwcarlsen/goexif/exif"
)

const exifTimeLayout = "2006:01:02 15:04:05"

// exifDate extracts the capture time from a file's EXIF block, preferring
// DateTimeOriginal over DateTimeDigitized. Returns the zero time when no
// usable date exists.
func exifDate(path string) time.Time {
	f, err := os.Open(path)
	if err != nil {
		return time.Time{}
	}
	defer f.Close()

	meta, err := exif.Decode(f)
	if err != nil {
		return time.Time{}
	}

	for _, field := range []exif.FieldName{exif.DateTimeOriginal, exif.DateTimeDigitized} {
		tag, err := meta.Get(field)
		if err != nil {
			continue
		}
		value, err := tag.StringVal()
		if err != nil {
			continue
		}
		when, err := time.ParseInLocation(exifTimeLayout, strings.TrimSpace(value), time.Local)
		if err != nil {
			continue
		}
		return when
	}
	return time.Time{}
}

// fileDate returns the file's modification time, the portable stand-in for a
// creation date.
func fileDate(path string) (time.Time, error) {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, err
	}
	return info.ModTime(), nil
}

// rawCompanion looks for a RAW file with the same stem next to path, checking
// each configured RAW extension in lower and upper case. Returns "" when none
// exists.
func rawCompanion(path string, rawExts []string) string {
	dir := filepath.Dir(path)
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))

	for _, ext := range rawExts {
		for _, variant := range []string{strings.ToLower(ext), strings.ToUpper(ext)} {
			candidate := filepath.Join(dir, stem+"."+variant)
			if _, err := os.Stat(candidate); err == nil {
				return candidate
			}
		}
	}
	return ""
}
