// Package organize sorts photos into a YYYY/YYYYMMDD/EXT library layout
// based on when they were taken.
//
// Dates come from EXIF metadata (DateTimeOriginal, then DateTimeDigitized)
// with the file modification time as the fallback. Formats that usually ride
// alongside a RAW frame (JPEG exports, CR2 previews, XMP sidecars) borrow the
// date of a RAW file with the same stem so a burst stays together in one day
// folder. Files are copied with integrity verification by default; moves are
// opt-in. A lock file in the destination keeps two runs from organizing into
// the same library at once.
package organize
