package storage

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"mime"
	"path/filepath"
	"strings"
	"time"
)

// GenerateKey builds the storage path for a new upload:
// folder/<unix-nanos>_<8 hex>_<sanitized original name>. The random
// suffix keeps same-name uploads in the same instant from colliding.
func GenerateKey(folder, originalName string) string {
	var rnd [4]byte
	if _, err := rand.Read(rnd[:]); err != nil {
		binary.BigEndian.PutUint32(rnd[:], uint32(time.Now().UnixNano()))
	}
	return fmt.Sprintf("%s/%d_%s_%s",
		strings.Trim(folder, "/"),
		time.Now().UnixNano(),
		hex.EncodeToString(rnd[:]),
		sanitizeName(originalName))
}

func sanitizeName(name string) string {
	name = filepath.Base(name)
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '-' || r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	if b.Len() == 0 {
		return "file"
	}
	return b.String()
}

// DetectMimeType maps a filename to a content type, defaulting to
// application/octet-stream.
func DetectMimeType(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if t := mime.TypeByExtension(ext); t != "" {
		// Strip charset parameters some platforms append.
		if i := strings.IndexByte(t, ';'); i >= 0 {
			t = strings.TrimSpace(t[:i])
		}
		return t
	}
	switch ext {
	case ".webp":
		return "image/webp"
	case ".svg":
		return "image/svg+xml"
	default:
		return "application/octet-stream"
	}
}
