package storage

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateKeyFormat(t *testing.T) {
	before := time.Now().UnixNano()
	key := GenerateKey("projects", "kitchen photo.jpg")
	after := time.Now().UnixNano()

	parts := strings.SplitN(key, "/", 2)
	require.Len(t, parts, 2)
	assert.Equal(t, "projects", parts[0])

	segments := strings.SplitN(parts[1], "_", 3)
	require.Len(t, segments, 3)

	ts, err := strconv.ParseInt(segments[0], 10, 64)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, ts, before)
	assert.LessOrEqual(t, ts, after)
	assert.Len(t, segments[1], 8)
	assert.Equal(t, "kitchen_photo.jpg", segments[2])
}

func TestGenerateKeyUnique(t *testing.T) {
	a := GenerateKey("projects", "same.png")
	b := GenerateKey("projects", "same.png")
	assert.NotEqual(t, a, b)
}

func TestGenerateKeyTrimsFolderSlashes(t *testing.T) {
	key := GenerateKey("/skills/", "go.png")
	assert.True(t, strings.HasPrefix(key, "skills/"))
	assert.False(t, strings.Contains(key, "//"))
}

func TestSanitizeNameStripsDirectories(t *testing.T) {
	key := GenerateKey("projects", "../../etc/passwd")
	assert.True(t, strings.HasSuffix(key, "_passwd"))
}

func TestDetectMimeType(t *testing.T) {
	assert.Equal(t, "image/png", DetectMimeType("logo.png"))
	assert.Equal(t, "image/jpeg", DetectMimeType("photo.JPG"))
	assert.Equal(t, "image/webp", DetectMimeType("pic.webp"))
	assert.Equal(t, "application/pdf", DetectMimeType("cv_fr.pdf"))
	assert.Equal(t, "application/octet-stream", DetectMimeType("blob"))
}

func TestDataURI(t *testing.T) {
	assert.Equal(t, "data:image/png;base64,aGk=", DataURI("image/png", "aGk="))
}
