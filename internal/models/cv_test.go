package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCvSlot(t *testing.T) {
	cv := Cv{
		FrData:     "ZnI=",
		FrFilename: "cv_fr.pdf",
		FrMimeType: "application/pdf",
		FrSize:     2,
	}

	data, filename, mime, size, ok := cv.Slot("fr")
	assert.True(t, ok)
	assert.Equal(t, "ZnI=", data)
	assert.Equal(t, "cv_fr.pdf", filename)
	assert.Equal(t, "application/pdf", mime)
	assert.Equal(t, int64(2), size)

	_, _, _, _, ok = cv.Slot("en")
	assert.False(t, ok, "empty slot")

	_, _, _, _, ok = cv.Slot("de")
	assert.False(t, ok, "unknown language")
}
