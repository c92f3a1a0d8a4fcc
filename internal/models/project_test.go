package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectCoverEmpty(t *testing.T) {
	assert.Nil(t, SelectCover(nil))
	assert.Nil(t, SelectCover([]ProjectImage{}))
}

func TestSelectCoverExplicitFlagWins(t *testing.T) {
	images := []ProjectImage{
		{ID: "a", Seq: 1},
		{ID: "b", Seq: 2, IsCover: true},
		{ID: "c", Seq: 3},
	}

	cover := SelectCover(images)
	require.NotNil(t, cover)
	assert.Equal(t, "b", cover.ID)
}

func TestSelectCoverFallsBackToFirstInserted(t *testing.T) {
	images := []ProjectImage{
		{ID: "c", Seq: 3},
		{ID: "a", Seq: 1},
		{ID: "b", Seq: 2},
	}

	cover := SelectCover(images)
	require.NotNil(t, cover)
	assert.Equal(t, "a", cover.ID)
}

func TestSelectCoverFlagBeatsInsertionOrder(t *testing.T) {
	images := []ProjectImage{
		{ID: "a", Seq: 1},
		{ID: "z", Seq: 99, IsCover: true},
	}

	cover := SelectCover(images)
	require.NotNil(t, cover)
	assert.Equal(t, "z", cover.ID)
}
