package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCard_DescriptionText(t *testing.T) {
	t.Parallel()

	desc := "steps"
	assert.Equal(t, "steps", (&Card{Description: &desc}).DescriptionText())
	assert.Equal(t, "", (&Card{}).DescriptionText())
}

func TestDefaultColumnNames(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"Parking Lot", "Defined", "In Progress", "Blocked", "Done"}, DefaultColumnNames)
	assert.Equal(t, 4, (&Card{ID: 4}).GetID())
}

func TestGetID(t *testing.T) {
	t.Parallel()

	for _, v := range []interface{ GetID() int }{&Board{ID: 3}, &Card{ID: 3}} {
		assert.Equal(t, 3, v.GetID())
	}
}
