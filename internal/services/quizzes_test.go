package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/journalquiz/internal/logging"
	"github.com/dmitrijs2005/journalquiz/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomQuizService_AddLoadClear(t *testing.T) {
	s := NewCustomQuizService(setupDB(t), logging.Discard())
	ctx := context.Background()

	items, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)

	a := models.QuizItem{Question: "a", Journal: "ACH"}
	b := models.QuizItem{Question: "b", Journal: "VTE"}
	c := models.QuizItem{Question: "c", Journal: "BQE"}

	require.NoError(t, s.Add(ctx, a, b))
	require.NoError(t, s.Add(ctx, c))
	require.NoError(t, s.Add(ctx))

	items, err = s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.QuizItem{a, b, c}, items)

	require.NoError(t, s.Clear(ctx))
	items, err = s.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}
