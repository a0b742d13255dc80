package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vivaclinic/agenda/internal/model"
	"github.com/vivaclinic/agenda/internal/repository"
)

func TestPatientRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewPatientRepository()

	maria := &model.Patient{
		CPF:       "11144477735",
		Name:      "Maria Silva",
		BirthDate: time.Date(2000, time.January, 1, 0, 0, 0, 0, time.Local),
	}
	require.NoError(t, repo.Create(ctx, maria))

	t.Run("duplicate create", func(t *testing.T) {
		err := repo.Create(ctx, &model.Patient{CPF: maria.CPF, Name: "Someone Else"})
		assert.ErrorIs(t, err, repository.ErrDuplicate)
	})

	t.Run("get", func(t *testing.T) {
		got, err := repo.Get(ctx, maria.CPF)
		require.NoError(t, err)
		assert.Equal(t, maria.Name, got.Name)

		_, err = repo.Get(ctx, "52998224725")
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("list", func(t *testing.T) {
		require.NoError(t, repo.Create(ctx, &model.Patient{CPF: "52998224725", Name: "Pedro Souza"}))
		patients, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Len(t, patients, 2)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, maria.CPF))
		_, err := repo.Get(ctx, maria.CPF)
		assert.ErrorIs(t, err, repository.ErrNotFound)

		// deleting an absent key is a no-op
		assert.NoError(t, repo.Delete(ctx, maria.CPF))
	})
}
