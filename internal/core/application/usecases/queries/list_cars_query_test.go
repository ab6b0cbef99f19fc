package queries_test

import (
	"testing"

	"autoservice/internal/core/application/usecases/queries"
	"autoservice/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewListCarsQuery_ValidInput(t *testing.T) {
	query, err := queries.NewListCarsQuery(3)
	require.NoError(t, err)
	assert.Equal(t, 3, query.Page())
}

func TestNewListCarsQuery_NegativePage(t *testing.T) {
	_, err := queries.NewListCarsQuery(-1)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestListCarsQuery_Validate_NotConstructed(t *testing.T) {
	var query queries.ListCarsQuery
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrListCarsQueryIsNotConstructed)
}
