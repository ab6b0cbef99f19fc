package queries_test

import (
	"testing"

	"autoservice/internal/core/application/usecases/queries"
	"autoservice/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewListUserOrdersQuery_ValidInput(t *testing.T) {
	readerID := kernel.NewUUID()
	query, err := queries.NewListUserOrdersQuery(readerID)
	require.NoError(t, err)
	assert.Equal(t, readerID, query.ReaderID())
}

func TestNewListUserOrdersQuery_InvalidReaderID(t *testing.T) {
	_, err := queries.NewListUserOrdersQuery(kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestListUserOrdersQuery_Validate_NotConstructed(t *testing.T) {
	var query queries.ListUserOrdersQuery
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrListUserOrdersQueryIsNotConstructed)
}
