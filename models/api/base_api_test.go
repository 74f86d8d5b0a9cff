package apimodels

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetPage(t *testing.T) {
	t.Run(`значения по умолчанию`, func(t *testing.T) {
		page, limit := Pagination{}.GetPage()
		require.Equal(t, 1, page)
		require.Equal(t, 20, limit)
	})

	t.Run(`отрицательные значения игнорируются`, func(t *testing.T) {
		page, limit := Pagination{Page: -3, Limit: -10}.GetPage()
		require.Equal(t, 1, page)
		require.Equal(t, 20, limit)
	})

	t.Run(`лимит ограничен сотней`, func(t *testing.T) {
		page, limit := Pagination{Page: 4, Limit: 500}.GetPage()
		require.Equal(t, 4, page)
		require.Equal(t, 100, limit)
	})
}
