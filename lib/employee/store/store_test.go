package employeestore

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSortExpression(t *testing.T) {
	t.Run(`известная колонка`, func(t *testing.T) {
		require.Equal(t, "created_at asc", SortExpression("created_at", "asc"))
		require.Equal(t, "status desc", SortExpression("status", "desc"))
	})

	t.Run(`направление по умолчанию - desc`, func(t *testing.T) {
		require.Equal(t, "updated_at desc", SortExpression("updated_at", ""))
		require.Equal(t, "updated_at desc", SortExpression("updated_at", "sideways"))
	})

	t.Run(`путь внутри секции`, func(t *testing.T) {
		require.Equal(t, "employment ->> 'join_date' asc", SortExpression("employment.join_date", "asc"))
		require.Equal(t, "personal ->> 'last_name' desc", SortExpression("personal.last_name", ""))
	})

	t.Run(`camelCase приводится к snake_case`, func(t *testing.T) {
		require.Equal(t, "created_at asc", SortExpression("createdAt", "asc"))
		require.Equal(t, "employment ->> 'join_date' desc", SortExpression("employment.joinDate", ""))
	})

	t.Run(`неизвестное поле сводится к updated_at`, func(t *testing.T) {
		require.Equal(t, "updated_at desc", SortExpression("secrets.password", ""))
		require.Equal(t, "updated_at desc", SortExpression("", ""))
		require.Equal(t, "updated_at asc", SortExpression("whatever", "asc"))
	})

	t.Run(`инъекция в имени поля не проходит`, func(t *testing.T) {
		require.Equal(t, "updated_at desc", SortExpression("employment.join_date; drop table employees", ""))
		require.Equal(t, "updated_at desc", SortExpression("employment.'join_date'", ""))
	})
}
