package helpers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToSnakeCase(t *testing.T) {
	require.Equal(t, "employee_code", ToSnakeCase("EmployeeCode"))
	require.Equal(t, "work_email_username", ToSnakeCase("WorkEmailUsername"))
	require.Equal(t, "ifsc", ToSnakeCase("IFSC"))
}

func TestIsContextDone(t *testing.T) {
	require.Equal(t, true, IsContextDone(nil))

	ctx, cancel := context.WithCancel(context.Background())
	require.Equal(t, false, IsContextDone(ctx))
	cancel()
	require.Equal(t, true, IsContextDone(ctx))
}
