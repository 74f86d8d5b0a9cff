package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMapEmployeeStatus(t *testing.T) {
	require.Equal(t, EmployeeStatusActive, MapEmployeeStatus(EmploymentStatusActive))
	require.Equal(t, EmployeeStatusInactive, MapEmployeeStatus(EmploymentStatusInactive))
	require.Equal(t, EmployeeStatusInactive, MapEmployeeStatus(EmploymentStatusSuspended))
	require.Equal(t, EmployeeStatusInactive, MapEmployeeStatus(EmploymentStatusTerminated))
}

func TestIsKnownEmploymentStatus(t *testing.T) {
	require.Equal(t, true, IsKnownEmploymentStatus(EmploymentStatusActive))
	require.Equal(t, true, IsKnownEmploymentStatus(EmploymentStatusTerminated))
	require.Equal(t, false, IsKnownEmploymentStatus(EmploymentStatus("fired")))
	require.Equal(t, false, IsKnownEmploymentStatus(EmploymentStatus("")))
}
