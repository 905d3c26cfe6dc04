package session

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hqlam/laptopshop/internal/types"
)

func user(role string) *types.User {
	return &types.User{Username: "u", Role: role, IsActive: true}
}

func TestSessionLoginLogout(t *testing.T) {
	s := New()
	require.False(t, s.IsAuthenticated())
	require.Nil(t, s.CurrentUser())

	s.Login(user(RoleManager))
	require.True(t, s.IsAuthenticated())
	require.Equal(t, RoleManager, s.CurrentUser().Role)

	// Login replaces the held identity unconditionally.
	s.Login(user(RoleSales))
	require.Equal(t, RoleSales, s.CurrentUser().Role)

	s.Logout()
	require.False(t, s.IsAuthenticated())
	require.Nil(t, s.CurrentUser())
}

func TestSessionRoleChecks(t *testing.T) {
	s := New()

	// No identity held: every check is false, never an error.
	require.False(t, s.HasRole(RoleAdmin))
	require.False(t, s.HasAnyRole(RoleAdmin, RoleManager))
	require.False(t, s.Can(CapCatalog))
	require.False(t, s.CanMutate(CapCatalog))

	s.Login(user(RoleManager))
	require.True(t, s.HasRole(RoleManager))
	require.False(t, s.HasRole(RoleAdmin))
	require.True(t, s.HasAnyRole(RoleAdmin, RoleManager))
	require.False(t, s.HasAnyRole(RoleSales, RoleWarehouse))
	// Ordinal comparison: case matters.
	require.False(t, s.HasRole("manager"))

	s.Logout()
	require.False(t, s.HasAnyRole(RoleAdmin, RoleManager))
}

func TestSessionCapabilities(t *testing.T) {
	cases := []struct {
		role string
		can  map[Capability]bool
	}{
		{RoleAdmin, map[Capability]bool{
			CapCatalog: true, CapOrders: true, CapCustomers: true,
			CapCategories: true, CapSuppliers: true, CapUsers: true,
		}},
		{RoleManager, map[Capability]bool{
			CapCatalog: true, CapOrders: true, CapCustomers: false,
			CapCategories: true, CapSuppliers: true, CapUsers: false,
		}},
		{RoleWarehouse, map[Capability]bool{
			CapCatalog: true, CapOrders: false, CapCustomers: false,
			CapCategories: false, CapSuppliers: true, CapUsers: false,
		}},
		{RoleSales, map[Capability]bool{
			CapCatalog: true, CapOrders: true, CapCustomers: true,
			CapCategories: false, CapSuppliers: false, CapUsers: false,
		}},
	}

	for _, tc := range cases {
		t.Run(tc.role, func(t *testing.T) {
			s := New()
			s.Login(user(tc.role))
			for cap, want := range tc.can {
				require.Equalf(t, want, s.Can(cap), "capability %s", cap)
			}
		})
	}
}

func TestSessionSalesCatalogReadOnly(t *testing.T) {
	s := New()
	s.Login(user(RoleSales))

	// Sales passes the access check but must fail the mutation check.
	require.True(t, s.Can(CapCatalog))
	require.False(t, s.CanMutate(CapCatalog))

	// The narrower rule applies to the catalog only.
	require.True(t, s.CanMutate(CapOrders))
	require.True(t, s.CanMutate(CapCustomers))
}

func TestSessionMutationFollowsAccessForOtherRoles(t *testing.T) {
	s := New()
	s.Login(user(RoleWarehouse))
	require.True(t, s.CanMutate(CapCatalog))
	require.True(t, s.CanMutate(CapSuppliers))
	require.False(t, s.CanMutate(CapOrders))

	s.Login(user(RoleAdmin))
	require.True(t, s.CanMutate(CapUsers))
}
