package session

import (
	"sync"

	"github.com/hqlam/laptopshop/internal/types"
)

// Role values are compared ordinally against User.Role.
const (
	RoleAdmin     = "Admin"
	RoleManager   = "Manager"
	RoleWarehouse = "Warehouse"
	RoleSales     = "Sales"
)

// Capability names a gated functional area.
type Capability string

const (
	CapCatalog    Capability = "catalog"
	CapOrders     Capability = "orders"
	CapCustomers  Capability = "customers"
	CapCategories Capability = "categories"
	CapSuppliers  Capability = "suppliers"
	CapUsers      Capability = "users"
)

// The role→capability mapping is fixed, not data-driven.
var capabilityRoles = map[Capability][]string{
	CapCatalog:    {RoleAdmin, RoleManager, RoleWarehouse, RoleSales},
	CapOrders:     {RoleAdmin, RoleManager, RoleSales},
	CapCustomers:  {RoleAdmin, RoleSales},
	CapCategories: {RoleAdmin, RoleManager},
	CapSuppliers:  {RoleAdmin, RoleManager, RoleWarehouse},
	CapUsers:      {RoleAdmin},
}

// Session holds at most one authenticated identity for a logical session.
// It replaces the ambient global of the classic desktop design: callers pass
// it explicitly to whatever needs identity or role information. Accessors are
// guarded because initialization and UI paths may race in the host process.
type Session struct {
	mu   sync.RWMutex
	user *types.User
}

func New() *Session {
	return &Session{}
}

// Login replaces the held identity unconditionally.
func (s *Session) Login(user *types.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = user
}

// Logout clears the held identity.
func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
}

func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil
}

// CurrentUser returns the held identity, or nil.
func (s *Session) CurrentUser() *types.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// HasRole reports whether an identity is held and its role equals role. With
// no identity every check is false; it is never an error to ask.
func (s *Session) HasRole(role string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil && s.user.Role == role
}

// HasAnyRole reports whether the held identity's role equals any argument.
func (s *Session) HasAnyRole(roles ...string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return false
	}
	for _, role := range roles {
		if s.user.Role == role {
			return true
		}
	}
	return false
}

// Can reports whether the held identity may access the capability's area.
func (s *Session) Can(cap Capability) bool {
	return s.HasAnyRole(capabilityRoles[cap]...)
}

// CanMutate reports whether the held identity may invoke mutating operations
// in the capability's area. Sales has catalog read access but not write
// access, a narrower rule than plain membership.
func (s *Session) CanMutate(cap Capability) bool {
	if !s.Can(cap) {
		return false
	}
	if cap == CapCatalog && s.HasRole(RoleSales) {
		return false
	}
	return true
}
