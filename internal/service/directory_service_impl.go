package service

import (
	"context"
	"errors"

	"github.com/chatboard/chatboard-go/internal/api"
	"github.com/chatboard/chatboard-go/internal/domain"
)

type roleService struct {
	roles api.RolesAPI
}

func NewRoleService(roles api.RolesAPI) (RoleService, error) {
	if roles == nil {
		return nil, errors.New("role service requires a roles API client")
	}
	return &roleService{roles: roles}, nil
}

func (s *roleService) GetAll(ctx context.Context) ([]*domain.Role, error) {
	return s.roles.List(ctx)
}

func (s *roleService) Get(ctx context.Context, id string) (*domain.Role, error) {
	return s.roles.Get(ctx, id)
}

func (s *roleService) Create(ctx context.Context, role *domain.Role) (*domain.Role, error) {
	return s.roles.Create(ctx, role)
}

func (s *roleService) Update(ctx context.Context, role *domain.Role) (*domain.Role, error) {
	return s.roles.Update(ctx, role)
}

func (s *roleService) Delete(ctx context.Context, id string) error {
	return s.roles.Delete(ctx, id)
}

type departmentService struct {
	departments api.DepartmentsAPI
}

func NewDepartmentService(departments api.DepartmentsAPI) (DepartmentService, error) {
	if departments == nil {
		return nil, errors.New("department service requires a departments API client")
	}
	return &departmentService{departments: departments}, nil
}

func (s *departmentService) GetAll(ctx context.Context) ([]*domain.Department, error) {
	return s.departments.List(ctx)
}

func (s *departmentService) Get(ctx context.Context, id string) (*domain.Department, error) {
	return s.departments.Get(ctx, id)
}

func (s *departmentService) Create(ctx context.Context, dep *domain.Department) (*domain.Department, error) {
	return s.departments.Create(ctx, dep)
}

func (s *departmentService) Update(ctx context.Context, dep *domain.Department) (*domain.Department, error) {
	return s.departments.Update(ctx, dep)
}

func (s *departmentService) Delete(ctx context.Context, id string) error {
	return s.departments.Delete(ctx, id)
}
