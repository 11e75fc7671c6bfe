package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/chatboard/chatboard-go/internal/domain"
)

type rolesClient struct {
	client *Client
}

func NewRolesClient(client *Client) *rolesClient {
	return &rolesClient{client: client}
}

func (r *rolesClient) List(ctx context.Context) ([]*domain.Role, error) {
	var roles []*domain.Role
	if err := r.client.do(ctx, http.MethodGet, "/roles", nil, &roles); err != nil {
		return nil, err
	}
	return roles, nil
}

func (r *rolesClient) Get(ctx context.Context, id string) (*domain.Role, error) {
	role := &domain.Role{}
	if err := r.client.do(ctx, http.MethodGet, fmt.Sprintf("/roles/%s", id), nil, role); err != nil {
		return nil, err
	}
	return role, nil
}

func (r *rolesClient) Create(ctx context.Context, role *domain.Role) (*domain.Role, error) {
	created := &domain.Role{}
	if err := r.client.do(ctx, http.MethodPost, "/roles", role, created); err != nil {
		return nil, err
	}
	return created, nil
}

func (r *rolesClient) Update(ctx context.Context, role *domain.Role) (*domain.Role, error) {
	updated := &domain.Role{}
	if err := r.client.do(ctx, http.MethodPut, fmt.Sprintf("/roles/%s", role.ID), role, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *rolesClient) Delete(ctx context.Context, id string) error {
	return r.client.do(ctx, http.MethodDelete, fmt.Sprintf("/roles/%s", id), nil, nil)
}

type departmentsClient struct {
	client *Client
}

func NewDepartmentsClient(client *Client) *departmentsClient {
	return &departmentsClient{client: client}
}

func (d *departmentsClient) List(ctx context.Context) ([]*domain.Department, error) {
	var deps []*domain.Department
	if err := d.client.do(ctx, http.MethodGet, "/departments", nil, &deps); err != nil {
		return nil, err
	}
	return deps, nil
}

func (d *departmentsClient) Get(ctx context.Context, id string) (*domain.Department, error) {
	dep := &domain.Department{}
	if err := d.client.do(ctx, http.MethodGet, fmt.Sprintf("/departments/%s", id), nil, dep); err != nil {
		return nil, err
	}
	return dep, nil
}

func (d *departmentsClient) Create(ctx context.Context, dep *domain.Department) (*domain.Department, error) {
	created := &domain.Department{}
	if err := d.client.do(ctx, http.MethodPost, "/departments", dep, created); err != nil {
		return nil, err
	}
	return created, nil
}

func (d *departmentsClient) Update(ctx context.Context, dep *domain.Department) (*domain.Department, error) {
	updated := &domain.Department{}
	if err := d.client.do(ctx, http.MethodPut, fmt.Sprintf("/departments/%s", dep.ID), dep, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (d *departmentsClient) Delete(ctx context.Context, id string) error {
	return d.client.do(ctx, http.MethodDelete, fmt.Sprintf("/departments/%s", id), nil, nil)
}
