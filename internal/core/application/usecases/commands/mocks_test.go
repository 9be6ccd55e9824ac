package commands_test

import (
	"context"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/service"
	"laundry/internal/core/domain/model/user"
	"laundry/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockServiceRepository struct{ mock.Mock }

func (m *MockServiceRepository) Add(ctx context.Context, aggregate *service.Service) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockServiceRepository) Update(ctx context.Context, aggregate *service.Service) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockServiceRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockServiceRepository) Get(ctx context.Context, id kernel.UUID) (*service.Service, error) {
	args := m.Called(ctx, id)
	if svc, ok := args.Get(0).(*service.Service); ok {
		return svc, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockServiceRepository) GetByNameAndMaterial(ctx context.Context, name, materialType string) (*service.Service, error) {
	args := m.Called(ctx, name, materialType)
	if svc, ok := args.Get(0).(*service.Service); ok {
		return svc, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockServiceRepository) GetAll(ctx context.Context) ([]*service.Service, error) {
	args := m.Called(ctx)
	if services, ok := args.Get(0).([]*service.Service); ok {
		return services, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if o, ok := args.Get(0).(*order.Order); ok {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) GetForCustomer(ctx context.Context, id, customerID kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id, customerID)
	if o, ok := args.Get(0).(*order.Order); ok {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) ExistsForService(ctx context.Context, serviceID kernel.UUID) (bool, error) {
	args := m.Called(ctx, serviceID)
	return args.Bool(0), args.Error(1)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, aggregate *user.User) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, aggregate *user.User) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	if u, ok := args.Get(0).(*user.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	args := m.Called(ctx, email)
	if u, ok := args.Get(0).(*user.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

// MockUoW satisfies every unit of work interface used by the handlers.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) ServiceRepository() ports.ServiceRepository {
	args := m.Called()
	return args.Get(0).(ports.ServiceRepository)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

type MockServiceUoWFactory struct{ mock.Mock }

func (m *MockServiceUoWFactory) Create() commands.ServiceUoW {
	args := m.Called()
	return args.Get(0).(commands.ServiceUoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockUserUoWFactory struct{ mock.Mock }

func (m *MockUserUoWFactory) Create() commands.UserUoW {
	args := m.Called()
	return args.Get(0).(commands.UserUoW)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}
