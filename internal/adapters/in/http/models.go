package http

import (
	"time"

	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/service"
	"laundry/internal/core/domain/model/user"

	"github.com/shopspring/decimal"
)

// Error is the error response body. Message is a human-readable string,
// not a machine-parsable code.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Message is the body for operations that acknowledge with a phrase
// instead of a resource.
type Message struct {
	Message string `json:"message"`
}

// ServiceRequest is the body for adding or updating a catalog service.
type ServiceRequest struct {
	Name         string          `json:"name"`
	MaterialType string          `json:"materialType"`
	Price        decimal.Decimal `json:"price"`
}

// ServiceResponse is the catalog service representation.
type ServiceResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	MaterialType string          `json:"materialType"`
	Price        decimal.Decimal `json:"price"`
}

// PlaceOrderRequest is the body for placing an order.
type PlaceOrderRequest struct {
	ServiceID            string    `json:"serviceId"`
	Quantity             int       `json:"quantity"`
	ExpectedDeliveryDate time.Time `json:"expectedDeliveryDate"`
	Description          string    `json:"description"`
}

// OrderResponse is the order representation, denormalized with the
// referenced service's name, material type and price.
type OrderResponse struct {
	ID                   string          `json:"id"`
	CustomerID           string          `json:"customerId"`
	ServiceID            string          `json:"serviceId"`
	ServiceName          string          `json:"serviceName"`
	MaterialType         string          `json:"materialType"`
	Price                decimal.Decimal `json:"price"`
	Quantity             int             `json:"quantity"`
	ExpectedDeliveryDate time.Time       `json:"expectedDeliveryDate"`
	Description          string          `json:"description"`
	Status               string          `json:"status"`
	CreatedAt            time.Time       `json:"createdAt"`
}

// OrderStatusResponse carries just the order id and its current status.
type OrderStatusResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// UpdateOrderStatusRequest is the body for administrative status updates.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// SignupRequest is the body for account creation.
type SignupRequest struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
	Password    string `json:"password"`
}

// LoginRequest is the body for credential checks.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateAddressRequest is the body for address changes.
type UpdateAddressRequest struct {
	NewAddress string `json:"newAddress"`
}

// UserResponse is the account representation. Verifier material never
// appears here.
type UserResponse struct {
	ID          string    `json:"id"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phoneNumber"`
	Address     string    `json:"address"`
	IsAdmin     bool      `json:"isAdmin"`
	CreatedAt   time.Time `json:"createdAt"`
}

func serviceResponseFromDomain(svc *service.Service) ServiceResponse {
	return ServiceResponse{
		ID:           svc.ID().String(),
		Name:         svc.Name(),
		MaterialType: svc.MaterialType(),
		Price:        svc.Price(),
	}
}

func serviceResponseFromReadModel(svc queries.ServiceResponse) ServiceResponse {
	return ServiceResponse{
		ID:           svc.ID.String(),
		Name:         svc.Name,
		MaterialType: svc.MaterialType,
		Price:        svc.Price,
	}
}

func orderResponseFromReadModel(o queries.OrderResponse) OrderResponse {
	return OrderResponse{
		ID:                   o.ID.String(),
		CustomerID:           o.CustomerID.String(),
		ServiceID:            o.ServiceID.String(),
		ServiceName:          o.ServiceName,
		MaterialType:         o.MaterialType,
		Price:                o.Price,
		Quantity:             o.Quantity,
		ExpectedDeliveryDate: o.ExpectedDeliveryDate,
		Description:          o.Description,
		Status:               o.Status.String(),
		CreatedAt:            o.CreatedAt,
	}
}

func userResponseFromDomain(u *user.User) UserResponse {
	return UserResponse{
		ID:          u.ID().String(),
		FirstName:   u.FirstName(),
		LastName:    u.LastName(),
		Email:       u.Email(),
		PhoneNumber: u.PhoneNumber(),
		Address:     u.Address(),
		IsAdmin:     u.IsAdmin(),
		CreatedAt:   u.CreatedAt(),
	}
}

func userResponseFromReadModel(u queries.LoginQueryResponse) UserResponse {
	return UserResponse{
		ID:          u.ID.String(),
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
		Address:     u.Address,
		IsAdmin:     u.IsAdmin,
		CreatedAt:   u.CreatedAt,
	}
}
