package http

import (
	"time"

	"autoservice/internal/core/application/usecases/queries"
)

// Request bodies. Validation tags are enforced by the echo validator before a
// command is built, so malformed input fails with 400 and a field name.

// CreateOrderRequest is the body of POST /api/v1/orders.
type CreateOrderRequest struct {
	CarID        string  `json:"carId" validate:"required,uuid"`
	EstimateDate *string `json:"estimateDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// UpdateOrderRequest is the body of PUT /api/v1/orders/:orderID.
type UpdateOrderRequest struct {
	EstimateDate *string `json:"estimateDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// AddOrderLineRequest is the body of POST /api/v1/orders/:orderID/lines.
type AddOrderLineRequest struct {
	ServiceID string `json:"serviceId" validate:"required,uuid"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

// PostReviewRequest is the body of POST /api/v1/orders/:orderID/reviews.
type PostReviewRequest struct {
	Content string `json:"content" validate:"required"`
}

// CreateCarModelRequest is the body of POST /api/v1/car-models.
type CreateCarModelRequest struct {
	Make   string `json:"make" validate:"required"`
	Model  string `json:"model" validate:"required"`
	Engine string `json:"engine" validate:"required"`
	Year   int    `json:"year" validate:"required,min=1900"`
}

// CreateCarRequest is the body of POST /api/v1/cars.
type CreateCarRequest struct {
	CarModelID  string `json:"carModelId" validate:"required,uuid"`
	PlateNumber string `json:"plateNumber" validate:"required"`
	VIN         string `json:"vin" validate:"required,max=17"`
	OwnerName   string `json:"ownerName" validate:"required"`
	ImageURL    string `json:"imageUrl,omitempty" validate:"omitempty,url"`
	Description string `json:"description,omitempty"`
}

// CreateServiceRequest is the body of POST /api/v1/services.
type CreateServiceRequest struct {
	Name  string `json:"name" validate:"required"`
	Price string `json:"price" validate:"required"`
}

// Response bodies.

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreatedResponse reports the identifier of a newly created resource.
type CreatedResponse struct {
	ID string `json:"id"`
}

// MessageResponse carries a user-facing confirmation.
type MessageResponse struct {
	Message string `json:"message"`
}

// OrderSummaryResponse is one row of an order list.
type OrderSummaryResponse struct {
	ID           string  `json:"id"`
	Date         string  `json:"date"`
	EstimateDate *string `json:"estimateDate,omitempty"`
	Status       string  `json:"status"`
	TotalSum     string  `json:"totalSum"`
	PlateNumber  string  `json:"plateNumber"`
	OwnerName    string  `json:"ownerName"`
	CarMake      string  `json:"carMake"`
	CarModel     string  `json:"carModel"`
	IsOverdue    bool    `json:"isOverdue"`
}

// OrdersPageResponse is one page of the shop-wide order list.
type OrdersPageResponse struct {
	Items      []OrderSummaryResponse `json:"items"`
	TotalCount int64                  `json:"totalCount"`
	Page       int                    `json:"page"`
	PageSize   int                    `json:"pageSize"`
	TotalPages int                    `json:"totalPages"`
}

// OrderLineResponse is one billed line on the order detail view.
type OrderLineResponse struct {
	ID          string `json:"id"`
	ServiceName string `json:"serviceName"`
	Quantity    int    `json:"quantity"`
	Price       string `json:"price"`
	LineTotal   string `json:"lineTotal"`
}

// ReviewResponse is one review on the order detail view.
type ReviewResponse struct {
	ID        string `json:"id"`
	OwnerID   string `json:"ownerId"`
	Content   string `json:"content"`
	CreatedAt string `json:"createdAt"`
}

// OrderDetailsResponse is the full order detail view.
type OrderDetailsResponse struct {
	ID           string              `json:"id"`
	Date         string              `json:"date"`
	EstimateDate *string             `json:"estimateDate,omitempty"`
	Status       string              `json:"status"`
	TotalSum     string              `json:"totalSum"`
	IsOverdue    bool                `json:"isOverdue"`
	PlateNumber  string              `json:"plateNumber"`
	VIN          string              `json:"vin"`
	OwnerName    string              `json:"ownerName"`
	CarMake      string              `json:"carMake"`
	CarModel     string              `json:"carModel"`
	Lines        []OrderLineResponse `json:"lines"`
	Reviews      []ReviewResponse    `json:"reviews"`
}

// CarSummaryResponse is one row of the car list.
type CarSummaryResponse struct {
	ID          string `json:"id"`
	PlateNumber string `json:"plateNumber"`
	VIN         string `json:"vin"`
	OwnerName   string `json:"ownerName"`
	ImageURL    string `json:"imageUrl,omitempty"`
	CarMake     string `json:"carMake"`
	CarModel    string `json:"carModel"`
	Year        int    `json:"year"`
}

// CarsPageResponse is one page of the car list.
type CarsPageResponse struct {
	Items      []CarSummaryResponse `json:"items"`
	TotalCount int64                `json:"totalCount"`
	Page       int                  `json:"page"`
	PageSize   int                  `json:"pageSize"`
	TotalPages int                  `json:"totalPages"`
}

// DashboardResponse is the landing page payload.
type DashboardResponse struct {
	CarCount     int64 `json:"carCount"`
	OrderCount   int64 `json:"orderCount"`
	ServiceCount int64 `json:"serviceCount"`
	ReviewCount  int64 `json:"reviewCount"`
	VisitCount   int   `json:"visitCount"`
}

const dateLayout = "2006-01-02"

func orderSummaryToResponse(summary queries.OrderSummary) OrderSummaryResponse {
	response := OrderSummaryResponse{
		ID:          summary.ID.String(),
		Date:        summary.Date.Format(time.RFC3339),
		Status:      summary.Status.String(),
		TotalSum:    summary.TotalSum.String(),
		PlateNumber: summary.PlateNumber,
		OwnerName:   summary.OwnerName,
		CarMake:     summary.CarMake,
		CarModel:    summary.CarModelName,
		IsOverdue:   summary.IsOverdue,
	}

	if summary.EstimateDate != nil {
		estimate := summary.EstimateDate.Format(dateLayout)
		response.EstimateDate = &estimate
	}

	return response
}

func orderSummariesToResponse(summaries []queries.OrderSummary) []OrderSummaryResponse {
	items := make([]OrderSummaryResponse, len(summaries))
	for i, summary := range summaries {
		items[i] = orderSummaryToResponse(summary)
	}
	return items
}

func orderDetailsToResponse(details queries.GetOrderQueryResponse) OrderDetailsResponse {
	response := OrderDetailsResponse{
		ID:          details.ID.String(),
		Date:        details.Date.Format(time.RFC3339),
		Status:      details.Status.String(),
		TotalSum:    details.TotalSum.String(),
		IsOverdue:   details.IsOverdue,
		PlateNumber: details.PlateNumber,
		VIN:         details.VIN,
		OwnerName:   details.OwnerName,
		CarMake:     details.CarMake,
		CarModel:    details.CarModelName,
		Lines:       make([]OrderLineResponse, len(details.Lines)),
		Reviews:     make([]ReviewResponse, len(details.Reviews)),
	}

	if details.EstimateDate != nil {
		estimate := details.EstimateDate.Format(dateLayout)
		response.EstimateDate = &estimate
	}

	for i, line := range details.Lines {
		response.Lines[i] = OrderLineResponse{
			ID:          line.ID.String(),
			ServiceName: line.ServiceName,
			Quantity:    line.Quantity,
			Price:       line.Price.String(),
			LineTotal:   line.LineTotal.String(),
		}
	}

	for i, rev := range details.Reviews {
		response.Reviews[i] = ReviewResponse{
			ID:        rev.ID.String(),
			OwnerID:   rev.OwnerID.String(),
			Content:   rev.Content,
			CreatedAt: rev.CreatedAt.Format(time.RFC3339),
		}
	}

	return response
}

func carsPageToResponse(page queries.CarsPage) CarsPageResponse {
	items := make([]CarSummaryResponse, len(page.Items))
	for i, car := range page.Items {
		items[i] = CarSummaryResponse{
			ID:          car.ID.String(),
			PlateNumber: car.PlateNumber,
			VIN:         car.VIN,
			OwnerName:   car.OwnerName,
			ImageURL:    car.ImageURL,
			CarMake:     car.CarMake,
			CarModel:    car.CarModel,
			Year:        car.Year,
		}
	}

	return CarsPageResponse{
		Items:      items,
		TotalCount: page.TotalCount,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalPages: page.TotalPages,
	}
}
