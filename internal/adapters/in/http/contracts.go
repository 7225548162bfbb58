package http

import (
	"time"

	"pathlab/internal/core/application/usecases/queries"
	"pathlab/internal/core/domain/model/catalog"
	"pathlab/internal/core/domain/model/order"
	"pathlab/internal/core/domain/model/result"
)

// Error is the JSON shape of every error response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateTestRequest is the body of POST /api/v1/tests. Price is a decimal
// string such as "50.00".
type CreateTestRequest struct {
	Name        string `json:"name"`
	Code        string `json:"code"`
	SampleType  string `json:"sampleType"`
	NormalRange string `json:"normalRange"`
	Price       string `json:"price"`
	Active      *bool  `json:"active"`
}

// UpdateTestRequest is the body of PATCH /api/v1/tests/:testId. Absent
// fields are left unchanged.
type UpdateTestRequest struct {
	Name        *string `json:"name"`
	Price       *string `json:"price"`
	NormalRange *string `json:"normalRange"`
	Active      *bool   `json:"active"`
}

// TestView is the JSON shape of a catalog test.
type TestView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Code        string `json:"code"`
	SampleType  string `json:"sampleType"`
	NormalRange string `json:"normalRange"`
	Price       string `json:"price"`
	Active      bool   `json:"active"`
}

// CreateOrderRequest is the body of POST /api/v1/orders. OrderDate is a
// "YYYY-MM-DD" string.
type CreateOrderRequest struct {
	PatientName  string `json:"patientName"`
	PatientPhone string `json:"patientPhone"`
	TestID       string `json:"testId"`
	OrderDate    string `json:"orderDate"`
}

// TransitionOrderRequest is the body of POST /api/v1/orders/:orderId/status.
type TransitionOrderRequest struct {
	Status string `json:"status"`
}

// OrderView is the JSON shape of an order.
type OrderView struct {
	ID           string `json:"id"`
	Code         string `json:"code"`
	PatientName  string `json:"patientName"`
	PatientPhone string `json:"patientPhone"`
	TestID       string `json:"testId"`
	TestName     string `json:"testName,omitempty"`
	OrderDate    string `json:"orderDate"`
	Status       string `json:"status"`
}

// CreateResultRequest is the body of POST /api/v1/results.
type CreateResultRequest struct {
	OrderID string `json:"orderId"`
	Value   string `json:"value"`
	Notes   string `json:"notes"`
}

// UpdateResultRequest is the body of PATCH /api/v1/results/:resultId.
// Absent fields are left unchanged; an empty notes string clears the notes.
type UpdateResultRequest struct {
	Value *string `json:"value"`
	Notes *string `json:"notes"`
}

// ResultView is the JSON shape of a result.
type ResultView struct {
	ID      string `json:"id"`
	OrderID string `json:"orderId"`
	Value   string `json:"value"`
	Notes   string `json:"notes"`
	Status  string `json:"status"`
}

// DashboardView is the JSON shape of the dashboard counters.
type DashboardView struct {
	ActiveTests      int64 `json:"activeTests"`
	DraftOrders      int64 `json:"draftOrders"`
	OrderedOrders    int64 `json:"orderedOrders"`
	CompletedOrders  int64 `json:"completedOrders"`
	CancelledOrders  int64 `json:"cancelledOrders"`
	TodayOrders      int64 `json:"todayOrders"`
	PendingResults   int64 `json:"pendingResults"`
	CompletedResults int64 `json:"completedResults"`
}

func testViewFromAggregate(t *catalog.Test) TestView {
	return TestView{
		ID:          t.ID().String(),
		Name:        t.Name(),
		Code:        t.Code(),
		SampleType:  t.SampleType(),
		NormalRange: t.NormalRange(),
		Price:       t.Price().String(),
		Active:      t.IsActive(),
	}
}

func testViewFromResponse(r queries.TestResponse) TestView {
	return TestView{
		ID:          r.ID.String(),
		Name:        r.Name,
		Code:        r.Code,
		SampleType:  r.SampleType,
		NormalRange: r.NormalRange,
		Price:       r.Price.String(),
		Active:      r.IsActive,
	}
}

func orderViewFromAggregate(o *order.Order) OrderView {
	return OrderView{
		ID:           o.ID().String(),
		Code:         o.Code(),
		PatientName:  o.PatientName(),
		PatientPhone: o.PatientPhone(),
		TestID:       o.TestID().String(),
		OrderDate:    o.OrderDate().Format(time.DateOnly),
		Status:       o.Status().String(),
	}
}

func orderViewFromResponse(r queries.OrderResponse) OrderView {
	return OrderView{
		ID:           r.ID.String(),
		Code:         r.Code,
		PatientName:  r.PatientName,
		PatientPhone: r.PatientPhone,
		TestID:       r.TestID.String(),
		TestName:     r.TestName,
		OrderDate:    r.OrderDate.Format(time.DateOnly),
		Status:       r.Status,
	}
}

func resultViewFromAggregate(r *result.Result) ResultView {
	return ResultView{
		ID:      r.ID().String(),
		OrderID: r.OrderID().String(),
		Value:   r.Value(),
		Notes:   r.Notes(),
		Status:  r.Status().String(),
	}
}

func resultViewFromResponse(r queries.ResultResponse) ResultView {
	return ResultView{
		ID:      r.ID.String(),
		OrderID: r.OrderID.String(),
		Value:   r.Value,
		Notes:   r.Notes,
		Status:  r.Status,
	}
}
