package http

import (
	"errors"
	"math"
	"net/http"
	"time"

	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/application/usecases/queries"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/domain/model/refund"
	"orderflow/internal/generated/servers"
	"orderflow/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	updateOrderStatusHandler   commands.UpdateOrderStatusCommandHandler
	bulkUpdateOrdersHandler    commands.BulkUpdateOrdersCommandHandler
	processRefundHandler       commands.ProcessRefundCommandHandler
	confirmReceiptHandler      commands.ConfirmReceiptCommandHandler
	cancelCustomerOrderHandler commands.CancelCustomerOrderCommandHandler

	// Query handlers
	getOrderHandler       queries.GetOrderQueryHandler
	generateReportHandler queries.GenerateReportQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	bulkUpdateOrdersHandler commands.BulkUpdateOrdersCommandHandler,
	processRefundHandler commands.ProcessRefundCommandHandler,
	confirmReceiptHandler commands.ConfirmReceiptCommandHandler,
	cancelCustomerOrderHandler commands.CancelCustomerOrderCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	generateReportHandler queries.GenerateReportQueryHandler,
) *Server {
	return &Server{
		updateOrderStatusHandler:   updateOrderStatusHandler,
		bulkUpdateOrdersHandler:    bulkUpdateOrdersHandler,
		processRefundHandler:       processRefundHandler,
		confirmReceiptHandler:      confirmReceiptHandler,
		cancelCustomerOrderHandler: cancelCustomerOrderHandler,
		getOrderHandler:            getOrderHandler,
		generateReportHandler:      generateReportHandler,
	}
}

// GetHealth handles GET /health - liveness probe.
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// GetOrder handles GET /api/v1/orders/{orderId} - retrieves the full order view.
func (s *Server) GetOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromString(orderId.String())
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	view, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderViewResponse(view))
}

// UpdateOrderStatus handles POST /api/v1/orders/{orderId}/status - applies one
// staff transition (approve, ship, complete or cancel) to an order.
func (s *Server) UpdateOrderStatus(ctx echo.Context, orderId openapi_types.UUID) error {
	var body servers.UpdateOrderStatusJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	orderID, err := kernel.UUIDFromString(orderId.String())
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	change, err := commands.StatusChangeFromAction(
		string(body.Action),
		stringValue(body.TrackingNumber),
		dateValue(body.EstimatedDelivery),
		stringValue(body.Reason),
	)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, body.ActorId, change)
	if err != nil {
		return errorResponse(ctx, err)
	}

	updated, err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponse(updated))
}

// BulkUpdateOrderStatus handles POST /api/v1/orders/bulk-status - applies one
// transition to every order in the batch and reports per-order outcomes.
func (s *Server) BulkUpdateOrderStatus(ctx echo.Context) error {
	var body servers.BulkUpdateOrderStatusJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	orderIDs := make([]kernel.UUID, 0, len(body.OrderIds))
	for _, id := range body.OrderIds {
		orderID, err := kernel.UUIDFromString(id.String())
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, servers.Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid order id: " + id.String(),
			})
		}
		orderIDs = append(orderIDs, orderID)
	}

	change, err := commands.StatusChangeFromAction(
		string(body.Action),
		stringValue(body.TrackingNumber),
		dateValue(body.EstimatedDelivery),
		stringValue(body.Reason),
	)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewBulkUpdateOrdersCommand(orderIDs, body.ActorId, change)
	if err != nil {
		return errorResponse(ctx, err)
	}

	result, err := s.bulkUpdateOrdersHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.BulkUpdateResult{
		Successful: result.Successful,
		Failed:     result.Failed,
		Errors:     result.Errors,
	})
}

// ProcessRefund handles POST /api/v1/orders/{orderId}/refund - refunds a
// completed order and creates the refund record.
func (s *Server) ProcessRefund(ctx echo.Context, orderId openapi_types.UUID) error {
	var body servers.ProcessRefundJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	orderID, err := kernel.UUIDFromString(orderId.String())
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	amount, err := kernel.NewMoney(int64(math.Round(body.Amount * 100)))
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewProcessRefundCommand(
		orderID, body.ActorId, amount, body.Reason, body.Method)
	if err != nil {
		return errorResponse(ctx, err)
	}

	record, err := s.processRefundHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, refundResponse(record))
}

// ConfirmReceipt handles POST /api/v1/orders/{orderId}/confirm-receipt -
// completes a shipping order on the customer's confirmation.
func (s *Server) ConfirmReceipt(ctx echo.Context, orderId openapi_types.UUID) error {
	var body servers.ConfirmReceiptJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	orderID, err := kernel.UUIDFromString(orderId.String())
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	cmd, err := commands.NewConfirmReceiptCommand(
		orderID, body.CustomerId, body.Rating, stringValue(body.Review))
	if err != nil {
		return errorResponse(ctx, err)
	}

	updated, err := s.confirmReceiptHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponse(updated))
}

// CancelOrder handles POST /api/v1/orders/{orderId}/cancel - cancels a pending
// order on behalf of its customer.
func (s *Server) CancelOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	var body servers.CancelOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	orderID, err := kernel.UUIDFromString(orderId.String())
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	cmd, err := commands.NewCancelCustomerOrderCommand(orderID, body.CustomerId, body.Reason)
	if err != nil {
		return errorResponse(ctx, err)
	}

	updated, err := s.cancelCustomerOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponse(updated))
}

// GetOrdersReport handles GET /api/v1/orders/report - computes the aggregated
// report over a filtered order set.
func (s *Server) GetOrdersReport(ctx echo.Context, params servers.GetOrdersReportParams) error {
	status := order.Unknown
	if params.Status != nil {
		parsed, err := order.StatusFromString(*params.Status)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, servers.Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid status filter: " + *params.Status,
			})
		}
		status = parsed
	}

	query, err := queries.NewGenerateReportQuery(
		dateValue(params.From),
		dateValue(params.To),
		status,
		stringValue(params.PaymentMethod),
		stringValue(params.CustomerId),
	)
	if err != nil {
		return errorResponse(ctx, err)
	}

	report, err := s.generateReportHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	dailyStats := make([]servers.DailyStat, len(report.DailyStats))
	for i, stat := range report.DailyStats {
		dailyStats[i] = servers.DailyStat{
			Date:       stat.Date,
			OrderCount: stat.OrderCount,
			Revenue:    stat.Revenue,
		}
	}

	return ctx.JSON(http.StatusOK, servers.Report{
		TotalOrders:            report.TotalOrders,
		TotalRevenue:           report.TotalRevenue,
		AverageOrderValue:      report.AverageOrderValue,
		StatusBreakdown:        report.StatusBreakdown,
		PaymentMethodBreakdown: report.PaymentMethodBreakdown,
		DailyStats:             dailyStats,
	})
}

// errorResponse maps domain and validation errors to HTTP status codes.
func errorResponse(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError
	message := "Internal server error"

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrVersionIsInvalid):
		code = http.StatusConflict
		message = err.Error()
	case errors.Is(err, errs.ErrRefundAmountExceeded):
		code = http.StatusUnprocessableEntity
		message = err.Error()
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
		message = err.Error()
	}

	return ctx.JSON(code, servers.Error{
		Code:    int32(code),
		Message: message,
	})
}

// orderResponse renders the write-side aggregate after a successful command.
func orderResponse(aggregate *order.Order) servers.Order {
	items := make([]servers.OrderItem, len(aggregate.Items()))
	for i, item := range aggregate.Items() {
		items[i] = servers.OrderItem{
			ProductId: item.ProductID(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice().Float64(),
			Subtotal:  item.Subtotal().Float64(),
		}
	}

	return servers.Order{
		Id:                aggregate.ID().Bytes(),
		CustomerId:        aggregate.CustomerID(),
		Status:            aggregate.Status().String(),
		Total:             aggregate.Total().Float64(),
		PaymentMethod:     aggregate.PaymentMethod(),
		ShippingAddress:   aggregate.ShippingAddress(),
		CreatedAt:         aggregate.CreatedAt(),
		ApprovedAt:        aggregate.ApprovedAt(),
		ApprovedBy:        optionalString(aggregate.ApprovedBy()),
		ShippedAt:         aggregate.ShippedAt(),
		TrackingNumber:    aggregate.TrackingNumber(),
		EstimatedDelivery: aggregate.EstimatedDelivery(),
		DeliveredAt:       aggregate.DeliveredAt(),
		Rating:            aggregate.Rating(),
		Review:            optionalString(aggregate.Review()),
		CancelReason:      optionalString(aggregate.CancelReason()),
		RefundReason:      optionalString(aggregate.RefundReason()),
		Items:             items,
	}
}

// orderViewResponse renders the read-side order view.
func orderViewResponse(view queries.GetOrderQueryResponse) servers.Order {
	items := make([]servers.OrderItem, len(view.Items))
	for i, item := range view.Items {
		items[i] = servers.OrderItem{
			ProductId: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Subtotal:  item.Subtotal,
		}
	}

	return servers.Order{
		Id:                view.ID.Bytes(),
		CustomerId:        view.CustomerID,
		Status:            view.Status,
		Total:             view.Total,
		PaymentMethod:     view.PaymentMethod,
		ShippingAddress:   view.ShippingAddress,
		CreatedAt:         view.CreatedAt,
		ApprovedAt:        view.ApprovedAt,
		ApprovedBy:        optionalString(view.ApprovedBy),
		ShippedAt:         view.ShippedAt,
		TrackingNumber:    view.TrackingNumber,
		EstimatedDelivery: view.EstimatedDelivery,
		DeliveredAt:       view.DeliveredAt,
		Rating:            view.Rating,
		Review:            optionalString(view.Review),
		CancelReason:      optionalString(view.CancelReason),
		RefundReason:      optionalString(view.RefundReason),
		Items:             items,
	}
}

func refundResponse(record *refund.Refund) servers.Refund {
	return servers.Refund{
		Id:                 record.ID().Bytes(),
		OrderId:            record.OrderID().Bytes(),
		Amount:             record.Amount().Float64(),
		Reason:             record.Reason(),
		Method:             record.Method(),
		Status:             record.Status().String(),
		ProcessingEstimate: record.ProcessingEstimate(),
		CreatedAt:          record.CreatedAt(),
	}
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func dateValue(d *openapi_types.Date) time.Time {
	if d == nil {
		return time.Time{}
	}
	return d.Time
}
