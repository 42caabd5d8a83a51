package http

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"

	"warehouse/internal/adapters/out/xlsx"
	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/domain/services"
	"warehouse/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

var _ servers.ServerInterface = (*Server)(nil)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	h      Handlers
	logger *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{h: handlers, logger: logger.With("component", "http_server")}
}

// CreateItem handles POST /api/v1/items - registers an item with its initial stock.
func (s *Server) CreateItem(ctx echo.Context) error {
	var body servers.NewItem
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	dims, err := kernel.NewDimensions(body.Length, body.Width, body.Height)
	if err != nil {
		return s.fail(ctx, err)
	}

	itemID := kernel.NewUUID()
	cmd, err := commands.NewCreateItemCommand(
		itemID, body.Name, dims, float64(body.Weight), body.Quantity, toCargoTypes(body.CargoTypes),
	)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.h.CreateItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.Created{Id: toAPIUUID(itemID)})
}

// RestockItem handles POST /api/v1/items/{itemId}/restock - adds units to the stock.
func (s *Server) RestockItem(ctx echo.Context, itemId servers.ItemId) error {
	var body servers.Restock
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := toKernelUUID(itemId)
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewRestockItemCommand(id, body.Quantity)
	if err != nil {
		return s.fail(ctx, err)
	}

	available, err := s.h.RestockItem.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.Stock{Id: itemId, Available: available})
}

// GetStockReport handles GET /api/v1/items/report.xlsx - downloads the stock workbook.
func (s *Server) GetStockReport(ctx echo.Context) error {
	report, err := s.h.GetStockReport.Handle(ctx.Request().Context(), queries.NewGetStockReportQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	var buf bytes.Buffer
	if err = xlsx.WriteStockReport(&buf, report); err != nil {
		return s.fail(ctx, err)
	}

	ctx.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="stock.xlsx"`)
	return ctx.Blob(http.StatusOK, xlsx.ContentType, buf.Bytes())
}

// CreateOrder handles POST /api/v1/orders - reserves stock and creates the order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body servers.NewOrder
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	lines := make([]services.LineRequest, 0, len(body.Lines))
	for _, l := range body.Lines {
		itemID, err := toKernelUUID(l.ItemId)
		if err != nil {
			return s.fail(ctx, err)
		}
		lines = append(lines, services.LineRequest{ItemID: itemID, Quantity: l.Quantity})
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, lines)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.h.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.Created{Id: toAPIUUID(orderID)})
}

// ClaimNextOrder handles POST /api/v1/orders/claim - gives the worker the oldest order
// waiting at the table.
func (s *Server) ClaimNextOrder(ctx echo.Context, params servers.ClaimNextOrderParams) error {
	var body servers.ClaimRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	worker := params.XWorkerID
	if worker == nil {
		worker = params.WorkerId
	}
	if worker == nil {
		return s.fail(ctx, errWorkerIDRequired)
	}

	workerID, err := toKernelUUID(*worker)
	if err != nil {
		return s.fail(ctx, err)
	}
	tableID, err := toKernelUUID(body.TableId)
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewClaimNextOrderCommand(tableID, workerID)
	if err != nil {
		return s.fail(ctx, err)
	}

	res, err := s.h.ClaimNextOrder.Handle(ctx.Request().Context(), cmd)
	if errors.Is(err, commands.ErrNoOrdersAvailable) {
		return ctx.JSON(http.StatusNotFound, servers.Error{
			Code:    http.StatusNotFound,
			Message: "No orders found for the table",
		})
	}
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.ClaimedOrder{
		OrderId: toAPIUUID(res.Order.ID()),
		Cells:   toAPICells(res.Cells),
	})
}

// GetOrder handles GET /api/v1/orders/{orderId} - order with lines, placements and cells.
func (s *Server) GetOrder(ctx echo.Context, orderId servers.OrderId) error {
	id, err := toKernelUUID(orderId)
	if err != nil {
		return s.fail(ctx, err)
	}
	query, err := queries.NewGetOrderDetailsQuery(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	details, err := s.h.GetOrderDetails.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toAPIOrderDetails(details))
}

// MarkOrderCollected handles POST /api/v1/orders/{orderId}/collected.
func (s *Server) MarkOrderCollected(ctx echo.Context, orderId servers.OrderId) error {
	id, err := toKernelUUID(orderId)
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewMarkCollectedCommand(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.h.MarkCollected.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RecordPackaging handles POST /api/v1/orders/{orderId}/packaging - what the picker
// actually packed the order into.
func (s *Server) RecordPackaging(ctx echo.Context, orderId servers.OrderId) error {
	var body servers.Packaging
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := toKernelUUID(orderId)
	if err != nil {
		return s.fail(ctx, err)
	}

	packageByItem := make(map[kernel.UUID]int)
	if body.Lines != nil {
		for _, l := range *body.Lines {
			itemID, idErr := toKernelUUID(l.ItemId)
			if idErr != nil {
				return s.fail(ctx, idErr)
			}
			packageByItem[itemID] = l.PackageNumber
		}
	}

	cmd, err := commands.NewRecordPackagingCommand(id, body.Packaging, body.TotalPackages, packageByItem)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.h.RecordPackaging.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// PlaceItems handles POST /api/v1/cells/{cellId}/placements - puts order items into a
// cell standing at a table.
func (s *Server) PlaceItems(ctx echo.Context, cellId openapi_types.UUID) error {
	var body servers.Placement
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	ids := make([]kernel.UUID, 3)
	for i, raw := range []openapi_types.UUID{cellId, body.TableId, body.OrderId} {
		id, err := toKernelUUID(raw)
		if err != nil {
			return s.fail(ctx, err)
		}
		ids[i] = id
	}

	items := make([]order.PlacementRequest, 0, len(body.Items))
	for _, it := range body.Items {
		itemID, err := toKernelUUID(it.ItemId)
		if err != nil {
			return s.fail(ctx, err)
		}
		items = append(items, order.PlacementRequest{ItemID: itemID, Quantity: it.Quantity})
	}

	cmd, err := commands.NewPlaceItemsCommand(ids[0], ids[1], ids[2], items)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.h.PlaceItems.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetTables handles GET /api/v1/tables.
func (s *Server) GetTables(ctx echo.Context) error {
	resp, err := s.h.GetTables.Handle(ctx.Request().Context(), queries.NewGetTablesQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	tables := make([]servers.Table, 0, len(resp.Tables))
	for _, t := range resp.Tables {
		tables = append(tables, servers.Table{
			Id:          toAPIUUID(t.ID),
			Name:        t.Name,
			Description: t.Description,
			Available:   t.Available,
			Cells:       t.Cells,
		})
	}

	return ctx.JSON(http.StatusOK, tables)
}

// CreateTable handles POST /api/v1/tables.
func (s *Server) CreateTable(ctx echo.Context) error {
	var body servers.NewTable
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	description := ""
	if body.Description != nil {
		description = *body.Description
	}

	tableID := kernel.NewUUID()
	cmd, err := commands.NewCreateTableCommand(tableID, body.Name, description)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.h.CreateTable.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.Created{Id: toAPIUUID(tableID)})
}

// CreateCell handles POST /api/v1/cells - a cell optionally standing at a table.
func (s *Server) CreateCell(ctx echo.Context) error {
	var body servers.NewCell
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var tableID *kernel.UUID
	if body.TableId != nil {
		id, err := toKernelUUID(*body.TableId)
		if err != nil {
			return s.fail(ctx, err)
		}
		tableID = &id
	}

	cellID := kernel.NewUUID()
	cmd, err := commands.NewCreateCellCommand(cellID, body.Name, tableID)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.h.CreateCell.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.Created{Id: toAPIUUID(cellID)})
}
