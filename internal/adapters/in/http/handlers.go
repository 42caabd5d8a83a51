package http

import (
	"context"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/application/usecases/queries"
)

// CommandHandler is a use case that only reports success or failure.
type CommandHandler[C any] interface {
	Handle(ctx context.Context, cmd C) error
}

// ResultHandler is a use case that returns a value: a command result or a query response.
type ResultHandler[C, R any] interface {
	Handle(ctx context.Context, in C) (R, error)
}

// Handlers are the use cases the HTTP API exposes.
type Handlers struct {
	// Command handlers
	CreateItem      CommandHandler[commands.CreateItemCommand]
	RestockItem     ResultHandler[commands.RestockItemCommand, int]
	CreateOrder     CommandHandler[commands.CreateOrderCommand]
	ClaimNextOrder  ResultHandler[commands.ClaimNextOrderCommand, commands.ClaimNextOrderResult]
	MarkCollected   CommandHandler[commands.MarkCollectedCommand]
	RecordPackaging CommandHandler[commands.RecordPackagingCommand]
	PlaceItems      CommandHandler[commands.PlaceItemsCommand]
	CreateTable     CommandHandler[commands.CreateTableCommand]
	CreateCell      CommandHandler[commands.CreateCellCommand]

	// Query handlers
	GetOrderDetails ResultHandler[queries.GetOrderDetailsQuery, queries.GetOrderDetailsQueryResponse]
	GetTables       ResultHandler[queries.GetTablesQuery, queries.GetTablesQueryResponse]
	GetStockReport  ResultHandler[queries.GetStockReportQuery, queries.GetStockReportQueryResponse]
}
