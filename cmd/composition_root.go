package cmd

import (
	"dispatch/internal/adapters/out/memstore"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/services"
)

// CompositionRoot wires the application graph. The in-memory order store is
// created once here and shared by every handler, making it the single owner
// of all order state.
type CompositionRoot struct {
	orderStore *memstore.Repository
}

func NewCompositionRoot(_ Config) CompositionRoot {
	return CompositionRoot{
		orderStore: memstore.NewRepository(),
	}
}

func (c *CompositionRoot) CreateSubmitOrderCommandHandler() commands.SubmitOrderCommandHandler {
	return commands.NewSubmitOrderCommandHandler(c.orderStore)
}

func (c *CompositionRoot) CreateAcceptOrderCommandHandler() commands.AcceptOrderCommandHandler {
	return commands.NewAcceptOrderCommandHandler(c.orderStore)
}

func (c *CompositionRoot) CreateStartWorkCommandHandler() commands.StartWorkCommandHandler {
	return commands.NewStartWorkCommandHandler(c.orderStore)
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	return commands.NewCompleteOrderCommandHandler(c.orderStore)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderStore)
}

func (c *CompositionRoot) CreateRateOrderCommandHandler() commands.RateOrderCommandHandler {
	return commands.NewRateOrderCommandHandler(c.orderStore)
}

func (c *CompositionRoot) CreateExpireStaleOrdersCommandHandler() commands.ExpireStaleOrdersCommandHandler {
	return commands.NewExpireStaleOrdersCommandHandler(c.orderStore)
}

func (c *CompositionRoot) CreateGetOpenOrdersQueryHandler() queries.GetOpenOrdersQueryHandler {
	return queries.NewGetOpenOrdersQueryHandler(c.orderStore)
}

func (c *CompositionRoot) CreateGetCourierActiveOrdersQueryHandler() queries.GetCourierActiveOrdersQueryHandler {
	return queries.NewGetCourierActiveOrdersQueryHandler(c.orderStore)
}

func (c *CompositionRoot) CreateGetCourierHistoryQueryHandler() queries.GetCourierHistoryQueryHandler {
	return queries.NewGetCourierHistoryQueryHandler(c.orderStore)
}

func (c *CompositionRoot) CreateGetCourierStatsQueryHandler() queries.GetCourierStatsQueryHandler {
	return queries.NewGetCourierStatsQueryHandler(c.orderStore, services.NewCourierStatsCalculator())
}

func (c *CompositionRoot) CreateGetClientActiveOrdersQueryHandler() queries.GetClientActiveOrdersQueryHandler {
	return queries.NewGetClientActiveOrdersQueryHandler(c.orderStore)
}

func (c *CompositionRoot) CreateGetClientHistoryQueryHandler() queries.GetClientHistoryQueryHandler {
	return queries.NewGetClientHistoryQueryHandler(c.orderStore)
}

func (c *CompositionRoot) CreateGetPublicReviewsQueryHandler() queries.GetPublicReviewsQueryHandler {
	return queries.NewGetPublicReviewsQueryHandler(c.orderStore)
}
