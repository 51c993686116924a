package cmd

import (
	"grocery/internal/adapters/out/inmem"
	"grocery/internal/adapters/out/kafka"
	"grocery/internal/adapters/out/postgres"
	redisstore "grocery/internal/adapters/out/redis"
	"grocery/internal/core/application/usecases/commands"
	"grocery/internal/core/application/usecases/queries"
	"grocery/internal/core/ports"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	cartStore  ports.CartStore
	publisher  ports.OrderEventPublisher
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	var cartStore ports.CartStore = inmem.NewCartStore()
	if config.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: config.RedisAddr})
		cartStore = redisstore.NewCartStore(client, redisstore.DefaultCartTTL)
	}

	var publisher ports.OrderEventPublisher = kafka.NewNoopOrderEventPublisher()
	if config.KafkaHost != "" {
		publisher = kafka.NewOrderEventPublisher(config.KafkaHost, config.KafkaOrderChangedTopic)
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		cartStore:  cartStore,
		publisher:  publisher,
	}
}

// CartStore exposes the session cart store for the HTTP adapter.
func (c *CompositionRoot) CartStore() ports.CartStore {
	return c.cartStore
}

// Close releases outgoing connections held by the composition root.
func (c *CompositionRoot) Close() error {
	return c.publisher.Close()
}

func (c *CompositionRoot) CreateCheckoutCommandHandler() commands.CheckoutCommandHandler {
	var f commands.CheckoutUoWFactory = FuncCheckoutUoWFactory(func() commands.CheckoutUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCheckoutCommandHandler(f, c.cartStore, c.publisher)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderStatusCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateUpdatePaymentStatusCommandHandler() commands.UpdatePaymentStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdatePaymentStatusCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateAdvanceDeliveriesCommandHandler() commands.AdvanceDeliveriesCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdvanceDeliveriesCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateGetUserOrdersQueryHandler() queries.GetUserOrdersQueryHandler {
	return queries.NewGetUserOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderByIDQueryHandler() queries.GetOrderByIDQueryHandler {
	return queries.NewGetOrderByIDQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncCheckoutUoWFactory func() commands.CheckoutUoW

func (f FuncCheckoutUoWFactory) Create() commands.CheckoutUoW {
	return f()
}
