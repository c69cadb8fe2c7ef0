package main

import (
	"github.com/gin-gonic/gin"
	"go.etcd.io/bbolt"
	"log/slog"
	"sparseSheet/contracts"
	"time"
)

type Config struct {
	SheetFilePath       string
	SubscriptionsDbPath string
	WebhookWorkersCount int
}

type ServiceContainer struct {
	Logger                 *slog.Logger
	Database               *bbolt.DB
	SheetFile              contracts.SheetFile
	FormulaEvaluator       contracts.FormulaEvaluator
	SubscriptionRepository contracts.SubscriptionRepository
	WebhookDispatcher      contracts.WebhookDispatcher
	SheetRepository        contracts.SheetRepository
	ApiController          contracts.ApiController
	Router                 *gin.Engine
}

// BuildServiceContainer wires the services. Subscriptions, webhooks and the HTTP router
// are only built when a subscriptions database path is configured.
func BuildServiceContainer(config Config, logger *slog.Logger) (container ServiceContainer, err error) {
	container.Logger = logger
	container.SheetFile = NewSheetFile(config.SheetFilePath, logger)
	container.FormulaEvaluator = NewFormulaEvaluator()

	if config.SubscriptionsDbPath == "" {
		container.SheetRepository = NewSheetRepository(container.SheetFile, container.FormulaEvaluator, nil, logger)
		return
	}

	container.Database, err = bbolt.Open(config.SubscriptionsDbPath, 0600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return
	}

	container.SubscriptionRepository = NewSubscriptionRepository(container.Database, NewSubscriptionSerializer())
	dispatcher := NewWebhookDispatcher(container.SubscriptionRepository, config.WebhookWorkersCount, logger)
	container.WebhookDispatcher = dispatcher

	container.SheetRepository = NewSheetRepository(container.SheetFile, container.FormulaEvaluator, dispatcher, logger)
	container.ApiController = NewApiController(container.SheetRepository, dispatcher)
	container.Router = SetupRouter(container.ApiController)

	return
}
