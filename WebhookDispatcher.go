package main

import (
	"bytes"
	json "github.com/bytedance/sonic"
	"log/slog"
	"net/http"
	"sparseSheet/contracts"
	"sync"
	"time"
)

const DefaultWebhookWorkersCount = 5

const webhookQueueSize = 20

type WebhookSendCommand struct {
	Webhook string
	Cell    *contracts.CellResponse
}

// WebhookDispatcher posts changed cells to the urls subscribed to their address
type WebhookDispatcher struct {
	queue         chan WebhookSendCommand
	subscriptions contracts.SubscriptionRepository
	workersCount  int
	client        *http.Client
	logger        *slog.Logger
	workers       sync.WaitGroup
}

func NewWebhookDispatcher(subscriptions contracts.SubscriptionRepository, workersCount int, logger *slog.Logger) *WebhookDispatcher {
	if workersCount < 1 {
		workersCount = DefaultWebhookWorkersCount
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &WebhookDispatcher{
		queue:         make(chan WebhookSendCommand, webhookQueueSize),
		subscriptions: subscriptions,
		workersCount:  workersCount,
		client: &http.Client{
			Timeout: time.Second * 5,
		},
		logger: logger,
	}
}

func (manager *WebhookDispatcher) SetWebhookUrl(address string, webhookUrl string) error {
	canonicalAddress, err := CanonicalizeAddress(address)
	if err != nil {
		return err
	}

	return manager.subscriptions.Put(canonicalAddress, address, webhookUrl)
}

func (manager *WebhookDispatcher) GetWebhookUrl(address string) string {
	canonicalAddress, err := CanonicalizeAddress(address)
	if err != nil {
		return ""
	}

	webhook, err := manager.subscriptions.Get(canonicalAddress)
	if err != nil {
		manager.logger.Warn("webhook lookup failed", "address", canonicalAddress, "error", err)
		return ""
	}

	return webhook
}

// Notify queues one request per subscribed cell. A full queue drops the notification.
func (manager *WebhookDispatcher) Notify(cells []*contracts.CellResponse) {
	for _, cell := range cells {
		webhook := manager.GetWebhookUrl(cell.Address)
		if webhook == "" {
			continue
		}

		select {
		case manager.queue <- WebhookSendCommand{Webhook: webhook, Cell: cell}:
		default:
			manager.logger.Warn("webhook queue is full, notification dropped", "address", cell.Address, "webhook", webhook)
		}
	}
}

func (manager *WebhookDispatcher) Start() {
	for i := 0; i < manager.workersCount; i++ {
		manager.workers.Add(1)
		go manager.runWebhookSenderWorker()
	}
}

// Close stops accepting notifications and waits until the queue is drained
func (manager *WebhookDispatcher) Close() {
	close(manager.queue)
	manager.workers.Wait()
}

func (manager *WebhookDispatcher) runWebhookSenderWorker() {
	defer manager.workers.Done()

	for command := range manager.queue {
		manager.send(command)
	}
}

func (manager *WebhookDispatcher) send(command WebhookSendCommand) {
	payload, err := json.Marshal(command.Cell)
	if err != nil {
		manager.logger.Warn("webhook payload encoding failed", "address", command.Cell.Address, "error", err)
		return
	}

	response, err := manager.client.Post(command.Webhook, "application/json", bytes.NewBuffer(payload))
	if err != nil {
		manager.logger.Warn("webhook send error", "webhook", command.Webhook, "error", err)
		return
	}
	defer response.Body.Close()

	if response.StatusCode >= 300 {
		manager.logger.Warn("unexpected webhook response", "webhook", command.Webhook, "status", response.Status)
	}
}
