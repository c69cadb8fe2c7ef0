package contracts

type WebhookDispatcher interface {
	SetWebhookUrl(address string, webhookUrl string) error
	GetWebhookUrl(address string) string
	Notify(cells []*CellResponse)
	Start()
	Close()
}
