package contracts

type SubscriptionRepository interface {
	// Put stores the webhook for the canonical address; an empty url removes it
	Put(canonicalAddress string, address string, webhookUrl string) error
	Get(canonicalAddress string) (webhookUrl string, err error)
}
