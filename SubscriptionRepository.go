package main

import (
	"go.etcd.io/bbolt"
	"sparseSheet/contracts"
)

var subscriptionsBucket = []byte("subscriptions")

// SubscriptionRepository keeps webhook subscriptions in bbolt, keyed by canonical address
type SubscriptionRepository struct {
	db         *bbolt.DB
	serializer contracts.CellSerializer
}

func NewSubscriptionRepository(db *bbolt.DB, serializer contracts.CellSerializer) *SubscriptionRepository {
	return &SubscriptionRepository{db: db, serializer: serializer}
}

func (r *SubscriptionRepository) Put(canonicalAddress string, address string, webhookUrl string) error {
	return r.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(subscriptionsBucket)
		if err != nil {
			return err
		}

		if webhookUrl == "" {
			return bucket.Delete([]byte(canonicalAddress))
		}

		return bucket.Put([]byte(canonicalAddress), r.serializer.Marshal(address, webhookUrl))
	})
}

func (r *SubscriptionRepository) Get(canonicalAddress string) (webhookUrl string, err error) {
	err = r.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(subscriptionsBucket)
		if bucket == nil {
			return nil
		}

		data := bucket.Get([]byte(canonicalAddress))
		if data == nil {
			return nil
		}

		_, webhookUrl, err = r.serializer.Unmarshal(data)
		return err
	})

	return webhookUrl, err
}
