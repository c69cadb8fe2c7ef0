package main

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

var SerializerError = errors.New("invalid serialized subscription")

// SubscriptionSerializer packs the address as the user typed it and the webhook url:
// uint16 little endian address length, address bytes, url bytes.
type SubscriptionSerializer struct{}

func NewSubscriptionSerializer() *SubscriptionSerializer {
	return &SubscriptionSerializer{}
}

func (s *SubscriptionSerializer) Marshal(address string, webhookUrl string) []byte {
	if len(address) > math.MaxUint16 {
		address = address[:math.MaxUint16]
	}

	data := make([]byte, 0, 2+len(address)+len(webhookUrl))
	data = binary.LittleEndian.AppendUint16(data, uint16(len(address)))
	data = append(data, address...)

	return append(data, webhookUrl...)
}

func (s *SubscriptionSerializer) Unmarshal(data []byte) (address string, webhookUrl string, err error) {
	if len(data) < 2 {
		return "", "", fmt.Errorf("%w: %d bytes is too short", SerializerError, len(data))
	}

	addressLength := int(binary.LittleEndian.Uint16(data))
	if len(data) < addressLength+2 {
		return "", "", fmt.Errorf("%w: address length %d exceeds %d bytes", SerializerError, addressLength, len(data)-2)
	}

	return string(data[2 : addressLength+2]), string(data[addressLength+2:]), nil
}
