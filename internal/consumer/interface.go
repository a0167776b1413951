package consumer

import (
	"context"

	"github.com/segmentio/kafka-go"
)

// Reader is the part of *kafka.Reader the price consumer uses.
//
//go:generate mockgen -source interface.go -destination=mock/interface_mock.go -package=consumer_mock
type Reader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}
