package gateway

import (
	"context"

	"github.com/liquex/liquex/internal/pkg/models"
	nsqpkg "github.com/liquex/liquex/internal/pkg/nsq"
)

// NSQ topics for request lifecycle events
const (
	TopicRequestRaised        = "request.raised"
	TopicRequestAccepted      = "request.accepted"
	TopicLocationShared       = "request.location_shared"
	TopicTransactionCompleted = "transaction.completed"
)

// RequestGW publishes request lifecycle events to NSQ. A nil producer turns
// every publish into a no-op, which is how the demo runs without a broker.
type RequestGW struct {
	producer *nsqpkg.Producer
}

// NewRequestGW creates a new request gateway
func NewRequestGW(producer *nsqpkg.Producer) *RequestGW {
	return &RequestGW{producer: producer}
}

// PublishRequestRaised announces a newly raised request
func (gw *RequestGW) PublishRequestRaised(ctx context.Context, request *models.Request) error {
	if gw.producer == nil {
		return nil
	}
	return gw.producer.Publish(TopicRequestRaised, request)
}

// PublishRequestAccepted announces that a responder accepted a request
func (gw *RequestGW) PublishRequestAccepted(ctx context.Context, request *models.Request) error {
	if gw.producer == nil {
		return nil
	}
	return gw.producer.Publish(TopicRequestAccepted, request)
}

// PublishLocationShared announces a responder sharing a meetup location
func (gw *RequestGW) PublishLocationShared(ctx context.Context, share *models.LocationShare) error {
	if gw.producer == nil {
		return nil
	}
	return gw.producer.Publish(TopicLocationShared, share)
}

// PublishTransactionCompleted announces a verified handover
func (gw *RequestGW) PublishTransactionCompleted(ctx context.Context, record *models.TransactionRecord) error {
	if gw.producer == nil {
		return nil
	}
	return gw.producer.Publish(TopicTransactionCompleted, record)
}
