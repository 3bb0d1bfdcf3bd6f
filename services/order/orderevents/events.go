package orderevents

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/goldencrumb/bakerybackend/lib/myerrors"
	"github.com/goldencrumb/bakerybackend/lib/myevents"
)

const (
	TopicName              = "order"
	orderCreatedName       = TopicName + ".created"
	orderStatusChangedName = TopicName + ".statusChanged"
)

type OrderEventService interface {
	Subscribe(c context.Context) error
	OnOrderCreated(c context.Context, topic string, event OrderCreated) error
	OnOrderStatusChanged(c context.Context, topic string, event OrderStatusChanged) error
}

func DispatchEvent(c context.Context, reader io.Reader, service OrderEventService) error {
	envelope, err := myevents.ParseEventEnvelope(reader)
	if err != nil {
		return myerrors.NewInvalidInputError(err)
	}

	switch envelope.EventTypeName {
	case orderCreatedName:
		{
			event := OrderCreated{}
			err := json.Unmarshal([]byte(envelope.EventPayload), &event)
			if err != nil {
				return myerrors.NewInvalidInputError(err)
			}
			return service.OnOrderCreated(c, envelope.Topic, event)
		}
	case orderStatusChangedName:
		{
			event := OrderStatusChanged{}
			err := json.Unmarshal([]byte(envelope.EventPayload), &event)
			if err != nil {
				return myerrors.NewInvalidInputError(err)
			}
			return service.OnOrderStatusChanged(c, envelope.Topic, event)
		}
	default:
		return myerrors.NewNotImplementedError(fmt.Errorf("unknown event %s", envelope.EventTypeName))
	}
}

type OrderCreated struct {
	OrderUID     string
	OrderNumber  string
	CustomerName string
	TotalInCents int
	Status       string
	DueDate      *time.Time
}

func (e OrderCreated) GetEventTypeName() string {
	return orderCreatedName
}

func (e OrderCreated) GetAggregateName() string {
	return e.OrderUID
}

type OrderStatusChanged struct {
	OrderUID  string
	OldStatus string
	NewStatus string
}

func (e OrderStatusChanged) GetEventTypeName() string {
	return orderStatusChangedName
}

func (e OrderStatusChanged) GetAggregateName() string {
	return e.OrderUID
}
