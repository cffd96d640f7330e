package dispatch

import (
	"sync"
	"time"
)

var _ deliveryMetrics = &deliveryMetricsMock{}

type deliveryMetricsMock struct {
	DeliveryFunc func(channel string, result string, took time.Duration)

	calls struct {
		Delivery []struct {
			Channel string
			Result  string
			Took    time.Duration
		}
	}
	lockDelivery sync.RWMutex
}

func (mock *deliveryMetricsMock) Delivery(channel string, result string, took time.Duration) {
	if mock.DeliveryFunc == nil {
		panic("deliveryMetricsMock.DeliveryFunc: method is nil but deliveryMetrics.Delivery was just called")
	}
	callInfo := struct {
		Channel string
		Result  string
		Took    time.Duration
	}{
		Channel: channel,
		Result:  result,
		Took:    took,
	}
	mock.lockDelivery.Lock()
	mock.calls.Delivery = append(mock.calls.Delivery, callInfo)
	mock.lockDelivery.Unlock()
	mock.DeliveryFunc(channel, result, took)
}

func (mock *deliveryMetricsMock) DeliveryCalls() []struct {
	Channel string
	Result  string
	Took    time.Duration
} {
	var calls []struct {
		Channel string
		Result  string
		Took    time.Duration
	}
	mock.lockDelivery.RLock()
	calls = mock.calls.Delivery
	mock.lockDelivery.RUnlock()
	return calls
}
