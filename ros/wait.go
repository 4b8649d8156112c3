package ros

import (
	"context"
	"github.com/bluenviron/goroslib/v2"
	"github.com/pkg/errors"
	"go.viam.com/utils"
	"time"
)

// ErrServiceTimeout is returned by WaitForService when the service never shows up.
var ErrServiceTimeout = errors.New("timed out waiting for ROS service")

const servicePollInterval = 100 * time.Millisecond

// WaitForMessage blocks until one message of type T arrives on topic.
func WaitForMessage[T any](ctx context.Context, node *goroslib.Node, topic string) (*T, error) {
	received := make(chan *T, 1)
	sub, err := goroslib.NewSubscriber(goroslib.SubscriberConf{
		Node:  node,
		Topic: topic,
		Callback: func(msg *T) {
			select {
			case received <- msg:
			default:
			}
		},
	})
	if err != nil {
		return nil, errors.Wrapf(err, "unable to subscribe to %s", topic)
	}
	defer sub.Close()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case msg := <-received:
		return msg, nil
	}
}

// WaitForService polls the master until name is registered or timeout elapses.
func WaitForService(ctx context.Context, node *goroslib.Node, name string, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	for {
		services, err := node.MasterGetServices()
		if err == nil {
			if _, ok := services[name]; ok {
				return nil
			}
		}
		if !utils.SelectContextOrWait(ctx, servicePollInterval) {
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return errors.Wrapf(ErrServiceTimeout, "%s not available after %s", name, timeout)
			}
			return ctx.Err()
		}
	}
}
