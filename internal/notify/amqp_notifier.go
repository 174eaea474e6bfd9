package notify

import (
	"context"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/Leganyst/barber-booking/internal/model"
)

// Publisher — публикация в брокер.
type Publisher interface {
	Publish(ctx context.Context, key string, body []byte) error
}

// AMQPPublisher публикует в topic exchange RabbitMQ.
type AMQPPublisher struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string

	mu sync.Mutex // канал не разделяем между горутинами
}

func DialAMQP(url, exchange string) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if err := ch.ExchangeDeclare(exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}
	return &AMQPPublisher{conn: conn, ch: ch, exchange: exchange}, nil
}

func (p *AMQPPublisher) Publish(ctx context.Context, key string, body []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ch.PublishWithContext(ctx, p.exchange, key, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	})
}

func (p *AMQPPublisher) Close() error {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}

// Contacts ищет пользователя по логину, чтобы приложить email клиента.
type Contacts interface {
	FindByUsername(ctx context.Context, username string) (*model.User, error)
}

// AMQPNotifier отправляет события брони в брокер JSON-сообщениями.
// Письма клиенту рассылает потребитель очереди по полю customer_email.
type AMQPNotifier struct {
	pub      Publisher
	contacts Contacts
	now      func() time.Time
}

// contacts может быть nil, тогда email в сообщение не попадает.
func NewAMQPNotifier(pub Publisher, contacts Contacts) *AMQPNotifier {
	return &AMQPNotifier{pub: pub, contacts: contacts, now: time.Now}
}

func (n *AMQPNotifier) NotifyBookingCreated(ctx context.Context, b model.Booking) error {
	return n.publish(ctx, RoutingBookingCreated, createdMessage(b, n.now()))
}

func (n *AMQPNotifier) NotifyStatusChanged(ctx context.Context, b model.Booking, from, to model.BookingStatus) error {
	return n.publish(ctx, RoutingBookingStatusChanged, statusMessage(b, from, to, n.now()))
}

func (n *AMQPNotifier) publish(ctx context.Context, key string, msg Message) error {
	msg.Email = n.customerEmail(ctx, msg.Customer)
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	if err := n.pub.Publish(ctx, key, body); err != nil {
		return fmt.Errorf("publish %s: %w", key, err)
	}
	return nil
}

// Клиент без учётки или без email — не повод терять событие.
func (n *AMQPNotifier) customerEmail(ctx context.Context, customer string) string {
	if n.contacts == nil || customer == "" {
		return ""
	}
	u, err := n.contacts.FindByUsername(ctx, customer)
	if err != nil {
		return ""
	}
	return u.Email
}
