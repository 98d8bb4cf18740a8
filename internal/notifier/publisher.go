package notifier

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/staffhub/vendorlink/internal/config"
	"golang.org/x/time/rate"
)

type verificationMessage struct {
	Email string `json:"email"`
	Link  string `json:"link"`
}

// Publisher dispatches verification invitations to a durable queue consumed
// by the mailer. Delivery is best effort; callers must not roll back on
// publish failure.
type Publisher struct {
	conn        *amqp.Connection
	ch          *amqp.Channel
	queue       string
	baseURL     string
	rateLimiter *rate.Limiter
}

func NewPublisher(cfg config.NotifierConfig) (*Publisher, error) {
	conn, err := amqp.Dial(cfg.AmqpURI)
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, err
	}

	_, err = ch.QueueDeclare(
		cfg.Queue,
		true,  // durable
		false, // auto-delete
		false, // exclusive
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, err
	}

	p := &Publisher{conn: conn, ch: ch, queue: cfg.Queue, baseURL: cfg.VerificationBaseURL}
	if cfg.MaxMessagesPerSecond > 0 {
		p.rateLimiter = rate.NewLimiter(rate.Limit(cfg.MaxMessagesPerSecond), 1)
	}
	return p, nil
}

// SendVerification publishes the invitation carrying the confirmation link
// with the embedded token.
func (p *Publisher) SendVerification(ctx context.Context, email string, token string) error {

	if p.rateLimiter != nil {
		if err := p.rateLimiter.Wait(ctx); err != nil {
			return err
		}
	}

	body, err := json.Marshal(verificationMessage{
		Email: email,
		Link:  p.baseURL + "/verify?token=" + token,
	})
	if err != nil {
		return err
	}

	return p.ch.PublishWithContext(
		ctx,
		"",      // default exchange
		p.queue, // routing key
		false,   // mandatory
		false,   // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
}

func (p *Publisher) Close() error {
	var errCh, errConn error
	if p.ch != nil {
		errCh = p.ch.Close()
	}
	if p.conn != nil {
		errConn = p.conn.Close()
	}

	return errors.Join(errCh, errConn)
}
