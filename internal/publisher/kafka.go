package publisher

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/IBM/sarama"
	"github.com/rs/zerolog"
)

// KafkaPublisher writes sector events to a Kafka topic, keyed by snapshot id.
type KafkaPublisher struct {
	producer sarama.SyncProducer
	topic    string
	log      zerolog.Logger
}

// NewKafkaPublisher connects a synchronous producer to brokers.
func NewKafkaPublisher(brokers []string, topic string, log zerolog.Logger) (*KafkaPublisher, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForLocal
	config.Producer.Retry.Max = 3
	config.Version = sarama.V2_8_0_0

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("kafka producer: %w", err)
	}
	return newKafkaPublisher(producer, topic, log), nil
}

func newKafkaPublisher(producer sarama.SyncProducer, topic string, log zerolog.Logger) *KafkaPublisher {
	return &KafkaPublisher{
		producer: producer,
		topic:    topic,
		log:      log.With().Str("component", "publisher").Str("topic", topic).Logger(),
	}
}

// PublishSector sends evt and waits for the broker acknowledgement.
func (p *KafkaPublisher) PublishSector(ctx context.Context, evt *SectorEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	body, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("encode sector event: %w", err)
	}

	partition, offset, err := p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(evt.SnapshotID),
		Value: sarama.ByteEncoder(body),
	})
	if err != nil {
		return fmt.Errorf("publish sector event: %w", err)
	}

	p.log.Debug().
		Str("snapshot_id", evt.SnapshotID).
		Int32("partition", partition).
		Int64("offset", offset).
		Msg("sector event published")
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.producer.Close()
}
