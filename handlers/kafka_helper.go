package handlers

import (
	"fmt"

	"github.com/campusledger/fees.api/config"
	"github.com/campusledger/fees.api/models"
	"github.com/companieshouse/chs.go/avro"
	"github.com/companieshouse/chs.go/avro/schema"
	"github.com/companieshouse/chs.go/kafka/producer"
	"github.com/companieshouse/chs.go/log"
)

// DisputeResolvedTopic is the topic to which the dispute resolved kafka message is sent. The schema shares its name.
const DisputeResolvedTopic = "fee-dispute-resolved"

// InvoicePaidTopic is the topic to which the invoice paid kafka message is sent. The schema shares its name.
const InvoicePaidTopic = "fee-invoice-paid"

// disputeResolved represents the avro schema of a dispute resolution
type disputeResolved struct {
	DisputeID string `avro:"dispute_id"`
	TenantID  string `avro:"tenant_id"`
	InvoiceID string `avro:"invoice_id"`
	Status    string `avro:"status"`
}

// invoicePaid represents the avro schema of an invoice becoming paid
type invoicePaid struct {
	InvoiceID        string `avro:"invoice_id"`
	TenantID         string `avro:"tenant_id"`
	PaymentAttemptID string `avro:"payment_attempt_id"`
	PaidVia          string `avro:"paid_via"`
}

func produceDisputeMessage(dispute models.DisputeRest, tenantID string) error {
	return produceKafkaMessage(DisputeResolvedTopic, disputeResolved{
		DisputeID: dispute.ID,
		TenantID:  tenantID,
		InvoiceID: dispute.InvoiceID,
		Status:    dispute.Status,
	})
}

func produceInvoicePaidMessage(attempt models.PaymentAttemptDB, paidVia string) error {
	return produceKafkaMessage(InvoicePaidTopic, invoicePaid{
		InvoiceID:        attempt.InvoiceID,
		TenantID:         attempt.TenantID,
		PaymentAttemptID: attempt.ID,
		PaidVia:          paidVia,
	})
}

// produceKafkaMessage handles creating a producer, marshalling the data into the topic's avro schema and sending
// the message to the topic
func produceKafkaMessage(topic string, data interface{}) error {
	cfg, err := config.Get()
	if err != nil {
		err = fmt.Errorf("error getting config for kafka message production: [%v]", err)
		return err
	}

	if !cfg.KafkaEnabled {
		log.Debug("kafka disabled, message not sent", log.Data{"topic": topic})
		return nil
	}

	// Get a producer
	kafkaProducer, err := producer.New(&producer.Config{Acks: &producer.WaitForAll, BrokerAddrs: cfg.BrokerAddr})
	if err != nil {
		err = fmt.Errorf("error creating kafka producer: [%v]", err)
		return err
	}
	topicSchema, err := schema.Get(cfg.SchemaRegistryURL, topic)
	if err != nil {
		err = fmt.Errorf("error getting schema from schema registry: [%v]", err)
		return err
	}
	producerSchema := &avro.Schema{
		Definition: topicSchema,
	}

	// Prepare a message with the avro schema
	message, err := prepareKafkaMessage(topic, data, *producerSchema)
	if err != nil {
		err = fmt.Errorf("error preparing kafka message with schema: [%v]", err)
		return err
	}

	// Send the message
	partition, offset, err := kafkaProducer.Send(message)
	if err != nil {
		err = fmt.Errorf("failed to send message in partition: %d at offset %d", partition, offset)
		return err
	}
	return nil
}

// prepareKafkaMessage is pulled out of produceKafkaMessage() to allow unit testing of non-kafka portion of code
func prepareKafkaMessage(topic string, data interface{}, topicSchema avro.Schema) (*producer.Message, error) {
	messageBytes, err := topicSchema.Marshal(data)
	if err != nil {
		err = fmt.Errorf("error marshalling %s message: [%v]", topic, err)
		return nil, err
	}

	producerMessage := &producer.Message{
		Value: messageBytes,
		Topic: topic,
	}
	return producerMessage, nil
}
