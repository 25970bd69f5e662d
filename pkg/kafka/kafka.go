package kafka

import (
	"time"

	"github.com/IBM/sarama"
)

const (
	LoanTopic = `loan-events`
)

type Config struct {
	Addrs []string `yaml:"addrs" envconfig:"KAFKA_ADDRS"`
}

type LoanEventType string

const (
	LoanCreated  LoanEventType = "LOAN_CREATED"
	LoanReturned LoanEventType = "LOAN_RETURNED"
)

// EventLoan is the payload published to LoanTopic on every successful
// loan lifecycle transition.
type EventLoan struct {
	Type     LoanEventType `json:"type"`
	LoanID   int64         `json:"loanId"`
	BookID   int64         `json:"bookId"`
	Customer string        `json:"customer"`
	At       time.Time     `json:"at"`
}

func NewProducer(cfg Config) (sarama.SyncProducer, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Producer.RequiredAcks = sarama.WaitForAll
	defaultCfg.Producer.Return.Successes = true

	return sarama.NewSyncProducer(cfg.Addrs, defaultCfg)
}
