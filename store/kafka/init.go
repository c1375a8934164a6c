package kafka

import (
	"github.com/Shopify/sarama"
	log "github.com/sirupsen/logrus"
)

func init() {
	sarama.PanicHandler = func(err interface{}) {
		log.Warnf("sarama got panic: %+v", err)
	}
}
