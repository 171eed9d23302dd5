package config

import (
	"log"
	"os"

	elasticsearch "github.com/elastic/go-elasticsearch/v8"
)

// ESClient is a global Elasticsearch client. Nil when ES_ADDR is not set;
// callers must fall back to SQL in that case.
var ESClient *elasticsearch.Client

func InitES() {
	addr := os.Getenv("ES_ADDR")
	if addr == "" {
		ESClient = nil
		return
	}
	client, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: []string{addr},
		Username:  os.Getenv("ES_USER"),
		Password:  os.Getenv("ES_PASS"),
	})
	if err != nil {
		log.Printf("Elasticsearch client init failed: %v", err)
		ESClient = nil
		return
	}
	ESClient = client
}
