package item

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"strconv"

	"inventory.GO/config"
	"inventory.GO/model/dto"
	entity "inventory.GO/model/entity"
	itemRepo "inventory.GO/model/repository/item"
)

const itemsIndex = "items"

// Search finds items by name: Elasticsearch match query when an ES client
// is configured, SQL LIKE otherwise.
func (s *Service) Search(q string, limit int) ([]dto.ItemDTO, error) {
	if q == "" {
		return nil, nil
	}
	if limit <= 0 {
		limit = 20
	}
	if config.ESClient == nil {
		return s.searchSQL(q, limit)
	}
	out, err := s.searchES(q, limit)
	if err != nil {
		// ES down is not fatal for a search box; fall back to SQL.
		log.Printf("elasticsearch search failed, falling back to SQL: %v", err)
		return s.searchSQL(q, limit)
	}
	return out, nil
}

func (s *Service) searchSQL(q string, limit int) ([]dto.ItemDTO, error) {
	items, err := itemRepo.NewItemRepository(s.db).SearchByName(q, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ItemDTO, 0, len(items))
	for i := range items {
		out = append(out, toDTO(&items[i]))
	}
	return out, nil
}

func (s *Service) searchES(q string, limit int) ([]dto.ItemDTO, error) {
	es := config.ESClient
	body := map[string]interface{}{
		"size": limit,
		"query": map[string]interface{}{
			"match": map[string]interface{}{
				"name": q,
			},
		},
	}
	bodyBytes, _ := json.Marshal(body)

	res, err := es.Search(
		es.Search.WithIndex(itemsIndex),
		es.Search.WithBody(bytes.NewReader(bodyBytes)),
	)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, fmt.Errorf("elasticsearch error: %s", res.String())
	}

	var esResp struct {
		Hits struct {
			Hits []struct {
				Source dto.ItemDTO `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&esResp); err != nil {
		return nil, err
	}

	out := make([]dto.ItemDTO, 0, len(esResp.Hits.Hits))
	for _, hit := range esResp.Hits.Hits {
		out = append(out, hit.Source)
	}
	return out, nil
}

// indexItem mirrors an item into the ES index. Best effort: search is an
// adjunct, the relational store stays authoritative.
func indexItem(item *entity.Item) {
	if config.ESClient == nil {
		return
	}
	doc, _ := json.Marshal(toDTO(item))
	res, err := config.ESClient.Index(itemsIndex, bytes.NewReader(doc),
		config.ESClient.Index.WithDocumentID(strconv.FormatUint(uint64(item.ID), 10)))
	if err != nil {
		log.Printf("elasticsearch index item %d: %v", item.ID, err)
		return
	}
	defer res.Body.Close()
	if res.IsError() {
		log.Printf("elasticsearch index item %d: %s", item.ID, res.String())
	}
}

func deleteItemDoc(id uint) {
	if config.ESClient == nil {
		return
	}
	res, err := config.ESClient.Delete(itemsIndex, strconv.FormatUint(uint64(id), 10))
	if err != nil {
		log.Printf("elasticsearch delete item %d: %v", id, err)
		return
	}
	res.Body.Close()
}
