// Copyright 2024 Google, LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package services

import (
	"context"
	"fmt"

	"cloud.google.com/go/bigquery"
	"google.golang.org/api/iterator"

	"github.com/jaycherian/gcp-go-video-insights/internal/cloud"
	"github.com/jaycherian/gcp-go-video-insights/internal/core/model"
)

// BigQueryUsageService streams analysis events into BigQuery and answers
// the aggregate usage query. It is both the pipeline's event sink and the
// backend of the stats endpoint.
type BigQueryUsageService struct {
	client      *bigquery.Client
	datasetName string
	eventTable  string
}

func NewBigQueryUsageService(client *bigquery.Client, config cloud.BigQueryDataSource) *BigQueryUsageService {
	return &BigQueryUsageService{
		client:      client,
		datasetName: config.DatasetName,
		eventTable:  config.EventTable,
	}
}

// GetFQN returns the fully qualified event table name for use in queries.
func (b *BigQueryUsageService) GetFQN() string {
	return fmt.Sprintf("%s.%s.%s", b.client.Project(), b.datasetName, b.eventTable)
}

// Insert streams one usage event into the event table.
func (b *BigQueryUsageService) Insert(ctx context.Context, event *model.AnalysisEvent) error {
	inserter := b.client.Dataset(b.datasetName).Table(b.eventTable).Inserter()
	if err := inserter.Put(ctx, event); err != nil {
		return fmt.Errorf("failed to insert usage event: %w", err)
	}
	return nil
}

// GetUsageStats runs the aggregate query over the event table.
func (b *BigQueryUsageService) GetUsageStats(ctx context.Context) (*model.UsageStats, error) {
	query := b.client.Query(fmt.Sprintf(QryUsageStats, b.GetFQN()))
	it, err := query.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query usage stats: %w", err)
	}
	stats := &model.UsageStats{}
	err = it.Next(stats)
	if err == iterator.Done {
		return stats, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read usage stats row: %w", err)
	}
	return stats, nil
}
