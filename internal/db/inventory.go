package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jonathan/content-planner/internal/types"
)

// ListKeywords returns the site's keyword inventory snapshot.
func (db *DB) ListKeywords(ctx context.Context, siteID uuid.UUID) ([]types.KeywordRecord, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT keyword, COALESCE(type, ''), COALESCE(cluster, '')
		 FROM site_keywords WHERE site_id = $1 ORDER BY keyword`,
		siteID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list keywords: %w", err)
	}
	defer rows.Close()

	keywords := []types.KeywordRecord{}
	for rows.Next() {
		var kw types.KeywordRecord
		if err := rows.Scan(&kw.Keyword, &kw.Type, &kw.Cluster); err != nil {
			return nil, fmt.Errorf("failed to scan keyword: %w", err)
		}
		keywords = append(keywords, kw)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate keywords: %w", err)
	}
	return keywords, nil
}

// ListExistingContent returns the site's published/briefed pages per cluster.
func (db *DB) ListExistingContent(ctx context.Context, siteID uuid.UUID) ([]types.ExistingContentRecord, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT COALESCE(cluster, ''), title, COALESCE(url, ''), COALESCE(primary_keyword, '')
		 FROM site_content WHERE site_id = $1 ORDER BY cluster, title`,
		siteID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list existing content: %w", err)
	}
	defer rows.Close()

	content := []types.ExistingContentRecord{}
	for rows.Next() {
		var item types.ExistingContentRecord
		if err := rows.Scan(&item.Cluster, &item.Title, &item.URL, &item.PrimaryKeyword); err != nil {
			return nil, fmt.Errorf("failed to scan content row: %w", err)
		}
		content = append(content, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate content rows: %w", err)
	}
	return content, nil
}
