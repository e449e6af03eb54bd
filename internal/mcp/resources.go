// ABOUTME: MCP resource implementations for habit tracking data.
// ABOUTME: Provides tsumiage://today, tsumiage://items, and tsumiage://summary.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/skosaka/tsumiage/internal/models"
	"github.com/skosaka/tsumiage/internal/quotes"
)

func (s *Server) registerResources() {
	// tsumiage://today - today's progress per item
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "tsumiage://today",
		Name:        "Today's Progress",
		Description: "Today's value for every item plus the current streak",
		MIMEType:    "application/json",
	}, s.handleTodayResource)

	// tsumiage://items - full item list with totals and goals
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "tsumiage://items",
		Name:        "Habit Items",
		Description: "All items with totals, levels and goal state",
		MIMEType:    "application/json",
	}, s.handleItemsResource)

	// tsumiage://summary - dashboard with streak, levels and goal progress
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "tsumiage://summary",
		Name:        "Tracking Summary",
		Description: "Streak, per-item totals, goal progress and today's quote",
		MIMEType:    "application/json",
	}, s.handleSummaryResource)
}

// Resource handlers

func (s *Server) handleTodayResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	items, err := s.trk.Items()
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}

	today := s.trk.Today()
	perItem := make([]map[string]interface{}, 0, len(items))
	for _, it := range items {
		v, err := s.trk.TotalForDay(it.ID, today)
		if err != nil {
			return nil, fmt.Errorf("failed to total day: %w", err)
		}
		perItem = append(perItem, map[string]interface{}{
			"name":  it.Name,
			"kind":  string(it.Kind),
			"today": it.FormatValue(v),
		})
	}

	streak, err := s.trk.Streak()
	if err != nil {
		return nil, fmt.Errorf("failed to calculate streak: %w", err)
	}

	result := map[string]interface{}{
		"day":    today,
		"items":  perItem,
		"streak": streak,
	}

	return marshalResource("tsumiage://today", result)
}

func (s *Server) handleItemsResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	items, err := s.trk.Items()
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}

	out := make([]map[string]interface{}, 0, len(items))
	for _, it := range items {
		level := models.LevelInfo(it.Kind, it.TotalValue)
		entry := map[string]interface{}{
			"id":    it.ID,
			"name":  it.Name,
			"kind":  string(it.Kind),
			"total": it.FormatValue(it.TotalValue),
			"level": level.Current.Title,
		}
		if it.Goal != nil {
			p := s.trk.GoalProgressFor(it)
			entry["goal"] = map[string]interface{}{
				"target":   it.FormatValue(it.Goal.Target),
				"deadline": it.Goal.Deadline,
				"percent":  p.Percent,
			}
		}
		out = append(out, entry)
	}

	return marshalResource("tsumiage://items", out)
}

func (s *Server) handleSummaryResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	items, err := s.trk.Items()
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}

	streak, err := s.trk.Streak()
	if err != nil {
		return nil, fmt.Errorf("failed to calculate streak: %w", err)
	}

	today := s.trk.Today()
	perItem := make([]map[string]interface{}, 0, len(items))
	for _, it := range items {
		v, err := s.trk.TotalForDay(it.ID, today)
		if err != nil {
			return nil, fmt.Errorf("failed to total day: %w", err)
		}
		level := models.LevelInfo(it.Kind, it.TotalValue)
		entry := map[string]interface{}{
			"name":           it.Name,
			"today":          it.FormatValue(v),
			"total":          it.FormatValue(it.TotalValue),
			"level":          level.Current.Title,
			"level_progress": level.Progress,
		}
		if it.Goal != nil {
			p := s.trk.GoalProgressFor(it)
			entry["goal_percent"] = p.Percent
			entry["goal_remaining"] = it.FormatValue(p.Remaining)
		}
		perItem = append(perItem, entry)
	}

	q := quotes.ForDay(today)
	result := map[string]interface{}{
		"generated_at": time.Now().Format(time.RFC3339),
		"day":          today,
		"streak":       streak,
		"items":        perItem,
		"quote": map[string]string{
			"text":   q.Text,
			"author": q.Author,
		},
	}

	return marshalResource("tsumiage://summary", result)
}

func marshalResource(uri string, v interface{}) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
