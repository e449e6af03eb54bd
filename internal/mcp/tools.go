// ABOUTME: MCP tool implementations for habit items and progress records.
// ABOUTME: Provides item CRUD, progress logging, goals, streaks and history.
package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/skosaka/tsumiage/internal/models"
	"github.com/skosaka/tsumiage/internal/quotes"
	"github.com/skosaka/tsumiage/internal/tracker"
)

func (s *Server) registerTools() {
	// add_item
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_item",
		Description: "Create a new habit item (time for durations, count for occurrences)",
	}, s.handleAddItem)

	// list_items
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_items",
		Description: "List all habit items with totals, today's value and level",
	}, s.handleListItems)

	// delete_item
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_item",
		Description: "Delete a habit item and all its records",
	}, s.handleDeleteItem)

	// add_progress
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_progress",
		Description: "Record progress for an item (seconds for time items, occurrences for count items)",
	}, s.handleAddProgress)

	// adjust_progress
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "adjust_progress",
		Description: "Manually adjust a day's total up or down",
	}, s.handleAdjustProgress)

	// get_progress
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_progress",
		Description: "Get goal progress for an item",
	}, s.handleGetProgress)

	// set_goal
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "set_goal",
		Description: "Set an item's goal with a target and deadline",
	}, s.handleSetGoal)

	// get_streak
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_streak",
		Description: "Get the current consecutive-day streak across all items",
	}, s.handleGetStreak)

	// get_history
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_history",
		Description: "Get per-day totals for an item, most recent first",
	}, s.handleGetHistory)

	// set_daily_note
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "set_daily_note",
		Description: "Set or replace the note attached to one item-day",
	}, s.handleSetDailyNote)

	// get_quote
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_quote",
		Description: "Get today's motivational quote",
	}, s.handleGetQuote)
}

// Tool input/output types

type addItemInput struct {
	Name  string `json:"name" jsonschema:"description=Item name,required"`
	Kind  string `json:"kind" jsonschema:"description=Item kind: time or count,required"`
	Icon  string `json:"icon,omitempty" jsonschema:"description=Icon name (clock, hash, check, pencil, house, chart)"`
	Color string `json:"color,omitempty" jsonschema:"description=Hex color"`
}

type itemOutput struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

type itemRefInput struct {
	Item string `json:"item" jsonschema:"description=Item name or ID prefix,required"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

type addProgressInput struct {
	Item  string `json:"item" jsonschema:"description=Item name or ID prefix,required"`
	Value int64  `json:"value" jsonschema:"description=Amount to record: seconds for time items or occurrences for count items,required"`
	Note  string `json:"note,omitempty" jsonschema:"description=Optional note"`
	Day   string `json:"day,omitempty" jsonschema:"description=Logical day (YYYY-MM-DD), defaults to today"`
}

type progressOutput struct {
	ID      string `json:"id"`
	Day     string `json:"day"`
	Value   string `json:"value"`
	Today   string `json:"today_total"`
	Message string `json:"message"`
}

type adjustProgressInput struct {
	Item      string `json:"item" jsonschema:"description=Item name or ID prefix,required"`
	Day       string `json:"day,omitempty" jsonschema:"description=Logical day (YYYY-MM-DD), defaults to today"`
	Direction string `json:"direction" jsonschema:"description=plus or minus,required"`
	Amount    int64  `json:"amount" jsonschema:"description=Adjustment magnitude,required"`
}

type setGoalInput struct {
	Item     string `json:"item" jsonschema:"description=Item name or ID prefix,required"`
	Target   int64  `json:"target" jsonschema:"description=Goal target: seconds for time items or occurrences for count items,required"`
	Deadline string `json:"deadline" jsonschema:"description=Deadline (YYYY-MM-DD),required"`
}

type getHistoryInput struct {
	Item  string `json:"item" jsonschema:"description=Item name or ID prefix,required"`
	Limit int    `json:"limit,omitempty" jsonschema:"description=Max days (default 14)"`
}

type setDailyNoteInput struct {
	Item string `json:"item" jsonschema:"description=Item name or ID prefix,required"`
	Day  string `json:"day,omitempty" jsonschema:"description=Logical day (YYYY-MM-DD), defaults to today"`
	Text string `json:"text" jsonschema:"description=Note text, empty clears the note,required"`
}

// Tool handlers

func (s *Server) handleAddItem(ctx context.Context, req *mcp.CallToolRequest, input addItemInput) (*mcp.CallToolResult, itemOutput, error) {
	kind, err := models.ParseKind(input.Kind)
	if err != nil {
		return nil, itemOutput{}, err
	}

	item, err := s.trk.AddItem(input.Name, kind, input.Icon, input.Color)
	if err != nil {
		return nil, itemOutput{}, fmt.Errorf("failed to add item: %w", err)
	}

	return nil, itemOutput{
		ID:      item.ID[:8],
		Name:    item.Name,
		Kind:    string(item.Kind),
		Message: fmt.Sprintf("Added %s item %q (ID: %s)", item.Kind, item.Name, item.ID[:8]),
	}, nil
}

func (s *Server) handleListItems(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	items, err := s.trk.Items()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list items: %w", err)
	}

	if len(items) == 0 {
		return nil, map[string]interface{}{"message": "No items found."}, nil
	}

	out := make([]map[string]interface{}, 0, len(items))
	for _, it := range items {
		today, err := s.trk.TodayValue(it.ID)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to total today: %w", err)
		}
		level := models.LevelInfo(it.Kind, it.TotalValue)
		out = append(out, map[string]interface{}{
			"id":    it.ID[:8],
			"name":  it.Name,
			"kind":  string(it.Kind),
			"total": it.FormatValue(it.TotalValue),
			"today": it.FormatValue(today),
			"level": level.Current.Title,
		})
	}

	return nil, out, nil
}

func (s *Server) handleDeleteItem(ctx context.Context, req *mcp.CallToolRequest, input itemRefInput) (*mcp.CallToolResult, simpleOutput, error) {
	item, err := s.trk.FindItem(input.Item)
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("item not found: %s", input.Item)
	}

	if err := s.trk.DeleteItem(item.ID); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to delete item: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Deleted item %q and its records", item.Name),
	}, nil
}

func (s *Server) handleAddProgress(ctx context.Context, req *mcp.CallToolRequest, input addProgressInput) (*mcp.CallToolResult, progressOutput, error) {
	item, err := s.trk.FindItem(input.Item)
	if err != nil {
		return nil, progressOutput{}, fmt.Errorf("item not found: %s", input.Item)
	}
	if input.Value <= 0 {
		return nil, progressOutput{}, fmt.Errorf("value must be positive")
	}

	rec, err := s.trk.AddRecord(item.ID, input.Value, input.Note, input.Day)
	if err != nil {
		return nil, progressOutput{}, fmt.Errorf("failed to add record: %w", err)
	}

	todayTotal, err := s.trk.TotalForDay(item.ID, rec.Day)
	if err != nil {
		return nil, progressOutput{}, fmt.Errorf("failed to total day: %w", err)
	}

	return nil, progressOutput{
		ID:      rec.ID[:8],
		Day:     rec.Day,
		Value:   item.FormatValue(rec.Value),
		Today:   item.FormatValue(todayTotal),
		Message: fmt.Sprintf("Logged %s to %q (%s total on %s)", item.FormatValue(rec.Value), item.Name, item.FormatValue(todayTotal), models.FormatDate(rec.Day)),
	}, nil
}

func (s *Server) handleAdjustProgress(ctx context.Context, req *mcp.CallToolRequest, input adjustProgressInput) (*mcp.CallToolResult, progressOutput, error) {
	item, err := s.trk.FindItem(input.Item)
	if err != nil {
		return nil, progressOutput{}, fmt.Errorf("item not found: %s", input.Item)
	}

	dir := tracker.Direction(input.Direction)
	if dir != tracker.Plus && dir != tracker.Minus {
		return nil, progressOutput{}, fmt.Errorf("direction must be plus or minus, got %q", input.Direction)
	}

	day := input.Day
	if day == "" {
		day = s.trk.Today()
	}

	rec, err := s.trk.Adjust(item.ID, day, dir, input.Amount)
	if err != nil {
		return nil, progressOutput{}, fmt.Errorf("failed to adjust: %w", err)
	}

	total, err := s.trk.TotalForDay(item.ID, day)
	if err != nil {
		return nil, progressOutput{}, fmt.Errorf("failed to total day: %w", err)
	}

	if rec == nil {
		return nil, progressOutput{
			Day:     day,
			Today:   item.FormatValue(total),
			Message: "No adjustment needed.",
		}, nil
	}

	return nil, progressOutput{
		ID:      rec.ID[:8],
		Day:     rec.Day,
		Value:   item.FormatValue(rec.Value),
		Today:   item.FormatValue(total),
		Message: fmt.Sprintf("Adjusted %q to %s on %s", item.Name, item.FormatValue(total), models.FormatDate(day)),
	}, nil
}

func (s *Server) handleGetProgress(ctx context.Context, req *mcp.CallToolRequest, input itemRefInput) (*mcp.CallToolResult, any, error) {
	item, err := s.trk.FindItem(input.Item)
	if err != nil {
		return nil, nil, fmt.Errorf("item not found: %s", input.Item)
	}

	if item.Goal == nil {
		return nil, map[string]interface{}{"message": fmt.Sprintf("%q has no goal set.", item.Name)}, nil
	}

	p := s.trk.GoalProgressFor(item)
	return nil, map[string]interface{}{
		"item":           item.Name,
		"target":         item.FormatValue(item.Goal.Target),
		"deadline":       item.Goal.Deadline,
		"progress":       item.FormatValue(p.ProgressValue),
		"remaining":      item.FormatValue(p.Remaining),
		"days_remaining": p.DaysRemaining,
		"percent":        p.Percent,
		"today_target":   item.FormatValue(p.TodayTarget),
	}, nil
}

func (s *Server) handleSetGoal(ctx context.Context, req *mcp.CallToolRequest, input setGoalInput) (*mcp.CallToolResult, simpleOutput, error) {
	item, err := s.trk.FindItem(input.Item)
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("item not found: %s", input.Item)
	}

	if err := s.trk.SetGoal(item.ID, input.Target, input.Deadline); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to set goal: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Goal set for %q: %s by %s", item.Name, item.FormatValue(input.Target), models.FormatDate(input.Deadline)),
	}, nil
}

func (s *Server) handleGetStreak(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	streak, err := s.trk.Streak()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to calculate streak: %w", err)
	}

	return nil, map[string]interface{}{
		"streak_days": streak,
		"message":     fmt.Sprintf("Current streak: %d day(s)", streak),
	}, nil
}

func (s *Server) handleGetHistory(ctx context.Context, req *mcp.CallToolRequest, input getHistoryInput) (*mcp.CallToolResult, any, error) {
	item, err := s.trk.FindItem(input.Item)
	if err != nil {
		return nil, nil, fmt.Errorf("item not found: %s", input.Item)
	}

	if input.Limit <= 0 {
		input.Limit = 14
	}

	groups, err := s.trk.GroupByDay(item.ID, input.Limit)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to group records: %w", err)
	}

	if len(groups) == 0 {
		return nil, map[string]interface{}{"message": "No records found."}, nil
	}

	out := make([]map[string]interface{}, 0, len(groups))
	for _, g := range groups {
		out = append(out, map[string]interface{}{
			"day":     g.Day,
			"records": g.Count,
			"total":   item.FormatValue(g.Total),
		})
	}

	return nil, out, nil
}

func (s *Server) handleSetDailyNote(ctx context.Context, req *mcp.CallToolRequest, input setDailyNoteInput) (*mcp.CallToolResult, simpleOutput, error) {
	item, err := s.trk.FindItem(input.Item)
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("item not found: %s", input.Item)
	}

	day := input.Day
	if day == "" {
		day = s.trk.Today()
	}

	if err := s.trk.SetDailyNote(item.ID, day, input.Text); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to set daily note: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Note saved for %q on %s", item.Name, models.FormatDate(day)),
	}, nil
}

func (s *Server) handleGetQuote(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	q := quotes.ForDay(s.trk.Today())
	return nil, map[string]interface{}{
		"text":   q.Text,
		"author": q.Author,
	}, nil
}
