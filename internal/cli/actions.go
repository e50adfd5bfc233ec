package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"invtrack/internal/apperror"
	"invtrack/internal/dto"
)

func (m *Menu) upsertItem(ctx context.Context) {
	name, ok := m.promptLine("Item name: ")
	if !ok {
		return
	}
	if strings.TrimSpace(name) == "" {
		fmt.Fprintln(m.out, "Item name cannot be empty.")
		return
	}
	category, ok := m.promptLine("Category (default General): ")
	if !ok {
		return
	}
	quantity, ok := m.promptInt("Quantity: ", 0)
	if !ok {
		return
	}
	reorderLevel, ok := m.promptInt("Reorder level: ", 0)
	if !ok {
		return
	}

	resp, err := m.inventory.Upsert(ctx, dto.UpsertItemRequest{
		Name:         name,
		Category:     category,
		Quantity:     quantity,
		ReorderLevel: reorderLevel,
	})
	if err != nil {
		fmt.Fprintln(m.out, err)
		return
	}
	fmt.Fprintf(m.out, "Saved '%s' (%d units).\n", resp.Name, resp.Quantity)
}

func (m *Menu) viewInventory(ctx context.Context) {
	items, err := m.inventory.List(ctx)
	if err != nil {
		fmt.Fprintln(m.out, err)
		return
	}
	if len(items) == 0 {
		fmt.Fprintln(m.out, "Inventory is empty.")
		return
	}
	fmt.Fprintf(m.out, "\n%-20s %-15s %5s %10s\n", "Item", "Category", "Qty", "Reorder @")
	fmt.Fprintln(m.out, strings.Repeat("-", 55))
	for _, item := range items {
		fmt.Fprintf(m.out, "%-20s %-15s %5d %10d\n",
			truncate(item.Name, 20), truncate(item.Category, 15), item.Quantity, item.ReorderLevel)
	}
}

func (m *Menu) searchInventory(ctx context.Context) {
	term, ok := m.promptLine("Search term: ")
	if !ok {
		return
	}
	items, err := m.inventory.Search(ctx, term)
	switch {
	case errors.Is(err, apperror.ErrValidation):
		fmt.Fprintln(m.out, "Nothing to search.")
		return
	case err != nil:
		fmt.Fprintln(m.out, err)
		return
	}
	if len(items) == 0 {
		fmt.Fprintln(m.out, "No matching items found.")
		return
	}
	for _, item := range items {
		fmt.Fprintf(m.out, "%s (%s) - %d units (reorder @ %d)\n",
			item.Name, item.Category, item.Quantity, item.ReorderLevel)
	}
}

func (m *Menu) adjustQuantity(ctx context.Context) {
	name, ok := m.promptLine("Item to adjust: ")
	if !ok {
		return
	}
	delta, ok := m.promptInt("Adjustment amount (use positive numbers): ", 0)
	if !ok {
		return
	}
	dirInput, ok := m.promptLine("Add or subtract (a/s): ")
	if !ok {
		return
	}
	direction := dto.AdjustAdd
	if strings.HasPrefix(strings.ToLower(strings.TrimSpace(dirInput)), "s") {
		direction = dto.AdjustSubtract
	}

	newQuantity, err := m.inventory.AdjustQuantity(ctx, dto.AdjustQuantityRequest{
		Name:      name,
		Delta:     delta,
		Direction: direction,
	})
	switch {
	case err == nil:
		fmt.Fprintf(m.out, "%s now has %d units.\n", strings.TrimSpace(name), newQuantity)
	case errors.Is(err, apperror.ErrNotFound):
		fmt.Fprintln(m.out, "Item not found.")
	case errors.Is(err, apperror.ErrInvalidState):
		fmt.Fprintln(m.out, "Cannot reduce below zero.")
	default:
		fmt.Fprintln(m.out, err)
	}
}

func (m *Menu) recordOrder(ctx context.Context) {
	name, ok := m.promptLine("Item to order: ")
	if !ok {
		return
	}
	quantity, ok := m.promptInt("Quantity: ", 1)
	if !ok {
		return
	}
	note, ok := m.promptLine("Note (optional): ")
	if !ok {
		return
	}

	resp, err := m.orders.Place(ctx, dto.PlaceOrderRequest{
		ItemName: name,
		Quantity: quantity,
		Note:     note,
	})
	switch {
	case err == nil:
		fmt.Fprintf(m.out, "Order recorded for %d units of %s.\n", resp.Quantity, resp.Item)
	case errors.Is(err, apperror.ErrNotFound):
		fmt.Fprintln(m.out, "Item not found.")
	case errors.Is(err, apperror.ErrInvalidState):
		fmt.Fprintln(m.out, "Not enough stock for this order.")
	default:
		fmt.Fprintln(m.out, err)
	}
}

func (m *Menu) viewOrders(ctx context.Context) {
	orders, err := m.orders.History(ctx)
	if err != nil {
		fmt.Fprintln(m.out, err)
		return
	}
	if len(orders) == 0 {
		fmt.Fprintln(m.out, "No orders recorded.")
		return
	}
	for _, o := range orders {
		note := ""
		if o.Note != "" {
			note = fmt.Sprintf(" (%s)", o.Note)
		}
		fmt.Fprintf(m.out, "%s: %s x%d%s\n", o.OrderedAt, o.Item, o.Quantity, note)
	}
}

func (m *Menu) viewLowStock(ctx context.Context) {
	items, err := m.inventory.ListLowStock(ctx)
	if err != nil {
		fmt.Fprintln(m.out, err)
		return
	}
	if len(items) == 0 {
		fmt.Fprintln(m.out, "No items at or below reorder level.")
		return
	}
	fmt.Fprintln(m.out, "Items needing restock:")
	for _, item := range items {
		fmt.Fprintf(m.out, "- %s: %d (reorder @ %d)\n", item.Name, item.Quantity, item.ReorderLevel)
	}
}

func (m *Menu) deleteItem(ctx context.Context) {
	name, ok := m.promptLine("Item to delete: ")
	if !ok {
		return
	}
	deleted, err := m.inventory.Delete(ctx, name)
	if err != nil {
		fmt.Fprintln(m.out, err)
		return
	}
	if deleted {
		fmt.Fprintf(m.out, "Deleted %s. Related order history remains for auditing.\n", strings.TrimSpace(name))
		return
	}
	fmt.Fprintln(m.out, "Item not found.")
}

// exportCSV buffers the export so an empty inventory never creates a file.
func (m *Menu) exportCSV(ctx context.Context) {
	var buf bytes.Buffer
	rows, err := m.export.Export(ctx, &buf)
	if err != nil {
		fmt.Fprintln(m.out, err)
		return
	}
	if rows == 0 {
		fmt.Fprintln(m.out, "Inventory empty, nothing to export.")
		return
	}
	if err := os.WriteFile(m.exportPath, buf.Bytes(), 0o644); err != nil {
		fmt.Fprintln(m.out, err)
		return
	}
	fmt.Fprintf(m.out, "Exported %d rows to %s.\n", rows, m.exportPath)
}

func (m *Menu) summary(ctx context.Context) {
	resp, err := m.inventory.Summarize(ctx)
	if err != nil {
		fmt.Fprintln(m.out, err)
		return
	}
	fmt.Fprintln(m.out, "=== Snapshot ===")
	fmt.Fprintf(m.out, "Items tracked: %d\n", resp.TotalItems)
	fmt.Fprintf(m.out, "Units on hand: %d\n", resp.TotalUnits)
	if len(resp.PerCategory) == 0 {
		fmt.Fprintln(m.out, "No category data yet.")
		return
	}
	fmt.Fprintln(m.out, "Per category:")
	for _, c := range resp.PerCategory {
		fmt.Fprintf(m.out, "- %s: %d units across %d items\n", c.Category, c.Units, c.Items)
	}
}
