// Package cli implements the interactive menu surface. It holds no state
// across invocations: every choice validates its input, runs one service
// call, and prints a one-line result. Errors never escape the loop.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"invtrack/internal/service"
)

// action is the closed set of menu entries. runAction switches over it
// exhaustively; there is no dynamic dispatch table to fall through.
type action int

const (
	actionUpsertItem action = iota + 1
	actionViewInventory
	actionSearchInventory
	actionAdjustQuantity
	actionRecordOrder
	actionViewOrders
	actionViewLowStock
	actionDeleteItem
	actionExportCSV
	actionSummary
	actionExit
)

var menuEntries = []struct {
	act   action
	label string
}{
	{actionUpsertItem, "Add or update item"},
	{actionViewInventory, "View inventory"},
	{actionSearchInventory, "Search inventory"},
	{actionAdjustQuantity, "Adjust quantity"},
	{actionRecordOrder, "Record customer order"},
	{actionViewOrders, "View order history"},
	{actionViewLowStock, "View low-stock items"},
	{actionDeleteItem, "Delete item"},
	{actionExportCSV, "Export inventory to CSV"},
	{actionSummary, "Snapshot summary"},
	{actionExit, "Exit"},
}

// Menu drives one interactive session over in/out.
type Menu struct {
	in         *bufio.Scanner
	out        io.Writer
	inventory  service.InventoryService
	orders     service.OrderService
	export     service.ExportService
	exportPath string
}

func NewMenu(
	in io.Reader,
	out io.Writer,
	inventory service.InventoryService,
	orders service.OrderService,
	export service.ExportService,
	exportPath string,
) *Menu {
	return &Menu{
		in:         bufio.NewScanner(in),
		out:        out,
		inventory:  inventory,
		orders:     orders,
		export:     export,
		exportPath: exportPath,
	}
}

// Run loops until Exit is chosen or input ends. Any action error is printed
// and the loop continues; nothing here terminates the process.
func (m *Menu) Run(ctx context.Context) {
	for {
		fmt.Fprintln(m.out, "\nInventory Tracker")
		for _, entry := range menuEntries {
			fmt.Fprintf(m.out, "%d. %s\n", entry.act, entry.label)
		}

		choice, ok := m.promptLine("Choose: ")
		if !ok {
			return
		}
		n, err := strconv.Atoi(strings.TrimSpace(choice))
		if err != nil || n < int(actionUpsertItem) || n > int(actionExit) {
			fmt.Fprintln(m.out, "Unknown option.")
			continue
		}
		if action(n) == actionExit {
			return
		}
		m.runAction(ctx, action(n))
	}
}

func (m *Menu) runAction(ctx context.Context, act action) {
	switch act {
	case actionUpsertItem:
		m.upsertItem(ctx)
	case actionViewInventory:
		m.viewInventory(ctx)
	case actionSearchInventory:
		m.searchInventory(ctx)
	case actionAdjustQuantity:
		m.adjustQuantity(ctx)
	case actionRecordOrder:
		m.recordOrder(ctx)
	case actionViewOrders:
		m.viewOrders(ctx)
	case actionViewLowStock:
		m.viewLowStock(ctx)
	case actionDeleteItem:
		m.deleteItem(ctx)
	case actionExportCSV:
		m.exportCSV(ctx)
	case actionSummary:
		m.summary(ctx)
	case actionExit:
		// handled in Run
	}
}
