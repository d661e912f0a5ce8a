// Package main is a smoke-run driver for the Greykeep inventory domain.
// It only wires dependencies and plays a fixed gathering script.
// NO business logic belongs here.
package main

import (
	"fmt"
	"os"

	"github.com/example/greykeep/internal/domain/inventory"
	"github.com/example/greykeep/internal/domain/item"
	"github.com/example/greykeep/internal/platform/logger"
)

func main() {
	appLogger := logger.NewLogger()
	appLogger.Info("Starting inventory smoke run (pack capacity 2)...")

	pack, err := inventory.New(2)
	if err != nil {
		appLogger.Error("Failed to build pack: " + err.Error())
		os.Exit(1)
	}

	script := []*item.ItemStack{
		item.NewStack(item.ItemWood, 5),
		item.NewStack(item.ItemStone, 2),
		item.NewStack(item.ItemIronOre, 1),
		item.NewStack(item.ItemWood, 3),
	}

	for _, stack := range script {
		if pack.AddItems(stack) {
			appLogger.Info(fmt.Sprintf("Picked up %s", stack))
		} else {
			appLogger.Warn(fmt.Sprintf("Pack full, left %s on the ground", stack))
		}
	}

	appLogger.Report("PACK", pack.String())
	appLogger.Info(fmt.Sprintf("Done. %d of %d slots in use.", pack.UtilizedSlots(), pack.Capacity()))
}
