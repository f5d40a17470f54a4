// Package main provides the artstock CLI.
//
// Install once:
//
//	go install github.com/shashiranjanraj/artstock/cmd/artstock@latest
//
// Then manage the inventory from any directory:
//
//	artstock init
//	artstock add --title "Sunset" --artist "A. Painter" --year 2020 --price 150.0 --quantity 3 --sku SUN-001
//	artstock update-qty --sku SUN-001 --delta -1
//	artstock list
//	artstock get --sku SUN-001
//	artstock remove --sku SUN-001
//
// The store defaults to a local SQLite file (artwork_inventory.db) created
// on first use; DB_DRIVER/DATABASE_DSN in .env or config/app.json select
// another backend, and --db overrides the location for one invocation.
package main
